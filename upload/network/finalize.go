package network

import (
	"context"
	"strings"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
)

// UpdateVideoMetadata sets the human-facing title on an already transferred
// video. A failure here is distinct from a failed transfer: the bytes are on
// the CDN and only this call needs to be retried.
func UpdateVideoMetadata(ctx context.Context, envRepo env.Repository, videoID, title string, logger log.Logger) error {
	if strings.TrimSpace(videoID) == "" {
		return ErrVideoIDRequired
	}

	config, err := ResolveConfig(envRepo)
	if err != nil {
		return err
	}

	client := newAPIClient(retryhttp.NewClient(logger), config, logger)

	logger.Debugf("Updating metadata of video %s", videoID)
	return client.updateVideo(ctx, videoID, title)
}
