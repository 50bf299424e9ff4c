package network

import (
	"context"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
)

// Slot identifies a newly created, still empty video resource on the CDN.
type Slot struct {
	GUID           string
	VideoLibraryID string
}

// CreateVideo provisions a placeholder video in the configured Bunny library
// and returns its identifiers. Every call creates a new remote resource, so
// callers must invoke it exactly once per upload attempt.
//
// The title may be a working title; the final metadata is set after the
// transfer by UpdateVideoMetadata.
func CreateVideo(ctx context.Context, envRepo env.Repository, title string, logger log.Logger) (Slot, error) {
	config, err := ResolveConfig(envRepo)
	if err != nil {
		return Slot{}, err
	}

	client := newAPIClient(retryhttp.NewClient(logger), config, logger)

	logger.Debugf("Creating video slot in library %s", config.LibraryID)
	slot, err := client.createVideo(ctx, title)
	if err != nil {
		return Slot{}, err
	}
	logger.Debugf("Video slot created: %s", slot.GUID)

	return slot, nil
}
