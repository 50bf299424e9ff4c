package network

import (
	"context"

	"github.com/bitrise-io/go-utils/v2/log"
)

// VideoRecord is the upload's metadata destined for the application backend.
type VideoRecord struct {
	VideoID     string
	Title       string
	Description string
	Category    string
	Audience    string
}

// SaveVideoRecord persists the upload's metadata to the application backend.
//
// The backend endpoint (POST /videos/save) does not exist yet, so this is a
// stub: it always succeeds and performs no network call. It stays in the
// pipeline anyway so the ordering contract already includes the persistence
// stage; once the endpoint ships, only this body changes. The warning makes
// the volume of unpersisted records visible in the meantime.
func SaveVideoRecord(ctx context.Context, client AuthorizedClient, record VideoRecord, logger log.Logger) error {
	_ = ctx
	_ = client

	logger.Warnf("Video record for %s was not persisted: backend endpoint is not available yet", record.VideoID)
	return nil
}
