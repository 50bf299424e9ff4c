package network

import (
	"context"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
)

// CDN provisions and finalizes video slots on Bunny Stream.
type CDN interface {
	CreateVideo(ctx context.Context, envRepo env.Repository, title string, logger log.Logger) (Slot, error)
	UpdateVideoMetadata(ctx context.Context, envRepo env.Repository, videoID, title string, logger log.Logger) error
}

// DefaultCDN ...
type DefaultCDN struct{}

// CreateVideo ...
func (DefaultCDN) CreateVideo(ctx context.Context, envRepo env.Repository, title string, logger log.Logger) (Slot, error) {
	return CreateVideo(ctx, envRepo, title, logger)
}

// UpdateVideoMetadata ...
func (DefaultCDN) UpdateVideoMetadata(ctx context.Context, envRepo env.Repository, videoID, title string, logger log.Logger) error {
	return UpdateVideoMetadata(ctx, envRepo, videoID, title, logger)
}

// Authorizer mints upload credentials through the application backend.
type Authorizer interface {
	GetUploadAuth(ctx context.Context, client AuthorizedClient, videoID, title string, logger log.Logger) (UploadAuthorization, error)
}

// DefaultAuthorizer ...
type DefaultAuthorizer struct{}

// GetUploadAuth ...
func (DefaultAuthorizer) GetUploadAuth(ctx context.Context, client AuthorizedClient, videoID, title string, logger log.Logger) (UploadAuthorization, error) {
	return GetUploadAuth(ctx, client, videoID, title, logger)
}

// RecordSaver persists upload metadata to the application backend.
type RecordSaver interface {
	SaveVideoRecord(ctx context.Context, client AuthorizedClient, record VideoRecord, logger log.Logger) error
}

// DefaultRecordSaver ...
type DefaultRecordSaver struct{}

// SaveVideoRecord ...
func (DefaultRecordSaver) SaveVideoRecord(ctx context.Context, client AuthorizedClient, record VideoRecord, logger log.Logger) error {
	return SaveVideoRecord(ctx, client, record, logger)
}
