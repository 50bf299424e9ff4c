package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrVideoIDRequired is returned when a video ID parameter is empty. This is
// a programmer error and is reported before any request is built.
var ErrVideoIDRequired = errors.New("video ID is required")

// ConfigError lists every required environment variable that is missing or
// blank.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Missing, ", "))
}

// ProvisionError means the CDN rejected the video create call. It carries
// the HTTP status only; the response body stays out of user-facing errors.
type ProvisionError struct {
	StatusCode int
	Status     string
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("bunny video create rejected: %s", e.Status)
}

// AuthorizationDeniedError means the backend answered the signing request
// but refused to mint credentials. The transport call itself succeeded.
type AuthorizationDeniedError struct {
	VideoID string
}

func (e *AuthorizationDeniedError) Error() string {
	return fmt.Sprintf("upload authorization denied for video %s", e.VideoID)
}

// FinalizationError means the bytes already reached the CDN but the metadata
// update failed. Only the metadata call needs a retry, not the transfer.
type FinalizationError struct {
	StatusCode int
	Status     string
}

func (e *FinalizationError) Error() string {
	return fmt.Sprintf("bunny metadata update rejected: %s", e.Status)
}
