package network

import (
	"strings"

	"github.com/bitrise-io/go-utils/v2/env"
)

// Environment variables required for reaching the Bunny Stream API.
const (
	AccessKeyEnvKey = "BUNNY_CDN_ACCESS_KEY"
	LibraryIDEnvKey = "BUNNY_CDN_LIBRARY_ID"
	APIURLEnvKey    = "BUNNY_CDN_API_URL"
)

// Config is the resolved Bunny Stream connection configuration.
type Config struct {
	AccessKey  Secret
	LibraryID  string
	APIBaseURL string
}

// ResolveConfig reads and validates the Bunny connection settings from the
// environment. It reports every missing or blank variable at once, not just
// the first one.
//
// Each stage that talks to the CDN resolves its own config so that every
// code path fails on its own instead of trusting an earlier call.
func ResolveConfig(envRepo env.Repository) (Config, error) {
	var missing []string

	accessKey := strings.TrimSpace(envRepo.Get(AccessKeyEnvKey))
	if accessKey == "" {
		missing = append(missing, AccessKeyEnvKey)
	}
	libraryID := strings.TrimSpace(envRepo.Get(LibraryIDEnvKey))
	if libraryID == "" {
		missing = append(missing, LibraryIDEnvKey)
	}
	apiBaseURL := strings.TrimSpace(envRepo.Get(APIURLEnvKey))
	if apiBaseURL == "" {
		missing = append(missing, APIURLEnvKey)
	}

	if len(missing) > 0 {
		return Config{}, &ConfigError{Missing: missing}
	}

	return Config{
		AccessKey:  Secret(accessKey),
		LibraryID:  libraryID,
		APIBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
	}, nil
}
