//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/joho/godotenv"

	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network"
)

var logger = log.NewLogger()

// loadEnv pulls credentials from a repo-root .env file into the process
// environment and skips the test when the required variables are absent.
func loadEnv(t *testing.T) {
	_ = godotenv.Load("../.env")

	required := []string{
		network.AccessKeyEnvKey,
		network.LibraryIDEnvKey,
		network.APIURLEnvKey,
		"BACKEND_API_URL",
		"BACKEND_ACCESS_TOKEN",
	}
	for _, key := range required {
		if os.Getenv(key) == "" {
			t.Skipf("%s is not set, skipping integration test", key)
		}
	}
}

// bearerClient talks to the application backend with a bearer token, the way
// the app's authenticated session does.
type bearerClient struct {
	baseURL string
	token   string
}

func (c bearerClient) Post(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Content-Type", "application/json")

	return retryablehttp.NewClient().Do(req)
}
