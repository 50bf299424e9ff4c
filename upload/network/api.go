package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-retryablehttp"
)

type createVideoRequest struct {
	Title string `json:"title"`
}

type createVideoResponse struct {
	GUID           string `json:"guid"`
	VideoLibraryID string `json:"videoLibraryId"`
}

type updateVideoRequest struct {
	Title string `json:"title"`
}

// apiClient talks to the Bunny Stream REST API. The access key travels as a
// header credential, never as a query parameter.
type apiClient struct {
	httpClient *retryablehttp.Client
	config     Config
	logger     log.Logger
}

func newAPIClient(client *retryablehttp.Client, config Config, logger log.Logger) apiClient {
	return apiClient{
		httpClient: client,
		config:     config,
		logger:     logger,
	}
}

func (c apiClient) createVideo(ctx context.Context, title string) (Slot, error) {
	url := fmt.Sprintf("%s/library/%s/videos", c.config.APIBaseURL, c.config.LibraryID)

	body, err := json.Marshal(createVideoRequest{Title: title})
	if err != nil {
		return Slot{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return Slot{}, err
	}
	req.Header.Set("AccessKey", string(c.config.AccessKey))
	req.Header.Set("Content-Type", "application/json")

	// Network-level failures propagate as-is so callers can tell "the CDN
	// rejected us" apart from "we couldn't reach the CDN".
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Slot{}, err
	}
	defer closeBody(resp.Body, c.logger)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Slot{}, &ProvisionError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var response createVideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return Slot{}, err
	}

	return Slot{GUID: response.GUID, VideoLibraryID: response.VideoLibraryID}, nil
}

func (c apiClient) updateVideo(ctx context.Context, videoID, title string) error {
	url := fmt.Sprintf("%s/library/%s/videos/%s", c.config.APIBaseURL, c.config.LibraryID, videoID)

	body, err := json.Marshal(updateVideoRequest{Title: title})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("AccessKey", string(c.config.AccessKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer closeBody(resp.Body, c.logger)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &FinalizationError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return nil
}

func unwrapError(resp *http.Response) error {
	errorResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, errorResp)
}

func closeBody(body io.ReadCloser, logger log.Logger) {
	if err := body.Close(); err != nil {
		logger.Printf(err.Error())
	}
}
