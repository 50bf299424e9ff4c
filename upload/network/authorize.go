package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
)

// AuthorizedClient executes backend requests with the user's session
// credentials already attached. It is supplied by the caller; this package
// never sees or stores session tokens.
type AuthorizedClient interface {
	// Post sends a JSON body to the given backend path.
	Post(ctx context.Context, path string, body io.Reader) (*http.Response, error)
}

// UploadAuthorization is a time-bounded credential set scoped to a single
// video slot. It is consumed by exactly one transfer and is
// bearer-equivalent: never log it, never persist it.
type UploadAuthorization struct {
	Success             bool   `json:"success"`
	SHAAttempt          Secret `json:"shaAttempt"`
	AuthorizationExpire int64  `json:"authorizationExpire"`
	VideoID             string `json:"video_id"`
	LibraryID           string `json:"libraryId"`
}

type uploadAuthRequest struct {
	VideoID string `json:"videoID"`
	Title   string `json:"title"`
}

// GetUploadAuth asks the application backend to mint upload credentials for
// the given video slot. The backend holds the CDN signing secret; this
// indirection keeps the signing key off the client entirely.
//
// A 2xx response with success=false is a domain rejection and surfaces as
// *AuthorizationDeniedError. Transport failures propagate unchanged.
func GetUploadAuth(ctx context.Context, client AuthorizedClient, videoID, title string, logger log.Logger) (UploadAuthorization, error) {
	if strings.TrimSpace(videoID) == "" {
		return UploadAuthorization{}, ErrVideoIDRequired
	}

	body, err := json.Marshal(uploadAuthRequest{VideoID: videoID, Title: title})
	if err != nil {
		return UploadAuthorization{}, err
	}

	logger.Debugf("Requesting upload authorization for video %s", videoID)
	resp, err := client.Post(ctx, "/videos/bunnyInfo", bytes.NewReader(body))
	if err != nil {
		return UploadAuthorization{}, err
	}
	defer closeBody(resp.Body, logger)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return UploadAuthorization{}, unwrapError(resp)
	}

	var auth UploadAuthorization
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return UploadAuthorization{}, err
	}

	if !auth.Success {
		return UploadAuthorization{}, &AuthorizationDeniedError{VideoID: videoID}
	}
	if auth.SHAAttempt == "" || auth.AuthorizationExpire == 0 || auth.VideoID == "" || auth.LibraryID == "" {
		return UploadAuthorization{}, fmt.Errorf("upload authorization response is incomplete")
	}

	return auth, nil
}
