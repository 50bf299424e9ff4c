package network

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

type fakeEnvRepo struct {
	envVars map[string]string
}

func (repo fakeEnvRepo) Get(key string) string {
	value, ok := repo.envVars[key]
	if ok {
		return value
	}
	return ""
}

func (repo fakeEnvRepo) Set(key, value string) error {
	repo.envVars[key] = value
	return nil
}

func (repo fakeEnvRepo) Unset(key string) error {
	repo.envVars[key] = ""
	return nil
}

func (repo fakeEnvRepo) List() []string {
	envs := []string{}
	for k, v := range repo.envVars {
		envs = append(envs, fmt.Sprintf("%s=%s", k, v))
	}
	return envs
}

func validEnvRepo() fakeEnvRepo {
	return fakeEnvRepo{envVars: map[string]string{
		AccessKeyEnvKey: "fake access key",
		LibraryIDEnvKey: "lib-42",
		APIURLEnvKey:    "https://video.example.com",
	}}
}

// fakeAuthorizedClient counts calls and replays a canned response.
type fakeAuthorizedClient struct {
	callCount int
	lastPath  string
	lastBody  []byte
	response  *http.Response
	err       error
}

func (c *fakeAuthorizedClient) Post(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	c.callCount++
	c.lastPath = path
	if body != nil {
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, err
		}
		c.lastBody = data
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}
