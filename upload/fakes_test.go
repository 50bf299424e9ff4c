package upload

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bitrise-io/go-utils/v2/analytics"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network"
	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network/tusuploader"
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
		network.AccessKeyEnvKey: "fake access key",
		network.LibraryIDEnvKey: "lib-42",
		network.APIURLEnvKey:    "https://video.example.com",
	}}
}

type fakeAuthorizedClient struct {
	callCount int
}

func (c *fakeAuthorizedClient) Post(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	c.callCount++
	return nil, fmt.Errorf("unexpected backend call to %s", path)
}

type fakeCDN struct {
	slot      network.Slot
	createErr error
	updateErr error

	createCount   int
	createdTitles []string
	updatedIDs    []string
	updatedTitles []string
}

func (c *fakeCDN) CreateVideo(ctx context.Context, envRepo env.Repository, title string, logger log.Logger) (network.Slot, error) {
	c.createCount++
	c.createdTitles = append(c.createdTitles, title)
	if c.createErr != nil {
		return network.Slot{}, c.createErr
	}
	return c.slot, nil
}

func (c *fakeCDN) UpdateVideoMetadata(ctx context.Context, envRepo env.Repository, videoID, title string, logger log.Logger) error {
	c.updatedIDs = append(c.updatedIDs, videoID)
	c.updatedTitles = append(c.updatedTitles, title)
	return c.updateErr
}

type fakeAuthorizer struct {
	auth network.UploadAuthorization
	err  error

	callCount int
	videoIDs  []string
	titles    []string
}

func (a *fakeAuthorizer) GetUploadAuth(ctx context.Context, client network.AuthorizedClient, videoID, title string, logger log.Logger) (network.UploadAuthorization, error) {
	a.callCount++
	a.videoIDs = append(a.videoIDs, videoID)
	a.titles = append(a.titles, title)
	if a.err != nil {
		return network.UploadAuthorization{}, a.err
	}
	return a.auth, nil
}

type fakeRecordSaver struct {
	records []network.VideoRecord
	err     error
}

func (s *fakeRecordSaver) SaveVideoRecord(ctx context.Context, client network.AuthorizedClient, record network.VideoRecord, logger log.Logger) error {
	s.records = append(s.records, record)
	return s.err
}

type fakeSession struct {
	start func(cb tusuploader.Callbacks)

	aborted bool
	closed  bool
}

func (s *fakeSession) FindPreviousUploads() ([]tusuploader.PreviousUpload, error) {
	return nil, nil
}

func (s *fakeSession) ResumeFromPreviousUpload(prev tusuploader.PreviousUpload) error {
	return nil
}

func (s *fakeSession) Start(cb tusuploader.Callbacks) {
	if s.start != nil {
		s.start(cb)
	}
}

func (s *fakeSession) Abort() error {
	s.aborted = true
	return nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeSessionFactory struct {
	session *fakeSession
	err     error

	callCount int
	params    []tusuploader.Params
}

func (f *fakeSessionFactory) New(params tusuploader.Params, logger log.Logger) (tusuploader.Session, error) {
	f.callCount++
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type stubTracker struct {
	events []string
}

func (t *stubTracker) Enqueue(eventName string, properties ...analytics.Properties) {
	t.events = append(t.events, eventName)
}

func (t *stubTracker) Wait() {}
