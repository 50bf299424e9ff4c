package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bitrise-io/go-utils/v2/analytics"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"
	"github.com/eventials/go-tus"
	"github.com/eventials/go-tus/memorystore"
	"github.com/google/uuid"

	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network"
	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network/tusuploader"
)

// UploadInput is the user's upload intent. It is owned by the caller and is
// never mutated by the pipeline.
type UploadInput struct {
	// FilePath points at the locally picked video file.
	FilePath string
	// Title is the display title; required.
	Title       string
	Description string
	Category    string
	// Audience is the target segment label.
	Audience string
	Verbose  bool
	// OnPhase observes phase transitions; optional.
	OnPhase func(Phase)
	// OnProgress observes transfer progress as a 0-100 percentage; optional.
	OnProgress func(pct int)
}

// UploadResult identifies the finished upload.
type UploadResult struct {
	VideoID   string
	LibraryID string
}

// VideoUploader runs the full upload pipeline: provision a CDN slot, mint
// upload credentials, transfer the bytes resumably, finalize the CDN
// metadata and record the upload on the application backend.
type VideoUploader interface {
	Upload(ctx context.Context, input UploadInput) (UploadResult, error)
}

// SessionFactory builds a transfer session. Tests substitute their own.
type SessionFactory func(params tusuploader.Params, logger log.Logger) (tusuploader.Session, error)

type uploader struct {
	envRepo  env.Repository
	logger   log.Logger
	backend  network.AuthorizedClient
	cdn      network.CDN
	auth     network.Authorizer
	records  network.RecordSaver
	sessions SessionFactory

	// analytics overrides the default tracker; nil in production.
	analytics analytics.Tracker

	storeOnce sync.Once
	store     tus.Store
}

// NewVideoUploader creates a new pipeline instance. backend is the
// session-bearing client for the application backend. cdn, auth, records and
// sessions can be nil, unless you want to provide a custom implementation.
func NewVideoUploader(
	envRepo env.Repository,
	logger log.Logger,
	backend network.AuthorizedClient,
	cdn network.CDN,
	auth network.Authorizer,
	records network.RecordSaver,
	sessions SessionFactory,
) *uploader {
	if cdn == nil {
		cdn = network.DefaultCDN{}
	}
	if auth == nil {
		auth = network.DefaultAuthorizer{}
	}
	if records == nil {
		records = network.DefaultRecordSaver{}
	}
	if sessions == nil {
		sessions = func(params tusuploader.Params, logger log.Logger) (tusuploader.Session, error) {
			return tusuploader.NewSession(params, logger)
		}
	}
	return &uploader{
		envRepo:  envRepo,
		logger:   logger,
		backend:  backend,
		cdn:      cdn,
		auth:     auth,
		records:  records,
		sessions: sessions,
	}
}

// Upload runs the stages in order and short-circuits on the first failure.
// Failures are wrapped in *StageError so callers can tell which stage broke;
// the wrapped error keeps its type for errors.Is/errors.As. Each call is
// self-contained, so concurrent uploads each get their own slot and
// credentials.
func (u *uploader) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	if input.Verbose {
		u.logger.EnableDebugLog(true)
	}

	phase := func(p Phase) {
		if input.OnPhase != nil {
			input.OnPhase(p)
		}
	}

	if err := validateInput(input); err != nil {
		phase(PhaseError)
		return UploadResult{}, fmt.Errorf("failed to parse inputs: %w", err)
	}

	fileInfo, err := os.Stat(input.FilePath)
	if err != nil {
		phase(PhaseError)
		return UploadResult{}, fmt.Errorf("stat video file: %w", err)
	}

	attemptID := uuid.NewString()
	tracker := newUploadTracker(attemptID, u.envRepo, u.logger, u.analytics)
	defer tracker.wait()

	u.logger.Println()
	u.logger.Infof("Uploading %s (%s)", filepath.Base(input.FilePath), units.HumanSizeWithPrecision(float64(fileInfo.Size()), 3))
	u.logger.Debugf("Upload attempt: %s", attemptID)

	phase(PhaseAuthorizing)
	slot, err := u.cdn.CreateVideo(ctx, u.envRepo, input.Title, u.logger)
	if err != nil {
		return UploadResult{}, u.fail(StageProvision, err, phase, &tracker)
	}

	auth, err := u.auth.GetUploadAuth(ctx, u.backend, slot.GUID, input.Title, u.logger)
	if err != nil {
		return UploadResult{}, u.fail(StageAuthorize, err, phase, &tracker)
	}

	phase(PhaseUploading)
	config, err := network.ResolveConfig(u.envRepo)
	if err != nil {
		return UploadResult{}, u.fail(StageTransfer, err, phase, &tracker)
	}
	session, err := u.sessions(tusuploader.Params{
		EndpointURL:   config.APIBaseURL + "/tusupload",
		FilePath:      input.FilePath,
		Title:         input.Title,
		Authorization: auth,
		Store:         u.resumeStore(),
	}, u.logger)
	if err != nil {
		return UploadResult{}, u.fail(StageTransfer, err, phase, &tracker)
	}

	u.logger.Infof("Uploading video...")
	transferStartTime := time.Now()
	if err := tusuploader.Upload(ctx, session, input.OnProgress, u.logger); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			phase(PhaseCanceled)
			tracker.logUploadCanceled()
			u.logger.Warnf("Upload canceled")
			return UploadResult{}, err
		}
		return UploadResult{}, u.fail(StageTransfer, err, phase, &tracker)
	}
	transferTime := time.Since(transferStartTime).Round(time.Second)
	u.logger.Donef("Video uploaded in %s", transferTime)
	tracker.logTransferFinished(transferTime, fileInfo)

	if err := u.cdn.UpdateVideoMetadata(ctx, u.envRepo, slot.GUID, input.Title, u.logger); err != nil {
		return UploadResult{}, u.fail(StageFinalize, err, phase, &tracker)
	}

	record := network.VideoRecord{
		VideoID:     slot.GUID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Audience:    input.Audience,
	}
	if err := u.records.SaveVideoRecord(ctx, u.backend, record, u.logger); err != nil {
		return UploadResult{}, u.fail(StageRecord, err, phase, &tracker)
	}
	tracker.logRecordPending(slot.GUID)

	phase(PhaseComplete)
	u.logger.Donef("Upload complete: video %s", slot.GUID)

	return UploadResult{VideoID: slot.GUID, LibraryID: slot.VideoLibraryID}, nil
}

func (u *uploader) fail(stage Stage, err error, phase func(Phase), tracker *uploadTracker) error {
	phase(PhaseError)
	tracker.logUploadFailed(stage)
	stageErr := &StageError{Stage: stage, Err: err}
	u.logger.Errorf(stageErr.Error())
	return stageErr
}

// resumeStore is shared across uploads of this instance so a retried upload
// can continue where the interrupted one stopped.
func (u *uploader) resumeStore() tus.Store {
	u.storeOnce.Do(func() {
		store, err := memorystore.NewMemoryStore()
		if err != nil {
			u.logger.Warnf("Failed to create resume store: %s", err)
			return
		}
		u.store = store
	})
	return u.store
}

func validateInput(input UploadInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("title should not be empty")
	}
	if strings.TrimSpace(input.FilePath) == "" {
		return fmt.Errorf("file path should not be empty")
	}
	return nil
}
