package tusuploader

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/eventials/go-tus"
	"github.com/eventials/go-tus/memorystore"
)

// NewSession opens the file and prepares a tus session against the CDN
// endpoint. The four authorization values ride on every request of the
// session as custom headers; they are credentials, so they never appear in
// the URL.
func NewSession(params Params, logger log.Logger) (Session, error) {
	file, err := os.Open(params.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open video file: %w", err)
	}
	fileInfo, err := file.Stat()
	if err != nil {
		closeQuietly(file, logger)
		return nil, fmt.Errorf("stat video file: %w", err)
	}

	store := params.Store
	if store == nil {
		store, err = memorystore.NewMemoryStore()
		if err != nil {
			closeQuietly(file, logger)
			return nil, fmt.Errorf("create resume store: %w", err)
		}
	}

	header := make(http.Header)
	header.Set("AuthorizationSignature", string(params.Authorization.SHAAttempt))
	header.Set("AuthorizationExpire", strconv.FormatInt(params.Authorization.AuthorizationExpire, 10))
	header.Set("VideoId", params.Authorization.VideoID)
	header.Set("LibraryId", params.Authorization.LibraryID)

	config := &tus.Config{
		ChunkSize: optimalChunkSizeBytes(fileInfo.Size()),
		Resume:    true,
		Store:     store,
		Header:    header,
		// Transient failures are retried with backoff inside the engine's
		// requests; see Upload for why there is no outer retry loop.
		HttpClient: retryhttp.NewClient(logger).StandardClient(),
	}

	client, err := tus.NewClient(params.EndpointURL, config)
	if err != nil {
		closeQuietly(file, logger)
		return nil, fmt.Errorf("create tus client: %w", err)
	}

	upload, err := tus.NewUploadFromFile(file)
	if err != nil {
		closeQuietly(file, logger)
		return nil, fmt.Errorf("prepare upload: %w", err)
	}
	upload.Metadata["filetype"] = mime.TypeByExtension(filepath.Ext(params.FilePath))
	upload.Metadata["title"] = params.Title

	return &tusSession{
		client: client,
		upload: upload,
		file:   file,
		logger: logger,
	}, nil
}

type tusSession struct {
	client *tus.Client
	upload *tus.Upload
	file   *os.File
	logger log.Logger

	// found is the uploader recovered from the resume store, if any.
	// uploader is the one the transfer actually runs on.
	found    *tus.Uploader
	uploader *tus.Uploader

	closeOnce sync.Once
	closeErr  error
}

func (s *tusSession) FindPreviousUploads() ([]PreviousUpload, error) {
	uploader, err := s.client.ResumeUpload(s.upload)
	if err != nil {
		if errors.Is(err, tus.ErrUploadNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.found = uploader
	return []PreviousUpload{{
		Fingerprint: s.upload.Fingerprint,
		Offset:      s.upload.Offset(),
		Size:        s.upload.Size(),
	}}, nil
}

func (s *tusSession) ResumeFromPreviousUpload(prev PreviousUpload) error {
	if s.found == nil {
		return tus.ErrUploadNotFound
	}
	s.uploader = s.found
	return nil
}

func (s *tusSession) Start(cb Callbacks) {
	go s.run(cb)
}

func (s *tusSession) run(cb Callbacks) {
	if s.uploader == nil {
		uploader, err := s.client.CreateUpload(s.upload)
		if err != nil {
			cb.OnError(err)
			return
		}
		s.uploader = uploader
	}

	progress := make(chan tus.Upload)
	s.uploader.NotifyUploadProgress(progress)

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case u := <-progress:
				cb.OnProgress(u.Offset(), u.Size())
			case <-stop:
				return
			}
		}
	}()

	err := s.uploader.Upload()
	close(stop)

	if err != nil {
		cb.OnError(err)
		return
	}
	if !s.upload.Finished() {
		// Upload returns nil when the transfer was aborted; the caller's
		// context cancellation already owns that outcome.
		return
	}
	cb.OnSuccess()
}

func (s *tusSession) Abort() error {
	if s.uploader != nil {
		s.uploader.Abort()
	}
	return nil
}

func (s *tusSession) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.file.Close()
	})
	return s.closeErr
}

func closeQuietly(file *os.File, logger log.Logger) {
	if err := file.Close(); err != nil {
		logger.Printf(err.Error())
	}
}
