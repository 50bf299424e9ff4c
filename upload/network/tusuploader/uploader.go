package tusuploader

import (
	"context"
	"math"
	"sync"

	"github.com/bitrise-io/go-utils/v2/log"
)

// ProgressFunc receives whole-transfer progress as an integer percentage
// (0-100), monotonically non-decreasing within one attempt.
type ProgressFunc func(pct int)

// Upload runs one transfer session to completion.
//
// If an earlier incomplete upload of the same file exists, it is resumed
// rather than restarted. Byte-level progress is forwarded as a rounded
// percentage. The underlying engine already retries transient failures with
// backoff; no second retry loop is layered on top, since the upload
// credentials are time-bounded and doubled backoff could outlive them. The
// engine's terminal error is returned verbatim so the caller keeps its
// retryable/non-retryable classification.
func Upload(ctx context.Context, session Session, onProgress ProgressFunc, logger log.Logger) error {
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warnf("Failed to close transfer session: %s", err)
		}
	}()

	previous, err := session.FindPreviousUploads()
	if err != nil {
		return err
	}
	if len(previous) > 0 {
		logger.Infof("Resuming interrupted upload from byte %d", previous[0].Offset)
		if err := session.ResumeFromPreviousUpload(previous[0]); err != nil {
			return err
		}
	}

	done := make(chan error, 1)
	var once sync.Once
	settle := func(err error) {
		once.Do(func() {
			done <- err
		})
	}

	session.Start(Callbacks{
		OnProgress: func(bytesUploaded, bytesTotal int64) {
			if onProgress == nil || bytesTotal <= 0 {
				return
			}
			onProgress(percentage(bytesUploaded, bytesTotal))
		},
		OnSuccess: func() {
			settle(nil)
		},
		OnError: func(err error) {
			settle(err)
		},
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if err := session.Abort(); err != nil {
			logger.Warnf("Failed to abort transfer: %s", err)
		}
		return ctx.Err()
	}
}

func percentage(part, total int64) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
