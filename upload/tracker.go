package upload

import (
	"io/fs"
	"time"

	"github.com/bitrise-io/go-utils/v2/analytics"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network"
)

type uploadTracker struct {
	tracker analytics.Tracker
	logger  log.Logger
}

func newUploadTracker(attemptID string, envRepo env.Repository, logger log.Logger, tracker analytics.Tracker) uploadTracker {
	if tracker == nil {
		p := analytics.Properties{
			"attempt_id": attemptID,
			"library_id": envRepo.Get(network.LibraryIDEnvKey),
		}
		tracker = analytics.NewDefaultTracker(logger, p)
	}
	return uploadTracker{
		tracker: tracker,
		logger:  logger,
	}
}

func (t *uploadTracker) logTransferFinished(transferTime time.Duration, info fs.FileInfo) {
	properties := analytics.Properties{
		"transfer_time_s": transferTime.Truncate(time.Second).Seconds(),
		"file_size_bytes": info.Size(),
	}
	t.tracker.Enqueue("video_upload_transfer_finished", properties)
}

func (t *uploadTracker) logUploadFailed(stage Stage) {
	properties := analytics.Properties{
		"stage": string(stage),
	}
	t.tracker.Enqueue("video_upload_failed", properties)
}

func (t *uploadTracker) logUploadCanceled() {
	t.tracker.Enqueue("video_upload_canceled", analytics.Properties{})
}

// logRecordPending counts uploads whose metadata is waiting on the backend
// save endpoint to exist.
func (t *uploadTracker) logRecordPending(videoID string) {
	properties := analytics.Properties{
		"video_id": videoID,
	}
	t.tracker.Enqueue("video_upload_record_pending", properties)
}

func (t *uploadTracker) wait() {
	t.tracker.Wait()
}
