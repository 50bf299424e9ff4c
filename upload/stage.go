package upload

import "fmt"

// Stage names the pipeline step that produced a failure.
type Stage string

const (
	// StageProvision is the CDN slot creation.
	StageProvision Stage = "provision"
	// StageAuthorize is the backend credential minting.
	StageAuthorize Stage = "authorize"
	// StageTransfer is the resumable byte transfer.
	StageTransfer Stage = "transfer"
	// StageFinalize is the CDN metadata update after a finished transfer.
	StageFinalize Stage = "finalize"
	// StageRecord is the application backend persistence.
	StageRecord Stage = "record"
)

// StageError tags a failure with the stage it came from, so the UI can say
// more than "upload failed". The original error stays reachable through
// Unwrap for errors.Is/errors.As classification.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.UserMessage(), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// UserMessage is the user-facing failure category for the stage.
func (e *StageError) UserMessage() string {
	switch e.Stage {
	case StageProvision:
		return "could not prepare upload"
	case StageAuthorize:
		return "upload authorization denied"
	case StageTransfer:
		return "upload interrupted"
	case StageFinalize, StageRecord:
		return "upload succeeded but finishing touches failed"
	default:
		return "upload failed"
	}
}
