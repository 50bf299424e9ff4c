package upload

// Phase is the caller-visible state of one upload run.
type Phase string

const (
	// PhaseIdle is the state before Upload is called; it is never emitted.
	PhaseIdle Phase = "idle"
	// PhaseAuthorizing covers slot provisioning and credential minting.
	PhaseAuthorizing Phase = "authorizing"
	// PhaseUploading covers the resumable byte transfer.
	PhaseUploading Phase = "uploading"
	// PhaseComplete means the video is transferred, finalized and recorded.
	PhaseComplete Phase = "complete"
	// PhaseError is terminal and reachable from any non-idle phase.
	PhaseError Phase = "error"
	// PhaseCanceled means the caller's context was canceled mid-run. The
	// already provisioned CDN slot is left behind; slot garbage collection
	// is the CDN's concern, not this pipeline's.
	PhaseCanceled Phase = "canceled"
)
