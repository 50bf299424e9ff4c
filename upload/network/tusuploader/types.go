// Package tusuploader wires resumable video uploads to Bunny Stream's tus
// endpoint. The wire protocol itself (upload creation, offset tracking,
// chunked PATCH requests) belongs to the underlying tus client; this package
// only handles session setup, resume detection, progress translation and
// settling the final outcome.
package tusuploader

import (
	"github.com/eventials/go-tus"

	"github.com/justinlamarr1992/MillennialsPrimeAPP-sub001/upload/network"
)

// Params describe one transfer: where the bytes go and the minted
// credentials scoping the attempt.
type Params struct {
	// EndpointURL is the CDN's tus endpoint ({apiBaseURL}/tusupload).
	EndpointURL string
	// FilePath is the locally picked video file.
	FilePath string
	// Title is stored as tus metadata alongside the file type.
	Title string
	// Authorization is consumed by exactly this one transfer.
	Authorization network.UploadAuthorization
	// Store keeps upload fingerprints so an interrupted transfer can be
	// resumed by a later attempt. Nil falls back to a store scoped to this
	// session only.
	Store tus.Store
}

// PreviousUpload identifies an incomplete upload that can be continued
// instead of restarting from byte zero.
type PreviousUpload struct {
	Fingerprint string
	Offset      int64
	Size        int64
}

// Callbacks receive the underlying engine's signals. OnSuccess and OnError
// are terminal; at most one of them is acted upon per session.
type Callbacks struct {
	OnProgress func(bytesUploaded, bytesTotal int64)
	OnSuccess  func()
	OnError    func(err error)
}

// Session is a single file's transfer against the tus endpoint.
type Session interface {
	// FindPreviousUploads returns incomplete uploads matching this file's
	// fingerprint.
	FindPreviousUploads() ([]PreviousUpload, error)

	// ResumeFromPreviousUpload continues the session from prev instead of
	// starting at byte zero.
	ResumeFromPreviousUpload(prev PreviousUpload) error

	// Start begins (or continues) the transfer and reports through cb. It
	// does not block.
	Start(cb Callbacks)

	// Abort stops an in-flight transfer. Session state is kept so a later
	// attempt can resume.
	Abort() error

	// Close releases the file handle.
	Close() error
}
