package model

import "errors"

var (
	// ErrMalformedDocument: the raw bytes are not parseable as a
	// snapshot document (bad JSON or missing the items sequence).
	// Unrecoverable for this invocation; never auto-retried.
	ErrMalformedDocument = errors.New("snapshot document is malformed")

	// ErrEncoding: a row set could not be rendered as CSV. Treated as
	// an invariant violation; never auto-retried.
	ErrEncoding = errors.New("failed to encode rows")

	// ErrPartialWrite: an artifact upload failed. The source document
	// is left at intake untouched; the whole unit of work is retriable.
	ErrPartialWrite = errors.New("artifact write failed")

	// ErrRelocation: all artifacts were written but moving the source
	// document to the done location failed. A retry reprocesses the
	// document; its writes are overwrites, so state converges.
	ErrRelocation = errors.New("document relocation failed")
)
