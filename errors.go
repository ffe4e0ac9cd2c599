package rawsite

import "errors"

// Failure categories for the build pipeline. Everything here is non-fatal to
// a full rebuild: a missing template or unwritable output aborts the one page
// or index being generated, and the orchestrator carries on with the rest.
var (
	// ErrTemplateMissing marks a structural template that is absent or unreadable.
	ErrTemplateMissing = errors.New("template missing")

	// ErrUnresolvablePath marks a content root or sub-path that cannot be canonicalized.
	ErrUnresolvablePath = errors.New("unresolvable path")

	// ErrParseSkip marks a fragment that could not be read; it is skipped and
	// the pass continues.
	ErrParseSkip = errors.New("fragment skipped")

	// ErrWriteFailure marks an output file that could not be written.
	ErrWriteFailure = errors.New("write failure")
)
