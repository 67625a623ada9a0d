package model

import "errors"

// The two failure kinds the pipeline distinguishes. Everything else is
// wrapped into one of these before reaching a handler.
var (
	// ErrSourceUnavailable means the upstream search or content API was
	// unreachable or returned a non-success status.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrAnalysisFailed means both the primary and the fallback model
	// failed for a document or chunk.
	ErrAnalysisFailed = errors.New("analysis failed")
)
