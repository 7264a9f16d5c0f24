package model

import "github.com/rotisserie/eris"

// Sentinel errors for the pipeline's failure taxonomy. A provider "not found"
// is deliberately absent: empty results are successful responses, not errors.
var (
	// ErrConfiguration marks a missing credential or equally fatal setup
	// problem. Never degraded, never retried.
	ErrConfiguration = eris.New("configuration error")

	// ErrUpstream marks a provider that was unreachable, timed out, or
	// returned a non-success status. Fatal for discovery; degraded to empty
	// output for intel buckets and enrichment.
	ErrUpstream = eris.New("upstream provider error")

	// ErrParse marks a malformed provider or model response. Lead scoring
	// treats it as the trigger for the deterministic fallback.
	ErrParse = eris.New("parse error")
)
