package errors

import (
	"errors"
	"fmt"
)

// Application-specific errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrTimeout             = errors.New("operation timeout")
	ErrMalformedOutput     = errors.New("malformed upstream output")
	ErrScraperNotFound     = errors.New("scraper executable not found")
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// SourceError wraps a failure from one evidence source. Per-source failures
// are isolated: callers map them to a degraded finding plus a SourceStatus,
// never to a failed request.
type SourceError struct {
	Source string
	Stage  string
	Err    error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("source error in %s at stage %s: %v", e.Source, e.Stage, e.Err)
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// Reason returns a short human-readable reason for a source failure, used in
// degraded finding summaries.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrScraperNotFound):
		return "scraper not installed"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrMalformedOutput):
		return "no valid output"
	case errors.Is(err, ErrRateLimited):
		return "rate limited"
	default:
		return err.Error()
	}
}
