package tmdb

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by every call when no API key is set.
var ErrNotConfigured = errors.New("TMDB_API_KEY not configured on server.")

// UpstreamError is a non-2xx answer from TMDb.
type UpstreamError struct {
	StatusCode int
	StatusText string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Upstream TMDb error: %d %s", e.StatusCode, e.StatusText)
}

// countsAsFailure tells the breaker which errors mean TMDb is unhealthy.
// Client errors (bad id, unknown page) say nothing about availability,
// except 429.
func countsAsFailure(err error) bool {
	if err == nil {
		return false
	}
	var gone *callerGoneError
	if errors.As(err, &gone) || errors.Is(err, context.Canceled) {
		return false
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode == 429 || upstream.StatusCode >= 500
	}
	return true
}

// callerGoneError marks a failure caused by the caller's own context
// (disconnect or deadline) rather than by TMDb.
type callerGoneError struct {
	err error
}

func (e *callerGoneError) Error() string { return e.err.Error() }

func (e *callerGoneError) Unwrap() error { return e.err }
