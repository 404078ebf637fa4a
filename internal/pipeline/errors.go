// internal/pipeline/errors.go
package pipeline

import "errors"

var (
	// ErrAttemptInFlight means a generation is already running for this
	// pipeline. The call did nothing; callers treat it as a no-op rather
	// than a failure.
	ErrAttemptInFlight = errors.New("pipeline: generation already in flight")

	// ErrGenerationFailed wraps a synthesis error. The library is untouched.
	ErrGenerationFailed = errors.New("pipeline: generation failed")

	// ErrGenerationTimedOut means the fail-safe elapsed before synthesis
	// settled. The single-flight guard is already cleared, so a fresh
	// attempt may start immediately.
	ErrGenerationTimedOut = errors.New("pipeline: generation timed out")
)

// MissingInputError reports which draft field blocked generation.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return "pipeline: missing input: " + e.Field
}
