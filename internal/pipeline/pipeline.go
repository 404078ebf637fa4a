// internal/pipeline/pipeline.go

// Package pipeline orchestrates generation attempts. One attempt moves
// through Idle -> Validating -> InFlight and settles in exactly one of
// Succeeded, Failed, or Abandoned; late signals for a settled attempt are
// discarded. A weighted semaphore of size one is the single-flight guard:
// re-triggers while an attempt is in flight do nothing.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/user/brandforge/internal/state"
	"github.com/user/brandforge/internal/types"
)

// Phase is the lifecycle state of one generation attempt.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseInFlight   Phase = "in_flight"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
	PhaseAbandoned  Phase = "abandoned"
)

const (
	// DefaultFailSafeTimeout bounds how long an attempt may stay in flight.
	DefaultFailSafeTimeout = 8 * time.Second
	// DefaultSynthesisLatency paces synthesis so a "working" state stays
	// perceptible. Pacing only; correctness does not depend on it.
	DefaultSynthesisLatency = 600 * time.Millisecond
)

// Synthesizer produces an asset from a draft snapshot.
type Synthesizer func(types.Draft) (*types.Asset, error)

// Options tune attempt timing. Zero values select the defaults; a negative
// SynthesisLatency disables pacing entirely.
type Options struct {
	FailSafeTimeout  time.Duration
	SynthesisLatency time.Duration
}

// Pipeline runs generation attempts against a sink and records every phase
// transition in the journal.
type Pipeline struct {
	synthesize Synthesizer
	sink       types.AssetSink
	journal    *state.Journal
	guard      *semaphore.Weighted
	failSafe   time.Duration
	latency    time.Duration
}

// New creates a pipeline that feeds successful attempts into sink.
func New(synthesize Synthesizer, sink types.AssetSink, journal *state.Journal, opts Options) *Pipeline {
	failSafe := opts.FailSafeTimeout
	if failSafe <= 0 {
		failSafe = DefaultFailSafeTimeout
	}
	latency := opts.SynthesisLatency
	if latency == 0 {
		latency = DefaultSynthesisLatency
	}
	if latency < 0 {
		latency = 0
	}
	return &Pipeline{
		synthesize: synthesize,
		sink:       sink,
		journal:    journal,
		guard:      semaphore.NewWeighted(1),
		failSafe:   failSafe,
		latency:    latency,
	}
}

type result struct {
	asset *types.Asset
	err   error
}

// Generate runs one attempt for the given draft snapshot and blocks until it
// settles. On success the asset is inserted into the sink and its id
// returned. Failure modes:
//
//   - ErrAttemptInFlight: another attempt is running; nothing happened.
//   - MissingInputError: the draft cannot generate; the sink is untouched.
//   - ErrGenerationFailed: synthesis errored; the sink is untouched.
//   - ErrGenerationTimedOut: the fail-safe elapsed; the guard is cleared.
//   - ctx.Err(): the caller cancelled; any late result is suppressed and the
//     sink is never mutated.
//
// Every terminal transition releases the guard, so a new attempt may start
// immediately after any outcome.
func (p *Pipeline) Generate(ctx context.Context, draft types.Draft) (types.AssetID, error) {
	if !p.guard.TryAcquire(1) {
		return "", ErrAttemptInFlight
	}
	defer p.guard.Release(1)

	attemptID := types.NewAttemptID()
	p.record(attemptID, PhaseIdle, PhaseValidating, "")

	if !draft.AssetType.Valid() {
		p.record(attemptID, PhaseValidating, PhaseFailed, "missing asset_type")
		return "", &MissingInputError{Field: "asset_type"}
	}
	if strings.TrimSpace(draft.Message) == "" {
		p.record(attemptID, PhaseValidating, PhaseFailed, "missing message")
		return "", &MissingInputError{Field: "message"}
	}
	p.record(attemptID, PhaseValidating, PhaseInFlight, "")

	// The attempt context lets a settled attempt release the synthesis
	// goroutine even when the caller's context lives on.
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan result, 1)
	go p.runSynthesis(attemptCtx, draft, done)

	failSafe := time.NewTimer(p.failSafe)
	defer failSafe.Stop()

	select {
	case res := <-done:
		if err := ctx.Err(); err != nil {
			// Cancellation raced the result in; suppress its effects.
			p.record(attemptID, PhaseInFlight, PhaseAbandoned, "cancelled")
			return "", err
		}
		if res.err != nil {
			p.record(attemptID, PhaseInFlight, PhaseFailed, res.err.Error())
			slog.Warn("generation failed", "attempt_id", string(attemptID), "error", res.err)
			return "", fmt.Errorf("%w: %v", ErrGenerationFailed, res.err)
		}
		p.sink.Insert(res.asset)
		p.record(attemptID, PhaseInFlight, PhaseSucceeded, "")
		slog.Info("generation succeeded",
			"attempt_id", string(attemptID),
			"asset_id", string(res.asset.ID),
			"asset_type", string(res.asset.AssetType),
			"previews", len(res.asset.Previews),
			"variations", len(res.asset.Variations),
		)
		return res.asset.ID, nil

	case <-failSafe.C:
		p.record(attemptID, PhaseInFlight, PhaseAbandoned, "fail-safe elapsed")
		slog.Warn("generation abandoned", "attempt_id", string(attemptID), "timeout", p.failSafe)
		return "", ErrGenerationTimedOut

	case <-ctx.Done():
		p.record(attemptID, PhaseInFlight, PhaseAbandoned, "cancelled")
		return "", ctx.Err()
	}
}

// runSynthesis waits out the pacing latency, then synthesizes and delivers
// the result. The buffered channel means a late result never blocks; the
// select in Generate has already moved on and the value is simply dropped.
func (p *Pipeline) runSynthesis(ctx context.Context, draft types.Draft, done chan<- result) {
	if p.latency > 0 {
		t := time.NewTimer(p.latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return
		}
	}
	asset, err := p.synthesize(draft)
	done <- result{asset: asset, err: err}
}

func (p *Pipeline) record(id types.AttemptID, from, to Phase, reason string) {
	if p.journal == nil {
		return
	}
	p.journal.Append(state.Transition{
		AttemptID: id,
		From:      string(from),
		To:        string(to),
		Reason:    reason,
	})
}
