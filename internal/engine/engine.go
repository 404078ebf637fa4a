// internal/engine/engine.go

// Package engine composes the draft store, generation pipeline, recents
// library, and attempt journal into one explicitly owned container. The
// presentation layer receives an *Engine and never touches package-level
// state.
package engine

import (
	"context"
	"time"

	"github.com/user/brandforge/internal/config"
	"github.com/user/brandforge/internal/pipeline"
	"github.com/user/brandforge/internal/state"
	"github.com/user/brandforge/internal/synthesis"
	"github.com/user/brandforge/internal/types"
)

// Engine owns all engine state for one session.
type Engine struct {
	Draft   *state.DraftStore
	Library *state.Library
	Journal *state.Journal

	pipeline *pipeline.Pipeline
}

// New builds an engine from config. Timing fields of zero fall back to the
// pipeline defaults.
func New(cfg *config.Config) *Engine {
	library := state.NewLibrary()
	journal := state.NewJournal(cfg.Journal.Capacity)

	opts := pipeline.Options{
		FailSafeTimeout:  time.Duration(cfg.Generation.FailSafeTimeoutMS) * time.Millisecond,
		SynthesisLatency: time.Duration(cfg.Generation.SynthesisLatencyMS) * time.Millisecond,
	}

	return &Engine{
		Draft:    state.NewDraftStore(),
		Library:  library,
		Journal:  journal,
		pipeline: pipeline.New(synthesis.Synthesize, library, journal, opts),
	}
}

// GenerateFromDraft snapshots the current draft and runs one generation
// attempt. The draft is read once; edits made while the attempt is in flight
// do not affect it. Cancellation of ctx suppresses all downstream effects.
func (e *Engine) GenerateFromDraft(ctx context.Context) (types.AssetID, error) {
	return e.pipeline.Generate(ctx, e.Draft.Snapshot())
}
