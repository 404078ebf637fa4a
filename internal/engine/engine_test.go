// internal/engine/engine_test.go
package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/user/brandforge/internal/config"
	"github.com/user/brandforge/internal/pipeline"
	"github.com/user/brandforge/internal/types"
)

// newTestEngine builds an engine with no pacing latency.
func newTestEngine() *Engine {
	cfg := &config.Config{}
	cfg.Generation.FailSafeTimeoutMS = 2000
	cfg.Generation.SynthesisLatencyMS = -1
	cfg.Journal.Capacity = 64
	return New(cfg)
}

func TestGenerateFromDraftEndToEnd(t *testing.T) {
	eng := newTestEngine()
	eng.Draft.SetAssetType(types.AssetTypeInstagramPost)
	eng.Draft.SetMessage("Grand opening this Saturday")

	id, err := eng.GenerateFromDraft(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	asset, ok := eng.Library.Get(id)
	if !ok {
		t.Fatal("asset not in library")
	}
	if len(asset.Previews) < 1 {
		t.Error("expected at least one preview")
	}
	if len(asset.Variations) != 1 || asset.Variations[0].Message != "Grand opening this Saturday" {
		t.Errorf("variations = %+v", asset.Variations)
	}
	if asset.Status != types.StatusSaved || asset.LastPreviewIndex != 0 {
		t.Errorf("unexpected view state: %+v", asset)
	}
}

func TestGenerateFromDraftMissingMessage(t *testing.T) {
	eng := newTestEngine()
	eng.Draft.SetAssetType(types.AssetTypeInstagramPost)

	_, err := eng.GenerateFromDraft(context.Background())
	var missing *pipeline.MissingInputError
	if !errors.As(err, &missing) || missing.Field != "message" {
		t.Fatalf("expected missing message, got %v", err)
	}
	if eng.Library.Len() != 0 {
		t.Error("recents changed on failed validation")
	}
}

func TestGenerateUsesSnapshotNotLiveDraft(t *testing.T) {
	eng := newTestEngine()
	eng.Draft.SetAssetType(types.AssetTypeInstagramStory)
	eng.Draft.SetMessage("before")

	id, err := eng.GenerateFromDraft(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Editing the draft afterwards must not affect the synthesized asset.
	eng.Draft.SetMessage("after")
	asset, _ := eng.Library.Get(id)
	if asset.Message != "before" {
		t.Errorf("asset message = %q", asset.Message)
	}
}

func TestRegenerateThenPublishFlow(t *testing.T) {
	eng := newTestEngine()
	eng.Draft.SetAssetType(types.AssetTypeLinkedInBanner)
	eng.Draft.SetMessage("We are hiring")

	first, err := eng.GenerateFromDraft(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.GenerateFromDraft(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("regeneration must mint a new asset")
	}
	if eng.Library.SelectedAssetID() != second {
		t.Error("regenerated asset should be selected")
	}

	eng.Library.MarkPublished(second)
	eng.Library.MarkPublished(second)
	asset, _ := eng.Library.Get(second)
	if asset.Status != types.StatusPublished {
		t.Errorf("expected published, got %s", asset.Status)
	}

	// The first asset is untouched by the second's publish.
	older, _ := eng.Library.Get(first)
	if older.Status != types.StatusSaved {
		t.Errorf("expected first asset saved, got %s", older.Status)
	}
}
