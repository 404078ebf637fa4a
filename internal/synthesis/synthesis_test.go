// internal/synthesis/synthesis_test.go
package synthesis

import (
	"errors"
	"testing"

	"github.com/user/brandforge/internal/types"
)

func TestSynthesizePreconditions(t *testing.T) {
	_, err := Synthesize(types.Draft{Message: "hi"})
	if !errors.Is(err, ErrMissingAssetType) {
		t.Errorf("expected ErrMissingAssetType, got %v", err)
	}

	_, err = Synthesize(types.Draft{AssetType: types.AssetTypeInstagramPost, Message: "   "})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSynthesizeBasicAsset(t *testing.T) {
	asset, err := Synthesize(types.Draft{
		AssetType: types.AssetTypeInstagramPost,
		Message:   "  Grand opening this Saturday  ",
		Tone:      types.ToneNeutral,
	})
	if err != nil {
		t.Fatal(err)
	}

	if asset.ID == "" {
		t.Error("expected a minted asset id")
	}
	if len(asset.Previews) < 1 {
		t.Error("expected at least one preview")
	}
	if asset.Message != "Grand opening this Saturday" {
		t.Errorf("expected trimmed message, got %q", asset.Message)
	}
	if len(asset.Variations) != 1 || asset.Variations[0].Message != "Grand opening this Saturday" {
		t.Errorf("expected single original-message variation, got %+v", asset.Variations)
	}
	if asset.Status != types.StatusSaved {
		t.Errorf("expected saved status, got %s", asset.Status)
	}
	if asset.LastPreviewIndex != 0 {
		t.Errorf("expected preview index 0, got %d", asset.LastPreviewIndex)
	}
	if asset.SelectedVariationID != "" {
		t.Errorf("expected no variation selected, got %s", asset.SelectedVariationID)
	}
}

func TestSynthesizePreviewsFollowTypeTable(t *testing.T) {
	for _, assetType := range []types.AssetType{
		types.AssetTypeInstagramPost,
		types.AssetTypeInstagramStory,
		types.AssetTypeLinkedInBanner,
		types.AssetTypeLogoVariation,
	} {
		asset, err := Synthesize(types.Draft{AssetType: assetType, Message: "m"})
		if err != nil {
			t.Fatal(err)
		}
		want := ContextsFor(assetType)
		if len(asset.Previews) != len(want) {
			t.Errorf("%s: expected %d previews, got %d", assetType, len(want), len(asset.Previews))
			continue
		}
		for i, p := range asset.Previews {
			if p.Context != want[i] {
				t.Errorf("%s: preview %d context %s, want %s", assetType, i, p.Context, want[i])
			}
			if p.ID == "" {
				t.Errorf("%s: preview %d has no id", assetType, i)
			}
		}
	}
}

func TestSynthesizeFreshIdentity(t *testing.T) {
	draft := types.Draft{AssetType: types.AssetTypeInstagramPost, Message: "same draft"}

	a, err := Synthesize(draft)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(draft)
	if err != nil {
		t.Fatal(err)
	}

	if a.ID == b.ID {
		t.Error("regeneration reused the asset id")
	}
	if a.Previews[0].ID == b.Previews[0].ID {
		t.Error("regeneration reused a preview id")
	}
	if a.Variations[0].ID == b.Variations[0].ID {
		t.Error("regeneration reused a variation id")
	}
}

func TestSynthesizeImageAddsVariations(t *testing.T) {
	asset, err := Synthesize(types.Draft{
		AssetType: types.AssetTypeInstagramStory,
		Message:   "Beach day",
		Tone:      types.ToneConfident,
		ImageURI:  "file:///photos/sunset_beach.jpg",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(asset.Variations) < 2 {
		t.Fatalf("expected suggestion variations, got %d", len(asset.Variations))
	}
	if asset.Variations[0].Message != "Beach day" {
		t.Errorf("first variation must be the original message, got %q", asset.Variations[0].Message)
	}
	if asset.Variations[1].Message != "Sunset Beach!" {
		t.Errorf("expected keyword suggestion second, got %q", asset.Variations[1].Message)
	}

	seen := map[string]bool{}
	for _, v := range asset.Variations {
		if seen[v.Message] {
			t.Errorf("duplicate variation %q", v.Message)
		}
		seen[v.Message] = true
	}
}

func TestSynthesizeGenericImageAddsNothing(t *testing.T) {
	asset, err := Synthesize(types.Draft{
		AssetType: types.AssetTypeInstagramPost,
		Message:   "Opening day",
		ImageURI:  "IMG_0001.jpg",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(asset.Variations) != 1 {
		t.Errorf("expected only the original variation, got %d", len(asset.Variations))
	}
}
