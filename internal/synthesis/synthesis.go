// internal/synthesis/synthesis.go

// Package synthesis turns a validated draft into a new asset. Synthesis is
// deterministic given the draft content, except that every call mints fresh
// identities: regenerating from an identical draft yields a distinct asset,
// so history is never silently collapsed.
package synthesis

import (
	"errors"
	"strings"
	"time"

	"github.com/user/brandforge/internal/suggest"
	"github.com/user/brandforge/internal/types"
)

var (
	// ErrMissingAssetType is returned when the draft has no asset type. The
	// pipeline validates first, so reaching this indicates a caller bug.
	ErrMissingAssetType = errors.New("synthesis: draft has no asset type")
	// ErrEmptyMessage is returned when the trimmed draft message is empty.
	ErrEmptyMessage = errors.New("synthesis: draft message is empty")
)

// Synthesize builds a new asset from the draft: one preview per context
// relevant to the asset type, the trimmed original message as the first
// variation, and, when an image is attached, caption suggestions as further
// variations. The result holds no reference back to the draft.
func Synthesize(draft types.Draft) (*types.Asset, error) {
	if !draft.AssetType.Valid() {
		return nil, ErrMissingAssetType
	}
	message := strings.TrimSpace(draft.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	contexts := ContextsFor(draft.AssetType)
	previews := make([]types.Preview, 0, len(contexts))
	for _, c := range contexts {
		previews = append(previews, types.Preview{ID: types.NewPreviewID(), Context: c})
	}

	variations := []types.Variation{{ID: types.NewVariationID(), Message: message}}
	if draft.ImageURI != "" {
		seen := map[string]bool{message: true}
		for _, s := range suggest.Suggestions(draft.ImageURI, draft.AssetType, draft.Tone) {
			if seen[s] {
				continue
			}
			seen[s] = true
			variations = append(variations, types.Variation{ID: types.NewVariationID(), Message: s})
		}
	}

	return &types.Asset{
		ID:               types.NewAssetID(),
		AssetType:        draft.AssetType,
		Message:          message,
		ImageURI:         draft.ImageURI,
		Previews:         previews,
		Variations:       variations,
		LastPreviewIndex: 0,
		Status:           types.StatusSaved,
		CreatedAt:        time.Now(),
	}, nil
}
