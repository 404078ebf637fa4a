// internal/state/library.go
package state

import (
	"sync"

	"github.com/user/brandforge/internal/types"
)

// Library owns the session's assets: a most-recent-first list plus the current
// selection. It is append-only; assets are never removed within a session.
//
// Stored records are treated as immutable values: a mutation clones the
// record, applies the change, and swaps the clone in, so a reader holding an
// earlier copy never observes a half-updated asset. Operations addressing an
// unknown asset or variation are silent no-ops, matching the selection policy
// everywhere else in the engine.
type Library struct {
	mu       sync.RWMutex
	recents  []*types.Asset
	selected types.AssetID
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{}
}

// Insert prepends the asset and makes it the current selection.
func (l *Library) Insert(asset *types.Asset) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.recents = append([]*types.Asset{asset.Clone()}, l.recents...)
	l.selected = asset.ID
}

// Recents returns copies of all assets, most recent first.
func (l *Library) Recents() []*types.Asset {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*types.Asset, len(l.recents))
	for i, a := range l.recents {
		out[i] = a.Clone()
	}
	return out
}

// Get returns a copy of the asset with the given id.
func (l *Library) Get(id types.AssetID) (*types.Asset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(id); i >= 0 {
		return l.recents[i].Clone(), true
	}
	return nil, false
}

// Len returns the number of assets in the library.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.recents)
}

// SelectedAssetID returns the id of the current selection, or "" when the
// library is empty.
func (l *Library) SelectedAssetID() types.AssetID {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.selected
}

// SelectAsset makes the asset the current selection. Unknown ids are ignored.
func (l *Library) SelectAsset(id types.AssetID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOf(id) >= 0 {
		l.selected = id
	}
}

// SetLastPreviewIndex stores the preview index for the asset, clamped into
// [0, len(previews)-1]. Out-of-range input is clamped, not rejected.
func (l *Library) SetLastPreviewIndex(id types.AssetID, index int) {
	l.update(id, func(a *types.Asset) {
		if index < 0 {
			index = 0
		}
		if upper := len(a.Previews) - 1; index > upper {
			index = upper
		}
		a.LastPreviewIndex = index
	})
}

// SelectVariation sets the asset's selected variation. The zero VariationID
// clears the selection back to the original message. An id that names none of
// the asset's variations leaves the selection untouched.
func (l *Library) SelectVariation(id types.AssetID, variationID types.VariationID) {
	l.update(id, func(a *types.Asset) {
		if variationID != "" && !a.HasVariation(variationID) {
			return
		}
		a.SelectedVariationID = variationID
	})
}

// MarkPublished transitions the asset from Saved to Published. Publishing an
// already published asset is a no-op; status never regresses.
func (l *Library) MarkPublished(id types.AssetID) {
	l.update(id, func(a *types.Asset) {
		a.Status = types.StatusPublished
	})
}

// update clones the addressed record, applies fn, and swaps the clone in.
// Unknown ids are ignored.
func (l *Library) update(id types.AssetID, fn func(*types.Asset)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return
	}
	next := l.recents[i].Clone()
	fn(next)
	l.recents[i] = next
}

// indexOf returns the position of id in recents, or -1. Caller must hold a lock.
func (l *Library) indexOf(id types.AssetID) int {
	for i, a := range l.recents {
		if a.ID == id {
			return i
		}
	}
	return -1
}
