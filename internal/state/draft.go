// internal/state/draft.go
package state

import (
	"sync"

	"github.com/user/brandforge/internal/types"
)

// DraftStore holds the single in-progress draft. Each setter replaces exactly
// one field and notifies subscribers synchronously with a snapshot, so derived
// state (e.g. "can generate") stays consistent within the same call. Setters
// perform no validation; validation happens once, at generation start.
type DraftStore struct {
	mu      sync.RWMutex
	draft   types.Draft
	subs    map[int]func(types.Draft)
	nextSub int
}

// NewDraftStore creates a store holding the default draft:
// no asset type, empty message, neutral tone, no image.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		draft: defaultDraft(),
		subs:  make(map[int]func(types.Draft)),
	}
}

func defaultDraft() types.Draft {
	return types.Draft{Tone: types.ToneNeutral}
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the subscription.
func (s *DraftStore) Subscribe(fn func(types.Draft)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current draft.
func (s *DraftStore) Snapshot() types.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// SetAssetType replaces the asset type. The zero value clears the choice.
func (s *DraftStore) SetAssetType(t types.AssetType) {
	s.mutate(func(d *types.Draft) { d.AssetType = t })
}

// SetMessage replaces the message.
func (s *DraftStore) SetMessage(message string) {
	s.mutate(func(d *types.Draft) { d.Message = message })
}

// SetTone replaces the tone.
func (s *DraftStore) SetTone(tone types.Tone) {
	s.mutate(func(d *types.Draft) { d.Tone = tone })
}

// SetImageURI replaces the image reference. The store only keeps the opaque
// reference; it never touches the underlying file.
func (s *DraftStore) SetImageURI(uri string) {
	s.mutate(func(d *types.Draft) { d.ImageURI = uri })
}

// Reset restores all fields to their defaults.
func (s *DraftStore) Reset() {
	s.mutate(func(d *types.Draft) { *d = defaultDraft() })
}

// mutate applies fn under the write lock, then notifies subscribers with the
// resulting snapshot. The store is fully consistent before any subscriber
// runs; subscribers are called outside the lock so they may read back.
func (s *DraftStore) mutate(fn func(*types.Draft)) {
	s.mu.Lock()
	fn(&s.draft)
	snapshot := s.draft
	subs := make([]func(types.Draft), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}
