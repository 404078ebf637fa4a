// Package state provides the engine's in-memory stores: the in-progress
// draft, the recents library, and the attempt journal. All stores are
// session-scoped; nothing here survives a process restart.
package state

import "github.com/user/brandforge/internal/types"

// Compile-time interface compliance checks.
var _ types.AssetSink = (*Library)(nil)
