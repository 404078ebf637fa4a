// internal/types/interfaces.go
package types

// AssetSink receives successfully synthesized assets. The recents library is
// the only production implementation; the pipeline depends on this interface
// so attempts can be exercised against a fake sink.
type AssetSink interface {
	Insert(asset *Asset)
}
