// internal/synthesis/contexts.go
package synthesis

import "github.com/user/brandforge/internal/types"

// previewContexts maps each asset type to the ordered placements its previews
// are rendered for. The order is the order previews appear on an asset.
var previewContexts = map[types.AssetType][]types.PreviewContext{
	types.AssetTypeInstagramPost:  {types.ContextInstagramFeed, types.ContextWebsiteHero},
	types.AssetTypeInstagramStory: {types.ContextInstagramStory, types.ContextInstagramFeed},
	types.AssetTypeLinkedInBanner: {types.ContextWebsiteHero, types.ContextBusinessCard},
	types.AssetTypeLogoVariation:  {types.ContextBusinessCard, types.ContextWebsiteHero, types.ContextInstagramFeed},
}

// ContextsFor returns the ordered preview contexts for the asset type.
func ContextsFor(t types.AssetType) []types.PreviewContext {
	contexts := previewContexts[t]
	out := make([]types.PreviewContext, len(contexts))
	copy(out, contexts)
	return out
}
