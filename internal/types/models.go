// internal/types/models.go
package types

import (
	"fmt"
	"time"
)

// AssetType identifies the kind of brand asset a draft describes.
type AssetType string

const (
	AssetTypeInstagramPost  AssetType = "instagram_post"
	AssetTypeInstagramStory AssetType = "instagram_story"
	AssetTypeLinkedInBanner AssetType = "linkedin_banner"
	AssetTypeLogoVariation  AssetType = "logo_variation"
)

// ParseAssetType maps a wire name to an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown asset type: %q", s)
	}
	return t, nil
}

// Valid reports whether t is one of the known asset types. The zero value
// means "not chosen yet" and is not valid.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeInstagramPost, AssetTypeInstagramStory, AssetTypeLinkedInBanner, AssetTypeLogoVariation:
		return true
	}
	return false
}

// Tone adjusts the voice of suggested captions.
type Tone string

const (
	ToneNeutral   Tone = "neutral"
	ToneConfident Tone = "confident"
	ToneFriendly  Tone = "friendly"
)

// ParseTone maps a wire name to a Tone. The empty string parses to ToneNeutral.
func ParseTone(s string) (Tone, error) {
	if s == "" {
		return ToneNeutral, nil
	}
	t := Tone(s)
	switch t {
	case ToneNeutral, ToneConfident, ToneFriendly:
		return t, nil
	}
	return "", fmt.Errorf("unknown tone: %q", s)
}

// PreviewContext names a placement a preview is rendered for.
type PreviewContext string

const (
	ContextInstagramFeed  PreviewContext = "instagram_feed"
	ContextInstagramStory PreviewContext = "instagram_story"
	ContextBusinessCard   PreviewContext = "business_card"
	ContextWebsiteHero    PreviewContext = "website_hero"
)

// AssetStatus tracks the one-way Saved -> Published transition.
type AssetStatus string

const (
	StatusSaved     AssetStatus = "saved"
	StatusPublished AssetStatus = "published"
)

// Draft holds the in-progress creation parameters. It is a value type; the
// pipeline works on a snapshot so later edits cannot affect an attempt already
// under way. A zero AssetType means none chosen; an empty ImageURI means no
// photo attached.
type Draft struct {
	AssetType AssetType `json:"asset_type,omitempty"`
	Message   string    `json:"message"`
	Tone      Tone      `json:"tone"`
	ImageURI  string    `json:"image_uri,omitempty"`
}

// Preview is one context-specific rendering placeholder owned by its Asset.
type Preview struct {
	ID      PreviewID      `json:"id"`
	Context PreviewContext `json:"context"`
}

// Variation is one alternate caption owned by its Asset.
type Variation struct {
	ID      VariationID `json:"id"`
	Message string      `json:"message"`
}

// Asset is the artifact produced by one successful generation. Identity and
// content are fixed at synthesis time; only the view fields
// (SelectedVariationID, LastPreviewIndex) and Status change afterwards, and
// only through the library.
type Asset struct {
	ID                  AssetID     `json:"id"`
	AssetType           AssetType   `json:"asset_type"`
	Message             string      `json:"message"`
	ImageURI            string      `json:"image_uri,omitempty"`
	Previews            []Preview   `json:"previews"`
	Variations          []Variation `json:"variations"`
	SelectedVariationID VariationID `json:"selected_variation_id,omitempty"`
	LastPreviewIndex    int         `json:"last_preview_index"`
	Status              AssetStatus `json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
}

// SelectedCaption returns the message of the selected variation, or the
// original message when no variation is selected.
func (a *Asset) SelectedCaption() string {
	if a.SelectedVariationID == "" {
		return a.Message
	}
	for _, v := range a.Variations {
		if v.ID == a.SelectedVariationID {
			return v.Message
		}
	}
	return a.Message
}

// HasVariation reports whether id names one of the asset's variations.
func (a *Asset) HasVariation(id VariationID) bool {
	for _, v := range a.Variations {
		if v.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The library mutates copies and swaps them in, so
// two readers never observe a half-updated record.
func (a *Asset) Clone() *Asset {
	c := *a
	c.Previews = make([]Preview, len(a.Previews))
	copy(c.Previews, a.Previews)
	c.Variations = make([]Variation, len(a.Variations))
	copy(c.Variations, a.Variations)
	return &c
}
