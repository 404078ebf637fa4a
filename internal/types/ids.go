// internal/types/ids.go
package types

import "github.com/google/uuid"

type AssetID string
type PreviewID string
type VariationID string
type AttemptID string

func NewAssetID() AssetID {
	return AssetID(uuid.New().String())
}

func NewPreviewID() PreviewID {
	return PreviewID(uuid.New().String())
}

func NewVariationID() VariationID {
	return VariationID(uuid.New().String())
}

func NewAttemptID() AttemptID {
	return AttemptID(uuid.New().String())
}
