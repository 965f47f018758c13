package interfaces

import "context"

// IBaselineRepository abstracts read access to approved baselines.
//
// GetRawByID returns the stored item as a generic map because historical
// writers persisted baselines flat, wrapped in a payload map, or
// double-wrapped; the normalizer owns untangling that, not the repository.
// A nil map with nil error means "not found".

type IBaselineRepository interface {
	GetRawByID(ctx context.Context, baselineID string) (map[string]interface{}, error)
}
