package interfaces

import (
	"context"

	"presupuesto_svc/internal/domain/entities"
)

// IRubroRepository abstracts DynamoDB persistence for materialized rubros.
//
// Batch semantics the implementation must honor:
//   - BatchGetByKeys chunks probes at the store's 100-key ceiling.
//   - BatchPut writes in 25-item batches and retries unprocessed items with
//     bounded exponential backoff, returning an error only when items remain
//     unprocessed after the final attempt.

type IRubroRepository interface {
	QueryByProject(ctx context.Context, projectID string) ([]entities.Rubro, error)
	BatchGetByKeys(ctx context.Context, keys []entities.RubroKey) (map[entities.RubroKey]entities.Rubro, error)
	BatchPut(ctx context.Context, items []entities.Rubro) error
}
