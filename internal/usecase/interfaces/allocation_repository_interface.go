package interfaces

import (
	"context"

	"presupuesto_svc/internal/domain/entities"
)

// IAllocationRepository abstracts DynamoDB persistence for monthly allocations.
//
// Same batch contract as IRubroRepository: 100-key probe chunks, 25-item write
// batches, bounded retry of unprocessed items. The repository never applies
// overwrite policy; that belongs to the usecase writer.

type IAllocationRepository interface {
	QueryByProject(ctx context.Context, projectID, baselineID string) ([]entities.Allocation, error)
	BatchGetByKeys(ctx context.Context, keys []entities.AllocationKey) (map[entities.AllocationKey]entities.Allocation, error)
	BatchPut(ctx context.Context, items []entities.Allocation) error
}
