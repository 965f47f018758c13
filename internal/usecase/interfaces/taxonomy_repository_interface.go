package interfaces

import (
	"context"

	"presupuesto_svc/internal/domain/entities"
)

// ITaxonomyRepository reads the canonical budget-line taxonomy.
//
// ScanActive returns only entries with activo=true. The resolver caches the
// result; a scan failure is degraded by the caller, not retried here.

type ITaxonomyRepository interface {
	ScanActive(ctx context.Context) ([]entities.TaxonomyEntry, error)
}
