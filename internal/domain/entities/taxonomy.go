package entities

// TaxonomyEntry is one row of the canonical budget-line taxonomy.
//
// Storage model (DynamoDB, taxonomy table):
//   - PK: codigo (e.g. "MOD-ING")
//
// The taxonomy is the authoritative set of codes every rubro must resolve to;
// it changes rarely and is read through a TTL cache.

type TaxonomyEntry struct {
	Codigo      string `json:"codigo"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}
