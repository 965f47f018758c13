package usecase

import (
	"context"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"presupuesto_svc/internal/usecase/interfaces"
)

const defaultTaxonomyCacheTTL = 5 * time.Minute

// canonicalCodePattern matches codes already in the canonical taxonomy format
// (e.g. MOD-ING, GTO-CLOUD). Anything matching is accepted as-is.
var canonicalCodePattern = regexp.MustCompile(`^[A-Z]{2,5}(-[A-Z0-9]{2,6})+$`)

// legacyAliases covers deprecated numeric codes and the human-readable role
// and category names older baselines carried instead of canonical codes.
// Keys are lowercased and trimmed before lookup.
var legacyAliases = map[string]string{
	// deprecated numeric codes
	"1001": "MOD-ING",
	"1002": "MOD-ARQ",
	"1003": "MOD-PM",
	"1004": "MOD-QA",
	"2001": "GTO-CLOUD",
	"2002": "GTO-LIC",
	"2003": "GTO-VIA",
	// role names
	"ingeniero":        "MOD-ING",
	"engineer":         "MOD-ING",
	"senior engineer":  "MOD-ING",
	"desarrollador":    "MOD-ING",
	"developer":        "MOD-ING",
	"arquitecto":       "MOD-ARQ",
	"architect":        "MOD-ARQ",
	"project manager":  "MOD-PM",
	"jefe de proyecto": "MOD-PM",
	"pm":               "MOD-PM",
	"qa":               "MOD-QA",
	"tester":           "MOD-QA",
	"analista qa":      "MOD-QA",
	// category names
	"cloud hosting": "GTO-CLOUD",
	"hosting":       "GTO-CLOUD",
	"cloud":         "GTO-CLOUD",
	"licencias":     "GTO-LIC",
	"licenses":      "GTO-LIC",
	"viajes":        "GTO-VIA",
	"travel":        "GTO-VIA",
}

type taxonomyIndex struct {
	fetchedAt             time.Time
	byCategoryDescription map[string]string
	byDescription         map[string]string
}

// TaxonomyResolver maps arbitrary rubro identifiers (canonical codes, legacy
// codes, role names, free-text categories) onto the canonical taxonomy.
//
// The index cache is process-wide mutable state with time-based invalidation;
// rebuilding it is side-effect-free, so racing rebuilds are harmless. A scan
// failure degrades to the previous (or empty) index plus a warning — a missing
// taxonomy must never fail a materialization, only widen the UNMAPPED set.

type TaxonomyResolver struct {
	repo interfaces.ITaxonomyRepository
	ttl  time.Duration
	now  func() time.Time

	mu    sync.RWMutex
	index taxonomyIndex
}

func NewTaxonomyResolver(repo interfaces.ITaxonomyRepository) *TaxonomyResolver {
	return &TaxonomyResolver{repo: repo, ttl: defaultTaxonomyCacheTTL, now: time.Now}
}

// NewTaxonomyResolverWithClock lets tests pin TTL behavior deterministically.
func NewTaxonomyResolverWithClock(repo interfaces.ITaxonomyRepository, ttl time.Duration, now func() time.Time) *TaxonomyResolver {
	return &TaxonomyResolver{repo: repo, ttl: ttl, now: now}
}

// Resolve maps an identifier to a canonical code. Priority order: already
// canonical, legacy alias, category+description match, description-only match.
// ok=false means unmapped; callers substitute a sentinel, never fail.
func (r *TaxonomyResolver) Resolve(ctx context.Context, explicitID, category, description string) (string, bool) {
	if id := strings.TrimSpace(explicitID); id != "" {
		if canonicalCodePattern.MatchString(id) {
			return id, true
		}
		if code, ok := legacyAliases[strings.ToLower(id)]; ok {
			return code, true
		}
	}

	idx := r.currentIndex(ctx)
	cat := strings.ToLower(strings.TrimSpace(category))
	desc := strings.ToLower(strings.TrimSpace(description))
	if cat != "" && desc != "" {
		if code, ok := idx.byCategoryDescription[cat+"|"+desc]; ok {
			return code, true
		}
	}
	if desc != "" {
		if code, ok := legacyAliases[desc]; ok {
			return code, true
		}
		if code, ok := idx.byDescription[desc]; ok {
			return code, true
		}
	}
	if cat != "" {
		if code, ok := legacyAliases[cat]; ok {
			return code, true
		}
	}
	return "", false
}

func (r *TaxonomyResolver) currentIndex(ctx context.Context) taxonomyIndex {
	r.mu.RLock()
	idx := r.index
	r.mu.RUnlock()
	if !idx.fetchedAt.IsZero() && r.now().Sub(idx.fetchedAt) < r.ttl {
		return idx
	}
	return r.rebuild(ctx, idx)
}

func (r *TaxonomyResolver) rebuild(ctx context.Context, stale taxonomyIndex) taxonomyIndex {
	entries, err := r.repo.ScanActive(ctx)
	if err != nil {
		log.Printf("[materializer][taxonomy] scan failed, keeping stale index (entries=%d) err=%v",
			len(stale.byDescription), err)
		// Stamp the stale index so a flapping store does not trigger a scan
		// per lookup.
		stale.fetchedAt = r.now()
		r.mu.Lock()
		r.index = stale
		r.mu.Unlock()
		return stale
	}

	idx := taxonomyIndex{
		fetchedAt:             r.now(),
		byCategoryDescription: make(map[string]string, len(entries)),
		byDescription:         make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		cat := strings.ToLower(strings.TrimSpace(e.Categoria))
		desc := strings.ToLower(strings.TrimSpace(e.Descripcion))
		if desc == "" {
			continue
		}
		if cat != "" {
			idx.byCategoryDescription[cat+"|"+desc] = e.Codigo
		}
		idx.byDescription[desc] = e.Codigo
	}
	log.Printf("[materializer][taxonomy] index rebuilt entries=%d", len(entries))

	r.mu.Lock()
	r.index = idx
	r.mu.Unlock()
	return idx
}
