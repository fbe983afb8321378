package calc

import (
	"strings"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// Result is the outcome of resolving one field's formula.
type Result struct {
	// Formula is the cleaned formula, empty for StatusNoCalculation.
	Formula string
	Status  models.CalcStatus
	// Resolved and Unresolved list the matched references by outcome.
	Resolved   []Reference
	Unresolved []Reference
}

// Resolver rewrites formula references into display names.
// Results are cached per field ID, so a Resolver must not outlive the
// workbook its catalog was built from. It is not safe for concurrent use.
type Resolver struct {
	catalog *Catalog
	cache   map[string]Result
}

// NewResolver creates a resolver over catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
		cache:   make(map[string]Result),
	}
}

// Resolve returns the cleaned formula and status of f.
func (r *Resolver) Resolve(f models.Field) Result {
	if res, ok := r.cache[f.ID]; ok {
		return res
	}
	res := r.resolve(f)
	r.cache[f.ID] = res
	return res
}

func (r *Resolver) resolve(f models.Field) Result {
	formula := f.RawFormula()
	if formula == "" {
		return Result{Status: models.StatusNoCalculation}
	}

	var (
		b    strings.Builder
		res  Result
		last int
	)
	b.Grow(len(formula))
	for ref := range References(formula) {
		target, ok := r.catalog.Lookup(ref.ID)
		if !ok {
			res.Unresolved = append(res.Unresolved, ref)
			continue
		}
		res.Resolved = append(res.Resolved, ref)
		b.WriteString(formula[last:ref.Start])
		b.WriteByte('[')
		b.WriteString(DisplayName(target))
		b.WriteByte(']')
		last = ref.End
	}
	b.WriteString(formula[last:])

	res.Formula = b.String()
	res.Status = status(len(res.Resolved), len(res.Unresolved))
	return res
}

func status(resolved, unresolved int) models.CalcStatus {
	switch {
	case unresolved == 0:
		return models.StatusSuccess
	case resolved == 0:
		return models.StatusUnresolvedReferences
	default:
		return models.StatusPartiallyResolved
	}
}
