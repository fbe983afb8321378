package calc

import "github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"

// Catalog indexes a workbook's fields by ID. It is read-only after construction.
type Catalog struct {
	fields map[string]models.Field
}

// NewCatalog builds a catalog from fields. When IDs collide the first field wins.
func NewCatalog(fields []models.Field) *Catalog {
	c := &Catalog{fields: make(map[string]models.Field, len(fields))}
	for _, f := range fields {
		if _, ok := c.fields[f.ID]; ok {
			continue
		}
		c.fields[f.ID] = f
	}
	return c
}

// Lookup returns the field with the given ID.
func (c *Catalog) Lookup(id string) (models.Field, bool) {
	f, ok := c.fields[id]
	return f, ok
}

// Len returns the number of indexed fields.
func (c *Catalog) Len() int {
	return len(c.fields)
}

// DisplayName returns the alias of f, or its technical name when the alias is empty.
func DisplayName(f models.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}
