package calc

import "github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"

// Usage maps field IDs to the worksheets referencing them.
type Usage struct {
	sheets map[string][]string
}

// NewUsage inverts the worksheet to field mapping.
func NewUsage(worksheets []models.Worksheet) *Usage {
	u := &Usage{sheets: make(map[string][]string)}
	seen := make(map[[2]string]bool)
	for _, ws := range worksheets {
		for _, id := range ws.FieldIDs {
			key := [2]string{id, ws.Name}
			if seen[key] {
				continue
			}
			seen[key] = true
			u.sheets[id] = append(u.sheets[id], ws.Name)
		}
	}
	return u
}

// ForField returns worksheet names using the field in first-seen order.
// An unused field yields an empty slice.
func (u *Usage) ForField(id string) []string {
	return u.sheets[id]
}
