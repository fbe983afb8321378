package output

import (
	"encoding/json"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// ToJSON serializes rows to a JSON array. A nil slice encodes as [].
func ToJSON(rows []models.OutputRow, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []models.OutputRow{}
	}
	if pretty {
		return json.MarshalIndent(rows, "", "  ")
	}
	return json.Marshal(rows)
}
