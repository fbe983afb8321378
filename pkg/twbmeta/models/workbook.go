package models

// Workbook represents the parsed object graph of one workbook document.
type Workbook struct {
	// FileName is the source file name (no path).
	FileName string `json:"file_name"`
	// Fields lists fields in document order.
	Fields []Field `json:"fields"`
	// Connections lists datasources in document order.
	Connections []Connection `json:"connections"`
	// Worksheets lists worksheets in document order.
	Worksheets []Worksheet `json:"worksheets"`
}

// Connection returns the connection with the given ID.
func (w *Workbook) Connection(id string) (Connection, bool) {
	for _, c := range w.Connections {
		if c.ID == id {
			return c, true
		}
	}
	return Connection{}, false
}
