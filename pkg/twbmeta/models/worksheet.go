package models

// Worksheet represents a worksheet and the fields it references.
type Worksheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// FieldIDs lists referenced field IDs in first-seen order, without duplicates.
	FieldIDs []string `json:"field_ids,omitempty"`
}
