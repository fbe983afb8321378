// Package models defines data structures for workbook metadata extraction.
package models

import "fmt"

// FieldKind classifies a field. The zero value is invalid.
type FieldKind int

const (
	_ FieldKind = iota

	// KindDimension is a plain categorical field.
	KindDimension
	// KindMeasure is a plain quantitative field.
	KindMeasure
	// KindCalculated is a field defined by a formula.
	KindCalculated
	// KindTableCalculation is a formula evaluated over the visualized table.
	KindTableCalculation
)

var fieldKindLabels = map[FieldKind]string{
	KindDimension:        "Dimension",
	KindMeasure:          "Measure",
	KindCalculated:       "Calculated Field",
	KindTableCalculation: "Table Calculation",
}

// String returns the report label of the kind.
func (k FieldKind) String() string {
	if label, ok := fieldKindLabels[k]; ok {
		return label
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k FieldKind) Valid() bool {
	_, ok := fieldKindLabels[k]
	return ok
}

// HasFormula reports whether fields of this kind carry a formula.
func (k FieldKind) HasFormula() bool {
	return k == KindCalculated || k == KindTableCalculation
}

// MarshalText encodes the kind as its report label.
func (k FieldKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid field kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// Field represents one data element declared by a workbook datasource.
type Field struct {
	// ID is the identifier of the field, unique within a workbook.
	// Calculations are keyed by the digit run of their internal name.
	ID string `json:"id"`
	// Name is the technical name without enclosing brackets.
	Name string `json:"name"`
	// Alias is the display caption (may be empty).
	Alias string `json:"alias,omitempty"`
	// Kind classifies the field.
	Kind FieldKind `json:"kind"`
	// Datatype is the declared datatype (string, integer, real, date, ...).
	Datatype string `json:"datatype,omitempty"`
	// Role is the declared role (dimension or measure).
	Role string `json:"role,omitempty"`
	// Formula is the raw calculation text. Only meaningful when Kind.HasFormula().
	Formula string `json:"formula,omitempty"`
	// Connection is the ID of the owning connection.
	Connection string `json:"connection,omitempty"`
}

// RawFormula returns the formula when the kind carries one, otherwise "".
func (f Field) RawFormula() string {
	if !f.Kind.HasFormula() {
		return ""
	}
	return f.Formula
}
