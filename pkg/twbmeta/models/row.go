package models

import "fmt"

// CalcStatus is the outcome of cleaning a field's formula.
type CalcStatus int

const (
	_ CalcStatus = iota

	// StatusSuccess means every reference was resolved, or there were none.
	StatusSuccess
	// StatusPartiallyResolved means some references were resolved and some were not.
	StatusPartiallyResolved
	// StatusUnresolvedReferences means references exist and none were resolved.
	StatusUnresolvedReferences
	// StatusNoCalculation means the field has no formula.
	StatusNoCalculation
)

var calcStatusLabels = map[CalcStatus]string{
	StatusSuccess:              "Success",
	StatusPartiallyResolved:    "Partially Resolved",
	StatusUnresolvedReferences: "Unresolved References",
	StatusNoCalculation:        "No Calculation",
}

// String returns the report label of the status.
func (s CalcStatus) String() string {
	if label, ok := calcStatusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("CalcStatus(%d)", int(s))
}

// MarshalText encodes the status as its report label.
func (s CalcStatus) MarshalText() ([]byte, error) {
	if _, ok := calcStatusLabels[s]; !ok {
		return nil, fmt.Errorf("invalid calc status %d", int(s))
	}
	return []byte(s.String()), nil
}

// YesNo is a boolean rendered as "Yes" or "No".
type YesNo bool

func (b YesNo) String() string {
	if b {
		return "Yes"
	}
	return "No"
}

// MarshalText encodes the flag as "Yes" or "No".
func (b YesNo) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// OutputRow represents one line of the flattened metadata report.
type OutputRow struct {
	// RowID is the global 1-based row id, zero until aggregated.
	RowID int `json:"row_id"`
	// ColumnName is the technical field name.
	ColumnName string `json:"column_name"`
	// ColumnAlias is the field caption.
	ColumnAlias string `json:"column_alias"`
	// FieldType is the field kind.
	FieldType FieldKind `json:"field_type"`
	// ConnectionName is the name of the owning connection.
	ConnectionName string `json:"connection_name"`
	// ConnectionAlias is the caption of the owning datasource.
	ConnectionAlias string `json:"connection_alias"`
	// Datatype is the declared datatype.
	Datatype string `json:"datatype"`
	// Role is the declared role.
	Role string `json:"role"`
	// CalculationFormula is the cleaned formula.
	CalculationFormula string `json:"calculation_formula"`
	// OriginalCalculation is the raw formula.
	OriginalCalculation string `json:"original_calculation"`
	// CalcStatus is the cleaning outcome.
	CalcStatus CalcStatus `json:"calc_clean_status"`
	// Used reports whether the row describes a worksheet usage.
	Used YesNo `json:"field_used_in_worksheets"`
	// WorksheetName is the using worksheet, empty when unused.
	WorksheetName string `json:"worksheet_name"`
	// FileName is the source workbook file name.
	FileName string `json:"file_name"`
}

// Record returns the row as report cells in column order.
func (r OutputRow) Record() []string {
	return []string{
		fmt.Sprint(r.RowID),
		r.ColumnName,
		r.ColumnAlias,
		r.FieldType.String(),
		r.ConnectionName,
		r.ConnectionAlias,
		r.Datatype,
		r.Role,
		r.CalculationFormula,
		r.OriginalCalculation,
		r.CalcStatus.String(),
		r.Used.String(),
		r.WorksheetName,
		r.FileName,
	}
}

// Columns is the report header in column order.
var Columns = []string{
	"Row Id",
	"Column Name",
	"Column Alias",
	"Field Type",
	"Connection Name",
	"Connection Alias",
	"datatype",
	"role",
	"Calculation Formula",
	"Original Calculation",
	"Calc Clean Status",
	"Field Used in Worksheets",
	"Worksheet Name",
	"File Name",
}
