// Package report assembles workbook metadata into flat report rows.
package report

import (
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/calc"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// Assemble produces one row per (field, using worksheet) of wb, plus one row
// for every field no worksheet uses. Row ids are left at zero.
func Assemble(wb *models.Workbook) []models.OutputRow {
	catalog := calc.NewCatalog(wb.Fields)
	resolver := calc.NewResolver(catalog)
	usage := calc.NewUsage(wb.Worksheets)

	var rows []models.OutputRow
	for _, field := range wb.Fields {
		conn, _ := wb.Connection(field.Connection)
		res := resolver.Resolve(field)

		base := models.OutputRow{
			ColumnName:          field.Name,
			ColumnAlias:         field.Alias,
			FieldType:           field.Kind,
			ConnectionName:      conn.Name,
			ConnectionAlias:     conn.Alias,
			Datatype:            field.Datatype,
			Role:                field.Role,
			CalculationFormula:  res.Formula,
			OriginalCalculation: originalFormula(field, res),
			CalcStatus:          res.Status,
			FileName:            wb.FileName,
		}

		sheets := usage.ForField(field.ID)
		if len(sheets) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, sheet := range sheets {
			row := base
			row.Used = true
			row.WorksheetName = sheet
			rows = append(rows, row)
		}
	}

	return rows
}

// originalFormula is empty whenever the status is No Calculation.
func originalFormula(f models.Field, res calc.Result) string {
	if res.Status == models.StatusNoCalculation {
		return ""
	}
	return f.RawFormula()
}
