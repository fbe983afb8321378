package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// xmlDatasource mirrors workbook > datasources > datasource.
type xmlDatasource struct {
	Name       string         `xml:"name,attr"`
	Caption    string         `xml:"caption,attr"`
	Connection *xmlConnection `xml:"connection"`
	Columns    []xmlColumn    `xml:"column"`
}

type xmlConnection struct {
	Class    string               `xml:"class,attr"`
	Server   string               `xml:"server,attr"`
	Filename string               `xml:"filename,attr"`
	DBName   string               `xml:"dbname,attr"`
	Database string               `xml:"database,attr"`
	Named    []xmlNamedConnection `xml:"named-connections>named-connection"`
}

type xmlNamedConnection struct {
	Name       string        `xml:"name,attr"`
	Caption    string        `xml:"caption,attr"`
	Connection xmlConnection `xml:"connection"`
}

type xmlColumn struct {
	Name        string          `xml:"name,attr"`
	Caption     string          `xml:"caption,attr"`
	Datatype    string          `xml:"datatype,attr"`
	Role        string          `xml:"role,attr"`
	Calculation *xmlCalculation `xml:"calculation"`
}

type xmlCalculation struct {
	Class     string    `xml:"class,attr"`
	Formula   string    `xml:"formula,attr"`
	TableCalc *struct{} `xml:"table-calc"`
}

// federatedClass wraps the real connections of a datasource.
const federatedClass = "federated"

// connectionOf describes the datasource and its underlying connection.
func connectionOf(ds xmlDatasource) models.Connection {
	c := models.Connection{ID: ds.Name, Alias: ds.Caption}
	if ds.Connection == nil {
		return c
	}

	conn := *ds.Connection
	for _, nc := range ds.Connection.Named {
		if nc.Connection.Class != "" && nc.Connection.Class != federatedClass {
			conn = nc.Connection
			break
		}
	}

	c.Class = conn.Class
	c.Name = firstNonEmpty(conn.Server, conn.Filename, conn.DBName, conn.Database)
	return c
}

// tableCalcFunc matches calls to functions evaluated over the visualized table.
var tableCalcFunc = regexp.MustCompile(`(?i)\b(WINDOW_[A-Z]+|RUNNING_[A-Z]+|RANK(_[A-Z]+)?|LOOKUP|PREVIOUS_VALUE|INDEX|FIRST|LAST|SIZE|TOTAL)\s*\(`)

// kindOf classifies a datasource column.
func kindOf(col xmlColumn) models.FieldKind {
	if calc := col.Calculation; calc != nil {
		if calc.TableCalc != nil || tableCalcFunc.MatchString(stripNames(calc.Formula)) {
			return models.KindTableCalculation
		}
		return models.KindCalculated
	}
	if col.Role == "measure" {
		return models.KindMeasure
	}
	return models.KindDimension
}

// stripNames blanks bracketed field names so a field called [Index] does
// not look like a function call.
func stripNames(formula string) string {
	var b strings.Builder
	depth := 0
	for _, r := range formula {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
