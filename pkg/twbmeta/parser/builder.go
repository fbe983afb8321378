package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

const calculationPrefix = "Calculation_"

// builder accumulates a workbook while the document is streamed.
type builder struct {
	wb *models.Workbook
	// byName maps datasource -> unbracketed column name -> field ID.
	byName map[string]map[string]string
	// byDatasource maps datasource -> field key -> first field ID with that key.
	byDatasource map[string]map[string]string
	// byKey maps a field key to the first field ID registered for it.
	byKey     map[string]string
	ids       map[string]bool
	worksheet []worksheetRefs
}

func newBuilder(fileName string) *builder {
	return &builder{
		wb:           &models.Workbook{FileName: fileName},
		byName:       make(map[string]map[string]string),
		byDatasource: make(map[string]map[string]string),
		byKey:        make(map[string]string),
		ids:          make(map[string]bool),
	}
}

func (b *builder) addDatasource(ds xmlDatasource) {
	b.wb.Connections = append(b.wb.Connections, connectionOf(ds))

	for _, col := range ds.Columns {
		if col.Name == "" {
			continue
		}
		name := unbracket(col.Name)
		if _, dup := b.byName[ds.Name][name]; dup {
			continue
		}

		field := models.Field{
			ID:         b.assignID(ds.Name, name, fieldKey(col.Name)),
			Name:       name,
			Alias:      col.Caption,
			Kind:       kindOf(col),
			Datatype:   col.Datatype,
			Role:       col.Role,
			Connection: ds.Name,
		}
		if col.Calculation != nil {
			field.Formula = col.Calculation.Formula
		}
		b.wb.Fields = append(b.wb.Fields, field)
	}
}

// assignID registers the column name and key for datasource and returns a
// workbook-unique ID. The first column declaring a key owns it unqualified;
// later ones are qualified with their datasource, as are distinct names
// sharing a key such as [2019] and [Calculation_2019].
func (b *builder) assignID(datasource, name, key string) string {
	id := key
	if b.ids[id] {
		id = datasource + "/" + key
	}
	for n := 2; b.ids[id]; n++ {
		id = fmt.Sprintf("%s/%s#%d", datasource, key, n)
	}
	b.ids[id] = true

	if b.byName[datasource] == nil {
		b.byName[datasource] = make(map[string]string)
		b.byDatasource[datasource] = make(map[string]string)
	}
	b.byName[datasource][name] = id
	if _, ok := b.byDatasource[datasource][key]; !ok {
		b.byDatasource[datasource][key] = id
	}
	if _, ok := b.byKey[key]; !ok {
		b.byKey[key] = id
	}
	return id
}

func (b *builder) addWorksheet(ws worksheetRefs) {
	b.worksheet = append(b.worksheet, ws)
}

// resolve maps a worksheet mention to a field ID, preferring the exact
// column of the mentioned datasource.
func (b *builder) resolve(ref fieldRef) (string, bool) {
	if id, ok := b.byName[ref.datasource][ref.name]; ok {
		return id, true
	}
	if id, ok := b.byDatasource[ref.datasource][ref.key]; ok {
		return id, true
	}
	id, ok := b.byKey[ref.key]
	return id, ok
}

// workbook resolves worksheet mentions and returns the finished workbook.
func (b *builder) workbook() *models.Workbook {
	for _, ws := range b.worksheet {
		sheet := models.Worksheet{Name: ws.name}
		seen := make(map[string]bool)
		for _, ref := range ws.refs {
			id, ok := b.resolve(ref)
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			sheet.FieldIDs = append(sheet.FieldIDs, id)
		}
		b.wb.Worksheets = append(b.wb.Worksheets, sheet)
	}
	b.worksheet = nil
	return b.wb
}

// fieldKey returns the catalog key of a column name: the digit run of
// [Calculation_<digits>], otherwise the name without brackets.
func fieldKey(name string) string {
	n := unbracket(name)
	if digits, ok := strings.CutPrefix(n, calculationPrefix); ok && isDigits(digits) {
		return digits
	}
	return n
}

func unbracket(name string) string {
	if len(name) >= 2 && name[0] == '[' && name[len(name)-1] == ']' {
		return name[1 : len(name)-1]
	}
	return name
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
