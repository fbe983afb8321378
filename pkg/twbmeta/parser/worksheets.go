package parser

import (
	"encoding/xml"
	"strings"
)

// fieldRef is a worksheet mention of a datasource field.
type fieldRef struct {
	datasource string
	name       string
	key        string
}

// worksheetRefs holds the field mentions of one worksheet in document order.
type worksheetRefs struct {
	name string
	refs []fieldRef
}

func (w *worksheetRefs) add(datasource, name string) {
	if name == "" {
		return
	}
	w.refs = append(w.refs, fieldRef{
		datasource: datasource,
		name:       unbracket(name),
		key:        fieldKey(name),
	})
}

// addQualified adds a [datasource].[derivation:Name:suffix] reference.
func (w *worksheetRefs) addQualified(ref string) {
	datasource, name, ok := splitQualified(ref)
	if !ok {
		return
	}
	w.add(datasource, name)
}

// parseWorksheet collects field mentions from datasource dependencies and
// shelf encodings of a worksheet element.
func parseWorksheet(decoder *xml.Decoder, start xml.StartElement) (worksheetRefs, error) {
	ws := worksheetRefs{name: attr(start, "name")}
	depth := 1
	depsDepth, encDepth := 0, 0
	depsSource := ""

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return ws, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch {
			case t.Name.Local == "datasource-dependencies":
				depsDepth = depth
				depsSource = attr(t, "datasource")
			case depsDepth > 0 && depth == depsDepth+1 && t.Name.Local == "column":
				ws.add(depsSource, attr(t, "name"))
			case depsDepth > 0 && depth == depsDepth+1 && t.Name.Local == "column-instance":
				ws.add(depsSource, attr(t, "column"))
			case t.Name.Local == "encodings":
				encDepth = depth
			case encDepth > 0 && depth > encDepth:
				if col := attr(t, "column"); col != "" {
					ws.addQualified(col)
				}
			}
		case xml.EndElement:
			if depth == depsDepth {
				depsDepth, depsSource = 0, ""
			}
			if depth == encDepth {
				encDepth = 0
			}
			depth--
		}
	}

	return ws, nil
}

// splitQualified splits "[ds].[deriv:Name:suffix]" into ("ds", "Name").
// Generated fields such as [:Measure Names] are rejected.
func splitQualified(ref string) (datasource, name string, ok bool) {
	if !strings.HasPrefix(ref, "[") || !strings.HasSuffix(ref, "]") {
		return "", "", false
	}
	inner := ref
	if idx := strings.Index(ref, "].["); idx >= 0 {
		datasource = ref[1:idx]
		inner = ref[idx+2:]
	}
	inner = unbracket(inner)
	if inner == "" || strings.HasPrefix(inner, ":") {
		return "", "", false
	}

	parts := strings.Split(inner, ":")
	if len(parts) >= 3 {
		inner = strings.Join(parts[1:len(parts)-1], ":")
	}
	return datasource, inner, inner != ""
}
