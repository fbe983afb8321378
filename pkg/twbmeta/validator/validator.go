// Package validator checks report rows against the report contract.
package validator

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

//go:embed schema.cue
var schemaSource []byte

// Validator validates report rows against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New creates a Validator with the embedded schema.
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// ValidateRows checks every row against the report contract. Row ids are
// not checked; see CheckSequence.
func (v *Validator) ValidateRows(rows []models.OutputRow) error {
	return v.validate("#Report", nonNil(rows))
}

// CheckSequence checks that row ids are contiguous from 1.
func CheckSequence(rows []models.OutputRow) error {
	for i, row := range rows {
		if row.RowID != i+1 {
			return fmt.Errorf("row %d has id %d: ids must be contiguous from 1", i+1, row.RowID)
		}
	}
	return nil
}

// ValidateRow checks a single row.
func (v *Validator) ValidateRow(row models.OutputRow) error {
	return v.validate("#Row", row)
}

// Errors returns every contract violation of rows, or nil.
func (v *Validator) Errors(rows []models.OutputRow) []string {
	err := v.validate("#Report", nonNil(rows))
	if err == nil {
		return nil
	}

	var errs []string
	for _, e := range errors.Errors(err) {
		errs = append(errs, e.Error())
	}
	if len(errs) == 0 {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v *Validator) validate(def string, data interface{}) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling rows to JSON: %w", err)
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling rows as CUE: %w", dataValue.Err())
	}

	definition := v.schema.LookupPath(cue.ParsePath(def))
	if definition.Err() != nil {
		return fmt.Errorf("looking up %s definition: %w", def, definition.Err())
	}

	unified := definition.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("report validation failed: %w", err)
	}
	return nil
}

// nonNil makes an empty table encode as a list rather than null.
func nonNil(rows []models.OutputRow) []models.OutputRow {
	if rows == nil {
		return []models.OutputRow{}
	}
	return rows
}
