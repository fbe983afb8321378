// Package calc resolves internal field references inside calculation formulas.
package calc

import (
	"iter"
	"strings"
)

// Syntax identifies the surface form of a reference.
type Syntax int

const (
	_ Syntax = iota

	// SyntaxCalculation is [Calculation_<digits>].
	SyntaxCalculation
	// SyntaxNumeric is [<digits>].
	SyntaxNumeric
	// SyntaxBrace is @{<digits>}.
	SyntaxBrace
)

func (s Syntax) String() string {
	switch s {
	case SyntaxCalculation:
		return "calculation"
	case SyntaxNumeric:
		return "numeric"
	case SyntaxBrace:
		return "brace"
	default:
		return "unknown"
	}
}

// Reference is a mention of another field inside a formula.
type Reference struct {
	Syntax Syntax
	// Start and End are byte offsets of the matched span, End exclusive.
	Start int
	End   int
	// ID is the identifier body, verbatim.
	ID string
	// Text is the matched span.
	Text string
}

const calculationTag = "Calculation_"

// matcher reports a reference starting at s[i], if any.
type matcher func(s string, i int) (Reference, bool)

// matchers are tried in order at every position.
var matchers = []matcher{
	matchCalculation,
	matchNumeric,
	matchBrace,
}

// References scans formula left to right and yields every reference.
// Each call rescans the formula.
func References(formula string) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		for i := 0; i < len(formula); {
			ref, ok := matchAt(formula, i)
			if !ok {
				i++
				continue
			}
			if !yield(ref) {
				return
			}
			i = ref.End
		}
	}
}

func matchAt(s string, i int) (Reference, bool) {
	for _, m := range matchers {
		if ref, ok := m(s, i); ok {
			return ref, true
		}
	}
	return Reference{}, false
}

func matchCalculation(s string, i int) (Reference, bool) {
	if s[i] != '[' || !strings.HasPrefix(s[i+1:], calculationTag) {
		return Reference{}, false
	}
	return matchDigits(s, i, i+1+len(calculationTag), ']', SyntaxCalculation)
}

func matchNumeric(s string, i int) (Reference, bool) {
	if s[i] != '[' {
		return Reference{}, false
	}
	return matchDigits(s, i, i+1, ']', SyntaxNumeric)
}

func matchBrace(s string, i int) (Reference, bool) {
	if s[i] != '@' || i+1 >= len(s) || s[i+1] != '{' {
		return Reference{}, false
	}
	return matchDigits(s, i, i+2, '}', SyntaxBrace)
}

// matchDigits matches a non-empty digit run at s[from:] followed by closer.
func matchDigits(s string, start, from int, closer byte, syntax Syntax) (Reference, bool) {
	j := from
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == from || j >= len(s) || s[j] != closer {
		return Reference{}, false
	}
	end := j + 1
	return Reference{
		Syntax: syntax,
		Start:  start,
		End:    end,
		ID:     s[from:j],
		Text:   s[start:end],
	}, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
