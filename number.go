package attrly

import (
	"github.com/cockroachdb/apd/v3"
)

// validateNumber checks that text is a finite base-10 numeral; the wire format
// stores numbers as decimal text and has no representation for NaN or
// infinities.
func validateNumber(text string) error {
	if text == "" {
		return &FormatError{Text: text, Reason: "number payload was empty"}
	}
	var decimal apd.Decimal
	if _, _, err := decimal.SetString(text); err != nil {
		return &FormatError{Text: text, Reason: "not a valid decimal numeral"}
	}
	if decimal.Form != apd.Finite {
		return &FormatError{Text: text, Reason: "number payload has to be finite"}
	}
	return nil
}

// numberEqual compares two numeral payloads numerically, so "1" and "1.0"
// are equal even though their texts differ.
func numberEqual(left, right string) bool {
	var a, b apd.Decimal
	if _, _, err := a.SetString(left); err != nil {
		return left == right
	}
	if _, _, err := b.SetString(right); err != nil {
		return left == right
	}
	return a.Cmp(&b) == 0
}
