package bundled

import (
	"reflect"
	"strconv"

	"github.com/viant/attrly"
)

var boolType = reflect.TypeOf(true)

// BoolConverter converts between bool and Bool attribute values. Stores that
// predate a native boolean often hold Number 0/1 or textual flags; those
// decode as well.
type BoolConverter struct {
	visitor *attrly.TypeVisitor
}

// NewBoolConverter creates a bool converter.
func NewBoolConverter() *BoolConverter {
	ret := &BoolConverter{}
	ret.visitor = attrly.NewTypeVisitor(boolType,
		attrly.OnBool(func(value bool) (interface{}, error) {
			return value, nil
		}),
		attrly.OnString(parseBool),
		attrly.OnNumber(parseBoolNumber),
	)
	return ret
}

func (c *BoolConverter) Type() reflect.Type {
	return boolType
}

func (c *BoolConverter) ToAttributeValue(value interface{}, ctx *attrly.Context) (*attrly.AttributeValue, error) {
	typed, ok := value.(bool)
	if !ok {
		return nil, &attrly.ValidationError{Value: value, Constraint: "expected bool"}
	}
	return attrly.FromBool(typed), nil
}

func (c *BoolConverter) FromAttributeValue(value *attrly.AttributeValue, ctx *attrly.Context) (interface{}, error) {
	return value.Convert(c.visitor)
}

func parseBool(text string) (interface{}, error) {
	parsed, err := strconv.ParseBool(text)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a boolean"}
	}
	return parsed, nil
}

func parseBoolNumber(text string) (interface{}, error) {
	switch text {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return nil, &attrly.FormatError{Text: text, Reason: "boolean number has to be 0 or 1"}
}
