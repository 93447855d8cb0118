package bundled

import (
	"reflect"
	"strconv"

	"github.com/viant/attrly"
)

var stringType = reflect.TypeOf("")

// StringConverter converts between string and String attribute values;
// Number and Bool variants decode to their textual payload.
type StringConverter struct {
	visitor *attrly.TypeVisitor
}

// NewStringConverter creates a string converter.
func NewStringConverter() *StringConverter {
	ret := &StringConverter{}
	ret.visitor = attrly.NewTypeVisitor(stringType,
		attrly.OnString(func(value string) (interface{}, error) {
			return value, nil
		}),
		attrly.OnNumber(func(value string) (interface{}, error) {
			return value, nil
		}),
		attrly.OnBool(func(value bool) (interface{}, error) {
			return strconv.FormatBool(value), nil
		}),
	)
	return ret
}

func (c *StringConverter) Type() reflect.Type {
	return stringType
}

func (c *StringConverter) ToAttributeValue(value interface{}, ctx *attrly.Context) (*attrly.AttributeValue, error) {
	typed, ok := value.(string)
	if !ok {
		return nil, &attrly.ValidationError{Value: value, Constraint: "expected string"}
	}
	return attrly.FromString(typed), nil
}

func (c *StringConverter) FromAttributeValue(value *attrly.AttributeValue, ctx *attrly.Context) (interface{}, error) {
	return value.Convert(c.visitor)
}
