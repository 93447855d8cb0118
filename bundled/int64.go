package bundled

import (
	"reflect"
	"strconv"

	"github.com/viant/attrly"
)

var int64Type = reflect.TypeOf(int64(0))

// Int64Converter converts between int64 and Number attribute values. Stores
// commonly hold whole numbers either as Number or as digit String; both
// variants decode to the same value.
type Int64Converter struct {
	visitor *attrly.TypeVisitor
}

// NewInt64Converter creates an int64 converter.
func NewInt64Converter() *Int64Converter {
	ret := &Int64Converter{}
	ret.visitor = attrly.NewTypeVisitor(int64Type,
		attrly.OnNumber(parseInt64),
		attrly.OnString(parseInt64),
	)
	return ret
}

func (c *Int64Converter) Type() reflect.Type {
	return int64Type
}

func (c *Int64Converter) ToAttributeValue(value interface{}, ctx *attrly.Context) (*attrly.AttributeValue, error) {
	typed, ok := value.(int64)
	if !ok {
		return nil, &attrly.ValidationError{Value: value, Constraint: "expected int64"}
	}
	return attrly.FromNumber(strconv.FormatInt(typed, 10))
}

func (c *Int64Converter) FromAttributeValue(value *attrly.AttributeValue, ctx *attrly.Context) (interface{}, error) {
	return value.Convert(c.visitor)
}

func parseInt64(text string) (interface{}, error) {
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a 64 bit whole number"}
	}
	return parsed, nil
}
