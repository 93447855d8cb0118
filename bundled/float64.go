package bundled

import (
	"reflect"
	"strconv"

	"github.com/viant/attrly"
)

var float64Type = reflect.TypeOf(float64(0))

// Float64Converter converts between float64 and Number attribute values.
// NaN and infinities have no wire representation and fail with
// ValidationError in both directions.
type Float64Converter struct {
	visitor *attrly.TypeVisitor
}

// NewFloat64Converter creates a float64 converter.
func NewFloat64Converter() *Float64Converter {
	ret := &Float64Converter{}
	ret.visitor = attrly.NewTypeVisitor(float64Type,
		attrly.OnNumber(parseFloat64),
		attrly.OnString(parseFloat64),
	)
	return ret
}

func (c *Float64Converter) Type() reflect.Type {
	return float64Type
}

func (c *Float64Converter) ToAttributeValue(value interface{}, ctx *attrly.Context) (*attrly.AttributeValue, error) {
	typed, ok := value.(float64)
	if !ok {
		return nil, &attrly.ValidationError{Value: value, Constraint: "expected float64"}
	}
	if err := attrly.ValidateFloat64(typed); err != nil {
		return nil, err
	}
	return attrly.FromNumber(strconv.FormatFloat(typed, 'g', -1, 64))
}

func (c *Float64Converter) FromAttributeValue(value *attrly.AttributeValue, ctx *attrly.Context) (interface{}, error) {
	return value.Convert(c.visitor)
}

func parseFloat64(text string) (interface{}, error) {
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a number"}
	}
	if err := attrly.ValidateFloat64(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}
