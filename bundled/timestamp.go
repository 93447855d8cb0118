package bundled

import (
	"reflect"
	"time"

	"github.com/viant/attrly"
	"github.com/viant/attrly/format"
	"github.com/viant/attrly/format/timepattern"
	"github.com/viant/attrly/scalar"
)

var timeType = reflect.TypeOf(time.Time{})

// TimestampConfig configures a composed timestamp converter. Zero values
// select the ISO-8601 millisecond pattern, the UTC zone, the time.Time
// target and the default scalar registry.
type TimestampConfig struct {
	Pattern  string
	TimeZone string
	Target   reflect.Type
	Registry *scalar.Registry
}

// TimestampConverter stores timestamps as formatted String attribute values.
// It layers a compiled pattern formatter over a registry-obtained converter
// between time.Time and the target domain type; both are resolved at
// construction, so a malformed pattern, an unknown zone or a missing
// registry path fails before any conversion call. Round-trip equality holds
// at the pattern's resolution only: a yyyy-MM-dd pattern drops time of day.
type TimestampConverter struct {
	target    reflect.Type
	formatter *timepattern.Formatter
	pair      *scalar.Pair
	visitor   *attrly.TypeVisitor
}

// NewTimestampConverter creates a timestamp converter from the supplied
// configuration.
func NewTimestampConverter(config TimestampConfig) (*TimestampConverter, error) {
	formatter, err := timepattern.Compile(config.Pattern, config.TimeZone)
	if err != nil {
		return nil, err
	}
	target := config.Target
	if target == nil {
		target = timeType
	}
	registry := config.Registry
	if registry == nil {
		registry = scalar.Default()
	}
	pair, err := registry.Lookup(timeType, target)
	if err != nil {
		return nil, err
	}
	ret := &TimestampConverter{target: target, formatter: formatter, pair: pair}
	ret.visitor = attrly.NewTypeVisitor(target, attrly.OnString(ret.parse))
	return ret, nil
}

// NewTimestampConverterText creates a timestamp converter from declarative
// option text, e.g. "pattern=yyyyMMddHHmmssSSS,timeZone=UTC".
func NewTimestampConverterText(encoded string) (*TimestampConverter, error) {
	options, err := format.Parse(encoded)
	if err != nil {
		return nil, err
	}
	return NewTimestampConverter(TimestampConfig{Pattern: options.Pattern, TimeZone: options.TimeZone})
}

func (c *TimestampConverter) Type() reflect.Type {
	return c.target
}

func (c *TimestampConverter) ToAttributeValue(value interface{}, ctx *attrly.Context) (*attrly.AttributeValue, error) {
	if reflect.TypeOf(value) != c.target {
		return nil, &attrly.ValidationError{Value: value, Constraint: "expected " + c.target.String()}
	}
	intermediate, err := c.pair.Inverse(value)
	if err != nil {
		return nil, err
	}
	return attrly.FromString(c.formatter.Format(intermediate.(time.Time))), nil
}

func (c *TimestampConverter) FromAttributeValue(value *attrly.AttributeValue, ctx *attrly.Context) (interface{}, error) {
	return value.Convert(c.visitor)
}

func (c *TimestampConverter) parse(text string) (interface{}, error) {
	instant, err := c.formatter.Parse(text)
	if err != nil {
		return nil, err
	}
	return c.pair.Forward(instant)
}
