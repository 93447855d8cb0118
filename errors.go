package attrly

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind sentinels, matchable with errors.Is against any error produced by this module.
var (
	ErrFormat                = errors.New("format error")
	ErrValidation            = errors.New("validation error")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrUnsupportedType       = errors.New("unsupported type")
	ErrConfiguration         = errors.New("configuration error")
)

// FormatError reports a malformed textual payload, such as an unparsable
// number or timestamp text.
type FormatError struct {
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid text %q: %s", e.Text, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// ValidationError reports a value outside the representable range of the wire
// format, such as NaN or an infinity.
type ValidationError struct {
	Value      interface{}
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v: %s", e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnsupportedConversionError reports an attribute value variant a converter
// was not built to accept.
type UnsupportedConversionError struct {
	Source Kind
	Target reflect.Type
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v attribute value to %s", e.Source, e.Target)
}

func (e *UnsupportedConversionError) Unwrap() error {
	return ErrUnsupportedConversion
}

// UnsupportedTypeError reports a missing registry path between an intermediate
// and a target type.
type UnsupportedTypeError struct {
	Intermediate reflect.Type
	Target       reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("no converter between %s and %s", e.Intermediate, e.Target)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// ConfigurationError reports an invalid converter configuration detected at
// construction time.
type ConfigurationError struct {
	Option string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Option, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
