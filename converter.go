package attrly

import (
	"reflect"
	"strings"
)

// Converter translates between one domain type and AttributeValue. Converters
// are stateless after construction and safe for unsynchronized concurrent
// use; obtain them via their NewXxx factories.
type Converter interface {
	//Type returns the domain type this converter serves; registries key on
	//it, conversions never branch on it.
	Type() reflect.Type

	//ToAttributeValue converts a domain value to its wire representation;
	//domain values the wire format cannot hold fail with ValidationError.
	ToAttributeValue(value interface{}, ctx *Context) (*AttributeValue, error)

	//FromAttributeValue converts a wire value back to the domain type. It may
	//accept more than one variant but applies the same validation as
	//ToAttributeValue before returning.
	FromAttributeValue(value *AttributeValue, ctx *Context) (interface{}, error)
}

// Context carries per-call diagnostic metadata such as the attribute name and
// nesting path. It is immutable; derive nested contexts with WithChild. A nil
// Context is valid.
type Context struct {
	attribute string
	path      []string
}

// NewContext creates a conversion context for the named attribute.
func NewContext(attribute string) *Context {
	return &Context{attribute: attribute, path: []string{attribute}}
}

// Attribute returns the attribute name or "" for a nil context.
func (c *Context) Attribute() string {
	if c == nil {
		return ""
	}
	return c.attribute
}

// Path returns the dotted nesting path or "" for a nil context.
func (c *Context) Path() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.path, ".")
}

// WithChild derives a context one nesting level deeper.
func (c *Context) WithChild(name string) *Context {
	if c == nil {
		return NewContext(name)
	}
	path := make([]string, 0, len(c.path)+1)
	path = append(path, c.path...)
	path = append(path, name)
	return &Context{attribute: c.attribute, path: path}
}
