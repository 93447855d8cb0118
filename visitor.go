package attrly

import (
	"reflect"
)

type (
	// TypeVisitor lets a converter accept several attribute value variants
	// for the same target type without branching on variant tags itself.
	// Only the configured variants are accepted; every other variant fails
	// with UnsupportedConversionError naming the source variant and the
	// target type.
	TypeVisitor struct {
		targetType  reflect.Type
		onString    func(value string) (interface{}, error)
		onNumber    func(value string) (interface{}, error)
		onBool      func(value bool) (interface{}, error)
		onNull      func() (interface{}, error)
		onBinary    func(value []byte) (interface{}, error)
		onStringSet func(values []string) (interface{}, error)
		onNumberSet func(values []string) (interface{}, error)
		onBinarySet func(values [][]byte) (interface{}, error)
		onList      func(items []*AttributeValue) (interface{}, error)
		onMap       func(entries map[string]*AttributeValue) (interface{}, error)
	}

	//VisitorOption customizes a TypeVisitor
	VisitorOption func(v *TypeVisitor)
)

// NewTypeVisitor creates a visitor producing targetType values from the
// variants enabled by the supplied options.
func NewTypeVisitor(targetType reflect.Type, opts ...VisitorOption) *TypeVisitor {
	ret := &TypeVisitor{targetType: targetType}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// TargetType returns the type this visitor produces.
func (v *TypeVisitor) TargetType() reflect.Type {
	return v.targetType
}

func OnString(fn func(value string) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onString = fn
	}
}

func OnNumber(fn func(value string) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onNumber = fn
	}
}

func OnBool(fn func(value bool) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onBool = fn
	}
}

func OnNull(fn func() (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onNull = fn
	}
}

func OnBinary(fn func(value []byte) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onBinary = fn
	}
}

func OnStringSet(fn func(values []string) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onStringSet = fn
	}
}

func OnNumberSet(fn func(values []string) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onNumberSet = fn
	}
}

func OnBinarySet(fn func(values [][]byte) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onBinarySet = fn
	}
}

func OnList(fn func(items []*AttributeValue) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onList = fn
	}
}

func OnMap(fn func(entries map[string]*AttributeValue) (interface{}, error)) VisitorOption {
	return func(v *TypeVisitor) {
		v.onMap = fn
	}
}

// ConvertList converts every list item with the supplied visitor, preserving
// order.
func ConvertList(items []*AttributeValue, visitor *TypeVisitor) ([]interface{}, error) {
	ret := make([]interface{}, len(items))
	for i, item := range items {
		converted, err := item.Convert(visitor)
		if err != nil {
			return nil, err
		}
		ret[i] = converted
	}
	return ret, nil
}

// ConvertMap converts every map entry value with the supplied visitor.
func ConvertMap(entries map[string]*AttributeValue, visitor *TypeVisitor) (map[string]interface{}, error) {
	ret := make(map[string]interface{}, len(entries))
	for key, entry := range entries {
		converted, err := entry.Convert(visitor)
		if err != nil {
			return nil, err
		}
		ret[key] = converted
	}
	return ret, nil
}
