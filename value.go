package attrly

import (
	"fmt"
	"strings"
)

// Kind identifies the active variant of an AttributeValue.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindBinary
	KindStringSet
	KindNumberSet
	KindBinarySet
	KindList
	KindMap
)

var kindNames = map[Kind]string{
	KindNull:      "Null",
	KindString:    "String",
	KindNumber:    "Number",
	KindBool:      "Bool",
	KindBinary:    "Binary",
	KindStringSet: "StringSet",
	KindNumberSet: "NumberSet",
	KindBinarySet: "BinarySet",
	KindList:      "List",
	KindMap:       "Map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AttributeValue is the wire-level tagged union exchanged with the store.
// Exactly one variant is active per instance; instances are immutable once
// constructed and safe for unsynchronized concurrent use.
type AttributeValue struct {
	kind    Kind
	text    string //String and Number payload
	flag    bool
	binary  []byte
	texts   []string //StringSet and NumberSet payload
	blobs   [][]byte
	items   []*AttributeValue
	entries map[string]*AttributeValue
}

// FromString creates a String attribute value.
func FromString(value string) *AttributeValue {
	return &AttributeValue{kind: KindString, text: value}
}

// FromNumber creates a Number attribute value; the payload has to be a valid
// base-10 numeral (optionally signed, fractional or exponential).
func FromNumber(text string) (*AttributeValue, error) {
	if err := validateNumber(text); err != nil {
		return nil, err
	}
	return &AttributeValue{kind: KindNumber, text: text}, nil
}

// FromBool creates a Bool attribute value.
func FromBool(value bool) *AttributeValue {
	return &AttributeValue{kind: KindBool, flag: value}
}

// FromNull creates a Null attribute value.
func FromNull() *AttributeValue {
	return &AttributeValue{kind: KindNull}
}

// FromBinary creates a Binary attribute value; the payload is copied.
func FromBinary(value []byte) (*AttributeValue, error) {
	if value == nil {
		return nil, &FormatError{Reason: "binary payload was nil"}
	}
	return &AttributeValue{kind: KindBinary, binary: cloneBytes(value)}, nil
}

// FromStringSet creates a StringSet attribute value.
func FromStringSet(values ...string) *AttributeValue {
	copied := make([]string, len(values))
	copy(copied, values)
	return &AttributeValue{kind: KindStringSet, texts: copied}
}

// FromNumberSet creates a NumberSet attribute value; every member has to be a
// valid numeral.
func FromNumberSet(values ...string) (*AttributeValue, error) {
	copied := make([]string, len(values))
	for i, value := range values {
		if err := validateNumber(value); err != nil {
			return nil, err
		}
		copied[i] = value
	}
	return &AttributeValue{kind: KindNumberSet, texts: copied}, nil
}

// FromBinarySet creates a BinarySet attribute value; members are copied.
func FromBinarySet(values ...[]byte) (*AttributeValue, error) {
	copied := make([][]byte, len(values))
	for i, value := range values {
		if value == nil {
			return nil, &FormatError{Reason: "binary set member was nil"}
		}
		copied[i] = cloneBytes(value)
	}
	return &AttributeValue{kind: KindBinarySet, blobs: copied}, nil
}

// FromList creates a List attribute value from the supplied items.
func FromList(items ...*AttributeValue) (*AttributeValue, error) {
	copied := make([]*AttributeValue, len(items))
	for i, item := range items {
		if item == nil {
			return nil, &FormatError{Reason: fmt.Sprintf("list item %d was nil, use FromNull", i)}
		}
		copied[i] = item
	}
	return &AttributeValue{kind: KindList, items: copied}, nil
}

// FromMap creates a Map attribute value; the supplied map is copied.
func FromMap(entries map[string]*AttributeValue) (*AttributeValue, error) {
	copied := make(map[string]*AttributeValue, len(entries))
	for key, entry := range entries {
		if entry == nil {
			return nil, &FormatError{Reason: fmt.Sprintf("map entry %q was nil, use FromNull", key)}
		}
		copied[key] = entry
	}
	return &AttributeValue{kind: KindMap, entries: copied}, nil
}

// Kind returns the active variant.
func (v *AttributeValue) Kind() Kind {
	return v.kind
}

// IsNull returns true for the Null variant.
func (v *AttributeValue) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the String payload.
func (v *AttributeValue) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// AsNumber returns the Number payload text.
func (v *AttributeValue) AsNumber() (string, bool) {
	return v.text, v.kind == KindNumber
}

// AsBool returns the Bool payload.
func (v *AttributeValue) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsBinary returns a copy of the Binary payload.
func (v *AttributeValue) AsBinary() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	return cloneBytes(v.binary), true
}

// AsStringSet returns a copy of the StringSet members.
func (v *AttributeValue) AsStringSet() ([]string, bool) {
	if v.kind != KindStringSet {
		return nil, false
	}
	return append([]string(nil), v.texts...), true
}

// AsNumberSet returns a copy of the NumberSet members.
func (v *AttributeValue) AsNumberSet() ([]string, bool) {
	if v.kind != KindNumberSet {
		return nil, false
	}
	return append([]string(nil), v.texts...), true
}

// AsBinarySet returns a copy of the BinarySet members.
func (v *AttributeValue) AsBinarySet() ([][]byte, bool) {
	if v.kind != KindBinarySet {
		return nil, false
	}
	copied := make([][]byte, len(v.blobs))
	for i, blob := range v.blobs {
		copied[i] = cloneBytes(blob)
	}
	return copied, true
}

// AsList returns a copy of the List items.
func (v *AttributeValue) AsList() ([]*AttributeValue, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]*AttributeValue(nil), v.items...), true
}

// AsMap returns a copy of the Map entries.
func (v *AttributeValue) AsMap() (map[string]*AttributeValue, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	copied := make(map[string]*AttributeValue, len(v.entries))
	for key, entry := range v.entries {
		copied[key] = entry
	}
	return copied, true
}

// Convert dispatches to exactly one visitor callback based on the active
// variant; variants the visitor does not handle yield
// UnsupportedConversionError.
func (v *AttributeValue) Convert(visitor *TypeVisitor) (interface{}, error) {
	switch v.kind {
	case KindString:
		if visitor.onString != nil {
			return visitor.onString(v.text)
		}
	case KindNumber:
		if visitor.onNumber != nil {
			return visitor.onNumber(v.text)
		}
	case KindBool:
		if visitor.onBool != nil {
			return visitor.onBool(v.flag)
		}
	case KindNull:
		if visitor.onNull != nil {
			return visitor.onNull()
		}
	case KindBinary:
		if visitor.onBinary != nil {
			return visitor.onBinary(cloneBytes(v.binary))
		}
	case KindStringSet:
		if visitor.onStringSet != nil {
			return visitor.onStringSet(append([]string(nil), v.texts...))
		}
	case KindNumberSet:
		if visitor.onNumberSet != nil {
			return visitor.onNumberSet(append([]string(nil), v.texts...))
		}
	case KindBinarySet:
		if visitor.onBinarySet != nil {
			blobs, _ := v.AsBinarySet()
			return visitor.onBinarySet(blobs)
		}
	case KindList:
		if visitor.onList != nil {
			return visitor.onList(append([]*AttributeValue(nil), v.items...))
		}
	case KindMap:
		if visitor.onMap != nil {
			entries, _ := v.AsMap()
			return visitor.onMap(entries)
		}
	}
	return nil, &UnsupportedConversionError{Source: v.kind, Target: visitor.targetType}
}

// Equal reports structural, variant-aware equality. Number payloads compare
// numerically ("1" equals "1.0"); set variants compare as unordered multisets.
func (v *AttributeValue) Equal(other *AttributeValue) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.text == other.text
	case KindNumber:
		return numberEqual(v.text, other.text)
	case KindBool:
		return v.flag == other.flag
	case KindBinary:
		return string(v.binary) == string(other.binary)
	case KindStringSet:
		return unorderedEqual(v.texts, other.texts, func(a, b string) bool { return a == b })
	case KindNumberSet:
		return unorderedEqual(v.texts, other.texts, numberEqual)
	case KindBinarySet:
		return unorderedEqual(v.blobs, other.blobs, func(a, b []byte) bool { return string(a) == string(b) })
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i, item := range v.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(other.entries) {
			return false
		}
		for key, entry := range v.entries {
			counterpart, ok := other.entries[key]
			if !ok || !entry.Equal(counterpart) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders a debug representation.
func (v *AttributeValue) String() string {
	switch v.kind {
	case KindNull:
		return "Null"
	case KindString:
		return fmt.Sprintf("String(%q)", v.text)
	case KindNumber:
		return fmt.Sprintf("Number(%s)", v.text)
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.flag)
	case KindBinary:
		return fmt.Sprintf("Binary(%d bytes)", len(v.binary))
	case KindStringSet:
		return fmt.Sprintf("StringSet(%s)", strings.Join(v.texts, ","))
	case KindNumberSet:
		return fmt.Sprintf("NumberSet(%s)", strings.Join(v.texts, ","))
	case KindBinarySet:
		return fmt.Sprintf("BinarySet(%d members)", len(v.blobs))
	case KindList:
		items := make([]string, len(v.items))
		for i, item := range v.items {
			items[i] = item.String()
		}
		return fmt.Sprintf("List(%s)", strings.Join(items, ","))
	case KindMap:
		return fmt.Sprintf("Map(%d entries)", len(v.entries))
	}
	return kindNames[v.kind]
}

func unorderedEqual[T any](left, right []T, equal func(a, b T) bool) bool {
	if len(left) != len(right) {
		return false
	}
	used := make([]bool, len(right))
outer:
	for _, a := range left {
		for i, b := range right {
			if !used[i] && equal(a, b) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

func cloneBytes(value []byte) []byte {
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied
}
