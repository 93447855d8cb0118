package attrly

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromNumber(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		valid       bool
	}{
		{description: "integer", text: "7", valid: true},
		{description: "negative", text: "-12", valid: true},
		{description: "fraction", text: "3.14", valid: true},
		{description: "exponent", text: "1.5e-3", valid: true},
		{description: "max float", text: "1.7976931348623157e+308", valid: true},
		{description: "empty", text: "", valid: false},
		{description: "alpha", text: "abc", valid: false},
		{description: "NaN", text: "NaN", valid: false},
		{description: "infinity", text: "Infinity", valid: false},
	}

	for _, testCase := range testCases {
		value, err := FromNumber(testCase.text)
		if !testCase.valid {
			assert.NotNil(t, err, testCase.description)
			assert.True(t, errors.Is(err, ErrFormat), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		text, ok := value.AsNumber()
		assert.True(t, ok, testCase.description)
		assert.Equal(t, testCase.text, text, testCase.description)
	}
}

func TestFromNumberSet(t *testing.T) {
	value, err := FromNumberSet("1", "2.5")
	assert.Nil(t, err)
	members, ok := value.AsNumberSet()
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2.5"}, members)

	_, err = FromNumberSet("1", "two")
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestFromList_NilItem(t *testing.T) {
	_, err := FromList(FromString("a"), nil)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestFromMap_NilEntry(t *testing.T) {
	_, err := FromMap(map[string]*AttributeValue{"key": nil})
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestAttributeValue_Equal(t *testing.T) {
	number := func(text string) *AttributeValue {
		value, err := FromNumber(text)
		assert.Nil(t, err)
		return value
	}
	numberSet := func(texts ...string) *AttributeValue {
		value, err := FromNumberSet(texts...)
		assert.Nil(t, err)
		return value
	}
	binary := func(payload []byte) *AttributeValue {
		value, err := FromBinary(payload)
		assert.Nil(t, err)
		return value
	}
	list := func(items ...*AttributeValue) *AttributeValue {
		value, err := FromList(items...)
		assert.Nil(t, err)
		return value
	}
	aMap := func(entries map[string]*AttributeValue) *AttributeValue {
		value, err := FromMap(entries)
		assert.Nil(t, err)
		return value
	}

	var testCases = []struct {
		description string
		left        *AttributeValue
		right       *AttributeValue
		expect      bool
	}{
		{description: "same text number", left: number("1"), right: number("1"), expect: true},
		{description: "numerically equal number", left: number("1"), right: number("1.0"), expect: true},
		{description: "exponent equal number", left: number("1500"), right: number("1.5e3"), expect: true},
		{description: "different number", left: number("1"), right: number("1.5"), expect: false},
		{description: "number vs string", left: number("1"), right: FromString("1"), expect: false},
		{description: "string", left: FromString("abc"), right: FromString("abc"), expect: true},
		{description: "bool", left: FromBool(true), right: FromBool(true), expect: true},
		{description: "null", left: FromNull(), right: FromNull(), expect: true},
		{description: "binary", left: binary([]byte{1, 2}), right: binary([]byte{1, 2}), expect: true},
		{description: "binary differs", left: binary([]byte{1, 2}), right: binary([]byte{2, 1}), expect: false},
		{description: "string set unordered", left: FromStringSet("a", "b"), right: FromStringSet("b", "a"), expect: true},
		{description: "string set differs", left: FromStringSet("a", "b"), right: FromStringSet("a", "c"), expect: false},
		{description: "number set unordered numeric", left: numberSet("1.0", "2"), right: numberSet("2.0", "1"), expect: true},
		{description: "list ordered", left: list(FromString("a"), FromString("b")), right: list(FromString("a"), FromString("b")), expect: true},
		{description: "list order matters", left: list(FromString("a"), FromString("b")), right: list(FromString("b"), FromString("a")), expect: false},
		{
			description: "map",
			left:        aMap(map[string]*AttributeValue{"id": number("1"), "name": FromString("a")}),
			right:       aMap(map[string]*AttributeValue{"name": FromString("a"), "id": number("1.0")}),
			expect:      true,
		},
		{
			description: "map differs",
			left:        aMap(map[string]*AttributeValue{"id": number("1")}),
			right:       aMap(map[string]*AttributeValue{"id": number("2")}),
			expect:      false,
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.left.Equal(testCase.right), testCase.description)
		assert.Equal(t, testCase.expect, testCase.right.Equal(testCase.left), testCase.description)
	}
}

func TestFromBinary_CopiesPayload(t *testing.T) {
	payload := []byte{1, 2, 3}
	value, err := FromBinary(payload)
	assert.Nil(t, err)
	payload[0] = 9
	stored, ok := value.AsBinary()
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, stored)
	stored[1] = 9
	again, _ := value.AsBinary()
	assert.Equal(t, []byte{1, 2, 3}, again)
}

func TestAttributeValue_Convert(t *testing.T) {
	visitor := NewTypeVisitor(reflect.TypeOf(""),
		OnString(func(value string) (interface{}, error) {
			return value + "!", nil
		}),
	)
	converted, err := FromString("hello").Convert(visitor)
	assert.Nil(t, err)
	assert.Equal(t, "hello!", converted)
}

func TestContext(t *testing.T) {
	var ctx *Context
	assert.Equal(t, "", ctx.Attribute())
	assert.Equal(t, "", ctx.Path())

	ctx = NewContext("order")
	child := ctx.WithChild("items")
	assert.Equal(t, "order", child.Attribute())
	assert.Equal(t, "order.items", child.Path())
	assert.Equal(t, "order", ctx.Path())
}
