package scalar

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/attrly"
)

func TestRegistry_TimePairs(t *testing.T) {
	registry := New()
	instant := time.Date(2020, 1, 2, 3, 4, 5, 6000000, time.UTC)

	pair, err := registry.Lookup(timeType, int64Type)
	assert.Nil(t, err)
	millis, err := pair.Forward(instant)
	assert.Nil(t, err)
	assert.Equal(t, instant.UnixMilli(), millis)
	back, err := pair.Inverse(millis)
	assert.Nil(t, err)
	assert.True(t, instant.Equal(back.(time.Time)))

	pair, err = registry.Lookup(timeType, stringType)
	assert.Nil(t, err)
	text, err := pair.Forward(instant)
	assert.Nil(t, err)
	assert.Equal(t, "2020-01-02T03:04:05.006Z", text)
	back, err = pair.Inverse(text)
	assert.Nil(t, err)
	assert.True(t, instant.Equal(back.(time.Time)))

	pair, err = registry.Lookup(timeType, timePtrType)
	assert.Nil(t, err)
	ptr, err := pair.Forward(instant)
	assert.Nil(t, err)
	back, err = pair.Inverse(ptr)
	assert.Nil(t, err)
	assert.True(t, instant.Equal(back.(time.Time)))
}

func TestRegistry_StringPairs(t *testing.T) {
	registry := New()

	var testCases = []struct {
		description string
		target      reflect.Type
		text        string
		expect      interface{}
	}{
		{description: "int", target: intType, text: "42", expect: int(42)},
		{description: "int8", target: int8Type, text: "-8", expect: int8(-8)},
		{description: "int16", target: int16Type, text: "16", expect: int16(16)},
		{description: "int32", target: int32Type, text: "32", expect: int32(32)},
		{description: "int64", target: int64Type, text: "64", expect: int64(64)},
		{description: "uint", target: uintType, text: "42", expect: uint(42)},
		{description: "uint8", target: uint8Type, text: "8", expect: uint8(8)},
		{description: "uint16", target: uint16Type, text: "16", expect: uint16(16)},
		{description: "uint32", target: uint32Type, text: "32", expect: uint32(32)},
		{description: "uint64", target: uint64Type, text: "64", expect: uint64(64)},
		{description: "float32", target: float32Type, text: "1.5", expect: float32(1.5)},
		{description: "float64", target: float64Type, text: "3.25", expect: float64(3.25)},
		{description: "bool", target: boolType, text: "true", expect: true},
		{description: "bytes", target: bytesType, text: "abc", expect: []byte("abc")},
	}

	for _, testCase := range testCases {
		pair, err := registry.Lookup(stringType, testCase.target)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		converted, err := pair.Forward(testCase.text)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, converted, testCase.description)
		text, err := pair.Inverse(converted)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.text, text, testCase.description)
	}
}

func TestRegistry_ParseFailures(t *testing.T) {
	registry := New()

	pair, err := registry.Lookup(stringType, int8Type)
	assert.Nil(t, err)
	_, err = pair.Forward("1024") //overflows int8
	assert.True(t, errors.Is(err, attrly.ErrFormat))

	pair, err = registry.Lookup(stringType, float64Type)
	assert.Nil(t, err)
	_, err = pair.Forward("NaN")
	assert.True(t, errors.Is(err, attrly.ErrValidation))
	_, err = pair.Forward("abc")
	assert.True(t, errors.Is(err, attrly.ErrFormat))
}

func TestRegistry_UnknownPair(t *testing.T) {
	registry := New()
	_, err := registry.Lookup(timeType, boolType)
	assert.True(t, errors.Is(err, attrly.ErrUnsupportedType))
	assert.Contains(t, err.Error(), "time.Time")
	assert.Contains(t, err.Error(), "bool")
}

func TestRegistry_Register(t *testing.T) {
	registry := New()
	registry.Register(&Pair{
		Intermediate: timeType,
		Target:       float64Type,
		Forward: func(intermediate interface{}) (interface{}, error) {
			value := intermediate.(time.Time)
			return float64(value.UnixMilli()) / 1000, nil
		},
		Inverse: func(target interface{}) (interface{}, error) {
			seconds := target.(float64)
			return time.UnixMilli(int64(seconds * 1000)).UTC(), nil
		},
	})

	pair, err := registry.Lookup(timeType, float64Type)
	assert.Nil(t, err)
	instant := time.Date(2020, 1, 2, 3, 4, 5, 500000000, time.UTC)
	seconds, err := pair.Forward(instant)
	assert.Nil(t, err)
	back, err := pair.Inverse(seconds)
	assert.Nil(t, err)
	assert.True(t, instant.Equal(back.(time.Time)))
}
