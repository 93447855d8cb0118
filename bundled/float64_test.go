package bundled

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/attrly"
)

func TestFloat64Converter_RoundTrip(t *testing.T) {
	converter := NewFloat64Converter()

	var testCases = []struct {
		description string
		value       float64
	}{
		{description: "zero", value: 0},
		{description: "fraction", value: 3.25},
		{description: "negative", value: -1.5},
		{description: "max finite", value: math.MaxFloat64},
		{description: "smallest positive", value: math.SmallestNonzeroFloat64},
	}

	for _, testCase := range testCases {
		encoded, err := converter.ToAttributeValue(testCase.value, nil)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		back, err := converter.FromAttributeValue(encoded, nil)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.value, back, testCase.description)
	}
}

func TestFloat64Converter_RejectsNonFinite(t *testing.T) {
	converter := NewFloat64Converter()

	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := converter.ToAttributeValue(value, nil)
		assert.True(t, errors.Is(err, attrly.ErrValidation))
	}

	//rejection symmetry: a value ToAttributeValue rejects cannot be smuggled
	//back in through a String variant
	_, err := converter.FromAttributeValue(attrly.FromString("NaN"), nil)
	assert.True(t, errors.Is(err, attrly.ErrValidation))
	_, err = converter.FromAttributeValue(attrly.FromString("+Inf"), nil)
	assert.True(t, errors.Is(err, attrly.ErrValidation))
}

func TestFloat64Converter_MultiEncoding(t *testing.T) {
	converter := NewFloat64Converter()
	asNumber, err := attrly.FromNumber("1.5")
	assert.Nil(t, err)

	fromNumber, err := converter.FromAttributeValue(asNumber, nil)
	assert.Nil(t, err)
	fromString, err := converter.FromAttributeValue(attrly.FromString("1.5"), nil)
	assert.Nil(t, err)
	assert.Equal(t, 1.5, fromNumber)
	assert.Equal(t, fromNumber, fromString)
}
