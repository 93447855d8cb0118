package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/attrly"
	"github.com/viant/attrly/format/timepattern"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		encoded     string
		expect      *Options
		expectErr   bool
	}{
		{
			description: "defaults",
			encoded:     "",
			expect:      &Options{Pattern: timepattern.DefaultPattern, TimeZone: timepattern.DefaultTimeZone},
		},
		{
			description: "pattern and zone",
			encoded:     "pattern=yyyy-MM-dd,timeZone=America/New_York",
			expect:      &Options{Pattern: "yyyy-MM-dd", TimeZone: "America/New_York"},
		},
		{
			description: "zone alias",
			encoded:     "zone=UTC",
			expect:      &Options{Pattern: timepattern.DefaultPattern, TimeZone: "UTC"},
		},
		{
			description: "case insensitive keys",
			encoded:     "Pattern=yyyyMMdd,TimeZone=UTC",
			expect:      &Options{Pattern: "yyyyMMdd", TimeZone: "UTC"},
		},
		{
			description: "scoped value",
			encoded:     "{pattern=yyyy-MM-dd'T'HH:mm:ss.SSS'Z'},timeZone=UTC",
			expect:      &Options{Pattern: "yyyy-MM-dd'T'HH:mm:ss.SSS'Z'", TimeZone: "UTC"},
		},
		{
			description: "unknown key",
			encoded:     "pattern=yyyy,locale=en",
			expectErr:   true,
		},
		{
			description: "missing key",
			encoded:     "yyyy-MM-dd",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		options, err := Parse(testCase.encoded)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, attrly.ErrConfiguration), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, options, testCase.description)
	}
}
