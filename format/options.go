// Package format parses the declarative configuration surface of composed
// converters: a comma separated k=v option text, e.g.
// "pattern=yyyy-MM-dd,timeZone=UTC". A pair whose value contains commas can
// be wrapped in a {...} block.
package format

import (
	"strings"

	"github.com/viant/attrly"
	"github.com/viant/attrly/format/timepattern"
	"github.com/viant/parsly"
)

// Options holds the timestamp converter configuration; both values are
// resolved eagerly at converter construction, never per call.
type Options struct {
	Pattern  string
	TimeZone string
}

func (o *Options) update(key string, value string) error {
	switch strings.ToLower(key) {
	case "pattern":
		o.Pattern = value
	case "timezone", "zone":
		o.TimeZone = value
	default:
		return &attrly.ConfigurationError{Option: key, Value: value, Reason: "unknown option"}
	}
	return nil
}

// Parse decodes option text into Options, applying the pattern and time zone
// defaults for keys the text omits.
func Parse(encoded string) (*Options, error) {
	ret := &Options{Pattern: timepattern.DefaultPattern, TimeZone: timepattern.DefaultTimeZone}
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			if strings.TrimSpace(value) != "" {
				return nil, &attrly.ConfigurationError{Option: value, Reason: "expected key=value"}
			}
			break
		}
		if err := ret.update(strings.TrimSpace(key), value); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		match = cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}
