// Package timepattern compiles SimpleDateFormat-style timestamp patterns
// into formatters bound to a time zone. Go time layouts cannot express bare
// fractional seconds (e.g. yyyyMMddHHmmssSSS), hence token compilation
// instead of layout translation.
package timepattern

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/attrly"
)

const (
	//DefaultPattern is the ISO-8601 pattern with milliseconds and UTC marker
	DefaultPattern = "yyyy-MM-dd'T'HH:mm:ss.SSS'Z'"

	//DefaultTimeZone is the default zone identifier
	DefaultTimeZone = "UTC"
)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenYear
	tokenMonth
	tokenDay
	tokenHour
	tokenMinute
	tokenSecond
	tokenFraction
)

type token struct {
	kind  tokenKind
	text  string //literal payload
	width int
}

// Formatter formats and parses timestamps according to a compiled pattern in
// a fixed time zone. Immutable after Compile, safe for concurrent use.
// Precision is bounded by the pattern: fields the pattern omits are dropped
// on format and restored to their zero value on parse.
type Formatter struct {
	pattern  string
	timeZone string
	location *time.Location
	tokens   []token
}

// Compile builds a formatter from a pattern and a zone identifier; empty
// arguments select the defaults. Malformed patterns and unknown zones fail
// with ConfigurationError.
func Compile(pattern, timeZone string) (*Formatter, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, &attrly.ConfigurationError{Option: "timeZone", Value: timeZone, Reason: "unknown time zone"}
	}
	tokens, err := scan(pattern)
	if err != nil {
		return nil, err
	}
	return &Formatter{pattern: pattern, timeZone: timeZone, location: location, tokens: tokens}, nil
}

// Pattern returns the source pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// TimeZone returns the zone identifier the formatter is bound to.
func (f *Formatter) TimeZone() string {
	return f.timeZone
}

// Format renders a timestamp in the formatter's zone at the pattern's
// resolution.
func (f *Formatter) Format(value time.Time) string {
	value = value.In(f.location)
	builder := &strings.Builder{}
	for _, tok := range f.tokens {
		switch tok.kind {
		case tokenLiteral:
			builder.WriteString(tok.text)
		case tokenYear:
			year := value.Year()
			if tok.width == 2 {
				year = year % 100
			}
			fmt.Fprintf(builder, "%0*d", tok.width, year)
		case tokenMonth:
			fmt.Fprintf(builder, "%02d", int(value.Month()))
		case tokenDay:
			fmt.Fprintf(builder, "%02d", value.Day())
		case tokenHour:
			fmt.Fprintf(builder, "%02d", value.Hour())
		case tokenMinute:
			fmt.Fprintf(builder, "%02d", value.Minute())
		case tokenSecond:
			fmt.Fprintf(builder, "%02d", value.Second())
		case tokenFraction:
			fraction := value.Nanosecond() / pow10(9-tok.width)
			fmt.Fprintf(builder, "%0*d", tok.width, fraction)
		}
	}
	return builder.String()
}

// Parse reads a timestamp back at the pattern's resolution; fields the
// pattern does not carry default to year 1970, month and day 1, midnight.
// Text not matching the pattern fails with FormatError.
func (f *Formatter) Parse(text string) (time.Time, error) {
	year, month, day := 1970, 1, 1
	hour, minute, second, nanos := 0, 0, 0, 0
	pos := 0
	for _, tok := range f.tokens {
		if tok.kind == tokenLiteral {
			if !strings.HasPrefix(text[pos:], tok.text) {
				return time.Time{}, f.parseError(text, fmt.Sprintf("expected %q at offset %d", tok.text, pos))
			}
			pos += len(tok.text)
			continue
		}
		value, err := f.digits(text, pos, tok.width)
		if err != nil {
			return time.Time{}, err
		}
		pos += tok.width
		switch tok.kind {
		case tokenYear:
			year = value
			if tok.width == 2 {
				year += 2000
			}
		case tokenMonth:
			month = value
		case tokenDay:
			day = value
		case tokenHour:
			hour = value
		case tokenMinute:
			minute = value
		case tokenSecond:
			second = value
		case tokenFraction:
			nanos = value * pow10(9-tok.width)
		}
	}
	if pos != len(text) {
		return time.Time{}, f.parseError(text, fmt.Sprintf("unexpected trailing text at offset %d", pos))
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, f.location), nil
}

func (f *Formatter) digits(text string, pos, width int) (int, error) {
	if pos+width > len(text) {
		return 0, f.parseError(text, fmt.Sprintf("expected %d digits at offset %d", width, pos))
	}
	value := 0
	for i := pos; i < pos+width; i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, f.parseError(text, fmt.Sprintf("expected digit at offset %d", i))
		}
		value = value*10 + int(c-'0')
	}
	return value, nil
}

func (f *Formatter) parseError(text, reason string) error {
	return &attrly.FormatError{Text: text, Reason: fmt.Sprintf("does not match pattern %q: %s", f.pattern, reason)}
}

func scan(pattern string) ([]token, error) {
	var tokens []token
	literal := func(text string) {
		if len(tokens) > 0 && tokens[len(tokens)-1].kind == tokenLiteral {
			tokens[len(tokens)-1].text += text
			return
		}
		tokens = append(tokens, token{kind: tokenLiteral, text: text})
	}
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end == -1 {
				return nil, &attrly.ConfigurationError{Option: "pattern", Value: pattern, Reason: "unterminated quote"}
			}
			if end == 0 {
				literal("'")
			} else {
				literal(pattern[i+1 : i+1+end])
			}
			i += end + 2
		case isPatternLetter(c):
			run := 1
			for i+run < len(pattern) && pattern[i+run] == c {
				run++
			}
			tok, err := fieldToken(c, run, pattern)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += run
		default:
			literal(string(c))
			i++
		}
	}
	return tokens, nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func fieldToken(letter byte, run int, pattern string) (token, error) {
	invalid := func(reason string) (token, error) {
		return token{}, &attrly.ConfigurationError{Option: "pattern", Value: pattern, Reason: reason}
	}
	switch letter {
	case 'y':
		if run != 2 && run != 4 {
			return invalid("year field has to be yy or yyyy")
		}
		return token{kind: tokenYear, width: run}, nil
	case 'M':
		if run != 2 {
			return invalid("month field has to be MM")
		}
		return token{kind: tokenMonth, width: 2}, nil
	case 'd':
		if run != 2 {
			return invalid("day field has to be dd")
		}
		return token{kind: tokenDay, width: 2}, nil
	case 'H':
		if run != 2 {
			return invalid("hour field has to be HH")
		}
		return token{kind: tokenHour, width: 2}, nil
	case 'm':
		if run != 2 {
			return invalid("minute field has to be mm")
		}
		return token{kind: tokenMinute, width: 2}, nil
	case 's':
		if run != 2 {
			return invalid("second field has to be ss")
		}
		return token{kind: tokenSecond, width: 2}, nil
	case 'S':
		if run > 3 {
			return invalid("fraction field supports up to SSS")
		}
		return token{kind: tokenFraction, width: run}, nil
	}
	return invalid(fmt.Sprintf("unsupported pattern letter %q", string(letter)))
}

func pow10(exp int) int {
	ret := 1
	for i := 0; i < exp; i++ {
		ret *= 10
	}
	return ret
}
