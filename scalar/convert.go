package scalar

import (
	"strconv"
	"time"

	"github.com/viant/attrly"
	"github.com/viant/xunsafe"
)

func timeToTimePtr(intermediate interface{}) (interface{}, error) {
	value := intermediate.(time.Time)
	return &value, nil
}

func timePtrToTime(target interface{}) (interface{}, error) {
	value := target.(*time.Time)
	if value == nil {
		return nil, &attrly.ValidationError{Value: value, Constraint: "time pointer was nil"}
	}
	return *value, nil
}

func timeToEpochMillis(intermediate interface{}) (interface{}, error) {
	return intermediate.(time.Time).UnixMilli(), nil
}

func epochMillisToTime(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	millis := *(*int64)(ptr)
	return time.UnixMilli(millis).UTC(), nil
}

func timeToText(intermediate interface{}) (interface{}, error) {
	return intermediate.(time.Time).Format(time.RFC3339Nano), nil
}

func textToTime(value interface{}) (interface{}, error) {
	text := value.(string)
	parsed, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a RFC3339 time"}
	}
	return parsed, nil
}

func textToBytes(intermediate interface{}) (interface{}, error) {
	return []byte(intermediate.(string)), nil
}

func bytesToText(target interface{}) (interface{}, error) {
	return string(target.([]byte)), nil
}

func textToBool(intermediate interface{}) (interface{}, error) {
	text := intermediate.(string)
	value, err := strconv.ParseBool(text)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a boolean"}
	}
	return value, nil
}

func boolToText(target interface{}) (interface{}, error) {
	return strconv.FormatBool(target.(bool)), nil
}

func parseInt(value interface{}, bitSize int) (int64, error) {
	text := value.(string)
	parsed, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, &attrly.FormatError{Text: text, Reason: "not a whole number"}
	}
	return parsed, nil
}

func textToInt(intermediate interface{}) (interface{}, error) {
	parsed, err := parseInt(intermediate, strconv.IntSize)
	if err != nil {
		return nil, err
	}
	return int(parsed), nil
}

func intToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.Itoa(*(*int)(ptr)), nil
}

func textToInt8(intermediate interface{}) (interface{}, error) {
	parsed, err := parseInt(intermediate, 8)
	if err != nil {
		return nil, err
	}
	return int8(parsed), nil
}

func int8ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatInt(int64(*(*int8)(ptr)), 10), nil
}

func textToInt16(intermediate interface{}) (interface{}, error) {
	parsed, err := parseInt(intermediate, 16)
	if err != nil {
		return nil, err
	}
	return int16(parsed), nil
}

func int16ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatInt(int64(*(*int16)(ptr)), 10), nil
}

func textToInt32(intermediate interface{}) (interface{}, error) {
	parsed, err := parseInt(intermediate, 32)
	if err != nil {
		return nil, err
	}
	return int32(parsed), nil
}

func int32ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatInt(int64(*(*int32)(ptr)), 10), nil
}

func textToInt64(intermediate interface{}) (interface{}, error) {
	parsed, err := parseInt(intermediate, 64)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func int64ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatInt(*(*int64)(ptr), 10), nil
}

func parseUint(value interface{}, bitSize int) (uint64, error) {
	text := value.(string)
	parsed, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, &attrly.FormatError{Text: text, Reason: "not an unsigned whole number"}
	}
	return parsed, nil
}

func textToUint(intermediate interface{}) (interface{}, error) {
	parsed, err := parseUint(intermediate, strconv.IntSize)
	if err != nil {
		return nil, err
	}
	return uint(parsed), nil
}

func uintToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatUint(uint64(*(*uint)(ptr)), 10), nil
}

func textToUint8(intermediate interface{}) (interface{}, error) {
	parsed, err := parseUint(intermediate, 8)
	if err != nil {
		return nil, err
	}
	return uint8(parsed), nil
}

func uint8ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatUint(uint64(*(*uint8)(ptr)), 10), nil
}

func textToUint16(intermediate interface{}) (interface{}, error) {
	parsed, err := parseUint(intermediate, 16)
	if err != nil {
		return nil, err
	}
	return uint16(parsed), nil
}

func uint16ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatUint(uint64(*(*uint16)(ptr)), 10), nil
}

func textToUint32(intermediate interface{}) (interface{}, error) {
	parsed, err := parseUint(intermediate, 32)
	if err != nil {
		return nil, err
	}
	return uint32(parsed), nil
}

func uint32ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatUint(uint64(*(*uint32)(ptr)), 10), nil
}

func textToUint64(intermediate interface{}) (interface{}, error) {
	return parseUint(intermediate, 64)
}

func uint64ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	return strconv.FormatUint(*(*uint64)(ptr), 10), nil
}

func textToFloat32(intermediate interface{}) (interface{}, error) {
	text := intermediate.(string)
	parsed, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a number"}
	}
	if err := attrly.ValidateFloat64(parsed); err != nil {
		return nil, err
	}
	return float32(parsed), nil
}

func float32ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	value := float64(*(*float32)(ptr))
	if err := attrly.ValidateFloat64(value); err != nil {
		return nil, err
	}
	return strconv.FormatFloat(value, 'f', -1, 32), nil
}

func textToFloat64(intermediate interface{}) (interface{}, error) {
	text := intermediate.(string)
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &attrly.FormatError{Text: text, Reason: "not a number"}
	}
	if err := attrly.ValidateFloat64(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func float64ToText(target interface{}) (interface{}, error) {
	ptr := xunsafe.AsPointer(target)
	value := *(*float64)(ptr)
	if err := attrly.ValidateFloat64(value); err != nil {
		return nil, err
	}
	return strconv.FormatFloat(value, 'f', -1, 64), nil
}
