// Package scalar provides the registry of reusable conversions between
// well-known intermediate types and arbitrary target scalar types. Composed
// converters query it at construction time instead of hard-coding one
// converter per (domain type, wire encoding) pair.
package scalar

import (
	"reflect"
	"time"

	"github.com/viant/attrly"
)

type (
	//Forward converts an intermediate value to the target type
	Forward func(intermediate interface{}) (interface{}, error)

	//Inverse converts a target value back to the intermediate type
	Inverse func(target interface{}) (interface{}, error)

	// Pair is a bidirectional converter between an intermediate and a target
	// type.
	Pair struct {
		Intermediate reflect.Type
		Target       reflect.Type
		Forward      Forward
		Inverse      Inverse
	}

	pairKey struct {
		intermediate reflect.Type
		target       reflect.Type
	}

	// Registry maps (intermediate type, target type) to converter pairs. It
	// is built once during setup and read-only afterwards; do not call
	// Register after the registry has been published to concurrent users.
	Registry struct {
		pairs map[pairKey]*Pair
	}
)

// New creates a registry preloaded with the built-in conversion table.
func New() *Registry {
	ret := &Registry{pairs: make(map[pairKey]*Pair)}
	registerTimePairs(ret)
	registerStringPairs(ret)
	return ret
}

// Register adds or replaces a converter pair.
func (r *Registry) Register(pair *Pair) {
	r.pairs[pairKey{intermediate: pair.Intermediate, target: pair.Target}] = pair
}

// Lookup returns the converter pair between the intermediate and target
// types, or UnsupportedTypeError when no path exists. Callers resolving
// converters eagerly surface the failure at construction time.
func (r *Registry) Lookup(intermediate, target reflect.Type) (*Pair, error) {
	pair, ok := r.pairs[pairKey{intermediate: intermediate, target: target}]
	if !ok {
		return nil, &attrly.UnsupportedTypeError{Intermediate: intermediate, Target: target}
	}
	return pair, nil
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
	stringType  = reflect.TypeOf("")
	bytesType   = reflect.TypeOf([]byte(nil))
	boolType    = reflect.TypeOf(true)
	intType     = reflect.TypeOf(int(0))
	int8Type    = reflect.TypeOf(int8(0))
	int16Type   = reflect.TypeOf(int16(0))
	int32Type   = reflect.TypeOf(int32(0))
	int64Type   = reflect.TypeOf(int64(0))
	uintType    = reflect.TypeOf(uint(0))
	uint8Type   = reflect.TypeOf(uint8(0))
	uint16Type  = reflect.TypeOf(uint16(0))
	uint32Type  = reflect.TypeOf(uint32(0))
	uint64Type  = reflect.TypeOf(uint64(0))
	float32Type = reflect.TypeOf(float32(0))
	float64Type = reflect.TypeOf(float64(0))
)

func registerTimePairs(registry *Registry) {
	registry.Register(&Pair{Intermediate: timeType, Target: timeType,
		Forward: identity, Inverse: identity})
	registry.Register(&Pair{Intermediate: timeType, Target: timePtrType,
		Forward: timeToTimePtr, Inverse: timePtrToTime})
	registry.Register(&Pair{Intermediate: timeType, Target: int64Type,
		Forward: timeToEpochMillis, Inverse: epochMillisToTime})
	registry.Register(&Pair{Intermediate: timeType, Target: stringType,
		Forward: timeToText, Inverse: textToTime})
}

func registerStringPairs(registry *Registry) {
	registry.Register(&Pair{Intermediate: stringType, Target: stringType,
		Forward: identity, Inverse: identity})
	registry.Register(&Pair{Intermediate: stringType, Target: bytesType,
		Forward: textToBytes, Inverse: bytesToText})
	registry.Register(&Pair{Intermediate: stringType, Target: boolType,
		Forward: textToBool, Inverse: boolToText})
	registry.Register(&Pair{Intermediate: stringType, Target: timeType,
		Forward: textToTime, Inverse: timeToText})
	registry.Register(&Pair{Intermediate: stringType, Target: intType,
		Forward: textToInt, Inverse: intToText})
	registry.Register(&Pair{Intermediate: stringType, Target: int8Type,
		Forward: textToInt8, Inverse: int8ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: int16Type,
		Forward: textToInt16, Inverse: int16ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: int32Type,
		Forward: textToInt32, Inverse: int32ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: int64Type,
		Forward: textToInt64, Inverse: int64ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: uintType,
		Forward: textToUint, Inverse: uintToText})
	registry.Register(&Pair{Intermediate: stringType, Target: uint8Type,
		Forward: textToUint8, Inverse: uint8ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: uint16Type,
		Forward: textToUint16, Inverse: uint16ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: uint32Type,
		Forward: textToUint32, Inverse: uint32ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: uint64Type,
		Forward: textToUint64, Inverse: uint64ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: float32Type,
		Forward: textToFloat32, Inverse: float32ToText})
	registry.Register(&Pair{Intermediate: stringType, Target: float64Type,
		Forward: textToFloat64, Inverse: float64ToText})
}

func identity(value interface{}) (interface{}, error) {
	return value, nil
}
