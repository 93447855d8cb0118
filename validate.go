package attrly

import (
	"fmt"
	"math"
)

// ValidateFloat64 rejects NaN and infinities, which the wire number format
// cannot represent.
func ValidateFloat64(value float64) error {
	if math.IsNaN(value) {
		return &ValidationError{Value: value, Constraint: "NaN has no wire representation"}
	}
	if math.IsInf(value, 0) {
		return &ValidationError{Value: value, Constraint: "infinity has no wire representation"}
	}
	return nil
}

// ValidateFloat32 rejects NaN and infinities.
func ValidateFloat32(value float32) error {
	return ValidateFloat64(float64(value))
}

// ValidateIntRange checks that value lies within [min, max].
func ValidateIntRange(value, min, max int64) error {
	if value < min || value > max {
		return &ValidationError{Value: value, Constraint: fmt.Sprintf("outside range [%d, %d]", min, max)}
	}
	return nil
}
