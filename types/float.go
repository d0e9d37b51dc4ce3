package types

import (
	"math"
	"strconv"
	"strings"
)

// FloatValue represents a floating point constant
type FloatValue struct {
	Val float64
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the Lua literal representation
func (f FloatValue) String() string {
	// Lua has no literal for these
	if math.IsNaN(f.Val) {
		return "(0/0)"
	}
	if math.IsInf(f.Val, 1) {
		return "math.huge"
	}
	if math.IsInf(f.Val, -1) {
		return "-math.huge"
	}
	// Whole numbers keep a decimal point so Lua 5.3+ reads a float (3.0 not 3)
	s := strconv.FormatFloat(f.Val, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Equal checks deep equality
func (f FloatValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	otherFloat, ok := other.(FloatValue)
	if !ok {
		return false
	}
	// IEEE 754: NaN never equals anything
	if math.IsNaN(f.Val) || math.IsNaN(otherFloat.Val) {
		return false
	}
	return f.Val == otherFloat.Val
}

// Truthy returns false only for zero
func (f FloatValue) Truthy() bool {
	return f.Val != 0
}

// NewFloat creates a new FloatValue
func NewFloat(val float64) FloatValue {
	return FloatValue{Val: val}
}

// IsNaN returns true if the float is NaN
func (f FloatValue) IsNaN() bool {
	return math.IsNaN(f.Val)
}

// IsInf returns true if the float is infinite
func (f FloatValue) IsInf() bool {
	return math.IsInf(f.Val, 0)
}
