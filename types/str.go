package types

import (
	"strconv"
	"strings"
)

// StrValue represents a string constant
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the Lua string literal with escapes.
// Bytes outside printable ASCII are written as decimal escapes (\ddd), which
// every Lua version accepts.
func (s StrValue) String() string {
	var result strings.Builder
	result.WriteByte('"')
	for i := 0; i < len(s.val); i++ {
		b := s.val[i]
		switch {
		case b == '"':
			result.WriteString(`\"`)
		case b == '\\':
			result.WriteString(`\\`)
		case b == '\n':
			result.WriteString(`\n`)
		case b == '\r':
			result.WriteString(`\r`)
		case b == '\t':
			result.WriteString(`\t`)
		case b >= 32 && b <= 126:
			result.WriteByte(b)
		default:
			result.WriteByte('\\')
			// Pad to three digits so a following digit is not absorbed
			d := strconv.Itoa(int(b))
			result.WriteString(strings.Repeat("0", 3-len(d)) + d)
		}
	}
	result.WriteByte('"')
	return result.String()
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Truthy returns whether the value is truthy
// Empty strings are falsy, non-empty strings are truthy
func (s StrValue) Truthy() bool {
	return len(s.val) > 0
}

// Equal compares two values for equality (case-sensitive)
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
