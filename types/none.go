package types

// NoneValue is the absent-value constant; it renders as Lua nil
type NoneValue struct{}

// None is the single NoneValue
var None = NoneValue{}

func (NoneValue) Type() TypeCode { return TYPE_NONE }
func (NoneValue) String() string { return "nil" }
func (NoneValue) Truthy() bool   { return false }

func (NoneValue) Equal(other Value) bool {
	_, ok := other.(NoneValue)
	return ok
}
