package types

// Value is the interface all constant payloads implement
type Value interface {
	Type() TypeCode
	String() string   // Lua literal representation
	Equal(Value) bool // Deep equality
	Truthy() bool     // Source-language truthiness rules
}
