package types

// TypeCode identifies the kind of a constant payload
type TypeCode int

const (
	TYPE_NONE  TypeCode = 0
	TYPE_BOOL  TypeCode = 1
	TYPE_INT   TypeCode = 2
	TYPE_FLOAT TypeCode = 3
	TYPE_STR   TypeCode = 4
)

// String returns the source-language name of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_NONE:
		return "NoneType"
	case TYPE_BOOL:
		return "bool"
	case TYPE_INT:
		return "int"
	case TYPE_FLOAT:
		return "float"
	case TYPE_STR:
		return "str"
	default:
		return "unknown"
	}
}
