package parser

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"pylua/types"
)

// Dump renders a node (or a statement list) as an indented tree, one field per
// line, skipping positions and empty fields. The output is deterministic.
func Dump(node any) string {
	var sb strings.Builder
	dumpValue(&sb, reflect.ValueOf(node), 0)
	return sb.String()
}

// DumpBlock renders a statement list
func DumpBlock(stmts []Stmt) string {
	return Dump(stmts)
}

var (
	positionType = reflect.TypeOf(Position{})
	valueType    = reflect.TypeOf((*types.Value)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

func dumpValue(sb *strings.Builder, v reflect.Value, indent int) {
	if !v.IsValid() {
		sb.WriteString("None")
		return
	}
	if v.Type().Implements(valueType) && v.Kind() != reflect.Interface {
		sb.WriteString(v.Interface().(types.Value).String())
		return
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			sb.WriteString("None")
			return
		}
		dumpValue(sb, v.Elem(), indent)

	case reflect.Slice:
		if v.Len() == 0 {
			sb.WriteString("[]")
			return
		}
		pad := strings.Repeat("  ", indent+1)
		sb.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			sb.WriteString("\n" + pad)
			dumpValue(sb, v.Index(i), indent+1)
			if i < v.Len()-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("]")

	case reflect.Struct:
		dumpStruct(sb, v, indent)

	case reflect.String:
		sb.WriteString(fmt.Sprintf("'%s'", v.String()))

	default:
		if v.Type().Implements(stringerType) {
			sb.WriteString(v.Interface().(fmt.Stringer).String())
			return
		}
		sb.WriteString(fmt.Sprint(v.Interface()))
	}
}

func dumpStruct(sb *strings.Builder, v reflect.Value, indent int) {
	name := v.Type().Name()
	if v.CanAddr() {
		if n, ok := v.Addr().Interface().(Node); ok {
			name = n.Kind()
		}
	}
	sb.WriteString(name + "(")

	pad := strings.Repeat("  ", indent+1)
	first := true
	for i := 0; i < v.NumField(); i++ {
		f := v.Type().Field(i)
		fv := v.Field(i)
		if f.Type == positionType || !f.IsExported() || fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Slice && fv.Len() == 0 {
			continue
		}
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString("\n" + pad + fieldName(f.Name) + "=")
		dumpValue(sb, fv, indent+1)
	}
	sb.WriteString(")")
}

// fieldName lowercases a Go field name for display (ID -> id, AsName -> asName)
func fieldName(s string) string {
	if strings.ToUpper(s) == s {
		return strings.ToLower(s)
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
