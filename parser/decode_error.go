package parser

import "fmt"

// DecodeError reports a malformed tree document.
// Line and Column locate the offending node in the document itself.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return "tree document: " + e.Msg
	}
	return fmt.Sprintf("tree document line %d, column %d: %s", e.Line, e.Column, e.Msg)
}
