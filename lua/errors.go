package lua

import (
	"fmt"

	"pylua/parser"
	"pylua/task"
)

// UnsupportedConstruct is returned when a node reaches a dispatch point with no
// translation rule, or a rule's precondition does not hold.
type UnsupportedConstruct struct {
	Kind   string          // node kind, e.g. "Starred"
	Pos    parser.Position // source position of the node
	Detail string          // what about the node is unsupported
	Path   []task.Frame    // enclosing statements, outermost first
}

func (e *UnsupportedConstruct) Error() string {
	msg := fmt.Sprintf("unsupported construct %s at line %d, col %d", e.Kind, e.Pos.Line, e.Pos.Column)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Traceback renders the enclosing statements of the failure, innermost first
func (e *UnsupportedConstruct) Traceback() []string {
	stack := make([]task.Frame, 0, len(e.Path)+1)
	stack = append(stack, e.Path...)
	stack = append(stack, task.Frame{Kind: e.Kind, Line: e.Pos.Line, Column: e.Pos.Column})
	message := e.Detail
	if message == "" {
		message = "unsupported construct"
	}
	return task.FormatTraceback(stack, message)
}
