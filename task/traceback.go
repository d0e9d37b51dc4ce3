package task

import (
	"fmt"
	"strings"
)

// Frame is one construct enclosing the point where a translation failed.
// Name is set for definitions (function name), empty otherwise.
type Frame struct {
	Kind   string
	Name   string
	Line   int
	Column int
}

func (f Frame) describe() string {
	label := f.Kind
	if f.Name != "" {
		label += " " + f.Name
	}
	return fmt.Sprintf("%s (line %d, col %d)", label, f.Line, f.Column)
}

// FormatTraceback formats the stack of enclosing constructs, innermost first:
//
//	<- For (line 3, col 4):  unsupported for-else clause
//	<- ... inside FunctionDef main (line 1, col 0)
//	<- (End of traceback)
func FormatTraceback(stack []Frame, message string) []string {
	if len(stack) == 0 {
		return []string{
			"<- (top level):  " + message,
			"<- (End of traceback)",
		}
	}

	var lines []string

	// Walk the stack from top (innermost) to bottom (outermost)
	for i := len(stack) - 1; i >= 0; i-- {
		frame := stack[i]
		if i == len(stack)-1 {
			lines = append(lines, "<- "+frame.describe()+":  "+message)
		} else {
			lines = append(lines, "<- ... inside "+frame.describe())
		}
	}

	lines = append(lines, "<- (End of traceback)")

	return lines
}

// FormatTracebackString returns the traceback as a single string with newlines
func FormatTracebackString(stack []Frame, message string) string {
	return strings.Join(FormatTraceback(stack, message), "\n")
}
