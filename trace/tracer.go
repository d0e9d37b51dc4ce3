package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer provides translation tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	globalTracer = New(enabled, filters, writer)
}

// New creates a tracer; a nil writer means stderr
func New(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a node kind matches any of the filter patterns
func (t *Tracer) matchesFilter(kind string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, kind); matched {
			return true
		}
	}
	return false
}

// Enter logs dispatch of a node to its translation rule
func (t *Tracer) Enter(kind string, pos fmt.Stringer, depth int) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] ENTER %s %s depth=%d\n", kind, pos, depth)
}

// Declare logs a name entering a declaration set
func (t *Tracer) Declare(name string, depth int) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   DECLARE %s depth=%d\n", name, depth)
}

// Comprehension logs the temporary allocated for a comprehension
func (t *Tracer) Comprehension(kind string, temp string) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   COMP %s -> %s\n", kind, temp)
}

// Warn logs a lossy translation decision
func (t *Tracer) Warn(kind string, pos fmt.Stringer, message string) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] WARN %s %s: %s\n", kind, pos, message)
}

// Fail logs the construct that aborted a translation, whatever the filters
func (t *Tracer) Fail(kind string, pos fmt.Stringer, detail string) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if detail != "" {
		fmt.Fprintf(t.writer, "[TRACE] FAIL %s %s %s\n", kind, pos, detail)
	} else {
		fmt.Fprintf(t.writer, "[TRACE] FAIL %s %s\n", kind, pos)
	}
}

// Global convenience functions

// Enter logs node dispatch using the global tracer
func Enter(kind string, pos fmt.Stringer, depth int) {
	if globalTracer != nil {
		globalTracer.Enter(kind, pos, depth)
	}
}

// Declare logs a declaration using the global tracer
func Declare(name string, depth int) {
	if globalTracer != nil {
		globalTracer.Declare(name, depth)
	}
}

// Comprehension logs a comprehension temporary using the global tracer
func Comprehension(kind string, temp string) {
	if globalTracer != nil {
		globalTracer.Comprehension(kind, temp)
	}
}

// Warn logs a lossy translation decision using the global tracer
func Warn(kind string, pos fmt.Stringer, message string) {
	if globalTracer != nil {
		globalTracer.Warn(kind, pos, message)
	}
}

// Fail logs a translation failure using the global tracer
func Fail(kind string, pos fmt.Stringer, detail string) {
	if globalTracer != nil {
		globalTracer.Fail(kind, pos, detail)
	}
}
