// Package scope tracks which identifiers are already declared local in the
// emitted program. Each Lua block gets its own Scope chained to its parent.
package scope

// Scope is one lexical block's declaration set
type Scope struct {
	names  map[string]struct{}
	parent *Scope
	depth  int
}

// New creates a root scope with no parent
func New() *Scope {
	return &Scope{names: make(map[string]struct{})}
}

// NewNested creates a child scope of parent
func NewNested(parent *Scope) *Scope {
	return &Scope{
		names:  make(map[string]struct{}),
		parent: parent,
		depth:  parent.depth + 1,
	}
}

// Parent returns the enclosing scope, nil for the root
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Depth returns the nesting depth (root is 0)
func (s *Scope) Depth() int {
	return s.depth
}

// IsDeclared reports whether name is declared in this scope or any ancestor
func (s *Scope) IsDeclared(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.names[name]; ok {
			return true
		}
	}
	return false
}

// IsLocal reports whether name is declared in this scope itself
func (s *Scope) IsLocal(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Declare records name in this scope.
// It returns false if the name was already visible, in which case nothing changes.
func (s *Scope) Declare(name string) bool {
	if s.IsDeclared(name) {
		return false
	}
	s.names[name] = struct{}{}
	return true
}

// Len returns the number of names declared in this scope itself
func (s *Scope) Len() int {
	return len(s.names)
}
