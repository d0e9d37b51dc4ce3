package parser

import "pylua/types"

// Node is the base interface for all syntax tree nodes
type Node interface {
	Position() Position
	Kind() string // source grammar node name, e.g. "Assign"
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Module is the root of a tree document
type Module struct {
	Pos  Position
	Body []Stmt
}

func (m *Module) Position() Position { return m.Pos }
func (m *Module) Kind() string       { return "Module" }

// Expression nodes

// Name represents a variable reference
type Name struct {
	Pos Position
	ID  string
}

func (e *Name) Position() Position { return e.Pos }
func (e *Name) Kind() string       { return "Name" }
func (e *Name) exprNode()          {}

// Attribute represents attribute access: value.attr
type Attribute struct {
	Pos   Position
	Value Expr
	Attr  string
}

func (e *Attribute) Position() Position { return e.Pos }
func (e *Attribute) Kind() string       { return "Attribute" }
func (e *Attribute) exprNode()          {}

// Call represents func(args, kw=value)
type Call struct {
	Pos      Position
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// Keyword is one keyword argument of a call; Arg is empty for **mapping
type Keyword struct {
	Pos   Position
	Arg   string
	Value Expr
}

func (e *Call) Position() Position { return e.Pos }
func (e *Call) Kind() string       { return "Call" }
func (e *Call) exprNode()          {}

// Starred represents *value in a call or display
type Starred struct {
	Pos   Position
	Value Expr
}

func (e *Starred) Position() Position { return e.Pos }
func (e *Starred) Kind() string       { return "Starred" }
func (e *Starred) exprNode()          {}

// Constant wraps a literal payload
type Constant struct {
	Pos   Position
	Value types.Value
}

func (e *Constant) Position() Position { return e.Pos }
func (e *Constant) Kind() string       { return "Constant" }
func (e *Constant) exprNode()          {}

// List represents [a, b]
type List struct {
	Pos  Position
	Elts []Expr
}

func (e *List) Position() Position { return e.Pos }
func (e *List) Kind() string       { return "List" }
func (e *List) exprNode()          {}

// Set represents {a, b}
type Set struct {
	Pos  Position
	Elts []Expr
}

func (e *Set) Position() Position { return e.Pos }
func (e *Set) Kind() string       { return "Set" }
func (e *Set) exprNode()          {}

// Dict represents {k: v}. A nil key marks **mapping unpacking.
type Dict struct {
	Pos    Position
	Keys   []Expr
	Values []Expr
}

func (e *Dict) Position() Position { return e.Pos }
func (e *Dict) Kind() string       { return "Dict" }
func (e *Dict) exprNode()          {}

// Tuple represents a, b (as a value or as an assignment target)
type Tuple struct {
	Pos  Position
	Elts []Expr
}

func (e *Tuple) Position() Position { return e.Pos }
func (e *Tuple) Kind() string       { return "Tuple" }
func (e *Tuple) exprNode()          {}

// Compare represents left op1 c1 op2 c2 ...
type Compare struct {
	Pos         Position
	Left        Expr
	Ops         []OpType
	Comparators []Expr
}

func (e *Compare) Position() Position { return e.Pos }
func (e *Compare) Kind() string       { return "Compare" }
func (e *Compare) exprNode()          {}

// BoolOp represents v1 and v2 and ... (or or)
type BoolOp struct {
	Pos    Position
	Op     OpType
	Values []Expr
}

func (e *BoolOp) Position() Position { return e.Pos }
func (e *BoolOp) Kind() string       { return "BoolOp" }
func (e *BoolOp) exprNode()          {}

// UnaryOp represents a unary operation
type UnaryOp struct {
	Pos     Position
	Op      OpType
	Operand Expr
}

func (e *UnaryOp) Position() Position { return e.Pos }
func (e *UnaryOp) Kind() string       { return "UnaryOp" }
func (e *UnaryOp) exprNode()          {}

// BinOp represents a binary operation
type BinOp struct {
	Pos   Position
	Left  Expr
	Op    OpType
	Right Expr
}

func (e *BinOp) Position() Position { return e.Pos }
func (e *BinOp) Kind() string       { return "BinOp" }
func (e *BinOp) exprNode()          {}

// Lambda represents lambda args: body
type Lambda struct {
	Pos  Position
	Args *Arguments
	Body Expr
}

func (e *Lambda) Position() Position { return e.Pos }
func (e *Lambda) Kind() string       { return "Lambda" }
func (e *Lambda) exprNode()          {}

// Await represents await value
type Await struct {
	Pos   Position
	Value Expr
}

func (e *Await) Position() Position { return e.Pos }
func (e *Await) Kind() string       { return "Await" }
func (e *Await) exprNode()          {}

// Comprehension is one "for target in iter if cond..." clause
type Comprehension struct {
	Pos     Position
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

// ListComp represents [elt for ...]
type ListComp struct {
	Pos        Position
	Elt        Expr
	Generators []*Comprehension
}

func (e *ListComp) Position() Position { return e.Pos }
func (e *ListComp) Kind() string       { return "ListComp" }
func (e *ListComp) exprNode()          {}

// SetComp represents {elt for ...}
type SetComp struct {
	Pos        Position
	Elt        Expr
	Generators []*Comprehension
}

func (e *SetComp) Position() Position { return e.Pos }
func (e *SetComp) Kind() string       { return "SetComp" }
func (e *SetComp) exprNode()          {}

// DictComp represents {key: value for ...}
type DictComp struct {
	Pos        Position
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

func (e *DictComp) Position() Position { return e.Pos }
func (e *DictComp) Kind() string       { return "DictComp" }
func (e *DictComp) exprNode()          {}

// GeneratorExp represents (elt for ...)
type GeneratorExp struct {
	Pos        Position
	Elt        Expr
	Generators []*Comprehension
}

func (e *GeneratorExp) Position() Position { return e.Pos }
func (e *GeneratorExp) Kind() string       { return "GeneratorExp" }
func (e *GeneratorExp) exprNode()          {}

// UnknownExpr stands in for an expression kind the node set does not model.
// It survives decoding so translation can report it by name.
type UnknownExpr struct {
	Pos  Position
	Type string
}

func (e *UnknownExpr) Position() Position { return e.Pos }
func (e *UnknownExpr) Kind() string       { return e.Type }
func (e *UnknownExpr) exprNode()          {}

// Arguments is a function or lambda parameter list
type Arguments struct {
	PosOnly    []*Arg
	Args       []*Arg
	Vararg     *Arg
	KwOnly     []*Arg
	KwDefaults []Expr
	Kwarg      *Arg
	Defaults   []Expr
}

// Arg is a single parameter
type Arg struct {
	Pos        Position
	Name       string
	Annotation Expr
}

// Statement nodes

// Assign represents t1 = t2 = value
type Assign struct {
	Pos     Position
	Targets []Expr
	Value   Expr
}

func (s *Assign) Position() Position { return s.Pos }
func (s *Assign) Kind() string       { return "Assign" }
func (s *Assign) stmtNode()          {}

// AugAssign represents target op= value
type AugAssign struct {
	Pos    Position
	Target Expr
	Op     OpType
	Value  Expr
}

func (s *AugAssign) Position() Position { return s.Pos }
func (s *AugAssign) Kind() string       { return "AugAssign" }
func (s *AugAssign) stmtNode()          {}

// AnnAssign represents target: annotation [= value]
type AnnAssign struct {
	Pos        Position
	Target     Expr
	Annotation Expr
	Value      Expr // Can be nil
}

func (s *AnnAssign) Position() Position { return s.Pos }
func (s *AnnAssign) Kind() string       { return "AnnAssign" }
func (s *AnnAssign) stmtNode()          {}

// For represents for target in iter: body [else: orelse]
type For struct {
	Pos    Position
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (s *For) Position() Position { return s.Pos }
func (s *For) Kind() string       { return "For" }
func (s *For) stmtNode()          {}

// While represents while test: body [else: orelse]
type While struct {
	Pos    Position
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (s *While) Position() Position { return s.Pos }
func (s *While) Kind() string       { return "While" }
func (s *While) stmtNode()          {}

// If represents if/elif/else; an elif is a single If in Orelse
type If struct {
	Pos    Position
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (s *If) Position() Position { return s.Pos }
func (s *If) Kind() string       { return "If" }
func (s *If) stmtNode()          {}

// Try represents try/except/else/finally
type Try struct {
	Pos       Position
	Body      []Stmt
	Handlers  []*ExceptHandler
	Orelse    []Stmt
	Finalbody []Stmt
}

// ExceptHandler is one except clause
type ExceptHandler struct {
	Pos  Position
	Type Expr   // Can be nil (bare except)
	Name string // Optional: binds the caught error
	Body []Stmt
}

func (s *Try) Position() Position { return s.Pos }
func (s *Try) Kind() string       { return "Try" }
func (s *Try) stmtNode()          {}

// Raise represents raise [exc [from cause]]
type Raise struct {
	Pos   Position
	Exc   Expr // Can be nil (re-raise)
	Cause Expr // Can be nil
}

func (s *Raise) Position() Position { return s.Pos }
func (s *Raise) Kind() string       { return "Raise" }
func (s *Raise) stmtNode()          {}

// Return represents return [value]
type Return struct {
	Pos   Position
	Value Expr // Can be nil
}

func (s *Return) Position() Position { return s.Pos }
func (s *Return) Kind() string       { return "Return" }
func (s *Return) stmtNode()          {}

// Break represents break
type Break struct {
	Pos Position
}

func (s *Break) Position() Position { return s.Pos }
func (s *Break) Kind() string       { return "Break" }
func (s *Break) stmtNode()          {}

// Continue represents continue
type Continue struct {
	Pos Position
}

func (s *Continue) Position() Position { return s.Pos }
func (s *Continue) Kind() string       { return "Continue" }
func (s *Continue) stmtNode()          {}

// Pass represents pass
type Pass struct {
	Pos Position
}

func (s *Pass) Position() Position { return s.Pos }
func (s *Pass) Kind() string       { return "Pass" }
func (s *Pass) stmtNode()          {}

// FunctionDef represents def name(args): body
type FunctionDef struct {
	Pos        Position
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr // Can be nil
}

func (s *FunctionDef) Position() Position { return s.Pos }
func (s *FunctionDef) Kind() string       { return "FunctionDef" }
func (s *FunctionDef) stmtNode()          {}

// AsyncFunctionDef represents async def name(args): body
type AsyncFunctionDef struct {
	Pos        Position
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr
}

func (s *AsyncFunctionDef) Position() Position { return s.Pos }
func (s *AsyncFunctionDef) Kind() string       { return "AsyncFunctionDef" }
func (s *AsyncFunctionDef) stmtNode()          {}

// Alias is one name of an import statement
type Alias struct {
	Pos    Position
	Name   string
	AsName string // Optional
}

// Import represents import a, b as c
type Import struct {
	Pos   Position
	Names []*Alias
}

func (s *Import) Position() Position { return s.Pos }
func (s *Import) Kind() string       { return "Import" }
func (s *Import) stmtNode()          {}

// ImportFrom represents from module import names; Level counts leading dots
type ImportFrom struct {
	Pos    Position
	Module string
	Names  []*Alias
	Level  int
}

func (s *ImportFrom) Position() Position { return s.Pos }
func (s *ImportFrom) Kind() string       { return "ImportFrom" }
func (s *ImportFrom) stmtNode()          {}

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	Pos   Position
	Value Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) Kind() string       { return "Expr" }
func (s *ExprStmt) stmtNode()          {}

// Global represents global a, b
type Global struct {
	Pos   Position
	Names []string
}

func (s *Global) Position() Position { return s.Pos }
func (s *Global) Kind() string       { return "Global" }
func (s *Global) stmtNode()          {}

// Nonlocal represents nonlocal a, b
type Nonlocal struct {
	Pos   Position
	Names []string
}

func (s *Nonlocal) Position() Position { return s.Pos }
func (s *Nonlocal) Kind() string       { return "Nonlocal" }
func (s *Nonlocal) stmtNode()          {}

// UnknownStmt stands in for a statement kind the node set does not model
type UnknownStmt struct {
	Pos  Position
	Type string
}

func (s *UnknownStmt) Position() Position { return s.Pos }
func (s *UnknownStmt) Kind() string       { return s.Type }
func (s *UnknownStmt) stmtNode()          {}
