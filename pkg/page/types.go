package page

// Module describes a `module` or `import` declaration. The same shape backs
// both; the block tag tells them apart.
type Module struct {
	// Name is the dotted namespace, e.g. "Pages.Home".
	Name string

	// Exposing is the raw interior of the parenthesized exposing list,
	// unparsed beyond its characters. Nil when the declaration carries no
	// exposing clause.
	Exposing *string
}

// Expose returns a pointer suitable for Module.Exposing.
func Expose(list string) *string {
	return &list
}

// Function is one top-level definition: its type annotation is not tracked
// separately, the block is just the ordered raw lines. Lines[0] always starts
// with the function's name; continuation lines are blank, indented, or
// restart with the same name (additional pattern-match clauses).
type Function struct {
	Lines []string
}

// Block is one semantically tagged unit of a parsed source file. The set of
// implementations is closed: ModuleDecl, ImportDecl, InitFn, UpdateFn,
// ViewFn, SubscriptionsFn, PageFn, and Other.
type Block interface {
	isBlock()
}

// ModuleDecl is the `module ...` header declaration.
type ModuleDecl struct {
	Module Module
}

// ImportDecl is an `import ...` declaration.
type ImportDecl struct {
	Module Module
}

// InitFn is a top-level `init` definition.
type InitFn struct {
	Fn Function
}

// UpdateFn is a top-level `update` definition.
type UpdateFn struct {
	Fn Function
}

// ViewFn is a top-level `view` definition.
type ViewFn struct {
	Fn Function
}

// SubscriptionsFn is a top-level `subscriptions` definition.
type SubscriptionsFn struct {
	Fn Function
}

// PageFn is a top-level `page` definition.
type PageFn struct {
	Fn Function
}

// Other wraps text the parser does not recognize, preserved verbatim.
type Other struct {
	Text string
}

func (ModuleDecl) isBlock()      {}
func (ImportDecl) isBlock()      {}
func (InitFn) isBlock()          {}
func (UpdateFn) isBlock()        {}
func (ViewFn) isBlock()          {}
func (SubscriptionsFn) isBlock() {}
func (PageFn) isBlock()          {}
func (Other) isBlock()           {}

// Page is the full ordered block sequence representing one source file.
// Order is source order after Parse; the transform package reorders and
// extends it.
type Page struct {
	Blocks []Block
}
