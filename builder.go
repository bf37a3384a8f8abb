package prettier

import (
	"io"

	"github.com/npillmayer/uax/uax11"
)

// DefaultPrintWidth is the print width used when a builder is created with
// a non-positive width.
const DefaultPrintWidth = 80

// Builder assembles a document tree by appending layout directives to a
// current target list. Scoped constructs (Group, Indent, Align, LineSuffix,
// IfBreak) redirect the target for the duration of a callback and restore
// it on every exit path, including panics.
//
// A Builder additionally carries a stack of caller-supplied context values
// and a handful of options the engine itself never interprets; tree walkers
// consult them for quoting and punctuation decisions.
//
// The empty Builder is not usable; create instances with NewBuilder.
type Builder struct {
	// PrintWidth is the target maximum line width in display columns.
	PrintWidth int
	// PreferredQuote and TrailingComma are stored for tree-walker
	// consumption only.
	PreferredQuote string
	TrailingComma  bool
	// Context resolves ambiguous character widths for Text and Breakable
	// measurement. Nil means uax11.LatinContext.
	Context *uax11.Context

	root     *Group
	target   *[]Document
	groups   []*Group
	contexts []interface{}
}

// NewBuilder creates a builder with an empty root group.
func NewBuilder(printWidth int) *Builder {
	if printWidth <= 0 {
		printWidth = DefaultPrintWidth
	}
	b := &Builder{
		PrintWidth: printWidth,
		root:       &Group{},
	}
	b.target = &b.root.Contents
	b.groups = append(b.groups, b.root)
	return b
}

// Root returns the root group of the document under construction.
func (b *Builder) Root() *Group {
	return b.root
}

// Doc finishes construction and hands out the root group. It is an error to
// call Doc from within an open Group/Indent/Align/LineSuffix block.
func (b *Builder) Doc() (*Group, error) {
	if len(b.groups) != 1 || b.target != &b.root.Contents {
		return nil, ErrOpenGroup
	}
	return b.root, nil
}

// Format renders the document built so far at the configured print width.
func (b *Builder) Format() (string, error) {
	root, err := b.Doc()
	if err != nil {
		return "", err
	}
	return Format(root, b.PrintWidth), nil
}

// Render writes the formatted document to w.
func (b *Builder) Render(w io.Writer) error {
	s, err := b.Format()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Append appends an arbitrary document node to the current target. Walkers
// use this for caller-defined marker nodes (see Marker).
func (b *Builder) Append(d Document) *Builder {
	*b.target = append(*b.target, d)
	return b
}

// Text appends a literal text run, measuring its display width with the
// builder's character context.
func (b *Builder) Text(s string) *Builder {
	return b.Append(&Text{Content: s, Width: b.stringWidth(s)})
}

// Breakable appends a conditional break with a custom separator. The
// separator's width is measured with the builder's character context.
func (b *Builder) Breakable(sep string) *Builder {
	return b.Append(&Breakable{Separator: sep, Width: b.stringWidth(sep)})
}

// BreakableSpace appends the shared space breakable.
func (b *Builder) BreakableSpace() *Builder {
	return b.Append(BreakableSpace)
}

// BreakableEmpty appends the shared empty breakable.
func (b *Builder) BreakableEmpty() *Builder {
	return b.Append(BreakableEmpty)
}

// BreakableForce appends the shared forced breakable. A forced break is a
// break the fit check cannot avoid, so all open groups are switched to
// break mode as if a BreakParent had been appended at the same point.
func (b *Builder) BreakableForce() *Builder {
	b.propagateBreak()
	return b.Append(BreakableForce)
}

// BreakableReturn appends the shared forced breakable that does not
// re-indent the next line. Heredoc body lines and verbatim continuations
// use this to start at column 0.
func (b *Builder) BreakableReturn() *Builder {
	b.propagateBreak()
	return b.Append(BreakableReturn)
}

// BreakParent appends the break-parent marker and switches every open group
// to break mode.
func (b *Builder) BreakParent() *Builder {
	b.propagateBreak()
	return b.Append(BreakParent{})
}

// propagateBreak walks the open groups innermost-first and sets their break
// flag, stopping at the first group that is already broken (everything
// above it was switched by an earlier propagation).
func (b *Builder) propagateBreak() {
	for i := len(b.groups) - 1; i >= 0; i-- {
		if b.groups[i].broken {
			return
		}
		b.groups[i].broken = true
	}
}

// Trim appends the shared trim marker.
func (b *Builder) Trim() *Builder {
	return b.Append(Trim{})
}

// Group opens a fresh group, runs body with the group's contents as the
// append target, and closes the group again. The group node is returned so
// that callers can force it broken (Group.Break) or inspect it afterwards.
func (b *Builder) Group(body func(*Builder)) *Group {
	g := &Group{}
	b.Append(g)
	b.groups = append(b.groups, g)
	defer func() { b.groups = b.groups[:len(b.groups)-1] }()
	b.within(&g.Contents, body)
	return g
}

// Indent wraps the documents appended by body in an indentation frame one
// step deep.
func (b *Builder) Indent(body func(*Builder)) *Builder {
	n := &Indent{}
	b.Append(n)
	b.within(&n.Contents, body)
	return b
}

// Align wraps the documents appended by body in an alignment frame with a
// signed column delta.
func (b *Builder) Align(delta int, body func(*Builder)) *Builder {
	n := &Align{Delta: delta}
	b.Append(n)
	b.within(&n.Contents, body)
	return b
}

// LineSuffix defers the documents appended by body to just before the next
// line break. Suffixes deferred to the same break point flush ordered by
// descending priority.
func (b *Builder) LineSuffix(priority int, body func(*Builder)) *Builder {
	n := &LineSuffix{Priority: priority}
	b.Append(n)
	b.within(&n.Contents, body)
	return b
}

// IfBreakClause is the fluent intermediate of IfBreak; call IfFlat on it to
// attach the flat branch (possibly with an empty body).
type IfBreakClause struct {
	b       *Builder
	node    *IfBreak
	discard bool
}

// IfBreak appends a conditional node whose break branch is filled by body.
// Attach the flat branch with IfFlat.
func (b *Builder) IfBreak(body func(*Builder)) *IfBreakClause {
	n := &IfBreak{}
	b.Append(n)
	// When the enclosing group has already committed to breaking, the flat
	// branch can never render; IfFlat then runs its body against a discard
	// target, keeping only break propagation side effects. The flag is read
	// before body runs, so forced breaks inside the break branch do not
	// discard the flat branch.
	discard := b.groups[len(b.groups)-1].broken
	b.within(&n.BreakContents, body)
	return &IfBreakClause{b: b, node: n, discard: discard}
}

// IfFlat fills the flat branch of the preceding IfBreak.
func (c *IfBreakClause) IfFlat(body func(*Builder)) *Builder {
	if c.discard {
		var scratch []Document
		c.b.within(&scratch, body)
		return c.b
	}
	c.b.within(&c.node.FlatContents, body)
	return c.b
}

// within redirects the append target to list for the duration of body.
func (b *Builder) within(list *[]Document, body func(*Builder)) {
	prev := b.target
	b.target = list
	defer func() { b.target = prev }()
	body(b)
}

// --- Caller context stack --------------------------------------------------

// PushContext pushes an opaque caller value, typically the tree node being
// visited. The engine never inspects these values.
func (b *Builder) PushContext(v interface{}) {
	b.contexts = append(b.contexts, v)
}

// PopContext pops the most recently pushed context value.
func (b *Builder) PopContext() interface{} {
	assert(len(b.contexts) > 0, ErrNoContext.Error())
	v := b.contexts[len(b.contexts)-1]
	b.contexts = b.contexts[:len(b.contexts)-1]
	return v
}

// CurrentContext returns the innermost context value, or nil.
func (b *Builder) CurrentContext() interface{} {
	if len(b.contexts) == 0 {
		return nil
	}
	return b.contexts[len(b.contexts)-1]
}

// EachContext iterates the context stack innermost-first. Iteration stops
// when f returns false.
func (b *Builder) EachContext(f func(interface{}) bool) {
	for i := len(b.contexts) - 1; i >= 0; i-- {
		if !f(b.contexts[i]) {
			return
		}
	}
}

func (b *Builder) stringWidth(s string) int {
	return StringWidthInContext(s, b.Context)
}
