/*
Package prettier implements a layout engine for source-code pretty-printing
in the tradition of Wadler's “A Prettier Printer”.

Clients describe their output as a tree of layout documents: literal text,
conditional line breaks, groups, indentation frames, and deferred line
suffixes. The engine then renders the tree against a maximum print width,
deciding per group whether its contents stay on one line (“flat”) or break
across several lines.

Documents are assembled through a Builder, which manages the current append
target and the stack of open groups:

	b := prettier.NewBuilder(80)
	b.Group(func(b *prettier.Builder) {
		b.Text("[")
		b.Indent(func(b *prettier.Builder) {
			b.BreakableEmpty()
			b.Text("1, 2, 3")
		})
		b.BreakableEmpty()
		b.Text("]")
	})
	s, _ := b.Format()

Rendering is driven by Format, which walks the document tree with an explicit
command stack and consults a fit predicate for every undecided group. Output
is deterministic: the same tree rendered twice at the same width produces
byte-identical text.

Text widths are measured in display columns (grapheme clusters, East Asian
width rules), not in bytes. Package `html` contains a small demonstration
walker that drives the Builder API for HTML fragments; package `inspect`
renders document trees for debugging.
*/
package prettier

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'prettier'.
func tracer() tracing.Trace {
	return tracing.Select("prettier")
}

// LayoutError is the package error type.
type LayoutError string

func (e LayoutError) Error() string {
	return string(e)
}

// ErrOpenGroup signals that a document has been requested from a builder
// while group or wrapper blocks are still open.
const ErrOpenGroup = LayoutError("builder has unclosed layout blocks")

// ErrNoContext is flagged when the caller context stack is popped while empty.
const ErrNoContext = LayoutError("context stack is empty")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
