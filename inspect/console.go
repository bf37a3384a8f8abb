// Package inspect renders prettier document trees in human-readable form,
// for debugging the output of tree walkers. Dumps go to any io.Writer; on
// an interactive terminal the node kinds are colorized.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/prettier"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer traces with key 'prettier.inspect'.
func tracer() tracing.Trace {
	return tracing.Select("prettier.inspect")
}

// Config collects presentation parameters for tree dumps and for clients
// that want a terminal-derived print width.
type Config struct {
	PrintWidth int
	Colorize   bool
}

// ConfigFromTerminal is a simple helper for creating a Config. It checks
// whether stdin (file descriptor 0) is a terminal, and if so reads the terminal's width and
// sets Config.PrintWidth accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		config.Colorize = true
		w, _, err := term.GetSize(0)
		if err != nil {
			config.PrintWidth = 65
		} else {
			if w > 65 {
				config.PrintWidth = w - 10
			} else if w > 30 {
				config.PrintWidth = w - 5
			} else if w > 10 {
				config.PrintWidth = w
			} else {
				config.PrintWidth = 10
			}
		}
	} else {
		config.PrintWidth = 65
	}
	tracer().P("inspect", "console").Infof("setting print width to %d en", config.PrintWidth)
	return config
}

// TreePrinter writes an indented dump of a document tree, one node per
// line, with node kinds colorized according to a palette.
type TreePrinter struct {
	colors map[string]*color.Color
}

// NewTreePrinter creates a tree printer. colors maps node kinds ("group",
// "text", "breakable", …) to display colors; it may cover just a subset of
// the kinds. A nil map selects the default palette.
func NewTreePrinter(colors map[string]*color.Color) *TreePrinter {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &TreePrinter{colors: colors}
}

func makeDefaultPalette() map[string]*color.Color {
	return map[string]*color.Color{
		"group":     color.New(color.FgRed),
		"text":      color.New(color.FgBlue),
		"breakable": color.New(color.FgGreen),
		"ifbreak":   color.New(color.FgYellow),
	}
}

// Print dumps the tree rooted in doc to w.
func (tp *TreePrinter) Print(doc prettier.Document, w io.Writer) error {
	return tp.print(doc, w, 0)
}

func (tp *TreePrinter) print(doc prettier.Document, w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := io.WriteString(w, indent); err != nil {
		return err
	}
	tp.printLabel(doc, w)
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, branch := range branches(doc) {
		if branch.label != "" && len(branch.children) > 0 {
			fmt.Fprintf(w, "%s.%s\n", indent, branch.label)
		}
		for _, c := range branch.children {
			if err := tp.print(c, w, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (tp *TreePrinter) printLabel(doc prettier.Document, w io.Writer) {
	label := kindLabel(doc)
	if c, ok := tp.colors[kind(doc)]; ok {
		c.Fprint(w, label)
		return
	}
	io.WriteString(w, label)
}

func kindLabel(doc prettier.Document) string {
	if s, ok := doc.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", doc)
}

func kind(doc prettier.Document) string {
	switch doc.(type) {
	case *prettier.Group:
		return "group"
	case *prettier.Text:
		return "text"
	case *prettier.Breakable:
		return "breakable"
	case *prettier.IfBreak:
		return "ifbreak"
	case *prettier.Indent:
		return "indent"
	case *prettier.Align:
		return "align"
	case *prettier.LineSuffix:
		return "linesuffix"
	case prettier.Trim:
		return "trim"
	case prettier.BreakParent:
		return "breakparent"
	}
	return "marker"
}

type branch struct {
	label    string
	children []prettier.Document
}

func branches(doc prettier.Document) []branch {
	switch n := doc.(type) {
	case *prettier.Group:
		return []branch{{children: n.Contents}}
	case *prettier.Indent:
		return []branch{{children: n.Contents}}
	case *prettier.Align:
		return []branch{{children: n.Contents}}
	case *prettier.LineSuffix:
		return []branch{{children: n.Contents}}
	case *prettier.IfBreak:
		return []branch{
			{label: "break", children: n.BreakContents},
			{label: "flat", children: n.FlatContents},
		}
	}
	return nil
}
