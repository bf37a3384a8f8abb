// Package html pretty-prints HTML fragments through the layout engine. It
// is a compact reference for how a tree walker drives the Builder API:
// a group per element, breakables at natural separation sites, line
// suffixes for comments, and forced column-0 breaks for preformatted
// bodies.
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/prettier"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// commentPriority orders comment suffixes at a flush point. Suffixes flush
// highest priority first, so deferred content mixed in with comments
// (heredoc-style bodies) lands closer to the break when its priority is
// lower than this one.
const commentPriority = 1

// FormatFragment parses an HTML fragment and pretty-prints it at the given
// print width.
func FormatFragment(input io.Reader, printWidth int) (string, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(input, context)
	if err != nil {
		return "", err
	}
	b := prettier.NewBuilder(printWidth)
	for i, n := range renderable(nodes) {
		if i > 0 {
			b.BreakableForce()
		}
		walk(b, n)
	}
	return b.Format()
}

// walk emits layout directives for a single HTML node.
func walk(b *prettier.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		words := strings.Fields(n.Data)
		for i, w := range words {
			if i > 0 {
				b.BreakableSpace()
			}
			b.Text(html.EscapeString(w))
		}
	case html.CommentNode:
		comment := "<!--" + n.Data + "-->"
		b.LineSuffix(commentPriority, func(b *prettier.Builder) {
			b.Text(" " + comment)
		})
		// A deferred comment needs a break to attach to.
		b.BreakParent()
	case html.ElementNode:
		b.PushContext(n)
		defer b.PopContext()
		if n.Data == "pre" {
			walkPre(b, n)
			return
		}
		b.Group(func(b *prettier.Builder) {
			b.Text(openTag(n))
			if voidElements[n.Data] {
				return
			}
			children := renderableChildren(n)
			if len(children) > 0 {
				b.Indent(func(b *prettier.Builder) {
					b.BreakableEmpty()
					for i, c := range children {
						if i > 0 && c.Type != html.CommentNode {
							b.BreakableSpace()
						}
						walk(b, c)
					}
				})
				b.BreakableEmpty()
			}
			b.Text("</" + n.Data + ">")
		})
	}
}

// walkPre emits a preformatted element verbatim: body lines separated by
// forced breaks that do not re-indent, so the content keeps its column-0
// shape regardless of surrounding indentation.
func walkPre(b *prettier.Builder, n *html.Node) {
	b.Group(func(b *prettier.Builder) {
		b.Text(openTag(n))
		for i, line := range strings.Split(rawText(n), "\n") {
			if i > 0 {
				b.BreakableReturn()
			}
			b.Text(line)
		}
		b.Text("</" + n.Data + ">")
	})
}

func openTag(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	return sb.String()
}

func rawText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		} else {
			sb.WriteString(rawText(c))
		}
	}
	return sb.String()
}

func renderableChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return renderable(children)
}

// renderable drops inter-element whitespace, which carries no meaning for
// the layout.
func renderable(nodes []*html.Node) []*html.Node {
	var kept []*html.Node
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}
