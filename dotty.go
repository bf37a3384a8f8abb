package prettier

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[Document]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[Document]int),
		max:     1,
	}
}

func (ids nodeids) find(doc Document) int {
	return ids.idTable[doc]
}

func (ids *nodeids) alloc(doc Document) int {
	if id := ids.find(doc); id > 0 {
		return id
	}
	ids.idTable[doc] = ids.max
	ids.max++
	return ids.max - 1
}

// Doc2Dot outputs the structure of a document tree in Graphviz DOT format
// (for debugging purposes). Outputs to writer `w`. Shared nodes, such as
// the cached breakables, appear once with an edge per use site.
func Doc2Dot(doc Document, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	dotNode(doc, &ids, w)
	io.WriteString(w, "}\n")
}

func dotNode(doc Document, ids *nodeids, w io.Writer) int {
	known := ids.find(doc)
	id := ids.alloc(doc)
	if known > 0 {
		return id
	}
	fmt.Fprintf(w, "\tnode%d [label=%q%s];\n", id, dotLabel(doc), dotStyles(doc))
	for _, edge := range dotChildren(doc) {
		cid := dotNode(edge.child, ids, w)
		if edge.label == "" {
			fmt.Fprintf(w, "\tnode%d -> node%d;\n", id, cid)
		} else {
			fmt.Fprintf(w, "\tnode%d -> node%d [label=%q];\n", id, cid, edge.label)
		}
	}
	return id
}

type dotEdge struct {
	label string
	child Document
}

func dotChildren(doc Document) []dotEdge {
	var edges []dotEdge
	add := func(label string, list []Document) {
		for _, c := range list {
			edges = append(edges, dotEdge{label: label, child: c})
		}
	}
	switch n := doc.(type) {
	case *Group:
		add("", n.Contents)
	case *Indent:
		add("", n.Contents)
	case *Align:
		add("", n.Contents)
	case *LineSuffix:
		add("", n.Contents)
	case *IfBreak:
		add("break", n.BreakContents)
		add("flat", n.FlatContents)
	}
	return edges
}

func dotLabel(doc Document) string {
	if s, ok := doc.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", doc)
}

func dotStyles(doc Document) string {
	switch n := doc.(type) {
	case *Group:
		if n.broken {
			return ",style=filled,fillcolor=salmon"
		}
		return ",style=filled,fillcolor=lightgray"
	case *Text:
		return ",shape=box"
	case *Breakable:
		if n.Force {
			return ",shape=diamond,color=red"
		}
		return ",shape=diamond"
	}
	return ""
}
