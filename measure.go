package prettier

// Introspection helpers for tree walkers. Both operate on the document tree
// before it is handed to Format.

// LastPosition simulates a flat walk of doc and returns the column the walk
// ends on. The column resets to 0 at every breakable, so the result is the
// width of the trailing line segment of doc. Walkers use this to align
// continuation arguments with the end of a message name.
//
// Deferred line suffixes do not contribute to the line and are skipped.
func LastPosition(doc Document) int {
	position := 0
	var walk func(d Document)
	walk = func(d Document) {
		switch n := d.(type) {
		case *Text:
			position += n.columns()
		case *Breakable:
			position = 0
		case *Group:
			for _, c := range n.Contents {
				walk(c)
			}
		case *Indent:
			for _, c := range n.Contents {
				walk(c)
			}
		case *Align:
			for _, c := range n.Contents {
				walk(c)
			}
		case *IfBreak:
			for _, c := range n.FlatContents {
				walk(c)
			}
		}
	}
	walk(doc)
	return position
}

// RemoveBreaks destructively rewrites doc so that it can no longer break:
// every breakable is replaced by its flat separator, forced breakables are
// replaced by the replacement literal, and every group's break flag is
// reset. Walkers use this to forcibly inline subtrees such as block
// parameter lists.
//
// An empty replacement defaults to ";".
func RemoveBreaks(doc Document, replace string) {
	if replace == "" {
		replace = ";"
	}
	switch n := doc.(type) {
	case *Group:
		n.broken = false
		removeBreaksInList(n.Contents, replace)
	case *Indent:
		removeBreaksInList(n.Contents, replace)
	case *Align:
		removeBreaksInList(n.Contents, replace)
	case *LineSuffix:
		removeBreaksInList(n.Contents, replace)
	case *IfBreak:
		removeBreaksInList(n.BreakContents, replace)
		removeBreaksInList(n.FlatContents, replace)
	}
}

func removeBreaksInList(list []Document, replace string) {
	for i, d := range list {
		if br, ok := d.(*Breakable); ok {
			s := br.Separator
			if br.Force {
				s = replace
			}
			list[i] = &Text{Content: s, Width: StringWidth(s)}
			continue
		}
		RemoveBreaks(d, replace)
	}
}
