package prettier

// fits decides whether a candidate flat layout fits on the current line.
// It simulates the emission loop over next, followed by the printer's
// remaining command stack rest (consumed top-down), until either the budget
// of remaining columns is exhausted, a line break is reached, or the stream
// ends. rest supplies the trailing context: a closing bracket right behind
// the group still has to fit on the same line.
//
// The commands of next are measured in flat mode; commands taken from rest
// keep the mode they were pushed with. Groups that have already committed
// to breaking switch their subtree to break mode, and any break reached in
// break mode ends the line, which by definition fits.
func fits(next []command, rest []command, remaining int) bool {
	stack := make([]command, len(next))
	for i, cmd := range next {
		stack[len(next)-1-i] = cmd
	}
	restTop := len(rest)
	var scratch outputBuffer
	for {
		if remaining < 0 {
			return false
		}
		if len(stack) == 0 {
			if restTop == 0 {
				return true
			}
			restTop--
			stack = append(stack, rest[restTop])
			continue
		}
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch d := cmd.doc.(type) {
		case *Text:
			scratch.write(d.Content)
			remaining -= d.columns()
		case *Breakable:
			if cmd.mode == modeFlat && !d.Force {
				scratch.write(d.Separator)
				remaining -= d.Width
				continue
			}
			// The line ends here; whatever follows lands on a new line.
			return true
		case *Group:
			m := cmd.mode
			if d.broken {
				m = modeBreak
			}
			for i := len(d.Contents) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent, m, d.Contents[i]})
			}
		case *Indent:
			for i := len(d.Contents) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent + indentStep, cmd.mode, d.Contents[i]})
			}
		case *Align:
			for i := len(d.Contents) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent + d.Delta, cmd.mode, d.Contents[i]})
			}
		case *IfBreak:
			contents := d.FlatContents
			if cmd.mode == modeBreak {
				contents = d.BreakContents
			}
			for i := len(contents) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent, cmd.mode, contents[i]})
			}
		case Trim:
			remaining += scratch.trim()
		default:
			// Line suffixes, break parents and caller markers occupy no
			// space on the current line.
		}
	}
}
