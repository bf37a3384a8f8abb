package prettier

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"sort"
	"strings"
)

// indentStep is the fixed indentation increment of an Indent frame, in
// columns.
const indentStep = 2

// Rendering modes, inherited down the document tree. The root command
// starts in break mode, so forced newlines at the top level never need a
// fit check.
type mode int8

const (
	modeBreak mode = iota
	modeFlat
)

func (m mode) String() string {
	if m == modeBreak {
		return "break"
	}
	return "flat"
}

// command is one unit of work on the emission stack: a document to render
// at a given indentation in a given mode.
type command struct {
	indent int
	mode   mode
	doc    Document
}

// Format renders the document tree rooted in root at the given print width.
// Formatting is total: every valid tree yields a string. A non-positive
// width falls back to DefaultPrintWidth.
func Format(root *Group, printWidth int) string {
	if printWidth <= 0 {
		printWidth = DefaultPrintWidth
	}
	p := printer{width: printWidth}
	p.cmds = []command{{indent: 0, mode: modeBreak, doc: root}}
	p.run()
	return p.out.String()
}

// printer holds the working state of a single formatting pass. All of it is
// heap-local to the pass; nothing is retained after Format returns.
type printer struct {
	width     int
	out       outputBuffer
	column    int
	cmds      []command
	suffixes  []command // deferred *LineSuffix commands, in encounter order
	remeasure bool
}

func (p *printer) run() {
	for {
		for len(p.cmds) > 0 {
			cmd := p.cmds[len(p.cmds)-1]
			p.cmds = p.cmds[:len(p.cmds)-1]
			switch d := cmd.doc.(type) {
			case *Text:
				p.out.write(d.Content)
				p.column += d.columns()
			case *Group:
				p.printGroup(cmd, d)
			case *Breakable:
				p.printBreakable(cmd, d)
			case *Indent:
				p.pushContents(cmd.indent+indentStep, cmd.mode, d.Contents)
			case *Align:
				p.pushContents(cmd.indent+d.Delta, cmd.mode, d.Contents)
			case *IfBreak:
				if cmd.mode == modeBreak {
					p.pushContents(cmd.indent, cmd.mode, d.BreakContents)
				} else {
					p.pushContents(cmd.indent, cmd.mode, d.FlatContents)
				}
			case *LineSuffix:
				p.suffixes = append(p.suffixes, cmd)
			case Trim:
				p.column -= p.out.trim()
			case BreakParent:
				// all done during construction
			default:
				// Caller marker node: emit its text, if any, without
				// advancing the column.
				if s, ok := cmd.doc.(fmt.Stringer); ok {
					p.out.write(s.String())
				}
			}
		}
		// Suffixes deferred past the last break of the document flush
		// before Format returns (trailing comments at end of input).
		if len(p.suffixes) == 0 {
			return
		}
		p.pushSuffixes()
	}
}

// printGroup decides between flat and break mode for a group. A group
// reached in flat mode has already been decided by an ancestor's fit check
// and simply inherits, unless the remeasure latch is set: then a forced
// break was emitted inside a speculatively-flat region and the decision
// must be redone.
func (p *printer) printGroup(cmd command, g *Group) {
	if cmd.mode == modeFlat && !p.remeasure {
		m := modeFlat
		if g.broken {
			m = modeBreak
		}
		p.pushContents(cmd.indent, m, g.Contents)
		return
	}
	p.remeasure = false
	if g.broken {
		p.pushContents(cmd.indent, modeBreak, g.Contents)
		return
	}
	next := make([]command, len(g.Contents))
	for i, c := range g.Contents {
		next[i] = command{indent: cmd.indent, mode: modeFlat, doc: c}
	}
	if fits(next, p.cmds, p.width-p.column) {
		for i := len(next) - 1; i >= 0; i-- {
			p.cmds = append(p.cmds, next[i])
		}
		return
	}
	tracer().Debugf("group of %d does not fit at column %d, breaking", len(g.Contents), p.column)
	for i := len(next) - 1; i >= 0; i-- {
		next[i].mode = modeBreak
		p.cmds = append(p.cmds, next[i])
	}
}

func (p *printer) printBreakable(cmd command, d *Breakable) {
	if cmd.mode == modeFlat {
		if !d.Force {
			p.out.write(d.Separator)
			p.column += d.Width
			return
		}
		// A forced break inside a group that passed its fit check: the
		// next group decision must not trust the inherited flat mode.
		p.remeasure = true
	}
	if len(p.suffixes) > 0 {
		// Deferred suffixes go out first; re-run this break afterwards.
		p.cmds = append(p.cmds, cmd)
		p.pushSuffixes()
		return
	}
	if d.NoIndent {
		p.out.writeLine("\n")
		p.column = 0
		return
	}
	indent := max(0, cmd.indent)
	p.out.writeLine("\n" + strings.Repeat(" ", indent))
	p.column = indent
}

// pushSuffixes replays the deferred line-suffix contents, highest priority
// first, insertion order breaking ties.
func (p *printer) pushSuffixes() {
	entries := p.suffixes
	p.suffixes = nil
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].doc.(*LineSuffix).Priority > entries[j].doc.(*LineSuffix).Priority
	})
	for i := len(entries) - 1; i >= 0; i-- {
		ls := entries[i].doc.(*LineSuffix)
		p.pushContents(entries[i].indent, entries[i].mode, ls.Contents)
	}
}

func (p *printer) pushContents(indent int, m mode, contents []Document) {
	for i := len(contents) - 1; i >= 0; i-- {
		p.cmds = append(p.cmds, command{indent: indent, mode: m, doc: contents[i]})
	}
}
