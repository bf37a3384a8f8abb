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

import "fmt"

// Document is the algebraic type of layout directives. A document tree is
// produced by a Builder and consumed exactly once by Format.
//
// The set of variants is closed for the engine itself; callers that need to
// smuggle marker nodes through the stream embed Marker in their own type
// (see Marker for the rendering contract).
type Document interface {
	document()
}

// Text is a run of literal characters. Width caches the display-column
// width of Content; the Builder fills it in on construction. A zero Width
// on non-empty content is recomputed by the engine on demand, so hand-built
// trees remain valid.
type Text struct {
	Content string
	Width   int
}

func (t *Text) document() {}

func (t *Text) String() string {
	return fmt.Sprintf("Text(%q)", t.Content)
}

// columns returns the display width of the text run.
func (t *Text) columns() int {
	if t.Width == 0 && t.Content != "" {
		return StringWidth(t.Content)
	}
	return t.Width
}

// Breakable is a conditional line break. In a flat group it renders as
// Separator (Width display columns wide); in a broken group it renders as a
// newline. Force marks the break as unavoidable even inside a group that
// passed its fit check. NoIndent suppresses re-indentation of the next
// line, which then starts at column 0 (heredoc bodies, verbatim
// continuation lines).
type Breakable struct {
	Separator string
	Width     int
	Force     bool
	NoIndent  bool
}

func (br *Breakable) document() {}

func (br *Breakable) String() string {
	return fmt.Sprintf("Breakable(%q, w=%d, force=%v, noindent=%v)",
		br.Separator, br.Width, br.Force, br.NoIndent)
}

// Shared immutable breakables. These are reference-shared between all
// document trees and must never be mutated.
var (
	// BreakableSpace renders as a single space when flat.
	BreakableSpace = &Breakable{Separator: " ", Width: 1}
	// BreakableEmpty renders as nothing when flat.
	BreakableEmpty = &Breakable{}
	// BreakableForce is an unavoidable break, indenting the next line.
	BreakableForce = &Breakable{Separator: " ", Width: 1, Force: true}
	// BreakableReturn is an unavoidable break that leaves the next line at
	// column 0.
	BreakableReturn = &Breakable{Separator: " ", Width: 1, Force: true, NoIndent: true}
)

// BreakParent transitively marks every enclosing group as broken. All of
// its work happens at construction time (see Builder.BreakParent); during
// emission it is inert and produces no output.
type BreakParent struct{}

func (BreakParent) document() {}

func (BreakParent) String() string { return "BreakParent" }

// Group is a sequence of documents which render all-flat or all-broken as a
// unit. The broken flag is monotonic within a formatting pass: once set it
// never reverts (RemoveBreaks resets it as part of rewriting the tree).
type Group struct {
	Contents []Document
	broken   bool
}

func (g *Group) document() {}

func (g *Group) String() string {
	if g.broken {
		return fmt.Sprintf("Group(broken, %d)", len(g.Contents))
	}
	return fmt.Sprintf("Group(%d)", len(g.Contents))
}

// Break forces the group into break mode unconditionally. Loops with
// multi-line bodies use this instead of relying on the width check.
func (g *Group) Break() {
	g.broken = true
}

// IsBroken reports whether the group has committed to break mode.
func (g *Group) IsBroken() bool {
	return g.broken
}

// IfBreak renders BreakContents when the enclosing group breaks and
// FlatContents when it stays flat. Either list may be empty.
type IfBreak struct {
	BreakContents []Document
	FlatContents  []Document
}

func (ib *IfBreak) document() {}

func (ib *IfBreak) String() string {
	return fmt.Sprintf("IfBreak(%d|%d)", len(ib.BreakContents), len(ib.FlatContents))
}

// Indent raises the prevailing indentation by one fixed step for its
// contents.
type Indent struct {
	Contents []Document
}

func (in *Indent) document() {}

func (in *Indent) String() string { return "Indent" }

// Align adds a signed column delta to the prevailing indentation for its
// contents. Negative deltas outdent (keyword outdents such as `rescue`).
type Align struct {
	Delta    int
	Contents []Document
}

func (a *Align) document() {}

func (a *Align) String() string { return fmt.Sprintf("Align(%d)", a.Delta) }

// LineSuffix defers its contents to just before the next line break.
// Several suffixes deferred to the same break point flush ordered by
// descending Priority, insertion order breaking ties.
type LineSuffix struct {
	Priority int
	Contents []Document
}

func (ls *LineSuffix) document() {}

func (ls *LineSuffix) String() string {
	return fmt.Sprintf("LineSuffix(%d)", ls.Priority)
}

// Trim strips trailing tabs and spaces from the output produced so far and
// corrects the column counter by the number of columns removed.
type Trim struct{}

func (Trim) document() {}

func (Trim) String() string { return "Trim" }

// Marker is an embeddable escape hatch for caller-defined document nodes.
// The engine does not understand such nodes: when one implements
// fmt.Stringer its String() result is appended to the output without
// advancing the column, otherwise it is skipped. The fit predicate treats
// marker nodes as zero width.
type Marker struct{}

func (Marker) document() {}
