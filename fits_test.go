package prettier

import "testing"

func text(s string) *Text {
	return &Text{Content: s, Width: StringWidth(s)}
}

func TestFitsWithinBudget(t *testing.T) {
	next := []command{{indent: 0, mode: modeFlat, doc: text("abcd")}}
	if !fits(next, nil, 4) {
		t.Error("expected 4 columns of text to fit a budget of 4")
	}
	if fits(next, nil, 3) {
		t.Error("expected 4 columns of text to overflow a budget of 3")
	}
}

func TestFitsConsultsTrailingContext(t *testing.T) {
	next := []command{{indent: 0, mode: modeFlat, doc: text("abcd")}}
	rest := []command{{indent: 0, mode: modeFlat, doc: text("ef")}}
	if fits(next, rest, 5) {
		t.Error("expected the trailing text to push the plan over budget")
	}
	if !fits(next, rest, 6) {
		t.Error("expected plan plus trailing context to fit a budget of 6")
	}
}

func TestFitsStopsAtTrailingBreak(t *testing.T) {
	next := []command{{indent: 0, mode: modeFlat, doc: text("abcd")}}
	rest := []command{
		{indent: 0, mode: modeFlat, doc: text("never reached")},
		{indent: 0, mode: modeBreak, doc: BreakableSpace},
	}
	// rest is a stack snapshot: the breakable on top ends the line before
	// the text below it is ever consulted.
	if !fits(next, rest, 4) {
		t.Error("expected the line to end at the trailing break")
	}
}

func TestFitsForcedBreakEndsLine(t *testing.T) {
	next := []command{
		{indent: 0, mode: modeFlat, doc: text("ab")},
		{indent: 0, mode: modeFlat, doc: BreakableForce},
		{indent: 0, mode: modeFlat, doc: text("this line is not measured")},
	}
	if !fits(next, nil, 2) {
		t.Error("expected a forced break to end the measured line")
	}
	if fits(next, nil, 1) {
		t.Error("expected the text before the forced break to be measured")
	}
}

func TestFitsDescendsBrokenGroupsInBreakMode(t *testing.T) {
	inner := &Group{Contents: []Document{
		text("ab"),
		BreakableSpace,
		text("overflow overflow"),
	}}
	inner.Break()
	next := []command{{indent: 0, mode: modeFlat, doc: inner}}
	// The broken group's breakable ends the line after "ab".
	if !fits(next, nil, 2) {
		t.Error("expected the broken group to end the line at its breakable")
	}
}

func TestFitsTrimReturnsColumns(t *testing.T) {
	next := []command{
		{indent: 0, mode: modeFlat, doc: text("ab")},
		{indent: 0, mode: modeFlat, doc: text("   ")},
		{indent: 0, mode: modeFlat, doc: Trim{}},
		{indent: 0, mode: modeFlat, doc: text("cd")},
	}
	// Without the trim the plan measures 7 columns; the returned
	// whitespace brings it down to 4. The whitespace itself still has to
	// fit before the trim is reached.
	if !fits(next, nil, 5) {
		t.Error("expected trimmed whitespace to be returned to the budget")
	}
	if fits(next, nil, 4) {
		t.Error("expected the untrimmed whitespace to be measured first")
	}
}

func TestFitsIfBreakFollowsMode(t *testing.T) {
	ib := &IfBreak{
		BreakContents: []Document{text("long break branch")},
		FlatContents:  []Document{text("ok")},
	}
	next := []command{{indent: 0, mode: modeFlat, doc: ib}}
	if !fits(next, nil, 2) {
		t.Error("expected the flat branch to be measured in flat mode")
	}
	next = []command{{indent: 0, mode: modeBreak, doc: ib}}
	if fits(next, nil, 2) {
		t.Error("expected the break branch to be measured in break mode")
	}
}
