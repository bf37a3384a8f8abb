package prettier

import (
	"strings"
	"testing"
)

func TestCachedBreakablesAreShared(t *testing.T) {
	b := NewBuilder(80)
	b.BreakableSpace()
	b.BreakableSpace()
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	if root.Contents[0] != root.Contents[1] {
		t.Error("expected both appends to reference the shared breakable")
	}
	if root.Contents[0].(*Breakable) != BreakableSpace {
		t.Error("expected the shared BreakableSpace instance")
	}
}

func TestCachedBreakableShapes(t *testing.T) {
	cases := map[string]struct {
		br       *Breakable
		sep      string
		width    int
		force    bool
		noindent bool
	}{
		"space":  {BreakableSpace, " ", 1, false, false},
		"empty":  {BreakableEmpty, "", 0, false, false},
		"force":  {BreakableForce, " ", 1, true, false},
		"return": {BreakableReturn, " ", 1, true, true},
	}
	for name, c := range cases {
		if c.br.Separator != c.sep || c.br.Width != c.width ||
			c.br.Force != c.force || c.br.NoIndent != c.noindent {
			t.Errorf("%s: unexpected shape %v", name, c.br)
		}
	}
}

func TestGroupBreakFlag(t *testing.T) {
	g := &Group{}
	if g.IsBroken() {
		t.Error("fresh group must not be broken")
	}
	g.Break()
	if !g.IsBroken() {
		t.Error("expected Break to set the flag")
	}
}

func TestTextColumnsFallback(t *testing.T) {
	// Hand-built text nodes without a cached width still measure.
	txt := &Text{Content: "abc"}
	if got := txt.columns(); got != 3 {
		t.Errorf("expected lazy width 3, got %d", got)
	}
}

func TestDoc2DotListsVariants(t *testing.T) {
	b := NewBuilder(80)
	b.Group(func(b *Builder) {
		b.Text("a")
		b.BreakableSpace()
		b.IfBreak(func(b *Builder) {
			b.Text(",")
		}).IfFlat(func(b *Builder) {})
	})
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	var sb strings.Builder
	Doc2Dot(root, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT output, got %q", dot)
	}
	for _, want := range []string{"Group", "Text", "Breakable", "IfBreak"} {
		if !strings.Contains(dot, want) {
			t.Errorf("expected dump to mention %s", want)
		}
	}
}
