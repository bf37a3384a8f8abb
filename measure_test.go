package prettier

import "testing"

func TestLastPositionTrailingSegment(t *testing.T) {
	b := NewBuilder(80)
	b.Group(func(b *Builder) {
		b.Text("receiver.method(")
		b.BreakableEmpty()
		b.Text("arg")
	})
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	if got := LastPosition(root); got != 3 {
		t.Errorf("expected last position 3 (width of %q), got %d", "arg", got)
	}
}

func TestLastPositionWithoutBreaks(t *testing.T) {
	b := NewBuilder(80)
	b.Group(func(b *Builder) {
		b.Text("foo")
		b.Indent(func(b *Builder) {
			b.Text(".bar")
		})
	})
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	if got := LastPosition(root); got != 7 {
		t.Errorf("expected last position 7, got %d", got)
	}
}

func TestLastPositionSkipsLineSuffix(t *testing.T) {
	b := NewBuilder(80)
	b.Group(func(b *Builder) {
		b.Text("stmt")
		b.LineSuffix(1, func(b *Builder) {
			b.Text(" # ignored")
		})
	})
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	if got := LastPosition(root); got != 4 {
		t.Errorf("expected deferred content to be skipped, got %d", got)
	}
}

func TestRemoveBreaksInlinesSubtree(t *testing.T) {
	b := NewBuilder(5)
	g := b.Group(func(b *Builder) {
		b.Text("a")
		b.BreakableSpace()
		b.Text("b")
		b.BreakableForce()
		b.Text("c")
	})
	if !g.IsBroken() {
		t.Fatal("expected the forced break to mark the group broken")
	}
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	RemoveBreaks(root, ";")
	if g.IsBroken() {
		t.Error("expected RemoveBreaks to reset the break flag")
	}
	got := Format(root, 5)
	if want := "a b;c"; got != want {
		t.Fatalf("unexpected inlined output: got %q want %q", got, want)
	}
}

func TestRemoveBreaksDefaultReplacement(t *testing.T) {
	b := NewBuilder(80)
	b.Group(func(b *Builder) {
		b.Text("x")
		b.BreakableForce()
		b.Text("y")
	})
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	RemoveBreaks(root, "")
	if got, want := Format(root, 80), "x;y"; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestRemoveBreaksDescendsIfBreak(t *testing.T) {
	b := NewBuilder(80)
	b.Group(func(b *Builder) {
		b.IfBreak(func(b *Builder) {
			b.BreakableForce()
		}).IfFlat(func(b *Builder) {
			b.BreakableSpace()
		})
	})
	root, err := b.Doc()
	if err != nil {
		t.Fatalf("Doc failed: %v", err)
	}
	RemoveBreaks(root, ";")
	ib := root.Contents[0].(*Group).Contents[0].(*IfBreak)
	if _, ok := ib.BreakContents[0].(*Text); !ok {
		t.Errorf("expected break branch to be rewritten, got %T", ib.BreakContents[0])
	}
	if _, ok := ib.FlatContents[0].(*Text); !ok {
		t.Errorf("expected flat branch to be rewritten, got %T", ib.FlatContents[0])
	}
}
