package html

import (
	"strings"
	"testing"
)

func TestFormatFragmentFlat(t *testing.T) {
	in := `<ul><li>alpha</li><li>beta</li></ul>`
	got, err := FormatFragment(strings.NewReader(in), 40)
	if err != nil {
		t.Fatalf("FormatFragment failed: %v", err)
	}
	if want := "<ul><li>alpha</li> <li>beta</li></ul>"; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestFormatFragmentBreaksList(t *testing.T) {
	in := `<ul><li>alpha</li><li>beta</li></ul>`
	got, err := FormatFragment(strings.NewReader(in), 20)
	if err != nil {
		t.Fatalf("FormatFragment failed: %v", err)
	}
	want := "<ul>\n  <li>alpha</li>\n  <li>beta</li>\n</ul>"
	if got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestFormatFragmentCommentBecomesLineSuffix(t *testing.T) {
	in := `<p>hi<!--note--></p>`
	got, err := FormatFragment(strings.NewReader(in), 40)
	if err != nil {
		t.Fatalf("FormatFragment failed: %v", err)
	}
	want := "<p>\n  hi <!--note-->\n</p>"
	if got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestFormatFragmentPreKeepsColumns(t *testing.T) {
	in := "<pre>first\n  second</pre>"
	got, err := FormatFragment(strings.NewReader(in), 80)
	if err != nil {
		t.Fatalf("FormatFragment failed: %v", err)
	}
	want := "<pre>first\n  second</pre>"
	if got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestFormatFragmentAttributes(t *testing.T) {
	in := `<a href="https://example.org">link</a>`
	got, err := FormatFragment(strings.NewReader(in), 80)
	if err != nil {
		t.Fatalf("FormatFragment failed: %v", err)
	}
	want := `<a href="https://example.org">link</a>`
	if got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestFormatFragmentVoidElement(t *testing.T) {
	in := `<p>a<br>b</p>`
	got, err := FormatFragment(strings.NewReader(in), 80)
	if err != nil {
		t.Fatalf("FormatFragment failed: %v", err)
	}
	want := "<p>a <br> b</p>"
	if got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}
