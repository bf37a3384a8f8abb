package prettier

import (
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Text measurement is done in display columns, not bytes. Widths follow
// UAX#11 East Asian width rules, applied per grapheme cluster. Resolution
// of ambiguous-width characters depends on a uax11.Context; LatinContext is
// used unless the builder is configured otherwise.

// StringWidth returns the width of s in display columns, resolving
// ambiguous characters in a Latin context.
func StringWidth(s string) int {
	return StringWidthInContext(s, uax11.LatinContext)
}

// StringWidthInContext returns the width of s in display columns. A nil
// context falls back to uax11.LatinContext.
func StringWidthInContext(s string, context *uax11.Context) int {
	if isASCII(s) {
		return len(s)
	}
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
