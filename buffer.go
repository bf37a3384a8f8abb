package prettier

import "strings"

// The output of a formatting pass is collected as a sequence of string
// fragments. Fragments come in two kinds: ordinary text, and line fragments
// holding a newline plus the indentation of the following line. Keeping the
// kinds apart lets the trim marker strip trailing whitespace from the
// current line without eating the line's own indentation.

type fragment struct {
	text string
	line bool
}

type outputBuffer struct {
	frags []fragment
}

func (ob *outputBuffer) write(s string) {
	if s == "" {
		return
	}
	ob.frags = append(ob.frags, fragment{text: s})
}

func (ob *outputBuffer) writeLine(s string) {
	ob.frags = append(ob.frags, fragment{text: s, line: true})
}

// trim removes trailing tabs and spaces from the buffer tail and returns
// the number of columns removed. Fragments consisting only of tabs and
// spaces are popped whole; a mixed tail fragment is replaced by its
// right-stripped form. Line fragments are left alone, so trimming directly
// after a break is a no-op.
func (ob *outputBuffer) trim() int {
	trimmed := 0
	for len(ob.frags) > 0 {
		last := ob.frags[len(ob.frags)-1]
		if last.line {
			break
		}
		stripped := strings.TrimRight(last.text, " \t")
		if stripped == "" {
			trimmed += len(last.text)
			ob.frags = ob.frags[:len(ob.frags)-1]
			continue
		}
		trimmed += len(last.text) - len(stripped)
		ob.frags[len(ob.frags)-1].text = stripped
		break
	}
	return trimmed
}

func (ob *outputBuffer) String() string {
	var sb strings.Builder
	for _, f := range ob.frags {
		sb.WriteString(f.text)
	}
	return sb.String()
}
