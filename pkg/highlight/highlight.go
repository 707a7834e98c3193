// Package highlight maps generated instructions back to the source lines they
// came from, so the front ends can highlight the line being executed.
//
// The mapping is heuristic: it re-matches condition and assignment text as
// substrings of the original source. When the same variable or expression
// text appears on more than one line, the first containing line wins, which
// can mis-highlight. That is a known limitation of this layer, not of the
// translator.
package highlight

import (
	"strings"

	"github.com/mudassir0002/CD-Project/pkg/compiler"
	"github.com/mudassir0002/CD-Project/pkg/tac"
)

// Map resolves instructions of one generated program to 1-based line numbers
// of the source it was generated from.
type Map struct {
	lines []string
	byNum map[int]int
}

// New builds the reverse map for prog against its original source. Jump
// instructions inherit the line of the conditional that produced them; END
// maps to no line.
func New(src string, prog tac.Program) *Map {
	m := &Map{
		lines: compiler.SplitLines(src),
		byNum: make(map[int]int, len(prog)),
	}

	condLine := 0 // line of the most recent conditional, 0 when none
	for _, ins := range prog {
		switch {
		case strings.HasPrefix(ins.Text, "if ("):
			cond := conditionText(ins.Text)
			if ln := m.findLine(cond); ln > 0 {
				condLine = ln
				m.byNum[ins.Num] = ln
			}
		case strings.HasPrefix(ins.Text, "goto"):
			if condLine > 0 {
				m.byNum[ins.Num] = condLine
			}
		case ins.IsEnd():
			// no source line
		default:
			if ln := m.matchAssignment(ins.Text); ln > 0 {
				m.byNum[ins.Num] = ln
			}
		}
	}
	return m
}

// LineFor reports the 1-based source line for ins, when one could be derived.
func (m *Map) LineFor(ins tac.Instruction) (int, bool) {
	ln, ok := m.byNum[ins.Num]
	return ln, ok
}

// Lines returns the source lines the map was built against, in the same
// numbering the translator saw.
func (m *Map) Lines() []string {
	return m.lines
}

// matchAssignment resolves the two generated shapes of an assignment pair:
// T<k>=<expr> matches by expression text, <id>=T<k> matches by target name.
func (m *Map) matchAssignment(text string) int {
	eq := strings.Index(text, "=")
	if eq <= 0 {
		return 0
	}
	left, right := text[:eq], text[eq+1:]

	if isTemp(left) {
		return m.findAssignLine(right)
	}
	return m.findAssignLine(left)
}

// findAssignLine finds the first source line that contains sub and an equals
// sign. Plain containment, so shared identifiers can resolve to the wrong
// line.
func (m *Map) findAssignLine(sub string) int {
	for i, line := range m.lines {
		if strings.Contains(line, sub) && strings.Contains(line, "=") {
			return i + 1
		}
	}
	return 0
}

// findLine finds the first source line containing sub.
func (m *Map) findLine(sub string) int {
	if sub == "" {
		return 0
	}
	for i, line := range m.lines {
		if strings.Contains(line, sub) {
			return i + 1
		}
	}
	return 0
}

// conditionText extracts <cond> from "if (<cond>) goto <N>".
func conditionText(text string) string {
	text = strings.TrimPrefix(text, "if (")
	if end := strings.LastIndex(text, ") goto "); end >= 0 {
		text = text[:end]
	}
	return text
}

// isTemp reports whether s is a synthesized temporary name: T followed by
// digits only.
func isTemp(s string) bool {
	if len(s) < 2 || s[0] != 'T' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
