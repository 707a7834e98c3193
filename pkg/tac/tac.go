// Package tac defines the three-address-code instruction model shared by the
// translator, the stepper and the front ends.
package tac

import (
	"strconv"
	"strings"
)

// Instruction is one line of the generated program: a 1-based sequence number
// and the instruction text.
//
// The generator only ever produces these text shapes:
//
//	if (<cond>) goto <N>   conditional jump
//	goto <N>               unconditional jump
//	goto__<N>_             end-of-if-branch jump (historical spelling, kept)
//	T<k>=<expr>            temporary assignment
//	<id>=T<k>              store of a temporary
//	END                    terminal marker
type Instruction struct {
	Num  int
	Text string
}

// Program is a fully materialized instruction sequence. Sequence numbers run
// 1..len(p) with no gaps and the last instruction is always END.
type Program []Instruction

// EndText is the text of the terminal instruction.
const EndText = "END"

// IsEnd reports whether ins is the terminal marker.
func (ins Instruction) IsEnd() bool {
	return ins.Text == EndText
}

// IsJump reports whether ins transfers control, in any of the three goto
// spellings.
func (ins Instruction) IsJump() bool {
	_, ok := ins.Target()
	return ok
}

// Target extracts the jump target of ins. It understands all three goto
// shapes; for anything else it reports false.
func (ins Instruction) Target() (int, bool) {
	text := ins.Text

	// "if (<cond>) goto <N>" reduces to the plain form.
	if strings.HasPrefix(text, "if ") {
		idx := strings.LastIndex(text, "goto ")
		if idx < 0 {
			return 0, false
		}
		text = text[idx:]
	}

	switch {
	case strings.HasPrefix(text, "goto__"):
		// goto__<N>_
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(text, "goto__"), "_"))
		if err != nil {
			return 0, false
		}
		return n, true
	case strings.HasPrefix(text, "goto "):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(text, "goto ")))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// String renders ins in the canonical "<num>) <text>" notation.
func (ins Instruction) String() string {
	return strconv.Itoa(ins.Num) + ") " + ins.Text
}

// String renders the whole listing, one instruction per line.
func (p Program) String() string {
	var out strings.Builder
	for _, ins := range p {
		out.WriteString(ins.String())
		out.WriteByte('\n')
	}
	return out.String()
}
