package compiler

import (
	"fmt"

	"github.com/mudassir0002/CD-Project/pkg/tac"
)

// CodeGen walks the block sequence and emits numbered three-address code.
// Both counters are local to one Generate call, so every call is independent
// and reentrant.
type CodeGen struct {
	lineNum int // sequence number of the next instruction
	tempNum int // index of the next temporary (T1, T2, ...)
	out     tac.Program
}

func newCodeGen() *CodeGen {
	return &CodeGen{lineNum: 1, tempNum: 1}
}

// line appends one instruction at the current sequence number and advances
// the counter.
func (cg *CodeGen) line(format string, args ...any) {
	cg.out = append(cg.out, tac.Instruction{Num: cg.lineNum, Text: fmt.Sprintf(format, args...)})
	cg.lineNum++
}

// Generate emits the instruction sequence for blocks, terminated by END.
// Sequence numbers start at 1 and increase by one per instruction; temporary
// indices are shared across the whole call and never reused, no matter which
// branch an assignment came from.
func Generate(blocks []Block) tac.Program {
	cg := newCodeGen()
	for _, b := range blocks {
		switch n := b.(type) {
		case *Assignment:
			cg.genAssign(n)
		case *Conditional:
			cg.genConditional(n)
		}
	}
	cg.line(tac.EndText)
	return cg.out
}

// genAssign emits the two-instruction pair for one assignment: the expression
// into a fresh temporary, then the store of that temporary.
func (cg *CodeGen) genAssign(a *Assignment) {
	cg.line("T%d=%s", cg.tempNum, a.Expr)
	cg.line("%s=T%d", a.Target, cg.tempNum)
	cg.tempNum++
}

// genConditional emits a conditional block. With entry line L, n body
// assignments and m else assignments the layout is:
//
//	L            if (<cond>) goto L+2
//	L+1          goto L+2+2n+1        (with else: first else instruction)
//	             goto L+2+2n          (without else: past the body)
//	L+2..L+1+2n  body assignment pairs
//	L+2+2n       goto__<L+2+2n+m>_    (with else only; see below)
//	...          else assignment pairs
//
// The end-of-if jump keeps its historical spelling and arithmetic: the marker
// text is goto__<N>_ rather than goto <N>, and the target advances by m, not
// 2m, past the else body. Both are observable output that downstream
// consumers pattern-match on, so they are reproduced verbatim.
func (cg *CodeGen) genConditional(c *Conditional) {
	entry := cg.lineNum
	n := len(c.Body)

	cg.line("if (%s) goto %d", c.Condition, entry+2)

	if !c.HasElse {
		cg.line("goto %d", entry+2+2*n)
		for _, a := range c.Body {
			cg.genAssign(a)
		}
		return
	}

	m := len(c.Else)
	cg.line("goto %d", entry+2+2*n+1)
	for _, a := range c.Body {
		cg.genAssign(a)
	}
	cg.line("goto__%d_", cg.lineNum+m)
	for _, a := range c.Else {
		cg.genAssign(a)
	}
}
