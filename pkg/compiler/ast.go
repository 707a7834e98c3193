package compiler

import "fmt"

// Block is implemented by every top-level structural unit the analyzer
// recovers from the source: either a single assignment or a conditional with
// an optional else branch.
type Block interface {
	blockNode()
	String() string
}

// Assignment is one source line of the form <identifier> = <expression>.
//
//	x = a+b
//	^   ^^^
//	|   Expr
//	Target
type Assignment struct {
	Target string
	Expr   string
	Raw    string // the source line as written, kept for display
}

func (*Assignment) blockNode()       {}
func (a *Assignment) String() string { return a.Target + " = " + a.Expr }

// Conditional is an if block with a flat assignment body and an optional else
// body. Branch bodies hold assignments only; anything else inside the braces
// is dropped during analysis.
type Conditional struct {
	Condition string
	Body      []*Assignment
	Else      []*Assignment
	HasElse   bool
}

func (*Conditional) blockNode() {}
func (c *Conditional) String() string {
	if c.HasElse {
		return fmt.Sprintf("if (%s) {%d} else {%d}", c.Condition, len(c.Body), len(c.Else))
	}
	return fmt.Sprintf("if (%s) {%d}", c.Condition, len(c.Body))
}
