package compiler

import "github.com/mudassir0002/CD-Project/pkg/tac"

// Compile runs the whole translation: source text in, numbered three-address
// code out. It never fails; unrecognized lines are dropped during analysis,
// so the worst case for garbage input is a program containing only END.
func Compile(src string) tac.Program {
	lines := SplitLines(src)
	blocks := Analyze(lines)
	return Generate(blocks)
}
