// Package compiler translates a tiny structured imperative language —
// straight-line assignments plus single-level if/else blocks — into numbered
// three-address code.
//
// Pipeline: source text → SplitLines → Analyze → Generate → tac.Program
package compiler
