package compiler

import (
	"strings"
	"unicode"
)

// analyzer holds the cursor state for a single structural pass over the
// source lines.
type analyzer struct {
	lines []string
	pos   int // index of the next line to consume
}

// Analyze recovers the top-level block structure from the source lines.
//
// Recognized shapes:
//
//	<identifier> = <expression>
//	if (<condition>) { <assignment lines> } [else { <assignment lines> }]
//
// Braces may share a line with other tokens or sit on their own line; nesting
// is recovered by raw brace counting, not syntax validation. Lines that match
// neither shape are skipped without error, so malformed input simply yields
// fewer blocks. Branch bodies are scanned for flat assignments only; a
// conditional nested inside a branch is not recognized as structure.
func Analyze(lines []string) []Block {
	a := &analyzer{lines: lines}
	var blocks []Block

	for a.pos < len(a.lines) {
		line := strings.TrimSpace(a.lines[a.pos])

		if line == "" {
			a.pos++
			continue
		}

		if cond, ok := matchIf(line); ok {
			blocks = append(blocks, a.scanConditional(cond))
			continue
		}

		if asn, ok := matchAssign(line); ok {
			blocks = append(blocks, asn)
		}
		a.pos++
	}

	return blocks
}

// scanConditional consumes an if block starting at the current line, plus an
// immediately following else block when present. The cursor ends up past
// everything consumed.
func (a *analyzer) scanConditional(cond string) *Conditional {
	c := &Conditional{Condition: cond}
	c.Body = a.scanBraceBody()

	if a.pos < len(a.lines) && strings.HasPrefix(strings.TrimSpace(a.lines[a.pos]), "else") {
		c.Else = a.scanBraceBody()
		c.HasElse = true
	}
	return c
}

// scanBraceBody scans forward from the current line for the first line
// containing an opening brace, then counts braces until the depth returns to
// zero. Lines strictly between the open and close lines that match the
// assignment shape become body entries; everything else inside is dropped. If
// the braces never balance, the body runs to the end of input.
func (a *analyzer) scanBraceBody() []*Assignment {
	open := -1
	for j := a.pos; j < len(a.lines); j++ {
		if strings.Contains(a.lines[j], "{") {
			open = j
			break
		}
	}
	if open < 0 {
		a.pos = len(a.lines)
		return nil
	}

	end := len(a.lines)
	depth := 0
	for j := open; j < len(a.lines); j++ {
		depth += strings.Count(a.lines[j], "{") - strings.Count(a.lines[j], "}")
		if depth <= 0 {
			end = j
			break
		}
	}

	var body []*Assignment
	for j := open + 1; j < end && j < len(a.lines); j++ {
		line := strings.TrimSpace(a.lines[j])
		if line == "{" || line == "}" {
			continue
		}
		if asn, ok := matchAssign(line); ok {
			body = append(body, asn)
		}
	}

	a.pos = end + 1
	if a.pos > len(a.lines) {
		a.pos = len(a.lines)
	}
	return body
}

// matchIf recognizes `if (<condition>)` and extracts the condition text. The
// closing parenthesis is the last one on the line, so flat conditions with
// parenthesized terms survive intact.
func matchIf(line string) (string, bool) {
	if !strings.HasPrefix(line, "if") {
		return "", false
	}
	rest := strings.TrimSpace(line[2:])
	if !strings.HasPrefix(rest, "(") {
		return "", false
	}
	rest = rest[1:]
	if end := strings.LastIndex(rest, ")"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// matchAssign recognizes `<identifier> = <expression>` and splits it at the
// first equals sign. Whitespace around the sign is insignificant.
func matchAssign(line string) (*Assignment, bool) {
	eq := strings.Index(line, "=")
	if eq <= 0 {
		return nil, false
	}
	target := strings.TrimSpace(line[:eq])
	expr := strings.TrimSpace(line[eq+1:])
	if !isIdentifier(target) || expr == "" || strings.HasPrefix(expr, "=") {
		return nil, false
	}
	return &Assignment{Target: target, Expr: expr, Raw: strings.TrimSpace(line)}, true
}

// isIdentifier reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
