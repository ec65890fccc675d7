package consumer

import "github.com/zostay/go-email-header/header/part"

// commentGrammar parses a parenthesized comment. Its sub-consumers are
// itself, for nesting, and the quoted-string grammar.
type commentGrammar struct{}

func (commentGrammar) separators() []string { return []string{`\(`, `\)`} }
func (commentGrammar) isStart(t token) bool { return t.v == "(" }
func (commentGrammar) isEnd(t token) bool   { return t.v == ")" }

// partFor keeps whitespace verbatim so the flattened comment matches the
// input.
func (commentGrammar) partFor(s *scan, t token) part.Part {
	if t.encoded {
		return mimeParts.text(s, t)
	}
	return part.NewToken(t.v)
}

func (commentGrammar) process(_ *scan, parts []part.Part) []part.Part {
	return []part.Part{part.NewComment(parts)}
}
