package consumer

import "github.com/zostay/go-email-header/header/part"

// subjectGrammar is like genericGrammar, but comments and quotes have no
// meaning and whitespace is kept as it was, unless it starts with a line
// break, in which case it becomes a single space.
type subjectGrammar struct{}

func (subjectGrammar) separators() []string { return []string{`\s+`} }
func (subjectGrammar) isStart(token) bool   { return false }
func (subjectGrammar) isEnd(token) bool     { return false }

func (subjectGrammar) partFor(s *scan, t token) part.Part {
	if !t.space {
		return mimeParts.text(s, t)
	}
	if t.v[0] == '\r' || t.v[0] == '\n' {
		return part.NewToken(" ")
	}
	return part.NewToken(t.v)
}

func (subjectGrammar) process(_ *scan, parts []part.Part) []part.Part {
	return []part.Part{part.NewLiteral(concat(filterSpaces(parts)))}
}
