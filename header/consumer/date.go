package consumer

import (
	"strings"

	"github.com/zostay/go-email-header/header/field"
	"github.com/zostay/go-email-header/header/part"
)

// dateGrammar collects the text of a date, keeping comments to one side,
// and parses the result with field.ParseTime. When start is set, the grammar
// begins at that token, as the date at the end of a Received field does
// after the semicolon.
type dateGrammar struct {
	start string
}

func (dateGrammar) separators() []string { return []string{`\s+`} }

func (g dateGrammar) isStart(t token) bool {
	return g.start != "" && t.v == g.start
}

func (dateGrammar) isEnd(token) bool { return false }

func (dateGrammar) partFor(_ *scan, t token) part.Part {
	return part.NewLiteral(t.v)
}

func (dateGrammar) process(_ *scan, parts []part.Part) []part.Part {
	text, comments := withoutComments(parts)
	raw := strings.Join(strings.Fields(concat(text)), " ")
	t, err := field.ParseTime(raw)
	return []part.Part{part.NewDate(raw, t, err, comments)}
}
