package consumer

import (
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

// genericGrammar parses unstructured text: words separated by whitespace,
// with comments and quoted-strings recognized. Runs of whitespace become a
// single space and encoded words are decoded.
type genericGrammar struct{}

func (genericGrammar) separators() []string { return []string{`\s+`} }
func (genericGrammar) isStart(token) bool   { return false }
func (genericGrammar) isEnd(token) bool     { return false }

func (genericGrammar) partFor(s *scan, t token) part.Part {
	return mimeParts.word(s, t)
}

// process joins the text into literals. A comment ends the current literal
// and is returned in its place in the sequence.
func (genericGrammar) process(_ *scan, parts []part.Part) []part.Part {
	return joinText(filterSpaces(parts))
}

func joinText(parts []part.Part) []part.Part {
	var (
		out  []part.Part
		run  strings.Builder
		have bool
	)

	flush := func() {
		if have {
			out = append(out, part.NewLiteral(run.String()))
			run.Reset()
			have = false
		}
	}

	for _, p := range parts {
		if c, isComment := p.(*part.Comment); isComment {
			flush()
			out = append(out, c)
			continue
		}
		run.WriteString(p.Value())
		have = true
	}
	flush()

	return out
}
