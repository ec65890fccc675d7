package consumer

import (
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// quotedGrammar parses a quoted-string. Whitespace inside the quotes is kept,
// but line breaks are removed.
type quotedGrammar struct{}

func (quotedGrammar) separators() []string { return []string{`"`} }
func (quotedGrammar) isStart(t token) bool { return t.v == `"` }
func (quotedGrammar) isEnd(t token) bool   { return t.v == `"` }

func (quotedGrammar) partFor(s *scan, t token) part.Part {
	if t.encoded {
		return mimeParts.text(s, t)
	}
	return part.NewLiteral(lineBreaks.Replace(t.v))
}

func (quotedGrammar) process(_ *scan, parts []part.Part) []part.Part {
	return []part.Part{part.NewQuoted(concat(parts))}
}
