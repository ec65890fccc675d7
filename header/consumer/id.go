package consumer

import (
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

// idListGrammar is the root of the Message-ID, Content-ID, In-Reply-To and
// References fields: any number of ids, separated by whitespace and
// comments.
type idListGrammar struct{}

func (idListGrammar) separators() []string { return nil }
func (idListGrammar) isStart(token) bool   { return false }
func (idListGrammar) isEnd(token) bool     { return false }

func (idListGrammar) partFor(*scan, token) part.Part { return nil }

func (idListGrammar) process(_ *scan, parts []part.Part) []part.Part {
	out := parts[:0:0]
	for _, p := range parts {
		switch p.(type) {
		case *part.ID, *part.Comment:
			out = append(out, p)
		}
	}
	return out
}

// idGrammar parses a single "<id>". Any token but whitespace starts an id,
// so an id missing its opening bracket is still read.
type idGrammar struct{}

func (idGrammar) separators() []string { return []string{`<`, `>`, `\s+`} }
func (idGrammar) isStart(t token) bool { return !t.space }
func (idGrammar) isEnd(t token) bool   { return t.v == ">" }

func (idGrammar) partFor(_ *scan, t token) part.Part {
	if t.space || t.v == "<" {
		return nil
	}
	return part.NewLiteral(t.v)
}

func (idGrammar) process(_ *scan, parts []part.Part) []part.Part {
	text, comments := withoutComments(parts)

	var id strings.Builder
	for _, p := range text {
		if q, isQuoted := p.(*part.Quoted); isQuoted {
			id.WriteString(q.String())
			continue
		}
		id.WriteString(p.Value())
	}

	out := commentParts(comments)
	if id.Len() > 0 {
		out = append([]part.Part{part.NewID(id.String())}, out...)
	}
	return out
}
