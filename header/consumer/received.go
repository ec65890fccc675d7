package consumer

import (
	"regexp"
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

// receivedKeywords are the clause names of a Received trace field.
var receivedKeywords = []string{"from", "by", "via", "with", "id", "for"}

// receivedHostRe matches the comment after a from or by domain that gives
// the hostname and address the relay actually saw, e.g.
// "mail.example.com [192.0.2.1]".
var receivedHostRe = regexp.MustCompile(`(?i)^([a-z0-9\-]+\.[a-z0-9\-\.]+)?\s*(?:\[(?:IPv[64]:)?([a-f\d\.\:]+)\])?\s*$`)

// receivedGrammar is the root of a Received field. It has no syntax of its
// own and skips tokens until a keyword clause, the date or a comment
// claims one.
type receivedGrammar struct{}

func (receivedGrammar) separators() []string { return nil }
func (receivedGrammar) isStart(token) bool   { return false }
func (receivedGrammar) isEnd(token) bool     { return false }

func (receivedGrammar) partFor(*scan, token) part.Part { return nil }

func (receivedGrammar) process(_ *scan, parts []part.Part) []part.Part {
	out := parts[:0:0]
	for _, p := range parts {
		if _, isToken := p.(*part.Token); !isToken {
			out = append(out, p)
		}
	}
	return out
}

// clauseGrammar parses one keyword clause of a Received field, running until
// the next keyword or the semicolon that introduces the date. A domain clause
// also picks the hostname and address out of a trailing comment.
type clauseGrammar struct {
	name   string
	domain bool
}

func (clauseGrammar) separators() []string { return []string{`\s+`, `;`} }

func (g clauseGrammar) isStart(t token) bool { return strings.EqualFold(t.v, g.name) }

func (clauseGrammar) isEnd(t token) bool {
	if t.v == ";" {
		return true
	}
	for _, kw := range receivedKeywords {
		if strings.EqualFold(t.v, kw) {
			return true
		}
	}
	return false
}

func (clauseGrammar) partFor(_ *scan, t token) part.Part {
	if t.space {
		return part.NewToken(" ")
	}
	return part.NewLiteral(t.v)
}

func (g clauseGrammar) process(_ *scan, parts []part.Part) []part.Part {
	text, comments := withoutComments(parts)
	value := concat(filterSpaces(text))

	if !g.domain {
		return append([]part.Part{part.NewReceived(g.name, value)}, commentParts(comments)...)
	}

	var (
		hostname, address string
		fullValue         = value
		rest              = make([]part.Part, 0, len(comments))
	)
	found := false
	for _, c := range comments {
		if !found {
			text := strings.TrimSpace(c.Comment())
			if m := receivedHostRe.FindStringSubmatch(text); m != nil && (m[1] != "" || m[2] != "") {
				hostname, address = m[1], m[2]
				fullValue += " (" + text + ")"
				found = true
				continue
			}
		}
		rest = append(rest, c)
	}

	return append([]part.Part{
		part.NewReceivedDomain(g.name, fullValue, value, hostname, address),
	}, rest...)
}
