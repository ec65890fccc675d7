package consumer

import (
	"strings"
	"unicode"

	"github.com/zostay/go-email-header/header/part"
)

// addressListGrammar is the root of the address fields: a list of addresses
// and groups separated by commas.
type addressListGrammar struct{}

func (addressListGrammar) separators() []string { return nil }
func (addressListGrammar) isStart(token) bool   { return false }
func (addressListGrammar) isEnd(token) bool     { return false }

func (addressListGrammar) partFor(*scan, token) part.Part { return nil }

func (addressListGrammar) process(_ *scan, parts []part.Part) []part.Part {
	out := parts[:0:0]
	for _, p := range parts {
		switch p.(type) {
		case *part.Address, *part.AddressGroup:
			out = append(out, p)
		}
	}
	return out
}

// addressGrammar parses a single mailbox, or a group when a colon shows up.
// Every token starts an address. It ends at a comma, or at a semicolon,
// which may also be closing the group the address belongs to.
type addressGrammar struct{}

func (addressGrammar) separators() []string {
	return []string{`<`, `>`, `,`, `;`, `\s+`}
}

func (addressGrammar) isStart(token) bool { return true }

func (addressGrammar) isEnd(t token) bool { return t.v == "," || t.v == ";" }

func (addressGrammar) partFor(s *scan, t token) part.Part {
	return mimeParts.word(s, t)
}

// process builds the address. Text before an angle-bracketed address is the
// display name. Without angle brackets, the text itself is the address:
// whitespace is dropped and quoted-strings are quoted again. If a group
// turned up, the text before it is the group name instead.
func (addressGrammar) process(_ *scan, parts []part.Part) []part.Part {
	text, _ := withoutComments(parts)

	var (
		name, spec strings.Builder
		email      string
		angle      bool
	)
	for _, p := range filterSpaces(text) {
		switch p := p.(type) {
		case *part.AddressGroup:
			return []part.Part{
				part.NewAddressGroup(strings.TrimSpace(name.String()), p.Addresses()),
			}
		case *part.Address:
			if !angle {
				email, angle = p.Email(), true
			}
		case *part.Quoted:
			if !angle {
				name.WriteString(p.Value())
				spec.WriteString(part.Quote(p.Value()))
			}
		default:
			if !angle {
				name.WriteString(p.Value())
				spec.WriteString(stripSpace(p.Value()))
			}
		}
	}

	if angle {
		return []part.Part{part.NewAddress(strings.TrimSpace(name.String()), email)}
	}

	if spec.Len() == 0 {
		return nil
	}

	return []part.Part{part.NewAddress("", spec.String())}
}

// angleGrammar parses the addr-spec between "<" and ">".
type angleGrammar struct{}

func (angleGrammar) separators() []string { return []string{`<`, `>`} }
func (angleGrammar) isStart(t token) bool { return t.v == "<" }
func (angleGrammar) isEnd(t token) bool   { return t.v == ">" }

func (angleGrammar) partFor(_ *scan, t token) part.Part {
	return part.NewLiteral(t.v)
}

func (angleGrammar) process(_ *scan, parts []part.Part) []part.Part {
	var spec strings.Builder
	for _, p := range parts {
		switch p := p.(type) {
		case *part.Comment:
		case *part.Quoted:
			spec.WriteString(part.Quote(p.Value()))
		default:
			spec.WriteString(stripSpace(p.Value()))
		}
	}
	return []part.Part{part.NewAddress("", spec.String())}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
