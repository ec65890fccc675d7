package consumer

import "github.com/zostay/go-email-header/header/part"

// groupGrammar parses the members of a group between ":" and ";". A group
// nested inside another is flattened into it.
type groupGrammar struct{}

func (groupGrammar) separators() []string { return []string{`:`, `;`} }
func (groupGrammar) isStart(t token) bool { return t.v == ":" }
func (groupGrammar) isEnd(t token) bool   { return t.v == ";" }

func (groupGrammar) partFor(*scan, token) part.Part { return nil }

func (groupGrammar) process(_ *scan, parts []part.Part) []part.Part {
	var members []*part.Address
	for _, p := range parts {
		switch p := p.(type) {
		case *part.Address:
			members = append(members, p)
		case *part.AddressGroup:
			members = append(members, p.Addresses()...)
		}
	}
	return []part.Part{part.NewAddressGroup("", members)}
}
