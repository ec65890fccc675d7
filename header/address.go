package header

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-email-header/header/part"
)

// AddressList parses body as an address list. It will attempt a strict parse
// of the list first. If that fails, the lenient address grammar is used,
// which will return something for any input, though the results for badly
// broken input can only be described as "weird". Members of groups are
// returned as plain mailboxes.
//
// An error is only returned when the parser is strict about charsets.
func (p *Parser) AddressList(body string) (addr.AddressList, error) {
	if al, err := addr.ParseEmailAddressList(body); err == nil {
		return al, nil
	}

	ps, err := p.Parse(KindAddress, body)
	return mailboxes(ps), err
}

// ParseAddressList parses body as an address list with DefaultParser.
func ParseAddressList(body string) addr.AddressList {
	al, _ := DefaultParser.AddressList(body)
	return al
}

// mailboxes turns Address and AddressGroup parts into an addr.AddressList.
func mailboxes(ps []part.Part) addr.AddressList {
	al := make(addr.AddressList, 0, len(ps))
	add := func(a *part.Address) {
		if a.Email() == "" {
			return
		}

		if mb := mailbox(a); mb != nil {
			al = append(al, mb)
		}
	}

	for _, pt := range ps {
		switch pt := pt.(type) {
		case *part.Address:
			add(pt)
		case *part.AddressGroup:
			for _, a := range pt.Addresses() {
				add(a)
			}
		}
	}

	return al
}

func mailbox(a *part.Address) *addr.Mailbox {
	email := a.Email()

	var addrSpec *addr.AddrSpec
	if i := strings.LastIndex(email, "@"); i > -1 {
		addrSpec = addr.NewAddrSpecParsed(email[:i], email[i+1:], email)
	} else {
		addrSpec = addr.NewAddrSpecParsed(email, "", email)
	}

	mb, err := addr.NewMailboxParsed(a.Name(), addrSpec, "", a.String())
	if err != nil {
		return nil
	}
	return mb
}
