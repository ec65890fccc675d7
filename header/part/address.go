package part

import "strings"

// Address is a single mailbox: an optional display name and the address
// itself.
type Address struct {
	base
	name  string
	email string
}

// NewAddress returns an address part.
func NewAddress(name, email string) *Address {
	return &Address{name: name, email: email}
}

func (*Address) Kind() Kind { return KindAddress }

// Value returns the email address.
func (a *Address) Value() string { return a.email }

// Name returns the display name, which may be empty.
func (a *Address) Name() string { return a.name }

// Email returns the address. Quoted local parts keep their quotes.
func (a *Address) Email() string { return a.email }

// String returns the address in name-addr form when it has a display name and
// as a bare addr-spec otherwise.
func (a *Address) String() string {
	if a.name == "" {
		return a.email
	}
	return DisplayName(a.name) + " <" + a.email + ">"
}

// DisplayName returns name as it should appear in a header: as-is when it is
// made up of atoms and spaces, as a quoted-string otherwise.
func DisplayName(name string) string {
	for i := 0; i < len(name); i++ {
		if !isAtext(name[i]) && name[i] != ' ' {
			return Quote(name)
		}
	}
	return name
}

// isAtext reports whether c is allowed in an RFC 5322 atom.
func isAtext(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c >= 0x80:
		return true
	}
	return strings.IndexByte("!#$%&'*+-/=?^_`{|}~", c) >= 0
}

// AddressGroup is a named group of addresses, as in "Team: a@b, c@d;".
type AddressGroup struct {
	base
	name    string
	members []*Address
}

// NewAddressGroup returns a group part. The members slice is copied.
func NewAddressGroup(name string, members []*Address) *AddressGroup {
	ms := make([]*Address, len(members))
	copy(ms, members)
	return &AddressGroup{name: name, members: ms}
}

func (*AddressGroup) Kind() Kind { return KindAddressGroup }

// Value returns the group name.
func (g *AddressGroup) Value() string { return g.name }

// Name returns the group name.
func (g *AddressGroup) Name() string { return g.name }

// Addresses returns a copy of the group members.
func (g *AddressGroup) Addresses() []*Address {
	ms := make([]*Address, len(g.members))
	copy(ms, g.members)
	return ms
}

// String returns the group in RFC 5322 group syntax.
func (g *AddressGroup) String() string {
	ss := make([]string, len(g.members))
	for i, m := range g.members {
		ss[i] = m.String()
	}
	return DisplayName(g.name) + ": " + strings.Join(ss, ", ") + ";"
}
