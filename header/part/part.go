package part

import "strings"

// Kind identifies the variant of a Part.
type Kind int

// These are the kinds of parts a consumer may produce.
const (
	KindToken Kind = iota
	KindLiteral
	KindQuoted
	KindComment
	KindAddress
	KindAddressGroup
	KindParameter
	KindDate
	KindID
	KindReceived
	KindReceivedDomain
	KindContainer
)

var kindNames = [...]string{
	KindToken:          "token",
	KindLiteral:        "literal",
	KindQuoted:         "quoted",
	KindComment:        "comment",
	KindAddress:        "address",
	KindAddressGroup:   "address-group",
	KindParameter:      "parameter",
	KindDate:           "date",
	KindID:             "id",
	KindReceived:       "received",
	KindReceivedDomain: "received-domain",
	KindContainer:      "container",
}

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Part is a single semantic piece of a parsed header field body.
//
// IgnoreSpacesBefore and IgnoreSpacesAfter tell the whitespace filter whether
// whitespace adjacent to this part may be dropped. Only parts decoded from
// RFC 2047 encoded words set them.
type Part interface {
	Kind() Kind
	Value() string
	IsSpace() bool
	IgnoreSpacesBefore() bool
	IgnoreSpacesAfter() bool

	sealed()
}

// base is embedded by every variant to supply the defaults.
type base struct{}

func (base) sealed()                  {}
func (base) IsSpace() bool            { return false }
func (base) IgnoreSpacesBefore() bool { return false }
func (base) IgnoreSpacesAfter() bool  { return false }

// Token is a raw token that did not form any higher level part, such as a
// separator or a run of whitespace.
type Token struct {
	base
	v string
}

// NewToken returns a token part holding v.
func NewToken(v string) *Token { return &Token{v: v} }

func (*Token) Kind() Kind       { return KindToken }
func (t *Token) Value() string  { return t.v }
func (t *Token) String() string { return t.v }

// IsSpace returns true if the token is made up entirely of whitespace.
func (t *Token) IsSpace() bool {
	return t.v != "" && strings.TrimSpace(t.v) == ""
}

// Literal is a run of decoded text.
type Literal struct {
	base
	v       string
	encoded bool
}

// NewLiteral returns a plain literal part.
func NewLiteral(v string) *Literal { return &Literal{v: v} }

// NewEncodedLiteral returns a literal decoded from an RFC 2047 encoded word.
// Whitespace on either side of such a literal is dropped when it separates
// it from another encoded literal.
func NewEncodedLiteral(v string) *Literal { return &Literal{v: v, encoded: true} }

func (*Literal) Kind() Kind                 { return KindLiteral }
func (l *Literal) Value() string            { return l.v }
func (l *Literal) String() string           { return l.v }
func (l *Literal) IgnoreSpacesBefore() bool { return l.encoded }
func (l *Literal) IgnoreSpacesAfter() bool  { return l.encoded }

// Encoded returns true if the literal was decoded from an encoded word.
func (l *Literal) Encoded() bool { return l.encoded }

// Quoted is the content of a quoted-string with the quotes and quoted-pair
// escapes removed.
type Quoted struct {
	base
	v string
}

// NewQuoted returns a quoted literal part.
func NewQuoted(v string) *Quoted { return &Quoted{v: v} }

func (*Quoted) Kind() Kind      { return KindQuoted }
func (q *Quoted) Value() string { return q.v }

// String returns the value as a quoted-string again.
func (q *Quoted) String() string { return Quote(q.v) }

// Quote wraps s in double quotes, escaping any double quote or backslash.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// ID is a message or content identifier without its angle brackets.
type ID struct {
	base
	v string
}

// NewID returns an id part.
func NewID(v string) *ID { return &ID{v: v} }

func (*ID) Kind() Kind      { return KindID }
func (i *ID) Value() string { return i.v }

// String returns the id wrapped in angle brackets.
func (i *ID) String() string { return "<" + i.v + ">" }
