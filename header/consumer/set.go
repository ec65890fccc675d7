package consumer

import "github.com/zostay/go-email-header/header/field"

// Set is the complete graph of consumers, one root for each kind of header
// field. The roots share their comment and quoted-string consumers.
type Set struct {
	// Generic parses unstructured fields into literals and comments.
	Generic *Consumer

	// Subject parses a Subject field into a single literal.
	Subject *Consumer

	// Address parses address lists into Address and AddressGroup parts.
	Address *Consumer

	// Date parses a date into a single Date part.
	Date *Consumer

	// ID parses one or more message IDs into ID parts.
	ID *Consumer

	// Parameter parses a value followed by name=value parameters, as in
	// Content-Type and Content-Disposition.
	Parameter *Consumer

	// Received parses a Received trace field.
	Received *Consumer
}

// Option configures a Set.
type Option func(*field.Transcoder)

// WithStrictCharsets makes Parse report an error when an encoded word or an
// RFC 2231 value names a charset the decoder cannot handle.
func WithStrictCharsets() Option {
	return func(tc *field.Transcoder) { tc.Strict = true }
}

// WithCharsetDecoder replaces field.CharsetDecoder for this Set.
func WithCharsetDecoder(d field.Decoder) Option {
	return func(tc *field.Transcoder) { tc.Decoder = d }
}

// NewSet builds the consumers. The result is safe for concurrent use.
func NewSet(opts ...Option) *Set {
	tc := &field.Transcoder{}
	for _, opt := range opts {
		opt(tc)
	}

	mk := func(name string, g grammar, subs ...*Consumer) *Consumer {
		return &Consumer{name: name, g: g, subs: subs, tc: tc}
	}

	quoted := mk("quoted", quotedGrammar{})
	quoted.processEmpty = true

	comment := mk("comment", commentGrammar{})
	comment.subs = []*Consumer{comment, quoted}
	comment.rule = advanceAlways
	comment.processEmpty = true

	s := &Set{}

	s.Generic = mk("generic", genericGrammar{}, comment, quoted)
	s.Generic.escapes, s.Generic.encodedWords = true, true

	s.Subject = mk("subject", subjectGrammar{})
	s.Subject.encodedWords = true

	s.Date = mk("date", dateGrammar{}, comment)

	s.Address = newAddressConsumer(mk, comment, quoted)
	s.Address.escapes, s.Address.encodedWords = true, true

	id := mk("id", idGrammar{}, comment, quoted)
	id.keepStart = true
	s.ID = mk("id-list", idListGrammar{}, comment, id)
	s.ID.escapes = true

	s.Parameter = newParameterConsumer(mk, comment, quoted)
	s.Parameter.escapes, s.Parameter.encodedWords = true, true

	s.Received = newReceivedConsumer(mk, comment)

	return s
}

type makeFunc func(name string, g grammar, subs ...*Consumer) *Consumer

// newAddressConsumer builds the address grammars. The address and group
// consumers refer to each other, so the address is finished after the group
// is built.
func newAddressConsumer(mk makeFunc, comment, quoted *Consumer) *Consumer {
	angle := mk("angle", angleGrammar{}, comment, quoted)
	angle.processEmpty = true

	address := mk("address", addressGrammar{})
	address.keepStart = true

	group := mk("group", groupGrammar{}, address)
	group.processEmpty = true

	address.subs = []*Consumer{group, angle, comment, quoted}

	return mk("address-list", addressListGrammar{}, address)
}

func newParameterConsumer(mk makeFunc, comment, quoted *Consumer) *Consumer {
	value := mk("value", valueGrammar{}, comment, quoted)
	value.processEmpty = true

	nameValue := mk("name-value", nameValueGrammar{}, value, comment, quoted)
	nameValue.keepStart = true

	return mk("parameter", paramListGrammar{}, nameValue)
}

func newReceivedConsumer(mk makeFunc, comment *Consumer) *Consumer {
	subs := make([]*Consumer, 0, len(receivedKeywords)+2)
	for _, kw := range receivedKeywords {
		clause := mk(kw, clauseGrammar{name: kw, domain: kw == "from" || kw == "by"}, comment)
		subs = append(subs, clause)
	}
	subs = append(subs,
		mk("received-date", dateGrammar{start: ";"}, comment),
		comment,
	)

	received := mk("received", receivedGrammar{}, subs...)
	received.rule = advanceUnclaimed
	return received
}
