// Package header parses the fields of an email message header into their
// semantic parts.
//
// ParseHeader splits a raw header into fields and returns a Header with
// getters that understand the common fields: addresses, dates, message IDs,
// subjects, MIME parameters and trace fields. Each getter picks the grammar
// for the field by name (see KindOf) and parses the body with a Parser.
//
// For lower-level work, Parse turns a single field body into a slice of
// part.Part values and Format writes such a slice back out as a field body.
// The grammars themselves live in the consumer package.
//
// Parsing is lenient. Odd input produces best-effort parts rather than an
// error, except that a Parser built with consumer.WithStrictCharsets reports
// encoded text in a charset it cannot decode.
package header
