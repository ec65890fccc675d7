// Package consumer implements the recursive-descent parsers that turn a
// header field body into a sequence of part.Part values.
//
// Each Consumer handles one grammar (a comment, a quoted-string, an address,
// a parameter value and so on). A consumer may hand control to one of its
// sub-consumers when it sees that sub-consumer's start token, and the
// sub-consumer returns the composite part it built. The body is split into
// tokens once, by the consumer that was asked to parse it, using the
// separators declared by it and all the consumers reachable from it.
//
// Use NewSet to build the complete graph of consumers once and then reuse it.
// A Set and its consumers are safe for concurrent use.
//
// The consumers are deliberately forgiving. Malformed input never causes an
// error: an unterminated comment or address is closed at the end of the
// input, and unparseable dates keep their raw text. The only error reported
// is a charset failure when strict charset handling has been requested.
package consumer
