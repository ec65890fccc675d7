// Package email is the root of a library for reading the header of an email
// message the way mail clients actually write them.
//
// The header package is the place to start. It splits a header into fields
// and parses each field body according to RFC 5322, with the MIME additions
// from RFC 2047 (encoded words) and RFC 2231 (parameter value continuations,
// charsets and languages). The results are the semantic parts found in the
// field: addresses and groups, parameters, dates, message IDs, comments,
// received clauses and plain text.
//
// The parsers try hard to return something useful from damaged or
// non-conforming input. Where a strict parse exists elsewhere, such as
// go-addr for address lists, it is tried first and these parsers take over
// when it fails.
//
// The hdrparts command under cmd/ dumps the parts of every field in a
// message, which is handy for seeing how a troublesome header is read.
package email
