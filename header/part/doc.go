// Package part provides the typed output of the header field consumers. A
// parsed header field body is returned as an ordered slice of Part values.
//
// The set of Part variants is closed: every variant is defined in this
// package and callers are expected to use a type switch to inspect them.
// Parts are immutable once constructed.
package part
