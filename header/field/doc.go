// Package field provides the low-level tooling shared by the header parsers:
// splitting a raw header block into field lines, unfolding them, decoding RFC
// 2047 encoded words and converting text from other character sets into
// UTF-8, and parsing date strings found in the wild.
package field
