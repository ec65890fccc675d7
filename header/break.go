package header

import "bytes"

// Break represents the linebreak used by a header.
type Break string

// Constants for use when selecting a line break. If you don't know what to
// pick, choose CRLF.
const (
	Meh  Break = ""         // Sometimes it doesn't matter
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - Commodores/old Macs linebreak
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely, possibly never
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

// SplitHead finds the end of the header at the front of a message and the
// line break the message uses. The returned head includes the final line
// break of the last field, but not the blank line after it.
//
// If there is no blank line, the whole input is taken to be the header and
// the line break is the first one found in it, or CR if there is none.
func SplitHead(m []byte) ([]byte, Break) {
	for _, s := range splits {
		if pos := bytes.Index(m, s); pos > -1 {
			lb := s[:len(s)/2]
			return m[:pos+len(lb)], Break(lb)
		}
	}

	for _, s := range splits {
		lb := s[:len(s)/2]
		if bytes.Contains(m, lb) {
			return m, Break(lb)
		}
	}

	return m, CR
}
