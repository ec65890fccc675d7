package field

import (
	"fmt"
)

// Base is a single unfolded header field: a name and the body that follows
// the colon. The body is kept exactly as it was after unfolding, without any
// RFC 2047 decoding, since decoding is up to the consumer of the particular
// field type.
type Base struct {
	name string
	body string
}

// New returns a field with the given name and body.
func New(name, body string) *Base {
	return &Base{name, body}
}

// Name returns the name of the header field.
func (f *Base) Name() string {
	return f.name
}

// Body returns the value of the header field as a string.
func (f *Base) Body() string {
	return f.body
}

// String returns the complete header field as a string, with the body
// encoded as an RFC 2047 encoded word if it is not plain ASCII.
func (f *Base) String() string {
	return fmt.Sprintf("%s: %s", f.name, Encode(f.body))
}

// Bytes returns the complete header field as a slice of bytes.
func (f *Base) Bytes() []byte {
	return []byte(f.String())
}
