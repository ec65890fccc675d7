package part

import (
	"strconv"
	"strings"
)

// Parameter is a name/value pair from a parameterized header field such as
// Content-Type or Content-Disposition. When the value was assembled from RFC
// 2231 segments, the charset and language reflect the extended-value prefix
// of the first segment.
type Parameter struct {
	base
	name     string
	value    string
	language string
	charset  string
	extended bool
}

// NewParameter returns a parameter part without charset or language.
func NewParameter(name, value string) *Parameter {
	return &Parameter{name: name, value: value}
}

// NewExtendedParameter returns a parameter part carrying the charset and
// language it was declared with.
func NewExtendedParameter(name, value, charset, language string) *Parameter {
	return &Parameter{name: name, value: value, charset: charset, language: language, extended: true}
}

func (*Parameter) Kind() Kind { return KindParameter }

// Value returns the decoded parameter value.
func (p *Parameter) Value() string { return p.value }

// Name returns the parameter name as it appeared, without any RFC 2231
// index or extension marker.
func (p *Parameter) Name() string { return p.name }

// Language returns the RFC 2231 language tag, if any.
func (p *Parameter) Language() string { return p.language }

// Charset returns the RFC 2231 charset the value was declared in, if any.
func (p *Parameter) Charset() string { return p.charset }

// Extended returns true if any segment of the value used the RFC 2231
// extended (starred) form.
func (p *Parameter) Extended() bool { return p.extended }

// String serializes the parameter. Values that are not plain ASCII are written
// in RFC 2231 extended form as UTF-8.
func (p *Parameter) String() string {
	if !isASCII(p.value) {
		return p.name + "*=utf-8'" + p.language + "'" + percentEncode(p.value)
	}
	if p.value == "" || strings.ContainsAny(p.value, tspecials+" \t") {
		return p.name + "=" + Quote(p.value)
	}
	return p.name + "=" + p.value
}

const tspecials = `()<>@,;:\"/[]?=`

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] < 0x20 {
			return false
		}
	}
	return true
}

func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > 0x20 && c < 0x7f && c != '*' && c != '\'' && c != '%' && !strings.ContainsRune(tspecials, rune(c)) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

// Container is a single parameter segment as read from the field, before RFC
// 2231 continuations have been joined. It carries any comments found in the
// segment so they can be passed on after the segments are combined.
type Container struct {
	base
	name     string
	index    int
	indexed  bool
	extended bool
	value    string
	comments []*Comment
}

// NewContainer returns a plain (non-RFC 2231) parameter segment.
func NewContainer(name, value string, comments []*Comment) *Container {
	return &Container{name: name, value: value, comments: copyComments(comments)}
}

// NewSegment returns an RFC 2231 parameter segment. The index is only
// meaningful when indexed is true. Extended segments are percent-encoded and
// may start with a charset'language' prefix.
func NewSegment(name string, index int, indexed, extended bool, value string, comments []*Comment) *Container {
	return &Container{
		name:     name,
		index:    index,
		indexed:  indexed,
		extended: extended,
		value:    value,
		comments: copyComments(comments),
	}
}

func copyComments(cs []*Comment) []*Comment {
	if len(cs) == 0 {
		return nil
	}
	out := make([]*Comment, len(cs))
	copy(out, cs)
	return out
}

func (*Container) Kind() Kind { return KindContainer }

// Value returns the raw, undecoded segment value.
func (c *Container) Value() string { return c.value }

// Name returns the base parameter name.
func (c *Container) Name() string { return c.name }

// Index returns the RFC 2231 segment number and whether one was given.
func (c *Container) Index() (int, bool) { return c.index, c.indexed }

// Segmented returns true when the parameter name used the RFC 2231 star
// syntax.
func (c *Container) Segmented() bool { return c.indexed || c.extended }

// Extended returns true when the segment value is percent-encoded.
func (c *Container) Extended() bool { return c.extended }

// Comments returns the comments found in the segment.
func (c *Container) Comments() []*Comment { return copyComments(c.comments) }

// String returns the segment roughly as it appeared.
func (c *Container) String() string {
	n := c.name
	if c.indexed {
		n += "*" + strconv.Itoa(c.index)
	}
	if c.extended {
		n += "*"
	}
	return n + "=" + c.value
}
