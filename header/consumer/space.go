package consumer

import (
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

// factory builds the parts for plain text tokens. A mime factory decodes RFC
// 2047 encoded words into literals that swallow the whitespace around them.
type factory struct {
	mime bool
}

var (
	plainParts = factory{}
	mimeParts  = factory{mime: true}
)

// text returns a literal for t.
func (f factory) text(s *scan, t token) part.Part {
	if f.mime && t.encoded {
		if v, ok := s.decodeWord(t.v); ok {
			return part.NewEncodedLiteral(v)
		}
	}
	return part.NewLiteral(t.v)
}

// word returns a single space token for whitespace and a literal otherwise.
func (f factory) word(s *scan, t token) part.Part {
	if t.space {
		return part.NewToken(" ")
	}
	return f.text(s, t)
}

// spaceFilter is the state of the whitespace filter between two parts.
type spaceFilter struct {
	out   []part.Part
	space part.Part // whitespace seen since last, not yet written
	last  part.Part // the last part written that was not a comment
}

// next returns the filter state after seeing p.
//
// Whitespace is held back until the next real part arrives. It is written
// only if that part and the one before it do not both ignore the space
// between them. Whitespace at the start, at the end, and on either side of a
// comment is dropped.
func (f spaceFilter) next(p part.Part) spaceFilter {
	switch {
	case p == nil:
		return f
	case p.IsSpace():
		if f.last != nil && f.space == nil {
			f.space = p
		}
		return f
	}

	if _, isComment := p.(*part.Comment); isComment {
		f.out = append(f.out, p)
		f.space, f.last = nil, nil
		return f
	}

	if f.space != nil && p.Value() != "" {
		if !f.last.IgnoreSpacesAfter() || !p.IgnoreSpacesBefore() {
			f.out = append(f.out, f.space)
		}
		f.space = nil
	}
	f.out = append(f.out, p)
	f.last = p
	return f
}

// filterSpaces runs the whitespace filter over parts.
func filterSpaces(parts []part.Part) []part.Part {
	f := spaceFilter{out: make([]part.Part, 0, len(parts))}
	for _, p := range parts {
		f = f.next(p)
	}
	return f.out
}

// withoutComments returns parts minus any comments, and the comments.
func withoutComments(parts []part.Part) ([]part.Part, []*part.Comment) {
	var (
		rest     = make([]part.Part, 0, len(parts))
		comments []*part.Comment
	)
	for _, p := range parts {
		if c, isComment := p.(*part.Comment); isComment {
			comments = append(comments, c)
			continue
		}
		rest = append(rest, p)
	}
	return rest, comments
}

// concat joins the values of parts. Quoted strings contribute their content.
func concat(parts []part.Part) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value())
	}
	return b.String()
}

func commentParts(cs []*part.Comment) []part.Part {
	ps := make([]part.Part, len(cs))
	for i, c := range cs {
		ps[i] = c
	}
	return ps
}
