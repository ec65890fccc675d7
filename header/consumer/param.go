package consumer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

// segmentNameRe matches the RFC 2231 forms of a parameter name: name*,
// name*N and name*N*.
var segmentNameRe = regexp.MustCompile(`^([^*]+)\*(\d+)?(\*)?$`)

// paramListGrammar is the root of the parameter fields. It splits on
// semicolons and, once everything is read, joins RFC 2231 segments that
// share a name into a single parameter.
type paramListGrammar struct{}

func (paramListGrammar) separators() []string { return []string{`;`} }
func (paramListGrammar) isStart(token) bool   { return false }
func (paramListGrammar) isEnd(token) bool     { return false }

func (paramListGrammar) partFor(*scan, token) part.Part { return nil }

// segmentGroup collects the segments of one split parameter.
type segmentGroup struct {
	segs     []*part.Container
	comments []*part.Comment
}

// process emits parameters in the order their names were first seen. The
// comments found in a parameter follow it.
func (paramListGrammar) process(s *scan, parts []part.Part) []part.Part {
	type entry struct {
		p part.Part
		g *segmentGroup
	}

	var (
		entries []entry
		groups  = map[string]*segmentGroup{}
	)
	for _, p := range parts {
		switch p := p.(type) {
		case *part.Token:
		case *part.Container:
			if !p.Segmented() {
				entries = append(entries, entry{p: part.NewParameter(p.Name(), p.Value())})
				for _, c := range p.Comments() {
					entries = append(entries, entry{p: c})
				}
				continue
			}

			key := strings.ToLower(p.Name())
			g, ok := groups[key]
			if !ok {
				g = &segmentGroup{}
				groups[key] = g
				entries = append(entries, entry{g: g})
			}
			g.segs = append(g.segs, p)
			g.comments = append(g.comments, p.Comments()...)
		default:
			entries = append(entries, entry{p: p})
		}
	}

	out := make([]part.Part, 0, len(entries))
	for _, e := range entries {
		if e.g == nil {
			out = append(out, e.p)
			continue
		}
		out = append(out, combineSegments(s, e.g.segs))
		for _, c := range e.g.comments {
			out = append(out, c)
		}
	}
	return out
}

// nameValueGrammar parses one name=value pair. Everything up to the next
// semicolon belongs to it. Without an equals sign the text is a bare value,
// such as the media type at the front of a Content-Type.
type nameValueGrammar struct{}

func (nameValueGrammar) separators() []string { return []string{`=`} }
func (nameValueGrammar) isStart(t token) bool { return t.v != ";" }
func (nameValueGrammar) isEnd(t token) bool   { return t.v == ";" }

func (nameValueGrammar) partFor(s *scan, t token) part.Part {
	return mimeParts.word(s, t)
}

func (nameValueGrammar) process(_ *scan, parts []part.Part) []part.Part {
	var (
		val      *part.Container
		nameText []part.Part
		comments []*part.Comment
	)
	for _, p := range parts {
		switch p := p.(type) {
		case *part.Comment:
			comments = append(comments, p)
		case *part.Container:
			if val == nil {
				val = p
				comments = append(comments, p.Comments()...)
			}
		default:
			if val == nil {
				nameText = append(nameText, p)
			}
		}
	}

	text := concat(filterSpaces(nameText))
	if val == nil {
		var out []part.Part
		if text != "" {
			out = append(out, part.NewLiteral(text))
		}
		return append(out, commentParts(comments)...)
	}

	name := strings.TrimSpace(text)
	if name == "" {
		return commentParts(comments)
	}

	m := segmentNameRe.FindStringSubmatch(name)
	if m == nil {
		return []part.Part{part.NewContainer(name, val.Value(), comments)}
	}

	idx, err := strconv.Atoi(m[2])
	indexed := err == nil
	extended := m[2] == "" || m[3] == "*"
	return []part.Part{part.NewSegment(m[1], idx, indexed, extended, val.Value(), comments)}
}

// valueGrammar parses the value after the equals sign.
type valueGrammar struct{}

func (valueGrammar) separators() []string { return []string{`\s+`} }
func (valueGrammar) isStart(t token) bool { return t.v == "=" }
func (valueGrammar) isEnd(t token) bool   { return t.v == ";" }

func (valueGrammar) partFor(s *scan, t token) part.Part {
	return mimeParts.word(s, t)
}

func (valueGrammar) process(_ *scan, parts []part.Part) []part.Part {
	text, comments := withoutComments(parts)
	return []part.Part{part.NewContainer("", concat(filterSpaces(text)), comments)}
}
