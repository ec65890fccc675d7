package consumer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/zostay/go-email-header/header/part"
)

// extendedValueRe splits the charset'language'value form of the first
// extended segment.
var extendedValueRe = regexp.MustCompile(`^([^']*)'([^']*)'(.*)$`)

// combineSegments joins the RFC 2231 segments of one parameter. Segments are
// ordered by index, not by position, and a segment with no index sorts as
// index 0. The first segment names the charset and language. Runs of
// extended segments are percent-decoded and converted from that charset;
// other segments are taken as they are. The parameter is named as the
// first segment seen was.
func combineSegments(s *scan, segs []*part.Container) *part.Parameter {
	sorted := make([]*part.Container, len(segs))
	copy(sorted, segs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := sorted[i].Index()
		b, _ := sorted[j].Index()
		return a < b
	})

	var (
		charset, language string
		extended          bool
		pending           []byte
		value             strings.Builder
	)

	flush := func() {
		if pending == nil {
			return
		}
		value.WriteString(decodeCharset(s, charset, pending))
		pending = nil
	}

	for i, seg := range sorted {
		v := seg.Value()
		if !seg.Extended() {
			flush()
			value.WriteString(v)
			continue
		}

		extended = true
		if i == 0 {
			if m := extendedValueRe.FindStringSubmatch(v); m != nil {
				charset, language, v = m[1], m[2], m[3]
			}
		}
		pending = append(pending, percentDecode(v)...)
	}
	flush()

	name := segs[0].Name()
	if extended {
		return part.NewExtendedParameter(name, value.String(), charset, language)
	}
	return part.NewParameter(name, value.String())
}

// decodeCharset converts b from charset. With no charset named, valid UTF-8
// is taken as it is and anything else is read as US-ASCII.
func decodeCharset(s *scan, charset string, b []byte) string {
	if charset == "" && utf8.Valid(b) {
		return string(b)
	}
	return s.charset(charset, b)
}

// percentDecode decodes %XX escapes. A percent sign that does not start a
// valid escape is kept.
func percentDecode(v string) []byte {
	b := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '%' && i+2 < len(v) && isHex(v[i+1]) && isHex(v[i+2]) {
			b = append(b, unhex(v[i+1])<<4|unhex(v[i+2]))
			i += 2
			continue
		}
		b = append(b, v[i])
	}
	return b
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
