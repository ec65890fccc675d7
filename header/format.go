package header

import (
	"fmt"
	"strings"

	"github.com/zostay/go-email-header/header/part"
)

// Format writes parts back out as a field body of the given kind. Parsing
// the result with the same kind yields equivalent parts, though the text
// will not match the original byte for byte: whitespace is normalized,
// encoded words are decoded, and comments are dropped from addresses and
// parameters.
func Format(k Kind, ps []part.Part) string {
	var (
		ss  = make([]string, 0, len(ps))
		sep = " "
	)

	switch k {
	case KindAddress:
		sep = ", "
	case KindParameter:
		sep = "; "
	}

	for _, p := range ps {
		switch p := p.(type) {
		case *part.Comment:
			if k == KindGeneric || k == KindID || k == KindReceived {
				ss = append(ss, p.String())
			}
		case *part.ReceivedDomain:
			ss = append(ss, p.Name()+" "+p.Value())
		case *part.Received:
			ss = append(ss, p.Name()+" "+p.Value())
		case *part.Literal:
			if k == KindGeneric {
				ss = append(ss, escapeText(p.Value()))
				continue
			}
			ss = append(ss, p.Value())
		case *part.Date:
			if k == KindReceived && len(ss) > 0 {
				ss[len(ss)-1] += "; " + p.Value()
				continue
			}
			ss = append(ss, p.Value())
		case fmt.Stringer:
			ss = append(ss, p.String())
		default:
			ss = append(ss, p.Value())
		}
	}

	return strings.Join(ss, sep)
}

// escapeText puts a backslash in front of the characters that would start a
// comment or quoted-string, or an escape, when text is parsed again.
func escapeText(s string) string {
	if !strings.ContainsAny(s, `()"\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
