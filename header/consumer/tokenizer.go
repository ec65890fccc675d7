package consumer

import (
	"regexp"
	"strings"
)

// encodedWordPattern matches a single RFC 2047 encoded word.
const encodedWordPattern = `=\?[^?\s]+\?[QqBb]\?[^?\s]*\?=`

// These patterns match a quoted-pair and a backslash-escaped line fold.
const (
	escapedFoldPattern = `\\\r?\n`
	escapedCharPattern = `\\.`
)

var (
	encodedWordRe = regexp.MustCompile(`^` + encodedWordPattern + `$`)
	escapedFoldRe = regexp.MustCompile(`^` + escapedFoldPattern + `$`)
)

// token is a single piece of the field body after splitting.
type token struct {
	v       string
	space   bool // only whitespace
	escaped bool // a quoted-pair, v[1:] is the literal character
	fold    bool // an escaped line fold
	encoded bool // an RFC 2047 encoded word
}

func (t token) String() string { return t.v }

// tokenizer splits a field body on a set of separator patterns. The
// separators themselves are kept as tokens and empty tokens are dropped.
type tokenizer struct {
	re *regexp.Regexp
}

func newTokenizer(seps []string, escapes, encodedWords bool) *tokenizer {
	alts := make([]string, 0, len(seps)+3)
	if encodedWords {
		alts = append(alts, encodedWordPattern)
	}
	if escapes {
		alts = append(alts, escapedFoldPattern, escapedCharPattern)
	}
	alts = append(alts, seps...)

	if len(alts) == 0 {
		return &tokenizer{}
	}

	return &tokenizer{
		re: regexp.MustCompile(`(?:` + strings.Join(alts, "|") + `)`),
	}
}

func (tz *tokenizer) split(s string) []token {
	if tz.re == nil {
		return []token{plainToken(s)}
	}

	toks := make([]token, 0, 16)
	last := 0
	for _, m := range tz.re.FindAllStringIndex(s, -1) {
		if m[0] > last {
			toks = append(toks, plainToken(s[last:m[0]]))
		}
		if m[1] > m[0] {
			toks = append(toks, matchedToken(s[m[0]:m[1]]))
		}
		last = m[1]
	}
	if last < len(s) {
		toks = append(toks, plainToken(s[last:]))
	}

	return toks
}

func plainToken(v string) token {
	return token{v: v, space: isSpace(v)}
}

func matchedToken(v string) token {
	t := plainToken(v)
	switch {
	case escapedFoldRe.MatchString(v):
		t.fold = true
	case len(v) >= 2 && v[0] == '\\':
		t.escaped = true
	case encodedWordRe.MatchString(v):
		t.encoded = true
	}
	return t
}

func isSpace(v string) bool {
	return v != "" && strings.TrimSpace(v) == ""
}
