package consumer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-header/header/part"
)

func tokenValues(toks []token) []string {
	vs := make([]string, len(toks))
	for i, t := range toks {
		vs[i] = t.v
	}
	return vs
}

func TestTokenizer(t *testing.T) {
	t.Parallel()

	tz := newTokenizer([]string{`\(`, `\)`, `\s+`}, true, true)

	toks := tz.split(`a (b\) c) =?utf-8?q?x?=  \"d`)
	assert.Empty(t, cmp.Diff(
		[]string{"a", " ", "(", "b", `\)`, " ", "c", ")", " ", "=?utf-8?q?x?=", "  ", `\"`, "d"},
		tokenValues(toks),
	))

	assert.True(t, toks[1].space)
	assert.True(t, toks[4].escaped)
	assert.True(t, toks[9].encoded)
	assert.True(t, toks[10].space)
	assert.True(t, toks[11].escaped)
	assert.False(t, toks[12].escaped)
}

func TestTokenizer_EscapedFold(t *testing.T) {
	t.Parallel()

	tz := newTokenizer([]string{`\s+`}, true, false)

	toks := tz.split("a\\\r\nb")
	assert.Equal(t, []string{"a", "\\\r\n", "b"}, tokenValues(toks))
	assert.True(t, toks[1].fold)
	assert.False(t, toks[1].escaped)
}

func TestTokenizer_NoPatterns(t *testing.T) {
	t.Parallel()

	tz := newTokenizer(nil, false, false)
	assert.Equal(t, []string{"a b (c)"}, tokenValues(tz.split("a b (c)")))
}

func TestTokenizer_EncodedWordsOff(t *testing.T) {
	t.Parallel()

	tz := newTokenizer([]string{`\s+`}, false, false)

	toks := tz.split("=?utf-8?q?x?=")
	assert.Len(t, toks, 1)
	assert.False(t, toks[0].encoded)
}

func TestConsumer_AllSeparators(t *testing.T) {
	t.Parallel()

	s := NewSet()
	assert.Equal(t, []string{`\s+`, `\(`, `\)`, `"`}, s.Generic.allSeparators())
	assert.Equal(t, []string{`<`, `>`, `,`, `;`, `\s+`, `:`, `\(`, `\)`, `"`}, s.Address.allSeparators())
}

func values(ps []part.Part) []string {
	vs := make([]string, len(ps))
	for i, p := range ps {
		vs[i] = p.Value()
	}
	return vs
}

func TestFilterSpaces(t *testing.T) {
	t.Parallel()

	sp := part.NewToken(" ")
	a := part.NewLiteral("a")
	b := part.NewLiteral("b")
	ea := part.NewEncodedLiteral("x")
	eb := part.NewEncodedLiteral("y")
	c := part.NewComment([]part.Part{part.NewToken("c")})

	tests := []struct {
		name string
		in   []part.Part
		want []string
	}{
		{"trim", []part.Part{sp, a, sp, sp, b, sp}, []string{"a", " ", "b"}},
		{"encoded pair", []part.Part{ea, sp, eb}, []string{"x", "y"}},
		{"encoded then plain", []part.Part{ea, sp, a}, []string{"x", " ", "a"}},
		{"plain then encoded", []part.Part{a, sp, ea}, []string{"a", " ", "x"}},
		{"around comment", []part.Part{a, sp, c, sp, b}, []string{"a", "", "b"}},
		{"empty value", []part.Part{a, sp, part.NewLiteral(""), b}, []string{"a", "", " ", "b"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, values(filterSpaces(tc.in)))
		})
	}
}
