package consumer

import (
	"sync"

	"github.com/zostay/go-email-header/header/field"
	"github.com/zostay/go-email-header/header/part"
)

// grammar holds the rules that make a Consumer parse one particular syntax.
type grammar interface {
	// separators returns regular expression fragments matching the tokens
	// that are significant to this grammar.
	separators() []string

	// isStart returns true if the token begins this grammar when seen by a
	// parent consumer.
	isStart(t token) bool

	// isEnd returns true if the token terminates this grammar. The end token
	// is not consumed so the parent sees it too.
	isEnd(t token) bool

	// partFor returns the part for a token no sub-consumer claimed, or nil.
	partFor(s *scan, t token) part.Part

	// process turns the parts gathered by the consumer into its result.
	process(s *scan, parts []part.Part) []part.Part
}

// advanceRule selects how a consumer moves its cursor after a token.
type advanceRule int

const (
	// advanceDefault steps past start tokens and ordinary tokens, but stops
	// on the consumer's own end token.
	advanceDefault advanceRule = iota

	// advanceAlways steps past every token. The comment grammar needs this
	// so a nested comment's closing parenthesis does not end the outer one.
	advanceAlways

	// advanceUnclaimed steps past start tokens and ordinary tokens, but
	// stops on any token a sub-consumer would claim.
	advanceUnclaimed
)

// Consumer parses a header field body, or part of one, according to a single
// grammar. Consumers are built by NewSet.
type Consumer struct {
	name string
	g    grammar
	subs []*Consumer
	tc   *field.Transcoder

	rule         advanceRule
	keepStart    bool // the start token is part of the grammar's content
	processEmpty bool // process is called even when no parts were produced

	escapes      bool // split out quoted-pairs when this is the root
	encodedWords bool // split out encoded words when this is the root

	once sync.Once
	tz   *tokenizer
}

// Name returns the name of the grammar this consumer parses.
func (c *Consumer) Name() string { return c.name }

// String returns the name of the consumer.
func (c *Consumer) String() string { return c.name }

// scan is the state of a single call to Parse. The tokens are never
// modified; the position within them is passed around explicitly.
type scan struct {
	toks []token
	tc   *field.Transcoder
	err  error
}

func (s *scan) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// decodeWord decodes an RFC 2047 encoded word. It returns false if w could
// not be decoded, in which case w is plain text.
func (s *scan) decodeWord(w string) (string, bool) {
	v, ok, err := s.tc.TryDecodeWord(w)
	s.record(err)
	return v, ok
}

// charset converts bytes in the named charset to unicode.
func (s *scan) charset(cs string, b []byte) string {
	v, err := s.tc.Charset(cs, b)
	s.record(err)
	return v
}

// Parse splits value into tokens and parses them into parts. An empty value
// returns no parts and the grammar is not run at all.
//
// Parse never fails because of malformed input. It returns an error only if
// the Set was built with strict charset handling and some encoded text named
// a charset that could not be decoded. The parts are returned either way.
func (c *Consumer) Parse(value string) ([]part.Part, error) {
	if value == "" {
		return nil, nil
	}

	s := &scan{
		toks: c.tokenizer().split(value),
		tc:   c.tc,
	}
	parts, _ := c.parse(s, 0)
	return parts, s.err
}

// tokenizer compiles the split pattern on first use. The result is read-only
// after that and shared by all calls to Parse.
func (c *Consumer) tokenizer() *tokenizer {
	c.once.Do(func() {
		c.tz = newTokenizer(c.allSeparators(), c.escapes, c.encodedWords)
	})
	return c.tz
}

// allSeparators merges the separators of this consumer and every consumer
// reachable from it, without duplicates.
func (c *Consumer) allSeparators() []string {
	var (
		seps    []string
		seenSep = map[string]bool{}
		seen    = map[*Consumer]bool{}
		walk    func(*Consumer)
	)

	walk = func(x *Consumer) {
		if seen[x] {
			return
		}
		seen[x] = true

		for _, sep := range x.g.separators() {
			if !seenSep[sep] {
				seenSep[sep] = true
				seps = append(seps, sep)
			}
		}

		for _, sub := range x.subs {
			walk(sub)
		}
	}
	walk(c)

	return seps
}

// parse consumes tokens starting at pos until the end token or the end of
// input and returns the processed parts and the position it stopped at.
func (c *Consumer) parse(s *scan, pos int) ([]part.Part, int) {
	var parts []part.Part
	for pos < len(s.toks) && !c.g.isEnd(s.toks[pos]) {
		var ps []part.Part
		ps, pos = c.tokenParts(s, pos)
		parts = append(parts, ps...)
		pos = c.advance(s, pos, false)
	}

	if len(parts) == 0 && !c.processEmpty {
		return nil, pos
	}

	return c.g.process(s, parts), pos
}

// tokenParts returns the parts for the token at pos. If a sub-consumer claims
// the token, it parses as far as it can and the returned position is where
// it stopped.
func (c *Consumer) tokenParts(s *scan, pos int) ([]part.Part, int) {
	t := s.toks[pos]
	switch {
	case t.escaped:
		return []part.Part{part.NewLiteral(t.v[1:])}, pos
	case t.fold:
		return []part.Part{part.NewToken(" ")}, pos
	}

	if sub := c.claim(t); sub != nil {
		if !sub.keepStart {
			pos = c.advance(s, pos, true)
		}
		return sub.parse(s, pos)
	}

	if p := c.g.partFor(s, t); p != nil {
		return []part.Part{p}, pos
	}
	return nil, pos
}

// claim returns the first sub-consumer that starts at t, if any.
func (c *Consumer) claim(t token) *Consumer {
	if t.escaped || t.fold {
		return nil
	}
	for _, sub := range c.subs {
		if sub.g.isStart(t) {
			return sub
		}
	}
	return nil
}

// advance moves the cursor on from pos. The start flag is set when pos is a
// start token being handed to a sub-consumer.
func (c *Consumer) advance(s *scan, pos int, start bool) int {
	if pos >= len(s.toks) {
		return pos
	}

	switch c.rule {
	case advanceAlways:
		return pos + 1
	case advanceUnclaimed:
		if !start && c.claim(s.toks[pos]) != nil {
			return pos
		}
		return pos + 1
	}

	if start || !c.g.isEnd(s.toks[pos]) {
		return pos + 1
	}
	return pos
}
