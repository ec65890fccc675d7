package field

import (
	"mime"

	"braces.dev/errtrace"
)

// Encode transforms a single header field body by looking for any characters
// allowed for header encoding and turning them into encode body values using
// word encoder. It will always output b-type (Base-64) encoding using UTF-8 as
// the character set.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// Transcoder turns header text declared in some charset into UTF-8. The zero
// value uses CharsetDecoder and is lenient.
//
// When lenient, text in a charset the Decoder does not support is passed
// through unchanged. When Strict is set, the same situation is reported as a
// *CharsetError instead.
type Transcoder struct {
	// Decoder converts bytes to unicode. When nil, CharsetDecoder is used.
	Decoder Decoder

	// Strict causes unsupported charsets to be reported as errors.
	Strict bool
}

func (t *Transcoder) decoder() Decoder {
	if t == nil || t.Decoder == nil {
		return CharsetDecoder
	}
	return t.Decoder
}

func (t *Transcoder) strict() bool {
	return t != nil && t.Strict
}

// Charset converts b from the named charset into unicode. An empty charset is
// treated as us-ascii.
func (t *Transcoder) Charset(charset string, b []byte) (string, error) {
	if charset == "" {
		charset = "us-ascii"
	}

	s, err := t.decoder()(charset, b)
	if err == nil {
		return s, nil
	}

	if t.strict() {
		return string(b), errtrace.Wrap(&CharsetError{Charset: charset, Err: err})
	}

	return string(b), nil
}

// DecodeWord decodes a single RFC 2047 encoded word. A word that cannot be
// decoded at all is returned as-is. A word whose charset is not supported is
// returned with its bytes passed through, or with a *CharsetError in strict
// mode.
func (t *Transcoder) DecodeWord(word string) (string, error) {
	s, _, err := t.TryDecodeWord(word)
	return s, err
}

// TryDecodeWord is DecodeWord, but also reports whether word was a well
// formed encoded word. When it was not, word is returned unchanged and ok is
// false.
func (t *Transcoder) TryDecodeWord(word string) (s string, ok bool, err error) {
	var charsetErr error
	dec := &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(func(charset string, b []byte) (string, error) {
			s, err := t.Charset(charset, b)
			if err != nil {
				charsetErr = err
			}
			return s, nil
		}),
	}

	s, err = dec.Decode(word)
	if err != nil {
		return word, false, nil
	}

	return s, true, charsetErr
}
