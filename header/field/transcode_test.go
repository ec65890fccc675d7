package field_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-header/header/field"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	s := field.Encode("⚀⚁⚂⚃⚄⚅")
	assert.Equal(t, "=?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=", s)
}

func TestTranscoder_DecodeWord(t *testing.T) {
	t.Parallel()

	tc := &field.Transcoder{}

	s, err := tc.DecodeWord("=?utf-8?b?4pqA4pqB4pqC4pqD4pqE4pqF?=")
	assert.NoError(t, err)
	assert.Equal(t, "⚀⚁⚂⚃⚄⚅", s)

	s, err = tc.DecodeWord("=?ISO-8859-1?Q?Andr=E9?=")
	assert.NoError(t, err)
	assert.Equal(t, "André", s)

	// not really an encoded word
	s, err = tc.DecodeWord("=?utf-8?x?abc?=")
	assert.NoError(t, err)
	assert.Equal(t, "=?utf-8?x?abc?=", s)

	// unknown charset passes the bytes through
	s, err = tc.DecodeWord("=?x-unknown?q?abc?=")
	assert.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestTranscoder_TryDecodeWord(t *testing.T) {
	t.Parallel()

	tc := &field.Transcoder{}

	s, ok, err := tc.TryDecodeWord("=?utf-8?q?caf=C3=A9?=")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "café", s)

	s, ok, err = tc.TryDecodeWord("=?UTF-8?B?!!!?=")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "=?UTF-8?B?!!!?=", s)
}

func TestTranscoder_Strict(t *testing.T) {
	t.Parallel()

	tc := &field.Transcoder{Strict: true}

	s, err := tc.DecodeWord("=?x-unknown?q?abc?=")
	var ce *field.CharsetError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "x-unknown", ce.Charset)
	assert.Equal(t, "abc", s)

	_, err = tc.Charset("x-unknown", []byte("abc"))
	assert.ErrorAs(t, err, &ce)

	s, err = tc.Charset("", []byte("plain"))
	assert.NoError(t, err)
	assert.Equal(t, "plain", s)
}

func TestTranscoder_CustomDecoder(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tc := &field.Transcoder{
		Decoder: func(charset string, b []byte) (string, error) {
			if charset == "x-upper" {
				return string(b) + "!", nil
			}
			return "", boom
		},
		Strict: true,
	}

	s, err := tc.Charset("x-upper", []byte("hi"))
	assert.NoError(t, err)
	assert.Equal(t, "hi!", s)

	_, err = tc.Charset("x-other", []byte("hi"))
	assert.ErrorIs(t, err, boom)
}
