package consumer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-header/header/consumer"
	"github.com/zostay/go-email-header/header/field"
	"github.com/zostay/go-email-header/header/part"
)

var wantDate = time.Date(2000, 5, 17, 19, 8, 29, 0, time.FixedZone("", -4*60*60))

func TestDate(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Date.Parse("Wed, 17 May 2000\r\n 19:08:29 -0400 (EDT)")
	require.NoError(t, err)
	require.Len(t, ps, 1)

	d := ps[0].(*part.Date)
	assert.Equal(t, "Wed, 17 May 2000 19:08:29 -0400", d.Value())

	tm, ok := d.Time()
	require.True(t, ok)
	assert.True(t, wantDate.Equal(tm), "got %v", tm)

	require.Len(t, d.Comments(), 1)
	assert.Equal(t, "EDT", d.Comments()[0].Comment())
}

func TestDate_Unparseable(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Date.Parse("sometime last week")
	require.NoError(t, err)
	require.Len(t, ps, 1)

	d := ps[0].(*part.Date)
	assert.Equal(t, "sometime last week", d.Value())

	_, ok := d.Time()
	assert.False(t, ok)
}

func TestID(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().ID.Parse("<a@b.c> (first)\r\n <d@e.f>")
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, part.KindID, ps[0].Kind())
	assert.Equal(t, "a@b.c", ps[0].Value())
	assert.Equal(t, "first", ps[1].(*part.Comment).Comment())
	assert.Equal(t, "d@e.f", ps[2].Value())
	assert.Equal(t, "<d@e.f>", ps[2].(*part.ID).String())
}

func TestID_Malformed(t *testing.T) {
	t.Parallel()

	c := consumer.NewSet().ID

	for _, in := range []string{"no-brackets-here", "  no-brackets-here  ", "<no-brackets-here"} {
		ps, err := c.Parse(in)
		require.NoError(t, err)
		require.Len(t, ps, 1, in)
		assert.Equal(t, part.KindID, ps[0].Kind())
		assert.Equal(t, "no-brackets-here", ps[0].Value(), in)
	}
}

func TestID_QuotedLocalPart(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().ID.Parse(`<"a b"@example.com>`)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, `"a b"@example.com`, ps[0].Value())
}

func TestReceived(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Received.Parse("from X by Y; Wed, 17 May 2000 19:08:29 -0400")
	require.NoError(t, err)
	require.Len(t, ps, 3)

	from := ps[0].(*part.ReceivedDomain)
	assert.Equal(t, "from", from.Name())
	assert.Equal(t, "X", from.Value())

	by := ps[1].(*part.ReceivedDomain)
	assert.Equal(t, "by", by.Name())
	assert.Equal(t, "Y", by.Value())

	tm, ok := ps[2].(*part.Date).Time()
	require.True(t, ok)
	assert.True(t, wantDate.Equal(tm), "got %v", tm)
}

func TestReceived_Full(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Received.Parse(
		"from mail.example.com (mx.example.com [192.0.2.1])\r\n" +
			"\tby mx.local (Postfix) with ESMTP id abc123\r\n" +
			"\tfor <u@example.com>; Wed, 17 May 2000 19:08:29 -0400")
	require.NoError(t, err)
	require.Len(t, ps, 7)

	from := ps[0].(*part.ReceivedDomain)
	assert.Equal(t, "mail.example.com (mx.example.com [192.0.2.1])", from.Value())
	assert.Equal(t, "mail.example.com", from.EhloName())
	assert.Equal(t, "mx.example.com", from.Hostname())
	assert.Equal(t, "192.0.2.1", from.Address())

	by := ps[1].(*part.ReceivedDomain)
	assert.Equal(t, "mx.local", by.Value())
	assert.Empty(t, by.Hostname())
	assert.Equal(t, "Postfix", ps[2].(*part.Comment).Comment())

	with := ps[3].(*part.Received)
	assert.Equal(t, "with", with.Name())
	assert.Equal(t, "ESMTP", with.Value())

	assert.Equal(t, "abc123", ps[4].Value())
	assert.Equal(t, "<u@example.com>", ps[5].Value())
	assert.Equal(t, part.KindDate, ps[6].Kind())
}

func TestReceived_AddressOnly(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Received.Parse("FROM unknown ([IPv6:2001:db8::1]) BY mx")
	require.NoError(t, err)
	require.Len(t, ps, 2)

	from := ps[0].(*part.ReceivedDomain)
	assert.Equal(t, "from", from.Name())
	assert.Empty(t, from.Hostname())
	assert.Equal(t, "2001:db8::1", from.Address())
}

func TestStrictCharsets(t *testing.T) {
	t.Parallel()

	const in = "=?x-unknown?q?abc?= def"

	ps, err := consumer.NewSet().Generic.Parse(in)
	require.NoError(t, err)
	assert.Equal(t, "abc def", ps[0].Value())

	ps, err = consumer.NewSet(consumer.WithStrictCharsets()).Generic.Parse(in)
	var ce *field.CharsetError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "abc def", ps[0].Value())
}

func TestWithCharsetDecoder(t *testing.T) {
	t.Parallel()

	upper := func(charset string, b []byte) (string, error) {
		return "<" + charset + ":" + string(b) + ">", nil
	}

	s := consumer.NewSet(consumer.WithCharsetDecoder(upper))
	ps, err := s.Subject.Parse("=?x-custom?q?abc?=")
	require.NoError(t, err)
	assert.Equal(t, "<x-custom:abc>", ps[0].Value())
}
