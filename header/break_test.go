package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-header/header"
)

func TestBreak_Bytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{}, header.Meh.Bytes())
	assert.Equal(t, []byte{0x0d, 0x0a}, header.CRLF.Bytes())
	assert.Equal(t, []byte{0x0a}, header.LF.Bytes())
	assert.Equal(t, []byte{0x0d}, header.CR.Bytes())
	assert.Equal(t, []byte{0x0a, 0x0d}, header.LFCR.Bytes())
}

func TestSplitHead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		head string
		lb   header.Break
	}{
		{"crlf", "A: b\r\nC: d\r\n\r\nbody", "A: b\r\nC: d\r\n", header.CRLF},
		{"lf", "A: b\nC: d\n\nbody\n\nmore", "A: b\nC: d\n", header.LF},
		{"no body", "A: b\nC: d\n", "A: b\nC: d\n", header.LF},
		{"one line", "A: b", "A: b", header.CR},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			head, lb := header.SplitHead([]byte(tc.in))
			assert.Equal(t, tc.head, string(head))
			assert.Equal(t, tc.lb, lb)
		})
	}
}
