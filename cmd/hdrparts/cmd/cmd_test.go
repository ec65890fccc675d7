package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMessage = "From: \"Doe, John\" <jd@example.com>\r\n" +
	"To: Team: a@example.com, b@example.com;\r\n" +
	"Subject: =?utf-8?q?caf=C3=A9?= time\r\n" +
	"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
	"Message-ID: <abc@example.com>\r\n" +
	"\r\n" +
	"Hello.\r\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	out, err := run(t, testMessage, "dump")
	require.NoError(t, err)

	assert.Contains(t, out, "From [address]")
	assert.Contains(t, out, `address "jd@example.com"`)
	assert.Contains(t, out, "To [address]")
	assert.Contains(t, out, "group")
	assert.Contains(t, out, `"café time"`)
	assert.Contains(t, out, `parameter "utf-8"`)
	assert.Contains(t, out, `id "abc@example.com"`)
}

func TestValue(t *testing.T) {
	out, err := run(t, "", "value", "parameter", `attachment; filename*=utf-8''caf%C3%A9.txt`)
	require.NoError(t, err)
	assert.Contains(t, out, `"café.txt"`)

	_, err = run(t, "", "value", "nonsense", "x")
	assert.Error(t, err)
}

func TestRoundtrip(t *testing.T) {
	out, err := run(t, testMessage, "roundtrip")
	require.NoError(t, err)
	assert.Contains(t, out, "5 fields round tripped")
}

func TestBadLogFormat(t *testing.T) {
	_, err := run(t, testMessage, "dump", "--log-format", "fancy")
	assert.Error(t, err)
	logFormat = "console"
}
