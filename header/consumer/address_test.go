package consumer_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-email-header/header/consumer"
	"github.com/zostay/go-email-header/header/part"
)

type addr struct {
	Name, Email string
}

func addrs(t *testing.T, ps []part.Part) []addr {
	t.Helper()

	out := make([]addr, 0, len(ps))
	for _, p := range ps {
		a, ok := p.(*part.Address)
		require.True(t, ok, "expected an address, got %v", p.Kind())
		out = append(out, addr{a.Name(), a.Email()})
	}
	return out
}

func TestAddress_List(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Address.Parse("A@b.com, C@d.com, Name <e@f.com>")
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff([]addr{
		{"", "A@b.com"},
		{"", "C@d.com"},
		{"Name", "e@f.com"},
	}, addrs(t, ps)))
}

func TestAddress_Forms(t *testing.T) {
	t.Parallel()

	c := consumer.NewSet().Address

	tests := []struct {
		name string
		in   string
		want addr
	}{
		{"bare", "jd@example.com", addr{"", "jd@example.com"}},
		{"angle only", "<jd@example.com>", addr{"", "jd@example.com"}},
		{"display name", "John Doe <jd@example.com>", addr{"John Doe", "jd@example.com"}},
		{"quoted name", `"Doe, John" <jd@example.com>`, addr{"Doe, John", "jd@example.com"}},
		{"encoded name", "=?utf-8?q?Andr=C3=A9?= <a@example.com>", addr{"André", "a@example.com"}},
		{"comment dropped", "jd@example.com (John Doe)", addr{"", "jd@example.com"}},
		{"comment in name", "John (Johnny) Doe <jd@example.com>", addr{"John Doe", "jd@example.com"}},
		{"quoted local part", `"john doe"@example.com`, addr{"", `"john doe"@example.com`}},
		{"unterminated angle", "John <jd@example.com", addr{"John", "jd@example.com"}},
		{"spaces in addr-spec", "jd @ example.com", addr{"", "jd@example.com"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ps, err := c.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, []addr{tc.want}, addrs(t, ps))
		})
	}
}

func TestAddress_Group(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Address.Parse("G: a@b.com, c@d.com;")
	require.NoError(t, err)
	require.Len(t, ps, 1)

	g, ok := ps[0].(*part.AddressGroup)
	require.True(t, ok)
	assert.Equal(t, "G", g.Name())

	ms := g.Addresses()
	require.Len(t, ms, 2)
	assert.Equal(t, "a@b.com", ms[0].Email())
	assert.Equal(t, "c@d.com", ms[1].Email())
}

func TestAddress_GroupAmongAddresses(t *testing.T) {
	t.Parallel()

	ps, err := consumer.NewSet().Address.Parse(
		`x@y.com, "The Team": Ann <ann@t.com>, bob@t.com;, Empty:;, z@y.com`)
	require.NoError(t, err)
	require.Len(t, ps, 4)

	assert.Equal(t, "x@y.com", ps[0].Value())

	team := ps[1].(*part.AddressGroup)
	assert.Equal(t, "The Team", team.Name())
	require.Len(t, team.Addresses(), 2)
	assert.Equal(t, "Ann", team.Addresses()[0].Name())
	assert.Equal(t, "bob@t.com", team.Addresses()[1].Email())

	empty := ps[2].(*part.AddressGroup)
	assert.Equal(t, "Empty", empty.Name())
	assert.Empty(t, empty.Addresses())

	assert.Equal(t, "z@y.com", ps[3].Value())
}

func TestAddress_Leniency(t *testing.T) {
	t.Parallel()

	c := consumer.NewSet().Address

	for _, in := range []string{",,,", ";", "<", "(", `"`, ":", "a@b,,", "G: a@b"} {
		assert.NotPanics(t, func() {
			_, err := c.Parse(in)
			assert.NoError(t, err)
		}, in)
	}

	ps, err := c.Parse(", , a@b.com,")
	require.NoError(t, err)
	assert.Equal(t, []addr{{"", "a@b.com"}}, addrs(t, ps))
}

func serialize(ps []part.Part) string {
	ss := make([]string, len(ps))
	for i, p := range ps {
		ss[i] = p.(interface{ String() string }).String()
	}
	return strings.Join(ss, ", ")
}

func TestAddress_RoundTrip(t *testing.T) {
	t.Parallel()

	c := consumer.NewSet().Address

	for _, in := range []string{
		"A@b.com, C@d.com, Name <e@f.com>",
		`"Doe, John" <jd@example.com>, =?utf-8?q?Andr=C3=A9?= <a@example.com>`,
		"G: a@b.com, c@d.com;",
		`"john doe"@example.com`,
	} {
		first, err := c.Parse(in)
		require.NoError(t, err)

		second, err := c.Parse(serialize(first))
		require.NoError(t, err)

		assert.Equal(t, serialize(first), serialize(second), in)
	}
}

func TestSet_Concurrent(t *testing.T) {
	t.Parallel()

	s := consumer.NewSet()
	const in = "A@b.com, G: c@d.com;, Name <e@f.com>"

	want, err := s.Address.Parse(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ps, _ := s.Address.Parse(in)
			results[i] = serialize(ps)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, serialize(want), got)
	}
}
