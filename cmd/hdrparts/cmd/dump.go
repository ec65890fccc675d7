package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-header/header"
	"github.com/zostay/go-email-header/header/field"
	"github.com/zostay/go-email-header/header/part"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Shows the parts of every field in a message header",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// loadHeader reads a message and parses its header. A header preceded by
// junk is still returned; the junk is logged.
func loadHeader(cmd *cobra.Command, args []string) (*header.Header, error) {
	m, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	head, lb := header.SplitHead(m)
	logger.Debug("split header", "bytes", len(head), "break", fmt.Sprintf("%q", lb))

	h, err := parser.ParseHeader(head, lb)
	var badStart *field.BadStartError
	if errors.As(err, &badStart) {
		logger.Warn("skipped text before the first field", "error", err)
	} else if err != nil {
		return nil, err
	}

	return h, nil
}

func RunDump(cmd *cobra.Command, args []string) error {
	h, err := loadHeader(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i := 0; i < h.Len(); i++ {
		f := h.GetField(i)
		k := header.KindOf(f.Name())

		ps, err := parser.ParseField(f)
		if err != nil {
			logger.Error("field did not decode cleanly", "field", f.Name(), "error", err)
		}

		_, _ = fmt.Fprintf(w, "%s [%s]\n", f.Name(), k)
		writeParts(w, ps, 1)
	}

	return nil
}

func writeParts(w io.Writer, ps []part.Part, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, p := range ps {
		logger.Debug("part", "part", p)
		_, _ = fmt.Fprintf(w, "%s%s %q\n", indent, p.Kind(), p.Value())

		switch p := p.(type) {
		case *part.AddressGroup:
			members := make([]part.Part, 0, len(p.Addresses()))
			for _, a := range p.Addresses() {
				members = append(members, a)
			}
			writeParts(w, members, depth+1)
		case *part.ReceivedDomain:
			if p.Hostname() != "" || p.Address() != "" {
				_, _ = fmt.Fprintf(w, "%s  host %q address %q\n", indent, p.Hostname(), p.Address())
			}
		case *part.Date:
			if t, ok := p.Time(); ok {
				_, _ = fmt.Fprintf(w, "%s  time %s\n", indent, t.Format("2006-01-02T15:04:05Z07:00"))
			}
		}
	}
}
