package cmd

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-email-header/header"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "Shows fields that change when formatted and parsed again",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunRoundtrip,
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

// RunRoundtrip formats the parts of each field, parses the result again and
// formats that. The two formatted bodies should be the same; any field where
// they are not is shown as a diff.
func RunRoundtrip(cmd *cobra.Command, args []string) error {
	h, err := loadHeader(cmd, args)
	if err != nil {
		return err
	}

	var (
		w       = cmd.OutOrStdout()
		dmp     = diffmatchpatch.New()
		changed int
	)

	for i := 0; i < h.Len(); i++ {
		f := h.GetField(i)
		k := header.KindOf(f.Name())

		ps, err := parser.ParseField(f)
		if err != nil {
			logger.Error("field did not decode cleanly", "field", f.Name(), "error", err)
		}
		first := header.Format(k, ps)

		again, err := parser.Parse(k, first)
		if err != nil {
			logger.Error("formatted field did not decode cleanly", "field", f.Name(), "error", err)
		}
		second := header.Format(k, again)

		logger.Debug("round trip", "field", f.Name(), "kind", k.String(), "formatted", first)
		if first == second {
			continue
		}

		changed++
		diffs := dmp.DiffMain(first, second, false)
		_, _ = fmt.Fprintf(w, "%s:\n  %s\n", f.Name(), strings.TrimSpace(dmp.DiffPrettyText(diffs)))
	}

	if changed > 0 {
		return fmt.Errorf("%d of %d fields changed on the second pass", changed, h.Len())
	}

	_, _ = fmt.Fprintf(w, "%d fields round tripped\n", h.Len())
	return nil
}
