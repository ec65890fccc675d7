package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-header/header"
)

var valueCmd = &cobra.Command{
	Use:   "value kind body...",
	Short: "Parses a single field body with the grammar for kind",
	Long: `Parses a single field body with the grammar for kind, which is one of
generic, subject, address, date, id, parameter, or received. Any further
arguments are joined with spaces to make the body.`,
	Args: cobra.MinimumNArgs(2),
	RunE: RunValue,
}

func init() {
	rootCmd.AddCommand(valueCmd)
}

func RunValue(cmd *cobra.Command, args []string) error {
	k, ok := header.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown field kind %q", args[0])
	}

	ps, err := parser.Parse(k, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	writeParts(cmd.OutOrStdout(), ps, 0)
	return nil
}
