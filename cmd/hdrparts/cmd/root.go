package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-header/header"
	"github.com/zostay/go-email-header/header/consumer"
	"github.com/zostay/go-email-header/internal/log"
)

var (
	verbose   bool
	strict    bool
	logFormat string

	logger = log.Noop
	parser = header.DefaultParser
)

var rootCmd = &cobra.Command{
	Use:   "hdrparts",
	Short: "Tools for inspecting how message header fields are parsed",

	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debugging details")
	pf.BoolVar(&strict, "strict", false, "fail on charsets that cannot be decoded")
	pf.StringVar(&logFormat, "log-format", string(log.Console), "log output style: console or dev")
}

func setup(cmd *cobra.Command, _ []string) error {
	f, err := log.ParseFormat(logFormat)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = log.New(cmd.ErrOrStderr(), f, level)

	if strict {
		parser = header.NewParser(consumer.WithStrictCharsets())
	}

	return nil
}

// readInput returns the contents of the named file, or of standard input
// when no file is named or the name is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// Execute runs the command named on the command line.
func Execute() error {
	return rootCmd.Execute()
}
