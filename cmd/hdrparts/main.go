package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-email-header/cmd/hdrparts/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
