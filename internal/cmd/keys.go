package cmd

import (
	"io"
	"strings"

	"github.com/chiselstrike/blockfall/internal/tui"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:               "keys",
	Short:             "List the key bindings used while playing",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		printKeys(cmd.OutOrStdout())
		return nil
	},
}

func printKeys(w io.Writer) {
	tbl := table.New("ACTION", "KEYS").WithWriter(w)

	columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
	tbl.WithFirstColumnFormatter(columnFmt)

	for _, binding := range tui.Bindings() {
		tbl.AddRow(binding.Intent.String(), strings.Join(binding.Keys, ", "))
	}
	tbl.Print()
}
