package cmd

import (
	"context"
	"os"

	"github.com/chiselstrike/blockfall/internal/flags"
	"github.com/spf13/cobra"
)

// version is overwritten at release time with -ldflags "-X"
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "blockfall",
	Version: version,
	Long:    "Blockfall, falling blocks in your terminal",
}

func init() {
	if err := flags.AddConfigPathFlag(rootCmd); err != nil {
		panic(err)
	}
	flags.AddDebugFlag(rootCmd)
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
