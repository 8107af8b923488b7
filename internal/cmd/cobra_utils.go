package cmd

import (
	"github.com/chiselstrike/blockfall/internal/settings"
	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/spf13/cobra"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

func shapesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0)
	for _, shape := range tetris.Shapes() {
		names = append(names, shape.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func configKeysArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}
