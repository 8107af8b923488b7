package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chiselstrike/blockfall/internal"
	"github.com/chiselstrike/blockfall/internal/prompt"
	"github.com/chiselstrike/blockfall/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your game settings",
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> [value]",
	Short:             "Set a configuration value",
	Long:              "Set a configuration value. Leaving out the value of start_level opens a level picker.",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: configKeysArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		key := args[0]
		value, err := configValue(config, args)
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
			return nil
		}
		if err := config.Set(key, value); err != nil {
			return err
		}
		if err := settings.PersistChanges(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", key, internal.Emph(value))
		return nil
	},
}

// configValue returns the value to set, asking for a level when it is missing
func configValue(config *settings.Settings, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}
	if args[0] != settings.KeyStartLevel {
		return "", fmt.Errorf("missing value for %s", args[0])
	}
	if !prompt.IsInteractive() {
		return "", fmt.Errorf("missing value for %s, and there is no terminal to pick one", args[0])
	}
	current, err := config.Config()
	if err != nil {
		return "", err
	}
	level, err := prompt.Level(current.StartLevel)
	if err != nil || level == 0 {
		return "", err
	}
	return strconv.Itoa(level), nil
}

var configShowCmd = &cobra.Command{
	Use:               "show",
	Short:             "Show the current configuration",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		showConfig(cmd.OutOrStdout(), config)
		return nil
	},
}

func showConfig(w io.Writer, config *settings.Settings) {
	data := make([][]string, 0)
	for _, key := range settings.Keys() {
		data = append(data, []string{key, fmt.Sprint(config.Get(key))})
	}
	printTable(w, []string{"key", "value"}, data)
	fmt.Fprintf(w, "\nSettings file: %s\n", config.ConfigFile())
}
