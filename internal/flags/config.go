package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configPath string

func AddConfigPathFlag(cmd *cobra.Command) error {
	cmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Path to the directory with blockfall's settings.json file")
	return viper.BindPFlag("config-path", cmd.PersistentFlags().Lookup("config-path"))
}

func ConfigPath() string {
	return configPath
}
