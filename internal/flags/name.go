package flags

import (
	"github.com/spf13/cobra"
)

var nameFlag string

func AddName(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Player name shown in the ranking. Remembered for the next runs.")
}

func Name() string {
	return nameFlag
}
