package flags

import (
	"github.com/spf13/cobra"
)

var noGhost bool

func AddNoGhost(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noGhost, "no-ghost", false, "Hide the landing preview of the falling piece.")
}

func NoGhost() bool {
	return noGhost
}
