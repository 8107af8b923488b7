package flags

import (
	"fmt"
	"strconv"

	"github.com/chiselstrike/blockfall/internal"
	"github.com/spf13/cobra"
)

var levelFlag int

func AddLevel(cmd *cobra.Command) {
	usage := fmt.Sprintf("Level to start at, from %s to %s. Overrides the %s setting.", internal.Emph(1), internal.Emph(30), internal.Emph("start_level"))
	cmd.Flags().IntVarP(&levelFlag, "level", "L", 0, usage)
	_ = cmd.RegisterFlagCompletionFunc("level", levelFlagCompletion)
}

// Level returns the level flag, 0 when not set
func Level(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("level") {
		return 0, nil
	}
	if err := validateLevel(levelFlag); err != nil {
		return 0, err
	}
	return levelFlag, nil
}

func validateLevel(level int) error {
	if level < 1 || level > 30 {
		return fmt.Errorf("level must be between 1 and 30")
	}
	return nil
}

func levelFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	levels := make([]string, 0, 30)
	for level := 1; level <= 30; level++ {
		levels = append(levels, strconv.Itoa(level))
	}
	return levels, cobra.ShellCompDirectiveNoFileComp
}
