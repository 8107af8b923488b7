package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	cmd := &cobra.Command{Use: "play"}
	AddLevel(cmd)

	level, err := Level(cmd)
	require.NoError(t, err)
	require.Equal(t, 0, level)

	require.NoError(t, cmd.Flags().Set("level", "12"))
	level, err = Level(cmd)
	require.NoError(t, err)
	require.Equal(t, 12, level)

	require.NoError(t, cmd.Flags().Set("level", "31"))
	_, err = Level(cmd)
	require.EqualError(t, err, "level must be between 1 and 30")

	levels, directive := levelFlagCompletion(cmd, nil, "")
	require.Len(t, levels, 30)
	require.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestPlayFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "play"}
	AddNoGhost(cmd)
	AddName(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--no-ghost", "-n", "ada"}))
	require.True(t, NoGhost())
	require.Equal(t, "ada", Name())
}
