package tui

import (
	"strings"
	"testing"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		char rune
		want tetris.Intent
	}{
		{"h", tcell.KeyRune, 'h', tetris.IntentShiftLeft},
		{"left", tcell.KeyLeft, 0, tetris.IntentShiftLeft},
		{"l", tcell.KeyRune, 'l', tetris.IntentShiftRight},
		{"right", tcell.KeyRight, 0, tetris.IntentShiftRight},
		{"j", tcell.KeyRune, 'j', tetris.IntentSoftDrop},
		{"down", tcell.KeyDown, 0, tetris.IntentSoftDrop},
		{"space", tcell.KeyRune, ' ', tetris.IntentHardDrop},
		{"k", tcell.KeyRune, 'k', tetris.IntentRotateLeft},
		{"up", tcell.KeyUp, 0, tetris.IntentRotateLeft},
		{"z", tcell.KeyRune, 'z', tetris.IntentRotateRight},
		{"c", tcell.KeyRune, 'c', tetris.IntentHold},
		{"p", tcell.KeyRune, 'p', tetris.IntentPause},
		{"q", tcell.KeyRune, 'q', tetris.IntentQuit},
		{"esc", tcell.KeyEscape, 0, tetris.IntentQuit},
		{"ctrl+c", tcell.KeyCtrlC, 0, tetris.IntentQuit},
		{"unbound rune", tcell.KeyRune, 'x', tetris.IntentNone},
		{"unbound key", tcell.KeyF1, 0, tetris.IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KeyIntent(tt.key, tt.char))
		})
	}
}

func TestBindingsMatchKeys(t *testing.T) {
	for char, intent := range runeIntents {
		found := false
		for _, binding := range Bindings() {
			if binding.Intent != intent {
				continue
			}
			for _, key := range binding.Keys {
				found = found || key == string(char) || (char == ' ' && key == "space")
			}
		}
		require.True(t, found, "rune %q is not listed", char)
	}
}

func TestHelpLine(t *testing.T) {
	line := helpLine(Binding{Keys: []string{"h", "←"}, Intent: tetris.IntentShiftLeft})
	require.Equal(t, "h ←     - shift-left", line)

	long := helpLine(Binding{Keys: []string{"q", "esc", "ctrl+c"}, Intent: tetris.IntentQuit})
	require.True(t, strings.HasSuffix(long, " - quit"), long)
}
