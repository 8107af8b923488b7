package tui

import (
	"runtime"
	"strings"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/gdamore/tcell/v2"
)

var runeIntents = map[rune]tetris.Intent{
	'h': tetris.IntentShiftLeft,
	'l': tetris.IntentShiftRight,
	'j': tetris.IntentSoftDrop,
	' ': tetris.IntentHardDrop,
	'k': tetris.IntentRotateLeft,
	'z': tetris.IntentRotateRight,
	'c': tetris.IntentHold,
	'p': tetris.IntentPause,
	'q': tetris.IntentQuit,
}

var keyIntents = map[tcell.Key]tetris.Intent{
	tcell.KeyLeft:   tetris.IntentShiftLeft,
	tcell.KeyRight:  tetris.IntentShiftRight,
	tcell.KeyDown:   tetris.IntentSoftDrop,
	tcell.KeyUp:     tetris.IntentRotateLeft,
	tcell.KeyEscape: tetris.IntentQuit,
	tcell.KeyCtrlC:  tetris.IntentQuit,
}

// Bindings lists the keys of every intent, in display order
func Bindings() []Binding {
	return []Binding{
		{Keys: []string{"h", "←"}, Intent: tetris.IntentShiftLeft},
		{Keys: []string{"l", "→"}, Intent: tetris.IntentShiftRight},
		{Keys: []string{"j", "↓"}, Intent: tetris.IntentSoftDrop},
		{Keys: []string{"space"}, Intent: tetris.IntentHardDrop},
		{Keys: []string{"k", "↑"}, Intent: tetris.IntentRotateLeft},
		{Keys: []string{"z"}, Intent: tetris.IntentRotateRight},
		{Keys: []string{"c"}, Intent: tetris.IntentHold},
		{Keys: []string{"p"}, Intent: tetris.IntentPause},
		{Keys: []string{"q", "esc", "ctrl+c"}, Intent: tetris.IntentQuit},
	}
}

func helpLine(binding Binding) string {
	keys := strings.Join(binding.Keys, " ")
	return keys + strings.Repeat(" ", max(1, 8-len([]rune(keys)))) + "- " + binding.Intent.String()
}

// KeyIntent translates a key press into an intent
func KeyIntent(key tcell.Key, char rune) tetris.Intent {
	if key == tcell.KeyRune {
		if intent, ok := runeIntents[char]; ok {
			return intent
		}
		return tetris.IntentNone
	}
	if intent, ok := keyIntents[key]; ok {
		return intent
	}
	return tetris.IntentNone
}

// ProcessEventKey process the key input event
func (engine *Engine) ProcessEventKey(eventKey *tcell.EventKey) {
	if eventKey.Key() == tcell.KeyCtrlL {
		// Ctrl l (lower case L) to log stack trace
		buffer := make([]byte, 1<<16)
		length := runtime.Stack(buffer, true)
		engine.logger.Println("Stack trace")
		engine.logger.Println(string(buffer[:length]))
		return
	}

	engine.ProcessIntent(KeyIntent(eventKey.Key(), eventKey.Rune()))
}

// ProcessIntent applies an intent according to the engine mode
func (engine *Engine) ProcessIntent(intent tetris.Intent) {
	if intent == tetris.IntentNone {
		return
	}
	if engine.options.Debug {
		engine.logger.Printf("intent %s mode %d", intent, engine.mode)
	}

	switch engine.mode {

	// game over
	case engineModeGameOver:

		switch intent {
		case tetris.IntentQuit:
			engine.Stop()
		case tetris.IntentHardDrop, tetris.IntentNewGame:
			engine.NewGame()
		}

	// paused
	case engineModePaused:

		switch intent {
		case tetris.IntentQuit:
			engine.Stop()
		case tetris.IntentPause:
			engine.UnPause()
		}

	// run
	case engineModeRun:

		switch intent {
		case tetris.IntentQuit:
			engine.Stop()
		case tetris.IntentPause:
			engine.Pause()
		default:
			engine.apply(intent)
		}
	}
}
