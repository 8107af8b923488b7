package tui

import (
	"log"
	"time"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/gdamore/tcell/v2"
)

const (
	boardXOffset = 4
	boardYOffset = 2
	sideXOffset  = boardXOffset + tetris.BoardWidth*2 + 8
	helpXOffset  = sideXOffset + 18
	previewWidth = 14
	previewRows  = 6

	gameOverAnimationStep = 60 * time.Millisecond

	colorBlank   = tcell.ColorBlack
	colorRed     = tcell.ColorRed
	colorGreen   = tcell.ColorLime
	colorPurple  = tcell.ColorFuchsia
	colorCyan    = tcell.ColorAqua
	colorBlue    = tcell.ColorBlue
	colorBoarder = tcell.ColorLightGray
)

const (
	engineModeRun engineMode = iota
	engineModeStopped
	engineModeGameOver
	engineModePaused
)

type (
	engineMode int

	// Options configures a play session
	Options struct {
		Player      string
		StartLevel  int
		BaseScore   int
		Ghost       bool
		SpawnColumn int
		Debug       bool
	}

	// View is the display engine
	View struct {
		screen        tcell.Screen
		ghost         bool
		animationStep time.Duration
	}

	// Engine is the game engine driving a tetris.Game from terminal events
	Engine struct {
		stopped      bool
		chanStop     chan struct{}
		chanEventKey chan *tcell.EventKey
		chanResize   chan struct{}
		logger       *log.Logger
		view         *View
		game         *tetris.Game
		ranking      *tetris.Ranking
		options      Options
		gameID       string
		games        int
		timer        *time.Timer
		tickTime     time.Duration
		mode         engineMode
	}

	// Summary describes a finished play session
	Summary struct {
		Player  string
		Games   int
		Score   int
		Lines   int
		Level   int
		Spawned map[tetris.Shape]int
		Ranking []tetris.RankEntry
	}

	// Binding maps keys to an intent
	Binding struct {
		Keys   []string
		Intent tetris.Intent
	}

	// eventStop asks the event pump to return
	eventStop struct {
		when time.Time
	}
)

// When returns event when
func (event *eventStop) When() time.Time {
	return event.when
}

var cellColors = map[tetris.Cell]tcell.Color{
	tetris.CellEmpty:  colorBlank,
	tetris.CellRed:    colorRed,
	tetris.CellGreen:  colorGreen,
	tetris.CellPurple: colorPurple,
	tetris.CellCyan:   colorCyan,
	tetris.CellBlue:   colorBlue,
}

// CellColor returns the terminal color of a cell value
func CellColor(cell tetris.Cell) tcell.Color {
	if color, ok := cellColors[cell]; ok {
		return color
	}
	return colorBlank
}
