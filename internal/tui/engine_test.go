package tui

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, shapes ...tetris.Shape) (*Engine, tcell.Screen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	view, err := NewViewOnScreen(screen, true)
	require.NoError(t, err)
	screen.SetSize(100, 30)
	view.animationStep = 0
	t.Cleanup(view.Stop)

	options := Options{Player: "ada", StartLevel: 1, BaseScore: 100, Ghost: true, SpawnColumn: 3}
	engine := NewEngine(view, log.New(io.Discard, "", 0), tetris.NewSequenceFactory(shapes...), options)
	engine.timer = time.NewTimer(time.Hour)
	engine.stopTimer()
	t.Cleanup(func() { engine.timer.Stop() })
	engine.NewGame()
	return engine, screen
}

func TestSpawnColumn(t *testing.T) {
	require.Equal(t, 0, SpawnColumn(-2))
	require.Equal(t, 3, SpawnColumn(3))
	require.Equal(t, tetris.BoardWidth-4, SpawnColumn(42))
}

func TestEngineNewGame(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)

	require.Equal(t, engineModeRun, engine.mode)
	require.Equal(t, 1, engine.games)
	_, err := uuid.Parse(engine.gameID)
	require.NoError(t, err)
	require.Equal(t, tetris.TickTime(1), engine.tickTime)
	require.Equal(t, []tetris.Coord{{Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}, {Row: 0, Col: 6}}, engine.game.Current().Positions())
}

func TestEnginePause(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)

	engine.ProcessIntent(tetris.IntentPause)
	require.Equal(t, engineModePaused, engine.mode)

	engine.ProcessIntent(tetris.IntentShiftLeft)
	require.Equal(t, tetris.Coord{}, engine.game.Current().Offset())

	engine.ProcessIntent(tetris.IntentPause)
	require.Equal(t, engineModeRun, engine.mode)

	engine.ProcessIntent(tetris.IntentShiftLeft)
	require.Equal(t, tetris.Coord{Col: -1}, engine.game.Current().Offset())
}

func TestEngineTick(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)

	engine.tick()
	engine.tick()
	require.Equal(t, tetris.Coord{Row: 2}, engine.game.Current().Offset())
}

func TestEngineClearRaisesLevel(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)
	engine.game.Scorer().AddLines(9)
	for col := 0; col < tetris.BoardWidth; col++ {
		if col < 3 || col > 6 {
			engine.game.Field().Set(tetris.BoardHeight-1, col, tetris.CellRed)
		}
	}

	engine.ProcessIntent(tetris.IntentHardDrop)
	require.Equal(t, 10, engine.game.Scorer().Lines())
	require.Equal(t, 2, engine.game.Scorer().Level())
	require.Equal(t, tetris.TickTime(2), engine.tickTime)
}

func TestEngineGameOver(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)
	engine.game.Field().Set(0, 4, tetris.CellRed)

	engine.ProcessIntent(tetris.IntentHardDrop)
	require.Equal(t, engineModeGameOver, engine.mode)
	require.Equal(t, []tetris.RankEntry{{Name: "ada", Score: 0}}, engine.ranking.Entries())

	engine.ProcessIntent(tetris.IntentShiftLeft)
	require.Equal(t, engineModeGameOver, engine.mode)

	engine.ProcessIntent(tetris.IntentHardDrop)
	require.Equal(t, engineModeRun, engine.mode)
	require.Equal(t, 2, engine.games)
	require.False(t, engine.game.Over())
}

func TestEngineQuit(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)

	engine.ProcessIntent(tetris.IntentQuit)
	require.True(t, engine.stopped)
	require.Equal(t, engineModeStopped, engine.mode)

	select {
	case <-engine.chanStop:
	default:
		t.Fatal("stop channel is still open")
	}

	engine.Stop()
}

func TestEngineSummary(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeSquare, tetris.ShapeTee)
	engine.ProcessIntent(tetris.IntentHardDrop)

	summary := engine.Summary()
	require.Equal(t, "ada", summary.Player)
	require.Equal(t, 1, summary.Games)
	require.Equal(t, 2, summary.Spawned[tetris.ShapeSquare])
	require.Equal(t, 1, summary.Spawned[tetris.ShapeTee])
	require.Equal(t, 0, summary.Spawned[tetris.ShapeLong])
	require.Empty(t, summary.Ranking)
}

func TestEngineRunStopsOnCancel(t *testing.T) {
	engine, _ := newTestEngine(t, tetris.ShapeLong)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- engine.Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}
	require.True(t, engine.stopped)
}
