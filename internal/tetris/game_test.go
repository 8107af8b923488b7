package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGame(shapes ...Shape) *Game {
	game := NewGame(NewSequenceFactory(shapes...), NewScorer(DefaultBaseScore, 1), Coord{Col: 3})
	game.Start()
	return game
}

func TestGameStart(t *testing.T) {
	game := newTestGame(ShapeSquare, ShapeTee, ShapeZee)

	require.Equal(t, ShapeSquare, game.Current().Shape())
	require.Equal(t, ShapeTee, game.Next().Shape())
	require.Nil(t, game.Held())
	require.True(t, game.CanHold())
	require.False(t, game.Over())
	require.Equal(t, 2, game.Stats().Total())
}

func TestGameMoves(t *testing.T) {
	game := newTestGame(ShapeTee)

	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentShiftLeft))
	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentSoftDrop))
	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentRotateRight))
	require.Equal(t, Coord{Row: 1, Col: -1}, game.Current().Offset())
	require.Equal(t, 1, game.Current().Spin())

	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentRotateLeft))
	require.Equal(t, 0, game.Current().Spin())
	require.Equal(t, Outcome{}, game.Apply(IntentPause))
}

func TestGameHardDropLocks(t *testing.T) {
	game := newTestGame(ShapeLong, ShapeSquare)

	outcome := game.Apply(IntentHardDrop)
	require.True(t, outcome.Locked)
	require.Equal(t, 0, outcome.LinesCleared)
	require.False(t, outcome.GameOver)
	require.Equal(t, CellBlue, game.Field().At(BoardHeight-1, 3))
	require.Equal(t, ShapeSquare, game.Current().Shape())
	require.Equal(t, ShapeLong, game.Next().Shape())
}

func TestGameSoftDropLocksOnFloor(t *testing.T) {
	game := newTestGame(ShapeLong)

	for i := 0; i < BoardHeight-1; i++ {
		require.Equal(t, Outcome{Moved: true}, game.Apply(IntentSoftDrop))
	}
	outcome := game.Apply(IntentSoftDrop)
	require.True(t, outcome.Locked)
	require.Equal(t, CellBlue, game.Field().At(BoardHeight-1, 6))
}

func TestGameClearsAndScores(t *testing.T) {
	game := newTestGame(ShapeLong)
	for col := 0; col < BoardWidth; col++ {
		if col < 3 || col > 6 {
			game.Field().Set(BoardHeight-1, col, CellRed)
		}
	}

	outcome := game.Apply(IntentHardDrop)
	require.Equal(t, 1, outcome.LinesCleared)
	require.Equal(t, 100, game.Scorer().Score())
	require.Equal(t, 1, game.Scorer().Lines())
	require.Equal(t, [BoardWidth]Cell{}, game.Field().Rows()[BoardHeight-1])
}

func TestGameHold(t *testing.T) {
	game := newTestGame(ShapeTee, ShapeZee, ShapeZaa, ShapeLong)
	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentSoftDrop))
	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentRotateRight))

	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentHold))
	require.Equal(t, ShapeTee, game.Held().Shape())
	require.Equal(t, 0, game.Held().Spin())
	require.Equal(t, Coord{}, game.Held().Offset())
	require.Equal(t, ShapeZee, game.Current().Shape())
	require.Equal(t, ShapeZaa, game.Next().Shape())
	require.False(t, game.CanHold())

	require.Equal(t, Outcome{}, game.Apply(IntentHold))
	require.Equal(t, ShapeZee, game.Current().Shape())

	require.True(t, game.Apply(IntentHardDrop).Locked)
	require.True(t, game.CanHold())
	require.Equal(t, ShapeZaa, game.Current().Shape())

	require.Equal(t, Outcome{Moved: true}, game.Apply(IntentHold))
	require.Equal(t, ShapeTee, game.Current().Shape())
	require.Equal(t, ShapeZaa, game.Held().Shape())
	require.Equal(t, ShapeLong, game.Next().Shape())
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	game := newTestGame(ShapeLong)
	game.Field().Set(0, 4, CellRed)

	outcome := game.Apply(IntentHardDrop)
	require.True(t, outcome.Locked)
	require.True(t, outcome.GameOver)
	require.True(t, game.Over())

	require.Equal(t, Outcome{GameOver: true}, game.Apply(IntentShiftLeft))

	game.Start()
	require.False(t, game.Over())
	require.False(t, game.Field().Occupied(Coord{Row: 0, Col: 4}))
}

func TestGameGhost(t *testing.T) {
	game := newTestGame(ShapeSquare)
	ghost := game.Ghost()
	require.Equal(t, Coord{Row: BoardHeight - 2}, ghost.Offset())
	require.Equal(t, Coord{}, game.Current().Offset())
}
