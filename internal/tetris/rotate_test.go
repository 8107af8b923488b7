package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryRotateInOpenSpace(t *testing.T) {
	field := NewPlayfield()
	piece := NewPiece(ShapeLong, Coord{Row: 8, Col: 3})

	require.True(t, piece.TryRotate(field, 1))
	require.Equal(t, 1, piece.Spin())
	require.Equal(t, Coord{}, piece.Offset())
	require.Equal(t, []Coord{{9, 4}, {8, 4}, {7, 4}, {6, 4}}, piece.Positions())

	require.True(t, piece.TryRotate(field, -1))
	require.True(t, piece.TryRotate(field, -1))
	require.Equal(t, 3, piece.Spin())
}

func TestTryRotateTeeAtLeftWall(t *testing.T) {
	field := NewPlayfield()
	piece := NewPiece(ShapeTee, Coord{})

	require.True(t, piece.TryRotate(field, -1))
	require.True(t, piece.TryTranslate(field, Left))
	require.Equal(t, Coord{Col: -1}, piece.Offset())
	for _, pos := range piece.Positions() {
		require.GreaterOrEqual(t, pos.Col, 0)
	}

	candidates := piece.positionsAt(0, piece.Offset())
	correction := boundsCorrection(candidates)
	require.GreaterOrEqual(t, correction.Col, 1)

	require.True(t, piece.TryRotate(field, 1))
	require.Equal(t, 0, piece.Spin())
	require.Equal(t, Coord{}, piece.Offset())
	for _, pos := range piece.Positions() {
		require.True(t, pos.OnBoard(), "%v", pos)
	}
}

func TestTryRotateUsesKicks(t *testing.T) {
	field := NewPlayfield()
	piece := NewPiece(ShapeLong, Coord{Row: 8, Col: 3})
	// blocks the vertical pose at column 4, the first kick moves it one column right
	field.Set(6, 4, CellRed)

	require.True(t, piece.TryRotate(field, 1))
	require.Equal(t, Coord{Col: 1}, piece.Offset())
	require.Equal(t, []Coord{{9, 5}, {8, 5}, {7, 5}, {6, 5}}, piece.Positions())
}

func TestTryRotateBlockedLeavesPiece(t *testing.T) {
	field := NewPlayfield()
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			field.Set(row, col, CellRed)
		}
	}
	piece := NewPiece(ShapeLong, Coord{Row: 8, Col: 3})
	for _, pos := range piece.Positions() {
		field.Set(pos.Row, pos.Col, CellEmpty)
	}

	require.False(t, piece.TryRotate(field, 1))
	require.False(t, piece.TryRotate(field, -1))
	require.Equal(t, 0, piece.Spin())
	require.Equal(t, Coord{}, piece.Offset())
}

func TestBoundsCorrection(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Coord
		want       Coord
	}{
		{"inside", []Coord{{0, 0}, {19, 9}}, Coord{}},
		{"above", []Coord{{-2, 4}, {-1, 4}, {0, 4}}, Coord{Row: 2}},
		{"below", []Coord{{20, 4}, {21, 4}}, Coord{Row: -2}},
		{"left", []Coord{{5, -1}, {5, 0}}, Coord{Col: 1}},
		{"right", []Coord{{5, 10}, {5, 11}, {5, 12}}, Coord{Col: -3}},
		{"corner", []Coord{{-1, -2}, {0, 0}}, Coord{Row: 1, Col: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, boundsCorrection(tt.candidates))
		})
	}
}
