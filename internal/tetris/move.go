package tetris

var (
	// Down is one row towards the floor
	Down = Coord{Row: 1}
	// Left is one column towards the left wall
	Left = Coord{Col: -1}
	// Right is one column towards the right wall
	Right = Coord{Col: 1}
)

// TryTranslate moves the piece by direction if the playfield allows it.
// False means the piece has come to rest. True means the move was applied
// or absorbed: a tile pushed past a side wall or onto an occupied destination
// leaves the piece where it is and still reports true.
func (piece *Piece) TryTranslate(field *Playfield, direction Coord) bool {
	if direction == (Coord{}) {
		return true
	}

	for _, pos := range piece.Positions() {
		next := pos.Add(direction)

		if next.Col < 0 || next.Col >= BoardWidth {
			return true
		}
		if next.Row < 0 || next.Row >= BoardHeight {
			return false
		}
		if field.cells[next.Row][pos.Col] != CellEmpty {
			return false
		}
		if field.cells[next.Row][next.Col] != CellEmpty {
			return true
		}
	}

	piece.shift = piece.shift.Add(direction)
	return true
}

// HardDrop moves the piece down until it can no longer move
func (piece *Piece) HardDrop(field *Playfield) {
	for i := 0; i <= BoardHeight; i++ {
		if !piece.TryTranslate(field, Down) {
			return
		}
	}
}

// Ghost returns a hard-dropped copy of the piece, leaving the piece untouched
func (piece *Piece) Ghost(field *Playfield) *Piece {
	ghost := piece.Clone()
	ghost.HardDrop(field)
	return ghost
}
