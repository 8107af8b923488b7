package tetris

// kicks are tried in order after bounds correction: centre first, then the
// ring clockwise starting to the right. The list is the same for every shape.
var kicks = [...]Coord{
	{0, 0},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

// TryRotate turns the piece by direction quarter turns (+1 or -1).
// On failure spin and shift are left unchanged.
func (piece *Piece) TryRotate(field *Playfield, direction int) bool {
	newSpin := ((piece.spin+direction)%4 + 4) % 4
	candidates := piece.positionsAt(newSpin, piece.shift)

	correction := boundsCorrection(candidates)

	for _, kick := range kicks {
		offset := correction.Add(kick)
		if !fitsWithOffset(field, candidates, offset) {
			continue
		}
		piece.shift = piece.shift.Add(offset)
		piece.spin = newSpin
		return true
	}

	return false
}

// boundsCorrection takes, per axis, the most extreme inward push needed to
// bring every candidate onto the board. Tiles overflowing both walls of an
// axis can leave the result off the board; the kick test rejects those.
func boundsCorrection(candidates []Coord) Coord {
	var correction Coord
	for _, pos := range candidates {
		if pos.Row < 0 {
			correction.Row = max(correction.Row, -pos.Row)
		} else if pos.Row > BoardHeight-1 {
			correction.Row = min(correction.Row, BoardHeight-1-pos.Row)
		}
		if pos.Col < 0 {
			correction.Col = max(correction.Col, -pos.Col)
		} else if pos.Col > BoardWidth-1 {
			correction.Col = min(correction.Col, BoardWidth-1-pos.Col)
		}
	}
	return correction
}

func fitsWithOffset(field *Playfield, candidates []Coord, offset Coord) bool {
	for _, pos := range candidates {
		adjusted := pos.Add(offset)
		if !adjusted.OnBoard() {
			return false
		}
		if field.cells[adjusted.Row][adjusted.Col] != CellEmpty {
			return false
		}
	}
	return true
}
