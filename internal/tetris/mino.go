package tetris

// NewPiece creates a piece of the given shape with its reference point at origin
func NewPiece(shape Shape, origin Coord) *Piece {
	def := shapeDefinition(shape)
	tiles := make([]Coord, len(def.tiles))
	for i, tile := range def.tiles {
		tiles[i] = tile.Add(origin)
	}
	return &Piece{
		shape:  shape,
		tiles:  tiles,
		centre: def.centre.Add(origin),
		color:  def.color,
	}
}

// Shape returns the shape of the piece
func (piece *Piece) Shape() Shape {
	return piece.shape
}

// Color returns the cell value the piece paints
func (piece *Piece) Color() Cell {
	return piece.color
}

// Spin returns the number of quarter turns applied
func (piece *Piece) Spin() int {
	return piece.spin
}

// Offset returns the translation applied after rotation
func (piece *Piece) Offset() Coord {
	return piece.shift
}

// Tiles returns the canonical tiles, without spin or shift
func (piece *Piece) Tiles() []Coord {
	tiles := make([]Coord, len(piece.tiles))
	copy(tiles, piece.tiles)
	return tiles
}

// Positions returns the board position of every tile, in tile order
func (piece *Piece) Positions() []Coord {
	return piece.positionsAt(piece.spin, piece.shift)
}

// positionsAt computes tile positions for an arbitrary spin and shift
func (piece *Piece) positionsAt(spin int, shift Coord) []Coord {
	positions := make([]Coord, len(piece.tiles))
	for i, tile := range piece.tiles {
		positions[i] = tile.Sub(piece.centre).Rotate(spin).Add(piece.centre).Add(shift)
	}
	return positions
}

// Clone creates copy of the piece
func (piece *Piece) Clone() *Piece {
	newPiece := *piece
	return &newPiece
}

// Reset puts the piece back in its canonical pose at its origin
func (piece *Piece) Reset() {
	piece.spin = 0
	piece.shift = Coord{}
}

// Fits checks that no tile is off the board or on a locked cell
func (piece *Piece) Fits(field *Playfield) bool {
	for _, pos := range piece.Positions() {
		if !pos.OnBoard() || field.cells[pos.Row][pos.Col] != CellEmpty {
			return false
		}
	}
	return true
}
