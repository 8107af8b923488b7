package tetris

// NewPlayfield creates a new empty playfield
func NewPlayfield() *Playfield {
	return &Playfield{}
}

// At returns the cell at row, col. Indexing outside the board panics.
func (field *Playfield) At(row int, col int) Cell {
	return field.cells[row][col]
}

// Set sets the cell at row, col
func (field *Playfield) Set(row int, col int, cell Cell) {
	field.cells[row][col] = cell
}

// Occupied checks if the cell at pos holds a locked color
func (field *Playfield) Occupied(pos Coord) bool {
	return field.cells[pos.Row][pos.Col] != CellEmpty
}

// Rows returns a copy of the cell matrix
func (field *Playfield) Rows() [BoardHeight][BoardWidth]Cell {
	return field.cells
}

// Clone creates copy of the playfield
func (field *Playfield) Clone() *Playfield {
	newField := *field
	return &newField
}

// Clear removes all cells from the playfield
func (field *Playfield) Clear() {
	field.cells = [BoardHeight][BoardWidth]Cell{}
}

// Absorb writes the piece into the playfield and clears full rows.
// The piece positions must already be legal. Returns the number of rows cleared.
func (field *Playfield) Absorb(piece *Piece) int {
	for _, pos := range piece.Positions() {
		field.cells[pos.Row][pos.Col] = piece.color
	}

	lines := field.fullLines()
	for _, line := range lines {
		field.deleteLine(line)
	}
	return len(lines)
}

// FullLines returns the rows that are currently full, top to bottom
func (field *Playfield) FullLines() []int {
	return field.fullLines()
}

// fullLines returns the line numbers that have full lines
func (field *Playfield) fullLines() []int {
	fullLines := make([]int, 0, 1)
	for row := 0; row < BoardHeight; row++ {
		if field.isFullLine(row) {
			fullLines = append(fullLines, row)
		}
	}
	return fullLines
}

// isFullLine checks if line is full
func (field *Playfield) isFullLine(row int) bool {
	for col := 0; col < BoardWidth; col++ {
		if field.cells[row][col] == CellEmpty {
			return false
		}
	}
	return true
}

// deleteLine removes the row and inserts an empty row at the top.
// Rows below line keep their index, so lines found top to bottom stay valid.
func (field *Playfield) deleteLine(line int) {
	for row := line; row > 0; row-- {
		field.cells[row] = field.cells[row-1]
	}
	field.cells[0] = [BoardWidth]Cell{}
}
