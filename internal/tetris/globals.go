package tetris

const (
	// BoardHeight is the number of rows in the playfield
	BoardHeight = 20
	// BoardWidth is the number of columns in the playfield
	BoardWidth = 10

	maxScore = 9999999
	maxLines = 999999
	maxLevel = 30

	rankingSize = 9
)

// Cell values stored in the playfield and carried by pieces
const (
	CellEmpty Cell = iota
	CellRed
	CellGreen
	CellPurple
	CellCyan
	CellBlue
)

// Shapes of the catalogue
const (
	ShapeSquare Shape = iota
	ShapeTee
	ShapeZee
	ShapeZaa
	ShapeLong

	shapeCount = iota
)

// Intents the driving loop can request
const (
	IntentNone Intent = iota
	IntentShiftLeft
	IntentShiftRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotateLeft
	IntentRotateRight
	IntentHold
	IntentPause
	IntentNewGame
	IntentQuit
)

type (
	// Cell is the content of a playfield slot
	Cell uint8

	// Shape identifies a piece family of the catalogue
	Shape int

	// Intent is a discrete request from the input source
	Intent int

	// Coord is a (row, col) pair, row increasing downward
	Coord struct {
		Row int
		Col int
	}

	// Piece is a falling piece
	Piece struct {
		shape  Shape
		tiles  []Coord
		centre Coord
		spin   int
		shift  Coord
		color  Cell
	}

	// Playfield is the matrix of locked cells
	Playfield struct {
		cells [BoardHeight][BoardWidth]Cell
	}

	// Scorer accumulates score, lines and level
	Scorer struct {
		base       int
		startLevel int
		score      int
		lines      int
		level      int
	}

	// RankEntry is a ranked score
	RankEntry struct {
		Name  string
		Score int
	}

	// Ranking holds the ranking scores
	Ranking struct {
		entries []RankEntry
	}

	// Outcome reports what an intent did to the game
	Outcome struct {
		Moved        bool
		Locked       bool
		LinesCleared int
		GameOver     bool
	}
)

// Add returns the sum of both coordinates
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns c minus o
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Rotate applies n quarter turns using (r, c) -> (-c, r)
func (c Coord) Rotate(n int) Coord {
	n = ((n % 4) + 4) % 4
	for i := 0; i < n; i++ {
		c = Coord{Row: -c.Col, Col: c.Row}
	}
	return c
}

// OnBoard checks if the coordinate is inside the playfield
func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardHeight && c.Col >= 0 && c.Col < BoardWidth
}

var intentNames = map[Intent]string{
	IntentNone:        "none",
	IntentShiftLeft:   "shift-left",
	IntentShiftRight:  "shift-right",
	IntentSoftDrop:    "soft-drop",
	IntentHardDrop:    "hard-drop",
	IntentRotateLeft:  "rotate-left",
	IntentRotateRight: "rotate-right",
	IntentHold:        "hold",
	IntentPause:       "pause",
	IntentNewGame:     "new-game",
	IntentQuit:        "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
