package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/exp/slices"
)

type shapeDef struct {
	name   string
	tiles  []Coord
	centre Coord
	color  Cell
}

// shapes is the catalogue, indexed by Shape.
// The square repeats its origin tile, so it carries 5 tiles.
var shapes = [shapeCount]shapeDef{
	ShapeSquare: {
		//  [c][X]
		//  [X][X]
		name:   "square",
		tiles:  []Coord{{0, 0}, {0, 0}, {1, 0}, {0, 1}, {1, 1}},
		centre: Coord{0, 0},
		color:  CellRed,
	},
	ShapeTee: {
		//  [ ][X][ ]
		//  [X][c][X]
		name:   "tee",
		tiles:  []Coord{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		centre: Coord{1, 1},
		color:  CellGreen,
	},
	ShapeZee: {
		//  [ ][X][X]
		//  [X][c][ ]
		name:   "zee",
		tiles:  []Coord{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		centre: Coord{1, 1},
		color:  CellCyan,
	},
	ShapeZaa: {
		//  [X][c][ ]
		//  [ ][X][X]
		name:   "zaa",
		tiles:  []Coord{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		centre: Coord{0, 1},
		color:  CellPurple,
	},
	ShapeLong: {
		//  [X][c][X][X]
		name:   "long",
		tiles:  []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		centre: Coord{0, 1},
		color:  CellBlue,
	},
}

func shapeDefinition(shape Shape) shapeDef {
	if shape < 0 || int(shape) >= shapeCount {
		panic(fmt.Sprintf("tetris: shape %d is not in the catalogue", shape))
	}
	return shapes[shape]
}

// Shapes returns every shape of the catalogue in order
func Shapes() []Shape {
	all := make([]Shape, shapeCount)
	for i := range all {
		all[i] = Shape(i)
	}
	return all
}

// ParseShape looks up a shape by name
func ParseShape(name string) (Shape, error) {
	index := slices.IndexFunc(shapes[:], func(def shapeDef) bool {
		return def.name == name
	})
	if index < 0 {
		return 0, fmt.Errorf("unknown shape %q", name)
	}
	return Shape(index), nil
}

func (shape Shape) String() string {
	if shape < 0 || int(shape) >= shapeCount {
		return fmt.Sprintf("Shape(%d)", int(shape))
	}
	return shapes[shape].name
}

// CanonicalTiles returns the shape-local tiles of a shape
func (shape Shape) CanonicalTiles() []Coord {
	return slices.Clone(shapeDefinition(shape).tiles)
}

// Centre returns the shape-local rotation centre of a shape
func (shape Shape) Centre() Coord {
	return shapeDefinition(shape).centre
}

// Color returns the cell value of a shape
func (shape Shape) Color() Cell {
	return shapeDefinition(shape).color
}

// PieceFactory produces new pieces
type PieceFactory interface {
	NewPiece(origin Coord) *Piece
}

// RandomFactory picks shapes uniformly at random
type RandomFactory struct {
	rng *rand.Rand
}

// NewRandomFactory creates a factory; a nil rng is seeded from the clock
func NewRandomFactory(rng *rand.Rand) *RandomFactory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomFactory{rng: rng}
}

// NewPiece creates a new piece of a random shape
func (factory *RandomFactory) NewPiece(origin Coord) *Piece {
	return NewPiece(Shape(factory.rng.Intn(shapeCount)), origin)
}

// SequenceFactory replays a fixed list of shapes, cycling when exhausted
type SequenceFactory struct {
	shapes []Shape
	index  int
}

// NewSequenceFactory creates a factory replaying shapes in order
func NewSequenceFactory(shapes ...Shape) *SequenceFactory {
	if len(shapes) == 0 {
		shapes = Shapes()
	}
	return &SequenceFactory{shapes: shapes}
}

// NewPiece creates the next piece of the sequence
func (factory *SequenceFactory) NewPiece(origin Coord) *Piece {
	shape := factory.shapes[factory.index]
	factory.index++
	if factory.index >= len(factory.shapes) {
		factory.index = 0
	}
	return NewPiece(shape, origin)
}
