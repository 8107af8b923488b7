package tetris

// Game owns the playfield and the active, next and held pieces of a session
type Game struct {
	field    *Playfield
	factory  PieceFactory
	scorer   *Scorer
	stats    *Stats
	origin   Coord
	current  *Piece
	next     *Piece
	held     *Piece
	holdUsed bool
	over     bool
}

// NewGame creates a game; call Start before applying intents
func NewGame(factory PieceFactory, scorer *Scorer, origin Coord) *Game {
	return &Game{
		field:   NewPlayfield(),
		factory: factory,
		scorer:  scorer,
		stats:   NewStats(),
		origin:  origin,
	}
}

// Start clears the board and score and spawns the first pieces
func (game *Game) Start() {
	game.field.Clear()
	game.scorer.Reset()
	game.stats.Reset()
	game.held = nil
	game.holdUsed = false
	game.over = false
	game.current = game.spawn()
	game.next = game.spawn()
}

func (game *Game) spawn() *Piece {
	piece := game.factory.NewPiece(game.origin)
	game.stats.Record(piece.Shape())
	return piece
}

// Apply performs one intent against the active piece
func (game *Game) Apply(intent Intent) Outcome {
	if game.over || game.current == nil {
		return Outcome{GameOver: game.over}
	}

	switch intent {
	case IntentShiftLeft:
		return game.translate(Left)
	case IntentShiftRight:
		return game.translate(Right)
	case IntentSoftDrop:
		return game.translate(Down)
	case IntentHardDrop:
		game.current.HardDrop(game.field)
		return game.lock()
	case IntentRotateLeft:
		return Outcome{Moved: game.current.TryRotate(game.field, -1)}
	case IntentRotateRight:
		return Outcome{Moved: game.current.TryRotate(game.field, 1)}
	case IntentHold:
		return game.hold()
	}
	return Outcome{}
}

func (game *Game) translate(direction Coord) Outcome {
	if game.current.TryTranslate(game.field, direction) {
		return Outcome{Moved: true}
	}
	return game.lock()
}

// lock absorbs the active piece and promotes the next one
func (game *Game) lock() Outcome {
	lines := game.field.Absorb(game.current)
	game.scorer.AddLines(lines)

	game.current = game.next
	game.next = game.spawn()
	game.holdUsed = false

	if !game.current.Fits(game.field) {
		game.over = true
	}

	return Outcome{Locked: true, LinesCleared: lines, GameOver: game.over}
}

// hold swaps the active piece with the held slot, once between locks
func (game *Game) hold() Outcome {
	if game.holdUsed {
		return Outcome{}
	}

	game.current.Reset()
	if game.held == nil {
		game.held = game.current
		game.current = game.next
		game.next = game.spawn()
	} else {
		game.held, game.current = game.current, game.held
	}
	game.holdUsed = true

	if !game.current.Fits(game.field) {
		game.over = true
	}
	return Outcome{Moved: true, GameOver: game.over}
}

// Field returns the playfield
func (game *Game) Field() *Playfield {
	return game.field
}

// Current returns the active piece
func (game *Game) Current() *Piece {
	return game.current
}

// Next returns the queued piece
func (game *Game) Next() *Piece {
	return game.next
}

// Held returns the held piece, nil when the slot is empty
func (game *Game) Held() *Piece {
	return game.held
}

// CanHold reports whether hold is available until the next lock
func (game *Game) CanHold() bool {
	return !game.holdUsed
}

// Ghost returns the landing preview of the active piece
func (game *Game) Ghost() *Piece {
	if game.current == nil {
		return nil
	}
	return game.current.Ghost(game.field)
}

// Scorer returns the score accumulator
func (game *Game) Scorer() *Scorer {
	return game.scorer
}

// Stats returns the spawn statistics
func (game *Game) Stats() *Stats {
	return game.stats
}

// Over reports whether the game has ended
func (game *Game) Over() bool {
	return game.over
}
