package tui

import (
	"fmt"
	"time"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/gdamore/tcell/v2"
)

// NewView acquires the terminal screen. Stop must be called to release it.
func NewView(ghost bool) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return NewViewOnScreen(screen, ghost)
}

// NewViewOnScreen initializes the given screen for drawing
func NewViewOnScreen(screen tcell.Screen, ghost bool) (*View, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &View{screen: screen, ghost: ghost, animationStep: gameOverAnimationStep}, nil
}

// Stop releases the terminal
func (view *View) Stop() {
	view.screen.Fini()
}

// RefreshScreen refreshes the updated view to the screen
func (view *View) RefreshScreen(engine *Engine) {
	view.screen.Fill(' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack))
	view.drawBoardBoarder()
	view.drawPreviewBoarder(boardYOffset, "NEXT")
	view.drawPreviewBoarder(boardYOffset+previewRows+1, "HOLD")
	view.drawTexts(engine.game.Scorer())
	view.drawHelp()

	game := engine.game
	switch engine.mode {

	case engineModeRun:
		view.drawField(game.Field())
		view.drawPreviews(game)
		if view.ghost {
			view.drawGhost(game.Ghost())
		}
		view.drawPiece(game.Current())

	case engineModePaused:
		view.drawPaused()

	case engineModeGameOver:
		view.drawField(game.Field())
		view.drawGameOver()
		view.drawRankingScores(engine.ranking)
	}

	view.screen.Show()
}

// drawBoardBoarder draws the board boarder
func (view *View) drawBoardBoarder() {
	xOffset := boardXOffset
	yOffset := boardYOffset
	xEnd := boardXOffset + tetris.BoardWidth*2 + 4
	yEnd := boardYOffset + tetris.BoardHeight + 2
	styleBoarder := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(colorBoarder)
	styleBoard := tcell.StyleDefault.Foreground(colorBoarder).Background(tcell.ColorBlack)
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			} else {
				view.screen.SetContent(x, y, ' ', nil, styleBoard)
			}
		}
	}
}

// drawPreviewBoarder draws a preview box with its title in the top boarder
func (view *View) drawPreviewBoarder(yOffset int, title string) {
	xOffset := sideXOffset
	xEnd := xOffset + previewWidth
	yEnd := yOffset + previewRows
	styleBoarder := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(colorBoarder)
	styleBoard := tcell.StyleDefault.Foreground(colorBoarder).Background(tcell.ColorBlack)
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			} else {
				view.screen.SetContent(x, y, ' ', nil, styleBoard)
			}
		}
	}
	view.drawText(xOffset+2, yOffset, title, tcell.ColorBlack, colorBoarder)
}

// drawTexts draws score, lines and level
func (view *View) drawTexts(scorer *tetris.Scorer) {
	yOffset := boardYOffset + 2*(previewRows+1)

	view.drawText(sideXOffset, yOffset, "SCORE:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(sideXOffset+7, yOffset, fmt.Sprintf("%7d", scorer.Score()), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(sideXOffset, yOffset, "LINES:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(sideXOffset+7, yOffset, fmt.Sprintf("%7d", scorer.Lines()), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(sideXOffset, yOffset, "LEVEL:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(sideXOffset+7, yOffset, fmt.Sprintf("%7d", scorer.Level()), tcell.ColorBlack, tcell.ColorLightGray)
}

// drawHelp draws the key bindings
func (view *View) drawHelp() {
	yOffset := boardYOffset
	for _, binding := range Bindings() {
		view.drawText(helpXOffset, yOffset, helpLine(binding), tcell.ColorLightGray, tcell.ColorBlack)
		yOffset++
	}
}

// drawField draws the locked cells
func (view *View) drawField(field *tetris.Playfield) {
	for row := 0; row < tetris.BoardHeight; row++ {
		for col := 0; col < tetris.BoardWidth; col++ {
			if cell := field.At(row, col); cell != tetris.CellEmpty {
				view.DrawBlock(row, col, CellColor(cell))
			}
		}
	}
}

// drawPiece draws a piece on the board
func (view *View) drawPiece(piece *tetris.Piece) {
	if piece == nil {
		return
	}
	color := CellColor(piece.Color())
	for _, pos := range piece.Positions() {
		if pos.OnBoard() {
			view.DrawBlock(pos.Row, pos.Col, color)
		}
	}
}

// drawGhost draws the landing preview
func (view *View) drawGhost(ghost *tetris.Piece) {
	if ghost == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(CellColor(ghost.Color())).Background(tcell.ColorBlack).Dim(true)
	for _, pos := range ghost.Positions() {
		if pos.OnBoard() {
			view.screen.SetContent(2*pos.Col+boardXOffset+2, pos.Row+boardYOffset+1, '░', nil, style)
			view.screen.SetContent(2*pos.Col+boardXOffset+3, pos.Row+boardYOffset+1, '░', nil, style)
		}
	}
}

// drawPreviews draws the next and held pieces in their boxes
func (view *View) drawPreviews(game *tetris.Game) {
	view.drawPreviewPiece(game.Next(), boardYOffset, false)
	view.drawPreviewPiece(game.Held(), boardYOffset+previewRows+1, !game.CanHold())
}

// drawPreviewPiece draws a piece in canonical pose inside a preview box.
// A held piece is dimmed until it can be swapped again.
func (view *View) drawPreviewPiece(piece *tetris.Piece, yOffset int, dim bool) {
	if piece == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(CellColor(piece.Color())).Background(tcell.ColorBlack).Dim(dim)
	for _, pos := range PreviewTiles(piece) {
		x := sideXOffset + 3 + 2*pos.Col
		y := yOffset + 1 + pos.Row
		view.screen.SetContent(x, y, '█', nil, style)
		view.screen.SetContent(x+1, y, '█', nil, style)
	}
}

// PreviewTiles returns the canonical tiles of a piece moved to the top left corner
func PreviewTiles(piece *tetris.Piece) []tetris.Coord {
	tiles := piece.Tiles()
	if len(tiles) == 0 {
		return tiles
	}
	corner := tiles[0]
	for _, tile := range tiles {
		corner.Row = min(corner.Row, tile.Row)
		corner.Col = min(corner.Col, tile.Col)
	}
	for i := range tiles {
		tiles[i] = tiles[i].Sub(corner)
	}
	return tiles
}

// DrawBlock draws a block
func (view *View) DrawBlock(row int, col int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
	view.screen.SetContent(2*col+boardXOffset+2, row+boardYOffset+1, '█', nil, style)
	view.screen.SetContent(2*col+boardXOffset+3, row+boardYOffset+1, '█', nil, style)
}

// drawPaused draws Paused
func (view *View) drawPaused() {
	yOffset := (tetris.BoardHeight+1)/2 + boardYOffset
	view.drawTextCenter(yOffset, "Paused", tcell.ColorWhite, tcell.ColorBlack)
}

// drawGameOver draws GAME OVER
func (view *View) drawGameOver() {
	yOffset := boardYOffset + 2
	view.drawTextCenter(yOffset, " GAME OVER", tcell.ColorWhite, tcell.ColorBlack)
	yOffset += 2
	view.drawTextCenter(yOffset, "space for new game", tcell.ColorWhite, tcell.ColorBlack)
}

// drawRankingScores draws the ranking scores
func (view *View) drawRankingScores(ranking *tetris.Ranking) {
	yOffset := boardYOffset + 8
	for index, entry := range ranking.Entries() {
		name := entry.Name
		if len(name) > 9 {
			name = name[:9]
		}
		view.drawTextCenter(yOffset+index, fmt.Sprintf("%1d %-9s%7d", index+1, name, entry.Score), tcell.ColorWhite, tcell.ColorBlack)
	}
}

// drawText draws the provided text
func (view *View) drawText(x int, y int, text string, fg tcell.Color, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	index := 0
	for _, char := range text {
		view.screen.SetContent(x+index, y, char, nil, style)
		index++
	}
}

// drawTextCenter draws text in the center of the board
func (view *View) drawTextCenter(y int, text string, fg tcell.Color, bg tcell.Color) {
	xOffset := tetris.BoardWidth - (len(text)+1)/2 + boardXOffset + 2
	view.drawText(xOffset, y, text, fg, bg)
}

// ShowGameOverAnimation greys out the board from the bottom up
func (view *View) ShowGameOverAnimation() {
	for row := tetris.BoardHeight - 1; row >= 0; row-- {
		view.colorizeLine(row, tcell.ColorLightGray)
		view.screen.Show()
		time.Sleep(view.animationStep)
	}
}

// colorizeLine changes the color of a line
func (view *View) colorizeLine(row int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(color)
	for col := 0; col < tetris.BoardWidth; col++ {
		view.screen.SetContent(col*2+boardXOffset+2, row+boardYOffset+1, ' ', nil, style)
		view.screen.SetContent(col*2+boardXOffset+3, row+boardYOffset+1, ' ', nil, style)
	}
}
