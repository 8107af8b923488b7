package cmd

import (
	"io"
	"strings"

	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/olekukonko/tablewriter"
)

func printTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}

// poseTiles returns the tiles of a shape after spin quarter turns
func poseTiles(shape tetris.Shape, spin int) []tetris.Coord {
	centre := shape.Centre()
	tiles := shape.CanonicalTiles()
	for i, tile := range tiles {
		tiles[i] = tile.Sub(centre).Rotate(spin).Add(centre)
	}
	return tiles
}

// drawTiles renders tiles as rows of '#' and '.', trimmed to their bounding box
func drawTiles(tiles []tetris.Coord) []string {
	if len(tiles) == 0 {
		return nil
	}
	top, left := tiles[0], tiles[0]
	bottom, right := tiles[0], tiles[0]
	for _, tile := range tiles {
		top.Row = min(top.Row, tile.Row)
		left.Col = min(left.Col, tile.Col)
		bottom.Row = max(bottom.Row, tile.Row)
		right.Col = max(right.Col, tile.Col)
	}

	grid := make([][]byte, bottom.Row-top.Row+1)
	for row := range grid {
		grid[row] = []byte(strings.Repeat(".", right.Col-left.Col+1))
	}
	for _, tile := range tiles {
		grid[tile.Row-top.Row][tile.Col-left.Col] = '#'
	}

	lines := make([]string, len(grid))
	for row := range grid {
		lines[row] = string(grid[row])
	}
	return lines
}
