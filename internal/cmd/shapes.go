package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chiselstrike/blockfall/internal"
	"github.com/chiselstrike/blockfall/internal/tetris"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:               "shapes [shape...]",
	Short:             "Show the pieces and their four rotations",
	ValidArgsFunction: shapesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		shapes := tetris.Shapes()
		if len(args) > 0 {
			shapes = shapes[:0]
			for _, name := range args {
				shape, err := tetris.ParseShape(name)
				if err != nil {
					return err
				}
				shapes = append(shapes, shape)
			}
		}
		printShapes(cmd.OutOrStdout(), shapes)
		return nil
	},
}

func printShapes(w io.Writer, shapes []tetris.Shape) {
	for _, shape := range shapes {
		centre := shape.Centre()
		fmt.Fprintf(w, "%s (%d tiles, centre %d,%d)\n", internal.Emph(shape), len(shape.CanonicalTiles()), centre.Row, centre.Col)

		header := make([]string, 0, 4)
		poses := make([][]string, 0, 4)
		height := 0
		for spin := 0; spin < 4; spin++ {
			header = append(header, "spin "+strconv.Itoa(spin))
			pose := drawTiles(poseTiles(shape, spin))
			height = max(height, len(pose))
			poses = append(poses, pose)
		}

		data := make([][]string, height)
		for row := range data {
			data[row] = make([]string, len(poses))
			for spin, pose := range poses {
				if row < len(pose) {
					data[row][spin] = pose[row]
				}
			}
		}
		printTable(w, header, data)
		fmt.Fprintln(w)
	}
}
