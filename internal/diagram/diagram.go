// Package diagram renders board positions as SVG images.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// glyphs are the Unicode chess symbols, indexed by [colour][kind].
var glyphs = [2][chess.NumKinds]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Highlights marks squares on the diagram.
type Highlights struct {
	Selected     *chess.Square
	Destinations chess.SquareSet
	Captures     chess.SquareSet
}

// Render draws board as an SVG document with White at the bottom.
func Render(w io.Writer, board *chess.Board, cfg *config.DiagramConfig, hl Highlights) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	size := cfg.SquareSize
	margin := 0
	if cfg.ShowCoordinates {
		margin = size / 2
	}
	boardPx := size * chess.BoardSize

	canvas := svg.New(w)
	canvas.Start(boardPx+margin, boardPx+margin)
	canvas.Title(fmt.Sprintf("%s to move", board.ToMove))

	grid := board.Grid()
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			x, y := origin(file, rank, size, margin)
			sq := chess.Sq(file, rank)

			canvas.Rect(x, y, size, size, "fill:"+squareColour(sq, cfg, hl))
			if hl.Destinations.Contains(sq) && grid[file][rank] == nil {
				canvas.Circle(x+size/2, y+size/2, size/8, "fill:"+cfg.HighlightColour)
			}
			if p := grid[file][rank]; p != nil {
				canvas.Text(x+size/2, y+size*3/4, glyphs[p.Colour][p.Kind],
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*3/4))
			}
		}
	}

	if cfg.ShowCoordinates {
		drawCoordinates(canvas, size, margin)
	}

	canvas.End()
	return nil
}

// origin returns the top-left pixel of a square.
func origin(file, rank, size, margin int) (int, int) {
	return margin + file*size, (chess.BoardSize - 1 - rank) * size
}

func squareColour(sq chess.Square, cfg *config.DiagramConfig, hl Highlights) string {
	switch {
	case hl.Captures.Contains(sq):
		return cfg.CaptureColour
	case hl.Selected != nil && *hl.Selected == sq:
		return cfg.HighlightColour
	case (sq.File+sq.Rank)%2 == 0:
		return cfg.DarkColour
	default:
		return cfg.LightColour
	}
}

func drawCoordinates(canvas *svg.SVG, size, margin int) {
	style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#555", margin*2/3)
	boardPx := size * chess.BoardSize
	canvas.Gstyle(style)
	for i := 0; i < chess.BoardSize; i++ {
		canvas.Text(margin+i*size+size/2, boardPx+margin*3/4, string(rune('a'+i)))
		y := (chess.BoardSize-1-i)*size + size/2 + margin/4
		canvas.Text(margin/2, y, string(rune('1'+i)))
	}
	canvas.Gend()
}
