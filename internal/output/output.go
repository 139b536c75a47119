// Package output provides text and JSON rendering of game sessions.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Highlights marks squares on a text board.
type Highlights struct {
	Selected     *chess.Square
	Destinations chess.SquareSet
	Captures     chess.SquareSet
}

// WriteBoard writes the board as text, rank 8 at the top. Each square is
// a marker and a piece letter: '>' selected, '*' quiet destination,
// 'x' capture target; empty squares show '.'.
func WriteBoard(w io.Writer, board *chess.Board, hl Highlights) {
	grid := board.Grid()
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			sb.WriteByte(marker(sq, hl))
			if p := grid[file][rank]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprint(w, sb.String())
}

func marker(sq chess.Square, hl Highlights) byte {
	switch {
	case hl.Selected != nil && *hl.Selected == sq:
		return '>'
	case hl.Captures.Contains(sq):
		return 'x'
	case hl.Destinations.Contains(sq):
		return '*'
	default:
		return ' '
	}
}

// WriteHistory writes the moves as numbered pairs, wrapping long lines.
// firstToMove is the colour that made the first move.
func WriteHistory(w io.Writer, records []chess.Record, firstToMove chess.Colour, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	moveNumber := 1
	colour := firstToMove
	for i, r := range records {
		switch {
		case colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNumber))
		}
		ow.Write(r.String())
		if colour == chess.Black {
			moveNumber++
		}
		colour = colour.Opposite()
	}
	if len(records) > 0 {
		ow.NewLine()
	}
}
