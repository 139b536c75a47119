// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets   = [][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets     = [][2]int{{1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	diagonalDirs    = [][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	straightDirs    = [][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	pawnCaptureCols = []int{1, -1}
)

// occupant reports the colour standing on a square, if any.
type occupant func(sq chess.Square) (chess.Colour, bool)

// boardOccupant is the occupancy view of the live board.
func boardOccupant(board *chess.Board) occupant {
	return func(sq chess.Square) (chess.Colour, bool) {
		if p := board.PieceAt(sq); p != nil {
			return p.Colour, true
		}
		return 0, false
	}
}

// GeneratePseudo returns the pseudo-legal quiet squares and capture squares
// for piece. Castling is not included. All squares are on the board.
func GeneratePseudo(board *chess.Board, piece *chess.Piece) (quiet, captures chess.SquareSet) {
	if piece == nil || !piece.Square.Valid() {
		return nil, nil
	}
	quiet, captures = generate(piece, boardOccupant(board))
	return clipToBoard(quiet), clipToBoard(captures)
}

// generate produces raw candidate squares for the piece against an
// occupancy view. Leaper candidates may fall off the board.
func generate(piece *chess.Piece, occ occupant) (quiet, captures chess.SquareSet) {
	g := &generator{piece: piece, occ: occ}

	switch piece.Kind {
	case chess.Pawn:
		g.pawn()
	case chess.Knight:
		g.leaps(knightOffsets)
	case chess.Bishop:
		g.rays(diagonalDirs)
	case chess.Rook:
		g.rays(straightDirs)
	case chess.Queen:
		g.rays(straightDirs)
		g.rays(diagonalDirs)
	case chess.King:
		g.leaps(kingOffsets)
	}

	return g.quiet, g.captures
}

type generator struct {
	piece    *chess.Piece
	occ      occupant
	quiet    chess.SquareSet
	captures chess.SquareSet
}

// visit classifies a single target square and reports whether it was occupied.
// Empty squares become quiet moves when canMove, enemy squares become
// captures when canTake, friendly squares add nothing.
func (g *generator) visit(sq chess.Square, canMove, canTake bool) bool {
	colour, occupied := g.occ(sq)
	switch {
	case !occupied:
		if canMove {
			g.quiet = append(g.quiet, sq)
		}
		return false
	case colour != g.piece.Colour:
		if canTake {
			g.captures = append(g.captures, sq)
		}
	}
	return true
}

func (g *generator) pawn() {
	from := g.piece.Square
	dir := chess.ColourOffset(g.piece.Colour)

	if !g.visit(from.Offset(0, dir), true, false) && !g.piece.HasMoved {
		g.visit(from.Offset(0, 2*dir), true, false)
	}
	for _, dc := range pawnCaptureCols {
		g.visit(from.Offset(dc, dir), false, true)
	}
}

func (g *generator) leaps(offsets [][2]int) {
	for _, off := range offsets {
		g.visit(g.piece.Square.Offset(off[0], off[1]), true, true)
	}
}

func (g *generator) rays(dirs [][2]int) {
	for _, dir := range dirs {
		sq := g.piece.Square.Offset(dir[0], dir[1])
		for sq.Valid() {
			if g.visit(sq, true, true) {
				break // Blocked
			}
			sq = sq.Offset(dir[0], dir[1])
		}
	}
}

// clipToBoard drops any square outside the 8x8 board, keeping order.
func clipToBoard(squares chess.SquareSet) chess.SquareSet {
	var out chess.SquareSet
	for _, sq := range squares {
		if sq.Valid() {
			out = append(out, sq)
		}
	}
	return out
}
