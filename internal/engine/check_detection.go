package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without a king for the colour is corrupt and panics.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.MustKing(colour)
	return IsSquareAttacked(board, king.Square, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could capture on sq.
//
// Each enemy piece's pseudo-legal captures are generated with sq treated as
// occupied by the defending side, so empty squares (castling transit) are
// tested the same way as occupied ones. Legal move filtering is never
// consulted here.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return len(attackers(board, sq, byColour, true)) > 0
}

// Attackers returns the pieces of byColour that attack sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []*chess.Piece {
	return attackers(board, sq, byColour, false)
}

func attackers(board *chess.Board, sq chess.Square, byColour chess.Colour, firstOnly bool) []*chess.Piece {
	if !sq.Valid() {
		return nil
	}

	base := boardOccupant(board)
	defender := byColour.Opposite()
	occ := func(target chess.Square) (chess.Colour, bool) {
		if target == sq {
			return defender, true
		}
		return base(target)
	}

	var out []*chess.Piece
	for _, piece := range board.PiecesOf(byColour) {
		if piece.Square == sq {
			continue
		}
		_, captures := generate(piece, occ)
		if !captures.Contains(sq) {
			continue
		}
		out = append(out, piece)
		if firstOnly {
			break
		}
	}
	return out
}
