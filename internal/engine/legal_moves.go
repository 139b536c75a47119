package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the quiet squares and capture squares piece may move to
// without leaving its own king in check. Castling is handled separately.
func LegalMoves(board *chess.Board, piece *chess.Piece) (quiet, captures chess.SquareSet) {
	if piece == nil || !board.Contains(piece) {
		return nil, nil
	}
	pseudoQuiet, pseudoCaptures := GeneratePseudo(board, piece)

	for _, sq := range pseudoQuiet {
		if leavesKingSafe(board, piece, sq) {
			quiet = append(quiet, sq)
		}
	}
	for _, sq := range pseudoCaptures {
		if leavesKingSafe(board, piece, sq) {
			captures = append(captures, sq)
		}
	}
	return quiet, captures
}

// leavesKingSafe tries the move on the board and reports whether the mover's
// king is not attacked afterwards. The board is restored before returning.
func leavesKingSafe(board *chess.Board, piece *chess.Piece, dest chess.Square) bool {
	return board.Simulate(piece, dest, func() bool {
		return !IsInCheck(board, piece.Colour)
	})
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, piece := range board.PiecesOf(colour) {
		quiet, captures := LegalMoves(board, piece)
		if len(quiet)+len(captures) > 0 {
			return true
		}
	}
	return false
}

// CountLegalMoves returns the number of legal destinations, quiet plus
// captures, summed over every piece of the colour. Castling is not counted.
func CountLegalMoves(board *chess.Board, colour chess.Colour) int {
	total := 0
	for _, piece := range board.PiecesOf(colour) {
		quiet, captures := LegalMoves(board, piece)
		total += len(quiet) + len(captures)
	}
	return total
}
