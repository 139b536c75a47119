package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// EvaluateOptions tunes terminal-state evaluation.
type EvaluateOptions struct {
	// DetectInsufficientMaterial reports InsufficientMaterial for dead
	// positions instead of letting play continue.
	DetectInsufficientMaterial bool
}

// Evaluate returns the outcome for colour, the side to move.
func Evaluate(board *chess.Board, colour chess.Colour, opts EvaluateOptions) chess.Outcome {
	if HasLegalMoves(board, colour) {
		if opts.DetectInsufficientMaterial && HasInsufficientMaterial(board) {
			return chess.InsufficientMaterial
		}
		return chess.Play
	}
	if IsInCheck(board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}
