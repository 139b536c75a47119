package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Material returns the total value of colour's pieces. Kings are not counted.
func Material(board *chess.Board, colour chess.Colour) int {
	total := 0
	for _, p := range board.PiecesOf(colour) {
		total += p.Kind.Value()
	}
	return total
}

// MaterialBalance returns White's material minus Black's.
func MaterialBalance(board *chess.Board) int {
	return Material(board, chess.White) - Material(board, chess.Black)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, p := range board.Pieces() {
		// Kings don't count for material
		if p.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
			return false
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(p.Square)
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(p.Square)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File+sq.Rank)%2 == 1
}

// HasStandardMaterial checks if the board has standard starting material,
// i.e. the game did not start at odds.
func HasStandardMaterial(board *chess.Board) bool {
	// 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side
	expected := [chess.NumKinds]int{
		chess.Pawn:   8,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Rook:   2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2][chess.NumKinds]int
	for _, p := range board.Pieces() {
		actual[p.Colour][p.Kind]++
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if actual[colour] != expected {
			return false
		}
	}
	return true
}
