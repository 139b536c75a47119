package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	pieceKeys    [2][chess.NumKinds][numSquares]uint64
	movedKeys    [2][numSquares]uint64 // King and Rook only
	castlingKeys [2][2]uint64
	whiteToMove  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for s := range pieceKeys[c][k] {
				pieceKeys[c][k][s] = rng.Uint64()
			}
		}
		for s := range movedKeys[c] {
			movedKeys[c][s] = rng.Uint64()
		}
		for side := range castlingKeys[c] {
			castlingKeys[c][side] = rng.Uint64()
		}
	}
	whiteToMove = rng.Uint64()
}

func squareIndex(sq chess.Square) int {
	return sq.Rank*chess.BoardSize + sq.File
}

// Hash returns the Zobrist hash of board. Two boards with the same hash have
// the same legal move tree: placement, side to move, castling flags and the
// moved state of Kings and Rooks all contribute.
func Hash(board *chess.Board) uint64 {
	var h uint64
	for _, p := range board.Pieces() {
		idx := squareIndex(p.Square)
		h ^= pieceKeys[p.Colour][p.Kind][idx]
		if p.HasMoved && (p.Kind == chess.King || p.Kind == chess.Rook) {
			h ^= movedKeys[p.Colour][idx]
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if board.Castling.Has(colour, side) {
				h ^= castlingKeys[colour][side]
			}
		}
	}
	if board.ToMove == chess.White {
		h ^= whiteToMove
	}
	return h
}
