package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustBoardFromFEN parses a FEN string and returns the board.
// It calls t.Fatal if the FEN is rejected.
func MustBoardFromFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// MustSquare parses an algebraic square name such as "e4".
// It calls t.Fatal if the name is not on the board.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// PlayMoves applies coordinate moves such as "e2e4" to the board in order.
// It calls t.Fatal on the first move that is malformed or illegal.
func PlayMoves(t *testing.T, board *chess.Board, history *engine.History, moves ...string) {
	t.Helper()
	for i, mv := range moves {
		if len(mv) != 4 {
			t.Fatalf("move %d %q: want four characters", i+1, mv)
		}
		from := MustSquare(t, mv[:2])
		to := MustSquare(t, mv[2:])
		if _, err := engine.MakeMove(board, history, from, to); err != nil {
			t.Fatalf("move %d %q: %v", i+1, mv, err)
		}
	}
}
