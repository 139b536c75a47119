package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq parses an algebraic square name or fails the test.
func sq(t testing.TB, name string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return s
}

// pieceAt returns the piece on the named square or fails the test.
func pieceAt(t testing.TB, board *chess.Board, name string) *chess.Piece {
	t.Helper()
	p := board.PieceAt(sq(t, name))
	if p == nil {
		t.Fatalf("no piece on %s", name)
	}
	return p
}

// names returns the sorted algebraic names of a set; nil for an empty set.
func names(set chess.SquareSet) []string {
	if len(set) == 0 {
		return nil
	}
	out := set.Strings()
	sort.Strings(out)
	return out
}

// assertSamePosition fails the test when two snapshots differ.
func assertSamePosition(t testing.TB, want, got chess.Position) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}
