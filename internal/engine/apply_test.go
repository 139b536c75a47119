package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		wantClass chess.MoveClass
		wantText  string
		wantFEN   string
	}{
		{
			name:      "pawn double step",
			fen:       InitialFEN,
			from:      "e2",
			to:        "e4",
			wantClass: chess.QuietMove,
			wantText:  "e2e4",
			wantFEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:      "capture",
			fen:       "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
			from:      "e4",
			to:        "d5",
			wantClass: chess.CaptureMove,
			wantText:  "e4xd5",
			wantFEN:   "4k3/8/8/3P4/8/8/8/4K3 b - - 0 1",
		},
		{
			name:      "promotion",
			fen:       "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			from:      "a7",
			to:        "a8",
			wantClass: chess.PromotionMove,
			wantText:  "a7a8=Q",
			wantFEN:   "Q3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:      "capture promotion",
			fen:       "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			from:      "a7",
			to:        "b8",
			wantClass: chess.PromotionMove,
			wantText:  "a7xb8=Q",
			wantFEN:   "1Q2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:      "black promotion",
			fen:       "4k3/8/8/8/8/8/7p/K7 b - - 0 1",
			from:      "h2",
			to:        "h1",
			wantClass: chess.PromotionMove,
			wantText:  "h2h1=Q",
			wantFEN:   "4k3/8/8/8/8/8/8/K6q w - - 0 1",
		},
		{
			name:      "king two files castles",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:      "e1",
			to:        "g1",
			wantClass: chess.CastleMove,
			wantText:  "O-O",
			wantFEN:   "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1",
		},
		{
			name:      "king onto own rook castles",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			from:      "e8",
			to:        "a8",
			wantClass: chess.CastleMove,
			wantText:  "O-O-O",
			wantFEN:   "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		},
		{
			name:      "king move drops both rights",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:      "e1",
			to:        "f1",
			wantClass: chess.QuietMove,
			wantText:  "e1f1",
			wantFEN:   "r3k2r/8/8/8/8/8/8/R4K1R b kq - 0 1",
		},
		{
			name:      "rook move drops one right",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:      "h1",
			to:        "h5",
			wantClass: chess.QuietMove,
			wantText:  "h1h5",
			wantFEN:   "r3k2r/8/8/7R/8/8/8/R3K3 b Qkq - 0 1",
		},
		{
			name:      "capturing a rook drops its right",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:      "h1",
			to:        "h8",
			wantClass: chess.CaptureMove,
			wantText:  "h1xh8",
			wantFEN:   "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			history := NewHistory()
			before := board.Snapshot()

			rec, err := MakeMove(board, history, sq(t, tt.from), sq(t, tt.to))
			if err != nil {
				t.Fatalf("MakeMove(%s, %s) failed: %v", tt.from, tt.to, err)
			}
			if rec.Class() != tt.wantClass {
				t.Errorf("class = %s, want %s", rec.Class(), tt.wantClass)
			}
			if rec.String() != tt.wantText {
				t.Errorf("record = %q, want %q", rec.String(), tt.wantText)
			}
			if got := BoardToFEN(board); got != tt.wantFEN {
				t.Errorf("FEN = %q, want %q", got, tt.wantFEN)
			}
			if last, _ := history.Last(); last != rec {
				t.Errorf("history.Last() = %v, want %v", last, rec)
			}

			if !Undo(board, history) {
				t.Fatal("Undo() = false")
			}
			assertSamePosition(t, before, board.Snapshot())
			if got := BoardToFEN(board); got != tt.fen {
				t.Errorf("FEN after undo = %q, want %q", got, tt.fen)
			}
		})
	}
}

func TestMakeMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     error
	}{
		{"empty square", InitialFEN, "e4", "e5", chesserrors.ErrIllegalMove},
		{"opponent piece", InitialFEN, "e7", "e5", chesserrors.ErrIllegalMove},
		{"not a legal destination", InitialFEN, "e2", "e5", chesserrors.ErrIllegalMove},
		{"onto own piece", InitialFEN, "d1", "d2", chesserrors.ErrIllegalMove},
		{"exposes king", "4k3/8/8/8/1b6/8/3P4/4K3 w - - 0 1", "d2", "d3", chesserrors.ErrIllegalMove},
		{"castle blocked", InitialFEN, "e1", "g1", chesserrors.ErrIllegalCastle},
		{"castle with rook blocked", InitialFEN, "e1", "h1", chesserrors.ErrIllegalCastle},
		{"castle without right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1", "g1", chesserrors.ErrIllegalCastle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			history := NewHistory()
			before := board.Snapshot()

			rec, err := MakeMove(board, history, sq(t, tt.from), sq(t, tt.to))
			if !errors.Is(err, tt.want) {
				t.Errorf("MakeMove() error = %v, want %v", err, tt.want)
			}
			if rec != nil {
				t.Errorf("MakeMove() record = %v, want nil", rec)
			}
			assertSamePosition(t, before, board.Snapshot())
			if history.Len() != 0 {
				t.Errorf("history length = %d, want 0", history.Len())
			}
		})
	}
}

func TestApplyMove_Unrepresentable(t *testing.T) {
	board := NewInitialBoard()
	history := NewHistory()
	pawn := pieceAt(t, board, "e2")

	tests := []struct {
		name  string
		piece *chess.Piece
		dest  chess.Square
	}{
		{"nil piece", nil, sq(t, "e4")},
		{"off board", pawn, chess.Sq(4, 9)},
		{"same square", pawn, sq(t, "e2")},
		{"friendly occupant", pawn, sq(t, "d1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := ApplyMove(board, history, tt.piece, tt.dest); rec != nil {
				t.Errorf("ApplyMove() = %v, want nil", rec)
			}
		})
	}
	if history.Len() != 0 || board.ToMove != chess.White {
		t.Error("rejected moves must not touch history or turn")
	}
}

func TestUndo_RestoresCapturedPieceIdentity(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	history := NewHistory()
	victim := pieceAt(t, board, "d5")

	if _, err := MakeMove(board, history, sq(t, "e4"), sq(t, "d5")); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	if board.Contains(victim) {
		t.Error("captured piece is still live")
	}

	Undo(board, history)
	if got := board.PieceAt(sq(t, "d5")); got != victim {
		t.Errorf("PieceAt(d5) = %v, want the original captured handle", got)
	}
}

func TestUndo_PromotionRestoresPawn(t *testing.T) {
	board := mustBoard(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	history := NewHistory()
	pawn := pieceAt(t, board, "a7")

	if _, err := MakeMove(board, history, sq(t, "a7"), sq(t, "a8")); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	if pawn.Kind != chess.Queen {
		t.Errorf("promoted kind = %s, want Queen", pawn.Kind)
	}

	Undo(board, history)
	if pawn.Kind != chess.Pawn || pawn.Square != sq(t, "a7") {
		t.Errorf("after undo piece = %s, want White Pawn a7", pawn)
	}
}

func TestUndo_Sequence(t *testing.T) {
	board := NewInitialBoard()
	history := NewHistory()
	start := board.Snapshot()

	moves := [][2]string{
		{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}, {"d8", "d5"},
		{"g1", "f3"}, {"c8", "g4"}, {"f1", "e2"}, {"b8", "c6"},
		{"e1", "g1"}, {"e8", "c8"},
	}
	for _, m := range moves {
		if _, err := MakeMove(board, history, sq(t, m[0]), sq(t, m[1])); err != nil {
			t.Fatalf("MakeMove(%s%s) failed: %v", m[0], m[1], err)
		}
	}

	want := "2kr1bnr/ppp1pppp/2n5/3q4/6b1/5N2/PPPPBPPP/RNBQ1RK1 w - - 0 1"
	if got := BoardToFEN(board); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}

	for history.Len() > 0 {
		Undo(board, history)
	}
	assertSamePosition(t, start, board.Snapshot())
	if Undo(board, history) {
		t.Error("Undo on empty history = true, want false")
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Pop(); ok {
		t.Error("Pop on empty history should fail")
	}
	if _, ok := h.Last(); ok {
		t.Error("Last on empty history should fail")
	}

	first := chess.Quiet{From: chess.Sq(4, 1), To: chess.Sq(4, 3)}
	second := chess.Quiet{From: chess.Sq(4, 6), To: chess.Sq(4, 4)}
	h.Push(first)
	h.Push(second)

	records := h.Records()
	if len(records) != 2 || records[0] != first || records[1] != second {
		t.Errorf("Records() = %v", records)
	}
	records[0] = nil
	if got, _ := h.Last(); got != second {
		t.Errorf("Last() = %v, want %v", got, second)
	}
	if got := h.Records()[0]; got != first {
		t.Error("Records() must return a copy")
	}

	if got, ok := h.Pop(); !ok || got != second || h.Len() != 1 {
		t.Errorf("Pop() = %v, %v; len %d", got, ok, h.Len())
	}
}
