package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove moves piece to dest, capturing whatever enemy piece stands there,
// records the move in history and passes the turn.
//
// Legality is the caller's responsibility; ApplyMove only refuses moves that
// cannot be represented (piece not on the board, destination off the board
// or held by a friendly piece) and returns nil for them.
func ApplyMove(board *chess.Board, history *History, piece *chess.Piece, dest chess.Square) chess.Record {
	if piece == nil || !board.Contains(piece) || !dest.Valid() || dest == piece.Square {
		return nil
	}
	captured := board.PieceAt(dest)
	if captured != nil && captured.Colour == piece.Colour {
		return nil
	}

	from := piece.Square
	hadMoved := piece.HasMoved
	prior := board.Castling

	var capturedHadMoved bool
	if captured != nil {
		capturedHadMoved = captured.HasMoved
		board.Remove(captured)
	}

	piece.Square = dest
	piece.HasMoved = true
	updateCastlingRights(board, piece, captured)

	var record chess.Record
	switch {
	case isPromotion(piece, dest):
		piece.Kind = chess.Queen
		record = chess.Promotion{
			From: from, To: dest, Piece: piece, HadMoved: hadMoved,
			PreviousKind: chess.Pawn, PromotedTo: chess.Queen,
			Captured: captured, CapturedHadMoved: capturedHadMoved,
			PriorRights: prior,
		}
	case captured != nil:
		record = chess.Capture{
			From: from, To: dest, Piece: piece, HadMoved: hadMoved,
			Captured: captured, CapturedHadMoved: capturedHadMoved,
			PriorRights: prior,
		}
	default:
		record = chess.Quiet{
			From: from, To: dest, Piece: piece, HadMoved: hadMoved,
			PriorRights: prior,
		}
	}

	history.Push(record)
	board.ToMove = board.ToMove.Opposite()
	return record
}

// MakeMove applies the move from -> to for the side to move if it is legal.
// Moving the King two files, or onto one of its own Rooks, performs the castle.
func MakeMove(board *chess.Board, history *History, from, to chess.Square) (chess.Record, error) {
	piece := board.PieceAt(from)
	if piece == nil || piece.Colour != board.ToMove {
		return nil, fmt.Errorf("no %s piece on %s: %w", board.ToMove, from, errors.ErrIllegalMove)
	}

	if target := board.PieceAt(to); target != nil && piece.Kind == chess.King && target.Kind == chess.Rook && target.Colour == piece.Colour {
		rec, ok := castleWith(board, history, piece, target)
		if !ok {
			return nil, fmt.Errorf("%s with %s: %w", piece, target, errors.ErrIllegalCastle)
		}
		return rec, nil
	}

	if side, ok := castleSideForKingMove(piece, to); ok {
		if rec, ok := Castle(board, history, piece.Colour, side); ok {
			return rec, nil
		}
		return nil, fmt.Errorf("%s %s: %w", piece.Colour, side, errors.ErrIllegalCastle)
	}

	quiet, captures := LegalMoves(board, piece)
	if !quiet.Contains(to) && !captures.Contains(to) {
		return nil, fmt.Errorf("%s%s: %w", from, to, errors.ErrIllegalMove)
	}
	return ApplyMove(board, history, piece, to), nil
}

// Undo reverses the most recent move. It returns false if history is empty.
func Undo(board *chess.Board, history *History) bool {
	record, ok := history.Pop()
	if !ok {
		return false
	}

	switch m := record.(type) {
	case chess.Quiet:
		m.Piece.Square = m.From
		m.Piece.HasMoved = m.HadMoved

	case chess.Capture:
		m.Piece.Square = m.From
		m.Piece.HasMoved = m.HadMoved
		m.Captured.HasMoved = m.CapturedHadMoved
		board.Restore(m.Captured)

	case chess.Promotion:
		m.Piece.Kind = m.PreviousKind
		m.Piece.Square = m.From
		m.Piece.HasMoved = m.HadMoved
		if m.Captured != nil {
			m.Captured.HasMoved = m.CapturedHadMoved
			board.Restore(m.Captured)
		}

	case chess.Castle:
		m.King.Square = m.KingFrom
		m.Rook.Square = m.RookFrom
		m.King.HasMoved = false
		m.Rook.HasMoved = false
	}

	board.Castling = record.Rights()
	board.ToMove = board.ToMove.Opposite()
	return true
}

// isPromotion reports whether piece is a pawn arriving on a last rank.
func isPromotion(piece *chess.Piece, dest chess.Square) bool {
	return piece.Kind == chess.Pawn && (dest.Rank == 0 || dest.Rank == chess.BoardSize-1)
}

// updateCastlingRights clears rights lost by moving piece and by capturing captured.
func updateCastlingRights(board *chess.Board, piece, captured *chess.Piece) {
	if piece.Kind == chess.King && board.King(piece.Colour) == piece {
		board.Castling[piece.Colour][chess.Kingside] = false
		board.Castling[piece.Colour][chess.Queenside] = false
	}
	if side, ok := board.RoleOf(piece); ok {
		board.Castling[piece.Colour][side] = false
	}
	if side, ok := board.RoleOf(captured); ok {
		board.Castling[captured.Colour][side] = false
	}
}
