package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanCastle reports whether colour may castle on side in the current position,
// ignoring whose turn it is.
func CanCastle(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	king := board.King(colour)
	rook := board.RoleRook(colour, side)
	_, ok := castleSide(board, king, rook)
	return ok
}

// Castle castles colour on side. It returns false, leaving the board
// untouched, if castling is not allowed or it is not colour's turn.
func Castle(board *chess.Board, history *History, colour chess.Colour, side chess.CastleSide) (chess.Record, bool) {
	king := board.King(colour)
	rook := board.RoleRook(colour, side)
	return castleWith(board, history, king, rook)
}

// CastleWith castles the given King with the given Rook, the interaction used
// when a player selects the King and then clicks one of its Rooks.
func CastleWith(board *chess.Board, history *History, king, rook *chess.Piece) bool {
	_, ok := castleWith(board, history, king, rook)
	return ok
}

func castleWith(board *chess.Board, history *History, king, rook *chess.Piece) (chess.Record, bool) {
	if king == nil || king.Colour != board.ToMove {
		return nil, false
	}
	side, ok := castleSide(board, king, rook)
	if !ok {
		return nil, false
	}

	dir := side.Direction()
	record := chess.Castle{
		Side:        side,
		King:        king,
		Rook:        rook,
		KingFrom:    king.Square,
		KingTo:      king.Square.Offset(2*dir, 0),
		RookFrom:    rook.Square,
		RookTo:      king.Square.Offset(dir, 0),
		PriorRights: board.Castling,
	}

	king.Square = record.KingTo
	rook.Square = record.RookTo
	king.HasMoved = true
	rook.HasMoved = true
	board.Castling[king.Colour][chess.Kingside] = false
	board.Castling[king.Colour][chess.Queenside] = false

	history.Push(record)
	board.ToMove = board.ToMove.Opposite()
	return record, true
}

// castleSide checks every castling precondition for king and rook and
// returns the side they would castle on.
func castleSide(board *chess.Board, king, rook *chess.Piece) (chess.CastleSide, bool) {
	if king == nil || rook == nil || !board.Contains(king) || !board.Contains(rook) {
		return 0, false
	}
	if king.Kind != chess.King || rook.Kind != chess.Rook || king.Colour != rook.Colour {
		return 0, false
	}
	if king.HasMoved || rook.HasMoved || king.Square.Rank != rook.Square.Rank {
		return 0, false
	}

	side := chess.Queenside
	if rook.Square.File > king.Square.File {
		side = chess.Kingside
	}
	if !board.Castling.Has(king.Colour, side) || board.RoleRook(king.Colour, side) != rook {
		return 0, false
	}

	dir := side.Direction()
	if !king.Square.Offset(2*dir, 0).Valid() {
		return 0, false
	}

	// Nothing may stand between King and Rook.
	for sq := king.Square.Offset(dir, 0); sq != rook.Square; sq = sq.Offset(dir, 0) {
		if board.PieceAt(sq) != nil {
			return 0, false
		}
	}

	// The King may not start on, pass through or land on an attacked square.
	enemy := king.Colour.Opposite()
	for step := 0; step <= 2; step++ {
		if IsSquareAttacked(board, king.Square.Offset(step*dir, 0), enemy) {
			return 0, false
		}
	}

	return side, true
}

// castleSideForKingMove recognises a King move of two files along its rank
// as a castling request.
func castleSideForKingMove(piece *chess.Piece, to chess.Square) (chess.CastleSide, bool) {
	if piece.Kind != chess.King || to.Rank != piece.Square.Rank {
		return 0, false
	}
	switch to.File - piece.Square.File {
	case 2:
		return chess.Kingside, true
	case -2:
		return chess.Queenside, true
	}
	return 0, false
}
