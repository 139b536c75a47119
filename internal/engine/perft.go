package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Move is a from/to pair for the side to move. Castling is expressed as the
// King moving two files.
type Move struct {
	From chess.Square
	To   chess.Square
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// GenerateMoves returns every legal move for the side to move, castling
// included. Moves are grouped by piece in board order.
func GenerateMoves(board *chess.Board) []Move {
	colour := board.ToMove
	var moves []Move
	for _, piece := range board.PiecesOf(colour) {
		quiet, captures := LegalMoves(board, piece)
		for _, sq := range quiet {
			moves = append(moves, Move{From: piece.Square, To: sq})
		}
		for _, sq := range captures {
			moves = append(moves, Move{From: piece.Square, To: sq})
		}
	}
	if king := board.King(colour); king != nil {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			if CanCastle(board, colour, side) {
				moves = append(moves, Move{From: king.Square, To: king.Square.Offset(2*side.Direction(), 0)})
			}
		}
	}
	return moves
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is restored before returning.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perft(board, NewHistory(), depth)
}

func perft(board *chess.Board, history *History, depth int) uint64 {
	moves := GenerateMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		if _, err := MakeMove(board, history, m.From, m.To); err != nil {
			continue
		}
		nodes += perft(board, history, depth-1)
		Undo(board, history)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide returns the perft count below each root move, in generation order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	history := NewHistory()
	var entries []DivideEntry
	for _, m := range GenerateMoves(board) {
		if _, err := MakeMove(board, history, m.From, m.To); err != nil {
			continue
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(board, depth-1)})
		Undo(board, history)
	}
	return entries
}
