package session

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// View is a snapshot of everything a UI needs to draw the game.
type View struct {
	ID           string
	FEN          string
	SideToMove   chess.Colour
	InCheck      bool
	Outcome      chess.Outcome
	Selected     *chess.Square
	Destinations chess.SquareSet
	Captures     chess.SquareSet
	Material     int
	Plies        int
	LastMove     string
	Pieces       []chess.PieceState
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	v := View{
		ID:           s.id.String(),
		FEN:          s.FEN(),
		SideToMove:   s.board.ToMove,
		InCheck:      s.inCheck,
		Outcome:      s.outcome,
		Destinations: s.LegalDestinations(),
		Captures:     s.LegalCaptures(),
		Material:     engine.MaterialBalance(s.board),
		Plies:        s.history.Len(),
		Pieces:       s.board.Snapshot().Pieces,
	}
	if sq, ok := s.Selected(); ok {
		v.Selected = &sq
	}
	if last, ok := s.history.Last(); ok {
		v.LastMove = last.String()
	}
	return v
}
