// Package session holds one interactive game: the board, its history, the
// current selection and the game state a UI reads after every event.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Session is a single long-lived game. It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	cfg     *config.Config
	board   *chess.Board
	history *engine.History

	selected     *chess.Piece
	destinations chess.SquareSet
	captures     chess.SquareSet

	inCheck bool
	outcome chess.Outcome
}

// New creates a session from cfg.StartFEN, or the standard starting
// position when it is empty.
func New(cfg *config.Config) (*Session, error) {
	if cfg.StartFEN == "" {
		return newSession(cfg, engine.NewInitialBoard()), nil
	}
	return NewFromFEN(cfg, cfg.StartFEN)
}

// NewFromFEN creates a session starting from the given position.
func NewFromFEN(cfg *config.Config, fen string) (*Session, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, board), nil
}

func newSession(cfg *config.Config, board *chess.Board) *Session {
	s := &Session{
		id:      uuid.New(),
		cfg:     cfg,
		board:   board,
		history: engine.NewHistory(),
	}
	s.refresh()
	s.logf(1, "new game, %s to move: %s\n", board.ToMove, s.FEN())
	if !engine.HasStandardMaterial(board) {
		s.logf(2, "non-standard material, balance %+d\n", engine.MaterialBalance(board))
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Select picks up the side to move's piece on sq and computes its legal
// destinations. Any other square clears the selection and returns false.
func (s *Session) Select(sq chess.Square) bool {
	s.clearSelection()
	if s.outcome.IsOver() {
		return false
	}
	piece := s.board.PieceAt(sq)
	if piece == nil || piece.Colour != s.board.ToMove {
		return false
	}
	s.selected = piece
	s.destinations, s.captures = engine.LegalMoves(s.board, piece)
	s.logf(2, "selected %s: %d moves, %d captures\n", piece, len(s.destinations), len(s.captures))
	return true
}

// Deselect drops the current selection.
func (s *Session) Deselect() {
	s.clearSelection()
}

// MoveTo moves the selected piece to sq. Moving the selected King two files,
// or onto one of its own Rooks, castles. It returns false without changing
// anything, selection included, if there is no selection or the move is illegal.
func (s *Session) MoveTo(sq chess.Square) bool {
	if s.selected == nil || s.outcome.IsOver() || !sq.Valid() {
		return false
	}

	if s.selected.Kind == chess.King {
		if target := s.board.PieceAt(sq); target != nil && target.Kind == chess.Rook && target.Colour == s.selected.Colour {
			return s.castleWith(target)
		}
		if d := sq.File - s.selected.Square.File; sq.Rank == s.selected.Square.Rank && (d == 2 || d == -2) {
			side := chess.Kingside
			if d < 0 {
				side = chess.Queenside
			}
			return s.castleWith(s.board.RoleRook(s.selected.Colour, side))
		}
	}

	if !s.destinations.Contains(sq) && !s.captures.Contains(sq) {
		return false
	}

	record := engine.ApplyMove(s.board, s.history, s.selected, sq)
	if record == nil {
		return false
	}
	s.afterMove(record)
	return true
}

// Castle castles the side to move on the given side.
func (s *Session) Castle(side chess.CastleSide) bool {
	if s.outcome.IsOver() {
		return false
	}
	record, ok := engine.Castle(s.board, s.history, s.board.ToMove, side)
	if !ok {
		return false
	}
	s.afterMove(record)
	return true
}

func (s *Session) castleWith(rook *chess.Piece) bool {
	king := s.selected
	if !engine.CastleWith(s.board, s.history, king, rook) {
		return false
	}
	record, _ := s.history.Last()
	s.afterMove(record)
	return true
}

// Click handles a single board click the way a point-and-click UI does:
// with a piece selected it castles, moves or captures when legal, reselects
// when an own piece is clicked and deselects otherwise; with nothing selected
// it selects. It reports whether a move was made or a piece selected.
func (s *Session) Click(sq chess.Square) bool {
	if s.selected == nil {
		return s.Select(sq)
	}
	if s.MoveTo(sq) {
		return true
	}
	if p := s.board.PieceAt(sq); p != nil && p.Colour == s.board.ToMove && p != s.selected {
		return s.Select(sq)
	}
	s.clearSelection()
	return false
}

// Undo takes back the last move. It returns false if there is nothing to undo.
func (s *Session) Undo() bool {
	last, ok := s.history.Last()
	if !ok {
		return false
	}
	engine.Undo(s.board, s.history)
	s.clearSelection()
	s.refresh()
	s.logf(1, "undo %s, %s to move\n", last, s.board.ToMove)
	return true
}

// LegalDestinations returns the quiet moves of the selected piece.
func (s *Session) LegalDestinations() chess.SquareSet {
	return s.destinations.Clone()
}

// LegalCaptures returns the captures available to the selected piece.
func (s *Session) LegalCaptures() chess.SquareSet {
	return s.captures.Clone()
}

// Selected returns the selected piece's square.
func (s *Session) Selected() (chess.Square, bool) {
	if s.selected == nil {
		return chess.Square{}, false
	}
	return s.selected.Square, true
}

// SideToMove returns the colour to move.
func (s *Session) SideToMove() chess.Colour {
	return s.board.ToMove
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return s.inCheck
}

// Outcome returns the state of play for the side to move.
func (s *Session) Outcome() chess.Outcome {
	return s.outcome
}

// FEN returns the current position as a FEN string.
func (s *Session) FEN() string {
	return engine.BoardToFEN(s.board)
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Clone()
}

// History returns the moves played so far, oldest first.
func (s *Session) History() []chess.Record {
	return s.history.Records()
}

// Moves returns every legal move for the side to move.
func (s *Session) Moves() []engine.Move {
	if s.outcome.IsOver() {
		return nil
	}
	return engine.GenerateMoves(s.board)
}

func (s *Session) afterMove(record chess.Record) {
	s.clearSelection()
	s.refresh()
	s.logf(1, "%s %s\n", s.board.ToMove.Opposite(), record)
	if chess.IsCapture(record) {
		s.logf(2, "%s captures\n", chess.MovedPiece(record))
	}
	if s.inCheck && !s.outcome.IsOver() {
		s.logf(1, "%s is in check\n", s.board.ToMove)
		s.logCheckers()
	}
	if s.outcome.IsOver() {
		s.logf(1, "game over: %s\n", s.outcome)
	}
}

func (s *Session) refresh() {
	colour := s.board.ToMove
	s.inCheck = engine.IsInCheck(s.board, colour)
	s.outcome = engine.Evaluate(s.board, colour, engine.EvaluateOptions{
		DetectInsufficientMaterial: s.cfg.Rules.DetectInsufficientMaterial,
	})
}

func (s *Session) clearSelection() {
	s.selected = nil
	s.destinations = nil
	s.captures = nil
}

// logCheckers lists the pieces giving check at verbosity 2.
func (s *Session) logCheckers() {
	if s.cfg.Verbosity < 2 {
		return
	}
	king := s.board.MustKing(s.board.ToMove)
	var from []string
	for _, p := range engine.Attackers(s.board, king.Square, s.board.ToMove.Opposite()) {
		from = append(from, p.Square.String())
	}
	s.logf(2, "check from %s\n", strings.Join(from, ", "))
}

func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level && s.cfg.LogFile != nil {
		fmt.Fprintf(s.cfg.LogFile, "[%s] "+format, append([]interface{}{s.id.String()[:8]}, args...)...)
	}
}
