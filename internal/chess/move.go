package chess

import "fmt"

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	QuietMove MoveClass = iota
	CaptureMove
	CastleMove
	PromotionMove
)

// String returns the string representation of a move class.
func (mc MoveClass) String() string {
	switch mc {
	case QuietMove:
		return "Quiet"
	case CaptureMove:
		return "Capture"
	case CastleMove:
		return "Castle"
	case PromotionMove:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Record is one entry of the move history. Each variant carries exactly
// what is needed to reverse it: Quiet, Capture, Castle or Promotion.
type Record interface {
	Class() MoveClass
	// Rights returns the castling rights held before the move.
	Rights() CastlingRights
	String() string
	isRecord()
}

// Quiet is a non-capturing, non-promoting move.
type Quiet struct {
	From, To    Square
	Piece       *Piece
	HadMoved    bool
	PriorRights CastlingRights
}

// Capture is a non-promoting move that removes an enemy piece.
type Capture struct {
	From, To         Square
	Piece            *Piece
	HadMoved         bool
	Captured         *Piece
	CapturedHadMoved bool
	PriorRights      CastlingRights
}

// Castle moves King and Rook together.
type Castle struct {
	Side             CastleSide
	King, Rook       *Piece
	KingFrom, KingTo Square
	RookFrom, RookTo Square
	PriorRights      CastlingRights
}

// Promotion is a pawn move onto the last rank, with or without a capture.
type Promotion struct {
	From, To         Square
	Piece            *Piece
	HadMoved         bool
	PreviousKind     Kind
	PromotedTo       Kind
	Captured         *Piece // nil when the promotion was a quiet push
	CapturedHadMoved bool
	PriorRights      CastlingRights
}

func (Quiet) Class() MoveClass     { return QuietMove }
func (Capture) Class() MoveClass   { return CaptureMove }
func (Castle) Class() MoveClass    { return CastleMove }
func (Promotion) Class() MoveClass { return PromotionMove }

func (m Quiet) Rights() CastlingRights     { return m.PriorRights }
func (m Capture) Rights() CastlingRights   { return m.PriorRights }
func (m Castle) Rights() CastlingRights    { return m.PriorRights }
func (m Promotion) Rights() CastlingRights { return m.PriorRights }

func (Quiet) isRecord()     {}
func (Capture) isRecord()   {}
func (Castle) isRecord()    {}
func (Promotion) isRecord() {}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Quiet) String() string {
	return m.From.String() + m.To.String()
}

// String returns the move in long algebraic form with an x, e.g. "e4xd5".
func (m Capture) String() string {
	return m.From.String() + "x" + m.To.String()
}

// String returns O-O or O-O-O.
func (m Castle) String() string {
	if m.Side == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// String returns e.g. "e7e8=Q" or "e7xd8=Q".
func (m Promotion) String() string {
	sep := ""
	if m.Captured != nil {
		sep = "x"
	}
	return fmt.Sprintf("%s%s%s=%c", m.From, sep, m.To, m.PromotedTo.Letter())
}

// IsCapture returns true if the record removed an enemy piece.
func IsCapture(r Record) bool {
	switch m := r.(type) {
	case Capture:
		return true
	case Promotion:
		return m.Captured != nil
	default:
		return false
	}
}

// MovedPiece returns the piece that initiated the move (the King for castles).
func MovedPiece(r Record) *Piece {
	switch m := r.(type) {
	case Quiet:
		return m.Piece
	case Capture:
		return m.Piece
	case Castle:
		return m.King
	case Promotion:
		return m.Piece
	default:
		return nil
	}
}
