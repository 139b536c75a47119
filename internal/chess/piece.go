package chess

import "fmt"

// PieceID identifies a piece for the lifetime of a board.
type PieceID int

// Piece is a live piece on a board. Pieces are referred to by pointer;
// the same handle is used across moves, captures and undo.
type Piece struct {
	id PieceID

	// Kind is mutable: promotion turns a Pawn into a Queen.
	Kind   Kind
	Colour Colour
	Square Square

	// HasMoved drives the pawn double step and castling eligibility.
	HasMoved bool
}

// ID returns the piece's stable identifier.
func (p *Piece) ID() PieceID {
	return p.id
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a human readable description such as "White Knight g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.Square)
}

// State returns a value copy of the piece's mutable fields.
func (p *Piece) State() PieceState {
	return PieceState{
		ID:       p.id,
		Kind:     p.Kind,
		Colour:   p.Colour,
		Square:   p.Square,
		HasMoved: p.HasMoved,
	}
}

// PieceState is a comparable snapshot of a piece.
type PieceState struct {
	ID       PieceID
	Kind     Kind
	Colour   Colour
	Square   Square
	HasMoved bool
}
