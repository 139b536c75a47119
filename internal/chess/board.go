package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board represents a chess board with all state needed for the game.
//
// The live piece collection is the only storage of piece placement;
// square lookups are derived from it so the two can never disagree.
type Board struct {
	pieces []*Piece
	nextID PieceID

	// Who has the next move.
	ToMove Colour

	// Castling rights, cleared incrementally as kings and rooks move
	// or rooks are captured.
	Castling CastlingRights

	// Role pieces fixed at setup. A captured role rook keeps its slot;
	// the cleared right is what makes it unusable.
	kings [2]*Piece
	rooks [2][2]*Piece
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// SetupInitialPosition sets up the standard chess starting position.
// Pieces are placed in FEN order, rank 8 to rank 1 and a to h, so IDs match
// a board parsed from the initial FEN.
func (b *Board) SetupInitialPosition() {
	b.pieces = nil
	b.nextID = 0
	b.kings = [2]*Piece{}
	b.rooks = [2][2]*Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{Black, White} {
		home := HomeRank(colour)
		pawnRank := home + ColourOffset(colour)
		placeRank := func(rank int) {
			for file := 0; file < BoardSize; file++ {
				kind := Pawn
				if rank == home {
					kind = backRank[file]
				}
				p := b.Place(kind, colour, Sq(file, rank))
				switch {
				case kind == Rook && file == 0:
					b.rooks[colour][Queenside] = p
				case kind == Rook && file == BoardSize-1:
					b.rooks[colour][Kingside] = p
				}
			}
		}
		if colour == Black {
			placeRank(home)
			placeRank(pawnRank)
		} else {
			placeRank(pawnRank)
			placeRank(home)
		}
	}

	b.Castling = AllCastlingRights()
	b.ToMove = White
}

// Place puts a new piece on an empty square and returns its handle.
// It returns nil if the square is off the board or occupied.
// The first King placed for each colour becomes that colour's King.
func (b *Board) Place(kind Kind, colour Colour, sq Square) *Piece {
	if !sq.Valid() || b.PieceAt(sq) != nil {
		return nil
	}
	b.nextID++
	p := &Piece{id: b.nextID, Kind: kind, Colour: colour, Square: sq}
	b.pieces = append(b.pieces, p)
	if kind == King && b.kings[colour] == nil {
		b.kings[colour] = p
	}
	return p
}

// PieceAt returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	for _, p := range b.pieces {
		if p.Square == sq {
			return p
		}
	}
	return nil
}

// Pieces returns a snapshot of all live pieces. The slice may be iterated
// while the board is modified.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PiecesOf returns a snapshot of the live pieces of one colour.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of live pieces.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Contains reports whether p is in the live set.
func (b *Board) Contains(p *Piece) bool {
	return b.indexOf(p) >= 0
}

// King returns the colour's King, or nil if none was placed.
func (b *Board) King(colour Colour) *Piece {
	return b.kings[colour]
}

// MustKing returns the colour's King and panics if the board has none.
func (b *Board) MustKing(colour Colour) *Piece {
	k := b.kings[colour]
	if k == nil {
		panic(fmt.Errorf("%s: %w", colour, errors.ErrMissingKing))
	}
	return k
}

// RoleRook returns the rook designated for castling on the given side.
func (b *Board) RoleRook(colour Colour, side CastleSide) *Piece {
	return b.rooks[colour][side]
}

// SetRoleRook designates p as the castling rook for the colour and side.
func (b *Board) SetRoleRook(colour Colour, side CastleSide, p *Piece) {
	b.rooks[colour][side] = p
}

// RoleOf reports which castling role p holds, if any.
func (b *Board) RoleOf(p *Piece) (CastleSide, bool) {
	for _, side := range []CastleSide{Kingside, Queenside} {
		if p != nil && b.rooks[p.Colour][side] == p {
			return side, true
		}
	}
	return 0, false
}

// Remove takes p out of the live set. It reports whether p was present.
func (b *Board) Remove(p *Piece) bool {
	idx := b.indexOf(p)
	if idx < 0 {
		return false
	}
	b.removeAt(idx)
	return true
}

// Restore puts a previously removed piece back into the live set.
// Restoring a live piece does nothing; restoring onto an occupied square
// corrupts the board and panics.
func (b *Board) Restore(p *Piece) {
	if b.indexOf(p) >= 0 {
		return
	}
	if occupant := b.PieceAt(p.Square); occupant != nil {
		panic(fmt.Errorf("restore %s onto %s: %w", p, occupant, errors.ErrCorruptBoard))
	}
	b.pieces = append(b.pieces, p)
}

// Simulate relocates p to dest, suspending any piece standing there, runs fn,
// and then restores both pieces exactly. It returns fn's result.
// No other code may touch the board while fn runs.
func (b *Board) Simulate(p *Piece, dest Square, fn func() bool) bool {
	origin := p.Square
	captured := b.PieceAt(dest)
	capturedAt := -1
	if captured != nil && captured != p {
		capturedAt = b.indexOf(captured)
		b.removeAt(capturedAt)
	}
	p.Square = dest

	defer func() {
		p.Square = origin
		if capturedAt >= 0 {
			b.insertAt(capturedAt, captured)
		}
	}()

	return fn()
}

// Grid returns the board as an [file][rank] array of piece handles.
func (b *Board) Grid() [BoardSize][BoardSize]*Piece {
	var grid [BoardSize][BoardSize]*Piece
	for _, p := range b.pieces {
		if p.Square.Valid() {
			grid[p.Square.File][p.Square.Rank] = p
		}
	}
	return grid
}

// Clone creates a deep copy of the board. Piece IDs and roles are preserved.
func (b *Board) Clone() *Board {
	nb := &Board{
		pieces:   make([]*Piece, len(b.pieces)),
		nextID:   b.nextID,
		ToMove:   b.ToMove,
		Castling: b.Castling,
	}
	mapping := make(map[*Piece]*Piece, len(b.pieces))
	for i, p := range b.pieces {
		cp := *p
		nb.pieces[i] = &cp
		mapping[p] = &cp
	}
	lookup := func(p *Piece) *Piece {
		if p == nil {
			return nil
		}
		if cp, ok := mapping[p]; ok {
			return cp
		}
		// Captured role pieces are not live; keep a detached copy.
		cp := *p
		mapping[p] = &cp
		return &cp
	}
	for c := range b.kings {
		nb.kings[c] = lookup(b.kings[c])
		for s := range b.rooks[c] {
			nb.rooks[c][s] = lookup(b.rooks[c][s])
		}
	}
	return nb
}

// Position is a comparable snapshot of everything that defines the game state.
type Position struct {
	ToMove   Colour
	Castling CastlingRights
	Pieces   []PieceState
}

// Snapshot captures the current board state ordered by piece ID.
func (b *Board) Snapshot() Position {
	states := make([]PieceState, len(b.pieces))
	for i, p := range b.pieces {
		states[i] = p.State()
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	return Position{
		ToMove:   b.ToMove,
		Castling: b.Castling,
		Pieces:   states,
	}
}

func (b *Board) indexOf(p *Piece) int {
	for i, q := range b.pieces {
		if q == p {
			return i
		}
	}
	return -1
}

func (b *Board) removeAt(idx int) {
	b.pieces = append(b.pieces[:idx], b.pieces[idx+1:]...)
}

func (b *Board) insertAt(idx int, p *Piece) {
	b.pieces = append(b.pieces, nil)
	copy(b.pieces[idx+1:], b.pieces[idx:])
	b.pieces[idx] = p
}
