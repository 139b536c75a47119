// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index for the colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of the kind in pawns.
// Kings are not counted.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 8
	default:
		return 0
	}
}

// KindFromLetter converts a FEN letter (either case) to a piece kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	default:
		return 0, false
	}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is White's back rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	s := Square{File: int(name[0]) - 'a', Rank: int(name[1]) - '1'}
	if !s.Valid() {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return s, nil
}

// CastleSide selects king-side or queen-side castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (cs CastleSide) String() string {
	if cs == Kingside {
		return "kingside"
	}
	return "queenside"
}

// CornerFile returns the file the side's rook starts on.
func (cs CastleSide) CornerFile() int {
	if cs == Kingside {
		return BoardSize - 1
	}
	return 0
}

// Direction returns +1 for kingside, -1 for queenside.
func (cs CastleSide) Direction() int {
	if cs == Kingside {
		return 1
	}
	return -1
}

// CastlingRights records per colour, per side castling eligibility.
// Indexed by [Colour][CastleSide].
type CastlingRights [2][2]bool

// Has reports whether the colour still holds the right for the side.
func (cr CastlingRights) Has(colour Colour, side CastleSide) bool {
	return cr[colour][side]
}

// Any reports whether the colour holds at least one right.
func (cr CastlingRights) Any(colour Colour) bool {
	return cr[colour][Kingside] || cr[colour][Queenside]
}

// AllCastlingRights returns rights with every entry held.
func AllCastlingRights() CastlingRights {
	return CastlingRights{{true, true}, {true, true}}
}

// Outcome is the terminal state of the side to move.
type Outcome int

const (
	Play Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Play:
		return "Play"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	default:
		return "Unknown"
	}
}

// IsOver reports whether play has ended.
func (o Outcome) IsOver() bool {
	return o != Play
}
