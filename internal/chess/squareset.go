package chess

import "golang.org/x/exp/slices"

// SquareSet is an ordered collection of distinct squares.
// Generators append in discovery order; callers treat it as a set.
type SquareSet []Square

// Contains reports whether sq is in the set.
func (s SquareSet) Contains(sq Square) bool {
	return slices.Contains(s, sq)
}

// Add appends sq if it is not already present.
func (s SquareSet) Add(sq Square) SquareSet {
	if s.Contains(sq) {
		return s
	}
	return append(s, sq)
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s SquareSet) Clone() SquareSet {
	return slices.Clone(s)
}

// Strings returns the algebraic names of the squares.
func (s SquareSet) Strings() []string {
	names := make([]string, len(s))
	for i, sq := range s {
		names[i] = sq.String()
	}
	return names
}
