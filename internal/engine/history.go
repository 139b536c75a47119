package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// History is the append-only stack of applied moves.
type History struct {
	records []chess.Record
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push appends a record.
func (h *History) Push(r chess.Record) {
	h.records = append(h.records, r)
}

// Pop removes and returns the most recent record.
func (h *History) Pop() (chess.Record, bool) {
	if len(h.records) == 0 {
		return nil, false
	}
	last := h.records[len(h.records)-1]
	h.records[len(h.records)-1] = nil
	h.records = h.records[:len(h.records)-1]
	return last, true
}

// Last returns the most recent record without removing it.
func (h *History) Last() (chess.Record, bool) {
	if len(h.records) == 0 {
		return nil, false
	}
	return h.records[len(h.records)-1], true
}

// Len returns the number of plies recorded.
func (h *History) Len() int {
	return len(h.records)
}

// Records returns a copy of the history, oldest first.
func (h *History) Records() []chess.Record {
	out := make([]chess.Record, len(h.records))
	copy(out, h.records)
	return out
}
