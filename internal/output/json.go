package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/session"
)

// JSONView represents a session snapshot in JSON format.
type JSONView struct {
	ID           string      `json:"id"`
	FEN          string      `json:"fen"`
	SideToMove   string      `json:"sideToMove"` // "white" or "black"
	InCheck      bool        `json:"inCheck"`
	Outcome      string      `json:"outcome"`
	Selected     string      `json:"selected,omitempty"`
	Destinations []string    `json:"destinations,omitempty"`
	Captures     []string    `json:"captures,omitempty"`
	Material     int         `json:"material"`
	Plies        int         `json:"plies"`
	LastMove     string      `json:"lastMove,omitempty"`
	Pieces       []JSONPiece `json:"pieces"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Colour   string `json:"colour"`
	Square   string `json:"square"`
	HasMoved bool   `json:"hasMoved,omitempty"`
}

// JSONOutput holds multiple views for array output.
type JSONOutput struct {
	Views []*JSONView `json:"views"`
}

// ViewToJSON converts a session view to JSON format.
func ViewToJSON(v session.View) *JSONView {
	jv := &JSONView{
		ID:         v.ID,
		FEN:        v.FEN,
		SideToMove: colourName(v.SideToMove.String()),
		InCheck:    v.InCheck,
		Outcome:    v.Outcome.String(),
		Material:   v.Material,
		Plies:      v.Plies,
		LastMove:   v.LastMove,
		Pieces:     make([]JSONPiece, 0, len(v.Pieces)),
	}
	if v.Selected != nil {
		jv.Selected = v.Selected.String()
	}
	if len(v.Destinations) > 0 {
		jv.Destinations = v.Destinations.Strings()
	}
	if len(v.Captures) > 0 {
		jv.Captures = v.Captures.Strings()
	}
	for _, p := range v.Pieces {
		jv.Pieces = append(jv.Pieces, JSONPiece{
			ID:       int(p.ID),
			Kind:     p.Kind.String(),
			Colour:   colourName(p.Colour.String()),
			Square:   p.Square.String(),
			HasMoved: p.HasMoved,
		})
	}
	return jv
}

// WriteJSON writes a single view as indented JSON.
func WriteJSON(w io.Writer, v session.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ViewToJSON(v))
}

func colourName(s string) string {
	if s == "White" {
		return "white"
	}
	return "black"
}
