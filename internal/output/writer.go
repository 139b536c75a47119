package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// ViewWriter is the interface for writing session views to output.
// Different implementations handle different output formats (text, JSON).
type ViewWriter interface {
	// WriteView writes a single view to the output.
	WriteView(v session.View) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewViewWriter returns the writer cfg asks for: batched JSON when
// JSONFormat is set, text otherwise.
func NewViewWriter(w io.Writer, cfg *config.Config) ViewWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes views as a text board plus a status line.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteView writes the board and a status line.
func (tw *TextWriter) WriteView(v session.View) error {
	board, err := boardFromView(v)
	if err != nil {
		return err
	}
	WriteBoard(tw.w, board, Highlights{
		Selected:     v.Selected,
		Destinations: v.Destinations,
		Captures:     v.Captures,
	})
	_, err = fmt.Fprintln(tw.w, StatusLine(v))
	return err
}

// boardFromView rebuilds the board a view describes from its FEN.
func boardFromView(v session.View) (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(v.FEN)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", v.ID, err)
	}
	return board, nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// StatusLine summarises the game state in one line.
func StatusLine(v session.View) string {
	status := fmt.Sprintf("%s to move", v.SideToMove)
	if v.InCheck {
		status += ", in check"
	}
	if v.Outcome.IsOver() {
		status = v.Outcome.String()
	}
	return fmt.Sprintf("%s | material %+d | ply %d | %s", status, v.Material, v.Plies, v.FEN)
}

// JSONWriter writes views in JSON format.
// It buffers views and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	views  []session.View
	single bool // If true, write each view immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches views and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		views: make([]session.View, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each view immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteView buffers a view for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteView(v session.View) error {
	if jw.single {
		return WriteJSON(jw.w, v)
	}

	jw.views = append(jw.views, v)
	return nil
}

// Flush writes all buffered views as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.views) == 0 {
		return nil
	}

	output := &JSONOutput{
		Views: make([]*JSONView, 0, len(jw.views)),
	}
	for _, v := range jw.views {
		output.Views = append(output.Views, ViewToJSON(v))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	// Clear buffer after writing
	jw.views = jw.views[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
