// processor.go - Command script processing
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/diagram"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// historyLineLength is the wrap width of the history command.
const historyLineLength = 80

// commandFunc executes one command against the processor.
type commandFunc func(p *Processor, args []string) error

// commandSpec describes a command's arity and usage text.
type commandSpec struct {
	run     commandFunc
	minArgs int
	maxArgs int // -1 = unlimited
	usage   string
}

var commandTable map[string]commandSpec

func init() {
	commandTable = map[string]commandSpec{
		"select":   {cmdSelect, 1, 1, "select <square>"},
		"deselect": {cmdDeselect, 0, 0, "deselect"},
		"move":     {cmdMove, 1, 2, "move [<from>] <to>"},
		"click":    {cmdClick, 1, 1, "click <square>"},
		"castle":   {cmdCastle, 1, 1, "castle k|q"},
		"undo":     {cmdUndo, 0, 0, "undo"},
		"new":      {cmdNew, 0, -1, "new [<fen>]"},
		"fen":      {cmdFEN, 0, 0, "fen"},
		"board":    {cmdBoard, 0, 0, "board"},
		"state":    {cmdBoard, 0, 0, "state"},
		"moves":    {cmdMoves, 0, 0, "moves"},
		"history":  {cmdHistory, 0, 0, "history"},
		"svg":      {cmdSVG, 0, 1, "svg [<file>]"},
		"perft":    {cmdPerft, 1, 1, "perft <depth>"},
	}
}

// Processor runs command scripts against one game session.
// NOT thread-safe: commands are executed in input order.
type Processor struct {
	cfg     *config.Config
	session *session.Session
	views   output.ViewWriter
	out     io.Writer

	commands int
	failures int
}

// NewProcessor creates a processor with a fresh session built from cfg.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	s, err := session.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return &Processor{
		cfg:     cfg,
		session: s,
		views:   output.NewViewWriter(cfg.OutputFile, cfg),
		out:     cfg.OutputFile,
	}, nil
}

// Session returns the game the processor drives.
func (p *Processor) Session() *session.Session {
	return p.session
}

// Run executes one command per line from r. Blank lines and lines starting
// with '#' are skipped. A failing command is reported to the log and
// processing continues with the next line.
func (p *Processor) Run(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := p.Execute(line, strings.Fields(text)); err != nil {
			if p.cfg.Verbosity > 0 {
				fmt.Fprintf(p.cfg.LogFile, "%s: %v\n", name, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// Execute runs a single command. Errors carry the line and command.
func (p *Processor) Execute(line int, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	p.commands++

	name, args := strings.ToLower(fields[0]), fields[1:]
	err := p.dispatch(name, args)
	if err == nil {
		return nil
	}
	p.failures++
	return &errors.CommandError{Err: err, Line: line, Command: name, Args: args}
}

func (p *Processor) dispatch(name string, args []string) error {
	entry, ok := commandTable[name]
	if !ok {
		return errors.ErrUnknownCommand
	}
	if len(args) < entry.minArgs || (entry.maxArgs >= 0 && len(args) > entry.maxArgs) {
		return fmt.Errorf("usage: %s: %w", entry.usage, errors.ErrUnknownCommand)
	}
	return entry.run(p, args)
}

// Stats returns the number of commands executed and how many failed.
func (p *Processor) Stats() (commands, failures int) {
	return p.commands, p.failures
}

// Close flushes pending views and writes the final diagram if one was requested.
func (p *Processor) Close() error {
	if err := p.views.Close(); err != nil {
		return err
	}
	if p.cfg.DiagramFile != "" {
		return p.writeDiagram(p.cfg.DiagramFile)
	}
	return nil
}

// RunPerft counts leaves below the current position and prints the divide.
func (p *Processor) RunPerft(depth int) error {
	if depth < 1 || depth > config.MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 1..%d: %w", depth, config.MaxPerftDepth, errors.ErrInvalidConfig)
	}
	result, err := perft.Run(p.session.Board(), depth,
		perft.WithWorkers(p.cfg.Perft.Workers),
		perft.WithCache(p.cfg.Perft.CacheSize),
	)
	if err != nil {
		return err
	}
	for _, e := range result.Entries {
		fmt.Fprintf(p.out, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(p.out, "\nNodes searched: %d\n", result.Total)
	if p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "perft %d: %d moves, %d nodes, %d workers, %d cache hits, %d misses\n",
			depth, len(result.Entries), result.Total, result.Workers, result.CacheHits, result.CacheMisses)
	}
	return nil
}

func (p *Processor) writeDiagram(path string) error {
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return err
	}
	board := p.session.Board()
	hl := diagram.Highlights{
		Destinations: p.session.LegalDestinations(),
		Captures:     p.session.LegalCaptures(),
	}
	if sq, ok := p.session.Selected(); ok {
		hl.Selected = &sq
	}
	if err := diagram.Render(file, board, p.cfg.Diagram, hl); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: already failing
		return errors.Wrapf(err, "diagram %s", path)
	}
	if p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "wrote diagram %s\n", path)
	}
	return file.Close()
}

// firstToMove returns the colour that made the first recorded move.
func (p *Processor) firstToMove() chess.Colour {
	colour := p.session.SideToMove()
	if len(p.session.History())%2 == 1 {
		colour = colour.Opposite()
	}
	return colour
}

func (p *Processor) checkInPlay() error {
	if outcome := p.session.Outcome(); outcome.IsOver() {
		return fmt.Errorf("%s: %w", outcome, errors.ErrGameOver)
	}
	return nil
}

func (p *Processor) selectSquare(name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	if err := p.checkInPlay(); err != nil {
		return err
	}
	if !p.session.Select(sq) {
		return fmt.Errorf("no %s piece on %s: %w", p.session.SideToMove(), sq, errors.ErrIllegalMove)
	}
	return nil
}

func cmdSelect(p *Processor, args []string) error {
	return p.selectSquare(args[0])
}

func cmdDeselect(p *Processor, _ []string) error {
	p.session.Deselect()
	return nil
}

func cmdMove(p *Processor, args []string) error {
	if len(args) == 2 {
		if err := p.selectSquare(args[0]); err != nil {
			return err
		}
		args = args[1:]
	}
	to, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	if err := p.checkInPlay(); err != nil {
		return err
	}
	from, ok := p.session.Selected()
	if !ok {
		return fmt.Errorf("nothing selected: %w", errors.ErrIllegalMove)
	}
	if !p.session.MoveTo(to) {
		return fmt.Errorf("%s%s: %w", from, to, errors.ErrIllegalMove)
	}
	return nil
}

func cmdClick(p *Processor, args []string) error {
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	if err := p.checkInPlay(); err != nil {
		return err
	}
	if !p.session.Click(sq) && p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "click %s: selection cleared\n", sq)
	}
	return nil
}

func cmdCastle(p *Processor, args []string) error {
	var side chess.CastleSide
	switch strings.ToLower(args[0]) {
	case "k", "kingside", "o-o", "0-0":
		side = chess.Kingside
	case "q", "queenside", "o-o-o", "0-0-0":
		side = chess.Queenside
	default:
		return fmt.Errorf("castle side %q: %w", args[0], errors.ErrUnknownCommand)
	}
	if err := p.checkInPlay(); err != nil {
		return err
	}
	if !p.session.Castle(side) {
		return fmt.Errorf("%s %s: %w", p.session.SideToMove(), side, errors.ErrIllegalCastle)
	}
	return nil
}

func cmdUndo(p *Processor, _ []string) error {
	if !p.session.Undo() && p.cfg.Verbosity > 1 {
		fmt.Fprintln(p.cfg.LogFile, "nothing to undo")
	}
	return nil
}

func cmdNew(p *Processor, args []string) error {
	var (
		s   *session.Session
		err error
	)
	if len(args) == 0 {
		s, err = session.New(p.cfg)
	} else {
		s, err = session.NewFromFEN(p.cfg, strings.Join(args, " "))
	}
	if err != nil {
		return err
	}
	p.session = s
	return nil
}

func cmdFEN(p *Processor, _ []string) error {
	_, err := fmt.Fprintln(p.out, p.session.FEN())
	return err
}

func cmdBoard(p *Processor, _ []string) error {
	return p.views.WriteView(p.session.View())
}

func cmdMoves(p *Processor, _ []string) error {
	moves := p.session.Moves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	_, err := fmt.Fprintln(p.out, strings.Join(names, " "))
	return err
}

func cmdHistory(p *Processor, _ []string) error {
	output.WriteHistory(p.out, p.session.History(), p.firstToMove(), historyLineLength)
	return nil
}

func cmdSVG(p *Processor, args []string) error {
	path := p.cfg.DiagramFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no diagram file given: %w", errors.ErrInvalidConfig)
	}
	return p.writeDiagram(path)
}

func cmdPerft(p *Processor, args []string) error {
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("perft depth %q: %w", args[0], errors.ErrInvalidConfig)
	}
	return p.RunPerft(depth)
}
