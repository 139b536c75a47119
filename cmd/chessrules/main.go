// chessrules plays chess from command scripts: select, move, castle and undo
// on a rules-checked board, with text, JSON and SVG views of the game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	proc, err := NewProcessor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Perft.Depth > 0 {
		if err := proc.RunPerft(cfg.Perft.Depth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	processAllInputs(proc)

	if err := proc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	commands, failures := proc.Stats()
	if cfg.Verbosity > 0 {
		reportStatistics(commands, failures)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// processAllInputs runs every input file, or stdin when none are given.
func processAllInputs(proc *Processor) {
	args := flag.Args()

	if len(args) == 0 {
		if err := proc.Run(os.Stdin, "stdin"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}

		if err := proc.Run(file, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(commands, failures int) {
	fmt.Fprintf(os.Stderr, "%d command(s), %d failed.\n", commands, failures)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess from command scripts, one command per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  select <sq>        pick up a piece of the side to move\n")
	fmt.Fprintf(os.Stderr, "  move [<from>] <to> move the selected (or given) piece\n")
	fmt.Fprintf(os.Stderr, "  click <sq>         select, move or reselect like a board click\n")
	fmt.Fprintf(os.Stderr, "  castle k|q         castle kingside or queenside\n")
	fmt.Fprintf(os.Stderr, "  undo               take back the last move\n")
	fmt.Fprintf(os.Stderr, "  new [<fen>]        start a new game\n")
	fmt.Fprintf(os.Stderr, "  fen, board, moves, history\n")
	fmt.Fprintf(os.Stderr, "  svg [<file>]       write an SVG diagram\n")
	fmt.Fprintf(os.Stderr, "  perft <depth>      count move-tree leaves\n")
}
