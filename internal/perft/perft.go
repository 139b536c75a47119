// Package perft counts move-tree leaves in parallel, one root move per job.
package perft

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Result is the outcome of a divided perft run.
type Result struct {
	Depth       int
	Total       uint64
	Entries     []engine.DivideEntry // In root move generation order
	Workers     int
	CacheHits   int
	CacheMisses int
}

type options struct {
	workers   int
	cacheSize int
}

// Option configures a Run.
type Option func(*options)

// WithWorkers sets the number of goroutines splitting the root moves.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithCache shares a transposition table of at most size entries between
// workers. Zero disables the cache.
func WithCache(size int) Option {
	return func(o *options) {
		if size >= 0 {
			o.cacheSize = size
		}
	}
}

// Run counts the leaves below board to depth, splitting the root moves
// across workers. Every job owns a clone of board; board itself is not touched.
func Run(board *chess.Board, depth int, opts ...Option) (Result, error) {
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	result := Result{Depth: depth}
	if depth <= 0 {
		result.Total = 1
		return result, nil
	}

	root := board.Clone()
	moves := engine.GenerateMoves(root)
	if len(moves) == 0 {
		return result, nil
	}

	var table *hashing.ThreadSafeTable
	if o.cacheSize > 0 {
		table = hashing.NewThreadSafeTable(o.cacheSize)
	}

	pool := worker.NewPool(leafCounter(table),
		worker.WithWorkers(o.workers),
		worker.WithBufferSize(len(moves)),
	)
	pool.Start()
	result.Workers = pool.NumWorkers()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.Job{Board: root.Clone(), Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	var (
		counts   []worker.Count
		firstErr error
	)
	for c := range pool.Counts() {
		if c.Err != nil {
			if firstErr == nil {
				firstErr = c.Err
				pool.Stop()
			}
			continue
		}
		counts = append(counts, c)
	}
	if firstErr != nil {
		return Result{Depth: depth, Workers: result.Workers}, firstErr
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Index < counts[j].Index })
	for _, c := range counts {
		result.Entries = append(result.Entries, engine.DivideEntry{Move: c.Move, Nodes: c.Nodes})
		result.Total += c.Nodes
	}
	if table != nil {
		result.CacheHits = table.Hits()
		result.CacheMisses = table.Misses()
	}
	return result, nil
}

// leafCounter returns a CountFunc that plays the job's root move on its private
// board and counts below it, consulting table when it is non-nil.
func leafCounter(table *hashing.ThreadSafeTable) worker.CountFunc {
	return func(job worker.Job) worker.Count {
		res := worker.Count{Move: job.Move, Index: job.Index}
		history := engine.NewHistory()
		if _, err := engine.MakeMove(job.Board, history, job.Move.From, job.Move.To); err != nil {
			res.Err = fmt.Errorf("root move %s: %w", job.Move, err)
			return res
		}
		if table == nil {
			res.Nodes = engine.Perft(job.Board, job.Depth)
		} else {
			res.Nodes = cachedPerft(job.Board, history, job.Depth, table)
		}
		return res
	}
}

// cachedPerft is engine.Perft with subtree counts shared through table.
// Depth 1 is counted directly; a lookup would cost more than generating.
func cachedPerft(board *chess.Board, history *engine.History, depth int, table *hashing.ThreadSafeTable) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(engine.GenerateMoves(board)))
	}

	key := hashing.Key{Hash: hashing.Hash(board), Depth: depth}
	if nodes, ok := table.Lookup(key); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range engine.GenerateMoves(board) {
		if _, err := engine.MakeMove(board, history, m.From, m.To); err != nil {
			continue
		}
		nodes += cachedPerft(board, history, depth-1, table)
		engine.Undo(board, history)
	}
	table.Store(key, nodes)
	return nodes
}
