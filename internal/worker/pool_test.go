package worker

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// echo returns a count of one for every job.
func echo(job Job) Count {
	return Count{Move: job.Move, Index: job.Index, Nodes: 1}
}

// drain reads the count channel until it closes.
func drain(pool *Pool) []Count {
	var counts []Count
	for c := range pool.Counts() {
		counts = append(counts, c)
	}
	return counts
}

func submitN(pool *Pool, n int) {
	for i := 0; i < n; i++ {
		pool.Submit(Job{Board: chess.NewBoard(), Index: i})
	}
}

func TestPool(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		jobs    int
	}{
		{"single worker", 1, 5, 5},
		{"four workers", 4, 10, 10},
		{"more jobs than buffer", 2, 1, 20},
		{"more workers than jobs", 8, 4, 3},
		{"no jobs", 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var processed int32
			pool := NewPool(func(job Job) Count {
				atomic.AddInt32(&processed, 1)
				return echo(job)
			}, WithWorkers(tt.workers), WithBufferSize(tt.buffer))
			pool.Start()

			go func() {
				submitN(pool, tt.jobs)
				pool.Close()
			}()

			counts := drain(pool)
			if len(counts) != tt.jobs {
				t.Errorf("counts = %d; want %d", len(counts), tt.jobs)
			}
			if got := atomic.LoadInt32(&processed); int(got) != tt.jobs {
				t.Errorf("processed = %d; want %d", got, tt.jobs)
			}
			seen := make(map[int]bool)
			for _, c := range counts {
				if seen[c.Index] {
					t.Errorf("index %d counted twice", c.Index)
				}
				seen[c.Index] = true
			}
		})
	}
}

func TestPool_Stop(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	first := true

	pool := NewPool(func(job Job) Count {
		if first {
			first = false
			close(started)
			<-release
		}
		return echo(job)
	}, WithWorkers(1), WithBufferSize(10))
	pool.Start()

	submitN(pool, 5)
	<-started
	pool.Stop()
	close(release)

	go pool.Close()
	counts := drain(pool)

	if len(counts) != 1 {
		t.Errorf("counts after Stop = %d; want 1 (the running job)", len(counts))
	}
	if pool.Skipped() != 4 {
		t.Errorf("Skipped() = %d; want 4", pool.Skipped())
	}
}

func TestPool_Errors(t *testing.T) {
	errBoom := errors.New("boom")
	pool := NewPool(func(job Job) Count {
		c := echo(job)
		if job.Index == 2 {
			c.Err = errBoom
		}
		return c
	}, WithWorkers(2))
	pool.Start()

	go func() {
		submitN(pool, 4)
		pool.Close()
	}()

	var failed int
	for _, c := range drain(pool) {
		if errors.Is(c.Err, errBoom) {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed counts = %d; want 1", failed)
	}
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echo, tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if cap(pool.jobs) != tt.wantBuffer || cap(pool.counts) != tt.wantBuffer {
				t.Errorf("buffers = %d/%d; want %d", cap(pool.jobs), cap(pool.counts), tt.wantBuffer)
			}
		})
	}
}

func TestPool_Perft(t *testing.T) {
	root := engine.NewInitialBoard()
	moves := engine.GenerateMoves(root)

	pool := NewPool(func(job Job) Count {
		if _, err := engine.MakeMove(job.Board, engine.NewHistory(), job.Move.From, job.Move.To); err != nil {
			return Count{Index: job.Index, Err: err}
		}
		return Count{Move: job.Move, Index: job.Index, Nodes: engine.Perft(job.Board, job.Depth)}
	}, WithWorkers(4), WithBufferSize(len(moves)))
	pool.Start()

	for i, m := range moves {
		pool.Submit(Job{Board: root.Clone(), Move: m, Depth: 1, Index: i})
	}
	go pool.Close()

	var total uint64
	for _, c := range drain(pool) {
		if c.Err != nil {
			t.Fatalf("%s: %v", c.Move, c.Err)
		}
		total += c.Nodes
	}
	if total != 400 {
		t.Errorf("perft(2) via pool = %d; want 400", total)
	}
}
