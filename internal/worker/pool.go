// Package worker runs perft subtree counts on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Job is one root move to count below.
type Job struct {
	Board *chess.Board // Owned by the worker that receives it
	Move  engine.Move  // Root move, not yet played on Board
	Depth int          // Remaining depth after Move
	Index int          // Position of Move in root generation order
}

// Count is the outcome of a Job.
type Count struct {
	Move  engine.Move
	Index int
	Nodes uint64
	Err   error
}

// CountFunc processes a single job.
type CountFunc func(job Job) Count

// Pool fans jobs out to workers and collects their counts.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	counts     chan Count
	countFunc  CountFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
	skipped    atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and count channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool running countFunc.
// Default: 1 worker, buffer size of 10.
func NewPool(countFunc CountFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		countFunc:  countFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.counts = make(chan Count, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		p.counts <- p.countFunc(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip queued jobs. Jobs already running finish.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Skipped returns the number of jobs dropped after Stop.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Close ends submission and waits for the workers; the count channel is
// closed once they are done.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.counts)
}

// Counts returns the channel of finished counts.
func (p *Pool) Counts() <-chan Count {
	return p.counts
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
