package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines. Jobs still queued
// when Stop is called are processed before Stop returns.
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	stopped    atomic.Bool
	failed     atomic.Int64
	log        *slog.Logger
}

// NewPool creates a new worker pool. A non-positive jobTimeout uses DefaultJobTimeout.
func NewPool(workers int, queueSize int, jobTimeout time.Duration) *Pool {
	if workers < 1 {
		workers = 1
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}
	return &Pool{
		workers:    workers,
		jobTimeout: jobTimeout,
		jobQueue:   make(chan Job, queueSize),
		quit:       make(chan struct{}),
		log:        slog.Default(),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.process(job)
		case <-p.quit:
			for {
				select {
				case job := <-p.jobQueue:
					p.process(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	if err := job.Process(ctx); err != nil {
		p.failed.Add(1)
		p.log.Error(LogMsgWorkerJobFailed, LogFieldError, err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// TryEnqueue adds a job without blocking. It returns false when the queue is
// full or the pool has been stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Failed returns how many jobs have returned an error
func (p *Pool) Failed() int64 {
	return p.failed.Load()
}

// Stop stops the workers and waits for them to finish the queue
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.stopped.Store(true)
		p.log.Debug(LogMsgPoolDraining, LogFieldQueued, len(p.jobQueue))
		close(p.quit)
	})
	p.wg.Wait()
}
