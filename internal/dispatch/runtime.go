package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Task is one dispatch unit.
type Task func(ctx context.Context)

// RuntimeOptions sizes the worker pool.
type RuntimeOptions struct {
	// Workers is the number of long-lived worker goroutines.
	Workers int
	// Overflow bounds the extra goroutines started when the queue is full.
	// Zero means Workers.
	Overflow int
	// QueueSize is the task queue capacity. Zero means Workers*1024.
	QueueSize int
}

// Runtime runs dispatch units on a fixed set of workers. Spawn never blocks:
// a unit that fits neither the queue nor the overflow budget is dropped.
type Runtime struct {
	tasks    chan Task
	overflow *semaphore.Weighted
	workers  *errgroup.Group
	spill    sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	// mu guards closed against concurrent sends on a closed queue.
	mu     sync.RWMutex
	closed bool

	metrics *Metrics
	logger  *slog.Logger
}

// ErrRuntimeClosed is returned by Spawn after Shutdown.
var ErrRuntimeClosed = errors.New("dispatch runtime closed")

// ErrSaturated is returned by Spawn when a unit had to be dropped.
var ErrSaturated = errors.New("dispatch runtime saturated")

func NewRuntime(opts RuntimeOptions, metrics *Metrics, logger *slog.Logger) (*Runtime, error) {
	if opts.Workers <= 0 {
		return nil, fmt.Errorf("dispatch runtime needs at least one worker, got %d", opts.Workers)
	}
	if opts.Overflow <= 0 {
		opts.Overflow = opts.Workers
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = opts.Workers * 1024
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runtime{
		tasks:    make(chan Task, opts.QueueSize),
		overflow: semaphore.NewWeighted(int64(opts.Overflow)),
		workers:  new(errgroup.Group),
		ctx:      ctx,
		cancel:   cancel,
		metrics:  metrics,
		logger:   logger.With("component", "dispatch"),
	}

	for i := 0; i < opts.Workers; i++ {
		r.workers.Go(func() error {
			for task := range r.tasks {
				r.run(task)
			}
			return nil
		})
	}

	r.logger.Info("dispatch runtime started",
		"workers", opts.Workers,
		"overflow", opts.Overflow,
		"queue_size", opts.QueueSize,
	)
	return r, nil
}

// Spawn schedules task and returns immediately.
func (r *Runtime) Spawn(task Task) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.metrics.RecordDropped()
		return ErrRuntimeClosed
	}

	select {
	case r.tasks <- task:
		return nil
	default:
	}

	if r.overflow.TryAcquire(1) {
		r.spill.Add(1)
		go func() {
			defer r.spill.Done()
			defer r.overflow.Release(1)
			r.run(task)
		}()
		return nil
	}

	r.metrics.RecordDropped()
	r.logger.Warn("dispatch queue saturated, dropping unit", "queued", len(r.tasks))
	return ErrSaturated
}

func (r *Runtime) run(task Task) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("dispatch unit panicked", "panic", p)
		}
	}()
	task(r.ctx)
}

// Shutdown stops accepting units and waits for queued ones to finish. When ctx
// expires first, running units see their context canceled.
func (r *Runtime) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.tasks)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = r.workers.Wait()
		r.spill.Wait()
		close(done)
	}()

	defer r.cancel()
	select {
	case <-done:
		r.logger.Info("dispatch runtime drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain dispatch runtime: %w", ctx.Err())
	}
}
