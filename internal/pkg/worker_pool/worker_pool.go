package worker_pool

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

var ErrPoolClosed = errors.New("worker pool is closed; cannot accept new tasks")

type TaskFunc func(ctx context.Context) (any, error)

// TaskResult holds the outcome of a finished task (its ID, result value, or error).
type TaskResult struct {
	ID     string
	Result any
	Err    error
}

type workItem struct {
	id string
	fn TaskFunc
}

// WorkerPool runs submitted tasks on a fixed number of goroutines and
// publishes every outcome on ResultsCh. ResultsCh is closed once Close has
// been called and all accepted tasks have finished.
type WorkerPool struct {
	tasksCh     chan workItem
	ResultsCh   chan TaskResult
	ctx         context.Context
	cancelFunc  context.CancelFunc
	workers     sync.WaitGroup
	mu          sync.Mutex
	closed      bool
	stopOnError bool
	log         *log.Logger
}

// NewWorkerPool starts numWorkers goroutines. If stopOnError is true, the pool
// cancels its context on the first task error; tasks still queued then finish
// with the context error instead of running.
func NewWorkerPool(parentCtx context.Context, numWorkers int, stopOnError bool, logger *log.Logger) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(parentCtx)
	wp := &WorkerPool{
		tasksCh:     make(chan workItem),
		ResultsCh:   make(chan TaskResult, numWorkers),
		ctx:         ctx,
		cancelFunc:  cancel,
		stopOnError: stopOnError,
		log:         logger,
	}

	wp.workers.Add(numWorkers)
	for i := 1; i <= numWorkers; i++ {
		go wp.worker(i)
	}
	logger.Debugf("worker pool started with %d workers", numWorkers)

	return wp
}

// Submit hands a task to the next free worker. It blocks until a worker picks
// the task up, the pool context ends, or the pool is closed.
func (wp *WorkerPool) Submit(id string, taskFn TaskFunc) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.closed {
		wp.log.Warnf("submit rejected for task %s: pool is closed", id)
		return ErrPoolClosed
	}

	select {
	case wp.tasksCh <- workItem{id: id, fn: taskFn}:
		return nil
	case <-wp.ctx.Done():
		wp.log.Warnf("submit failed for task %s: pool was canceled", id)
		return wp.ctx.Err()
	}
}

// Close stops accepting tasks. ResultsCh is closed after the last accepted
// task has reported.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.closed {
		return
	}
	wp.closed = true
	close(wp.tasksCh)

	go func() {
		wp.workers.Wait()
		close(wp.ResultsCh)
		wp.cancelFunc()
		wp.log.Debug("worker pool drained, results channel closed")
	}()
}

// Stop cancels the pool context. Running tasks see the cancellation through
// their context; Close must still be called to release ResultsCh readers.
func (wp *WorkerPool) Stop() {
	wp.log.Debug("manual stop invoked: canceling worker pool")
	wp.cancelFunc()
}

func (wp *WorkerPool) worker(workerID int) {
	defer wp.workers.Done()

	for task := range wp.tasksCh {
		if err := wp.ctx.Err(); err != nil {
			wp.ResultsCh <- TaskResult{ID: task.id, Err: err}
			continue
		}

		result, err := task.fn(wp.ctx)
		if err != nil {
			wp.log.Errorf("task %s failed on worker %d: %v", task.id, workerID, err)
			if wp.stopOnError {
				wp.log.Warnf("stopOnError active - canceling pool due to error in task %s", task.id)
				wp.cancelFunc()
			}
		}

		wp.ResultsCh <- TaskResult{ID: task.id, Result: result, Err: err}
	}
}
