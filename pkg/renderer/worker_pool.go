package renderer

import (
	"errors"
	"runtime"
	"sync"
)

// ErrPoolClosed is returned by Submit once the pool has begun draining.
// Submitting after Wait is a contract violation by the caller, not a
// transient condition.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a unit of work executed by a pool worker
type Task func()

// Pool lifecycle: accepting (submissions allowed, workers consuming) then
// draining (no new submissions, queued tasks run to completion). There is
// no way back to accepting; a drained pool cannot be revived.
type poolState int

const (
	poolAccepting poolState = iota
	poolDraining
)

// WorkerPool executes tasks on a fixed set of worker goroutines consuming
// from a shared queue. It supports exactly one fill-then-drain cycle.
type WorkerPool struct {
	mu         sync.Mutex
	state      poolState
	tasks      chan Task
	wg         sync.WaitGroup
	numWorkers int
}

// NewWorkerPool creates a pool with the specified number of workers and
// task queue capacity. If numWorkers is not positive, the detected core
// count is used.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &WorkerPool{
		state:      poolAccepting,
		tasks:      make(chan Task, queueSize),
		numWorkers: numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a task for execution. It fails with ErrPoolClosed if the
// pool has left the accepting state.
func (wp *WorkerPool) Submit(task Task) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.state != poolAccepting {
		return ErrPoolClosed
	}
	wp.tasks <- task
	return nil
}

// Wait closes the pool to new submissions, then blocks until every queued
// task has run and all workers have exited. Ordering across tasks is not
// guaranteed; once a task is accepted it always runs to completion.
func (wp *WorkerPool) Wait() {
	wp.mu.Lock()
	if wp.state == poolAccepting {
		wp.state = poolDraining
		close(wp.tasks)
	}
	wp.mu.Unlock()

	wp.wg.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.tasks {
		task()
	}
}
