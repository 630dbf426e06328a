package renderer

import (
	"runtime"
	"sync"
)

// RowTask is one row of pixels to render. Rows partition the pixel buffer
// into disjoint index ranges, so workers need no synchronization on it.
type RowTask struct {
	Y    int   // Row index, 0 = top
	Seed int64 // Seed for the row's private random source
}

// WorkerPool fans row tasks out to a fixed set of goroutines. Workers read
// the immutable camera and scene by shared reference; each task owns its row
// of the output buffer exclusively.
type WorkerPool struct {
	numWorkers int
	taskQueue  chan RowTask
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool. A non-positive worker count defaults
// to the number of CPUs.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		taskQueue:  make(chan RowTask, queueSize),
	}
}

// Start launches the workers, each running renderRow for every task it pulls
func (wp *WorkerPool) Start(renderRow func(RowTask)) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				renderRow(task)
			}
		}()
	}
}

// Submit queues a row task
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Wait closes the queue and blocks until all workers have drained it
func (wp *WorkerPool) Wait() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
