package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a single image row to render
type RowTask struct {
	Row int
}

// RowResult contains the completion notice for a rendered row
type RowResult struct {
	Row int
}

// WorkerPool manages parallel row rendering. Rows are independent; the
// only shared mutable state is the output image, guarded by WriteRow.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
	writeMu     sync.Mutex
}

// NewWorkerPool creates a worker pool with the specified number of workers
// and queue capacity for the given number of rows
func NewWorkerPool(numWorkers, numRows int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, numRows),
		resultQueue: make(chan RowResult, numRows),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers, each draining the task queue through render
func (wp *WorkerPool) Start(render func(RowTask) RowResult) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				wp.resultQueue <- render(task)
			}
		}()
	}
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// CloseTasks signals that no more tasks will be submitted
func (wp *WorkerPool) CloseTasks() {
	close(wp.taskQueue)
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// WriteRow runs fn under the shared output write lock
func (wp *WorkerPool) WriteRow(fn func()) {
	wp.writeMu.Lock()
	defer wp.writeMu.Unlock()
	fn()
}

// Stop waits for all workers to finish
func (wp *WorkerPool) Stop() {
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
