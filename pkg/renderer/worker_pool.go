package renderer

import (
	"context"
	"image"
	"math/rand"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ChunkTask represents a chunk rendering task for the worker pool
type ChunkTask struct {
	Bounds image.Rectangle
	TaskID int   // Index of the chunk, for deterministic ordering
	Seed   int64 // Seeds the chunk's sampler so output does not depend on scheduling
}

// ChunkResult contains the result from rendering a chunk
type ChunkResult struct {
	TaskID int
	Bounds image.Rectangle
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel chunk rendering
type WorkerPool struct {
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual chunk rendering tasks
type Worker struct {
	ID          int
	renderer    *ChunkRenderer
	img         *image.RGBA
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
}

// NewWorkerPool creates a worker pool that renders into img. All workers share the
// read-only scene through renderer.
func NewWorkerPool(renderer *ChunkRenderer, img *image.RGBA, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ChunkTask, maxTasks),   // Buffer for all chunks
		resultQueue: make(chan ChunkResult, maxTasks), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			img:         img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a chunk task to the worker pool
func (wp *WorkerPool) SubmitTask(task ChunkTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed chunk result
func (wp *WorkerPool) GetResult() (ChunkResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := ChunkResult{TaskID: task.TaskID, Bounds: task.Bounds}

		// Drain remaining tasks without rendering once cancelled
		if err := ctx.Err(); err != nil {
			result.Error = err
			w.resultQueue <- result
			continue
		}

		sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Seed)))
		result.Stats = w.renderer.RenderBounds(task.Bounds, w.img, sampler)
		w.resultQueue <- result
	}
}
