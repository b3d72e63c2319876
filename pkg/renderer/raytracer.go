package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultRowsPerChunk is the height of each band of rows handed to a worker
const DefaultRowsPerChunk = 10

// RenderConfig contains configuration for the parallel pixel loop
type RenderConfig struct {
	RowsPerChunk int   // Rows per work unit
	NumWorkers   int   // Number of parallel workers (0 = use CPU count)
	Seed         int64 // Base seed for ambient occlusion sampling
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		RowsPerChunk: DefaultRowsPerChunk,
		NumWorkers:   0, // Auto-detect CPU count
		Seed:         42,
	}
}

// Raytracer drives the per-pixel loop: one camera ray per pixel, traced by the Whitted
// integrator or its ambient occlusion variant, then converted to display colors
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger

	// OnChunk, when set, is called from the rendering goroutine after each finished chunk
	OnChunk func(ChunkResult)
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.RowsPerChunk <= 0 {
		config.RowsPerChunk = DefaultRowsPerChunk
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render renders the scene at its configured resolution
func (rt *Raytracer) Render(useAmbientOcclusion bool) (*image.RGBA, RenderStats) {
	img, stats, _ := rt.RenderContext(context.Background(), useAmbientOcclusion)
	return img, stats
}

// RenderContext renders the scene, stopping early if ctx is cancelled. Chunks that were
// not rendered are left transparent black and ctx's error is returned.
func (rt *Raytracer) RenderContext(ctx context.Context, useAmbientOcclusion bool) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := rt.scene.SamplingConfig.Width, rt.scene.SamplingConfig.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var integratorInst integrator.Integrator
	if useAmbientOcclusion {
		integratorInst = integrator.NewAmbientOcclusionIntegrator(rt.scene.SamplingConfig)
	} else {
		integratorInst = integrator.NewWhittedIntegrator(rt.scene.SamplingConfig)
	}

	chunks := NewChunkGrid(width, height, rt.config.RowsPerChunk)
	pool := NewWorkerPool(NewChunkRenderer(rt.scene, integratorInst), img, len(chunks), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d in %d chunks with %d workers (ambient occlusion: %v)\n",
		width, height, len(chunks), pool.GetNumWorkers(), useAmbientOcclusion)

	pool.Start(ctx)
	for i, bounds := range chunks {
		pool.SubmitTask(ChunkTask{Bounds: bounds, TaskID: i, Seed: rt.config.Seed + int64(i)})
	}

	var stats RenderStats
	var renderErr error
	for range chunks {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("render cancelled: %w", result.Error)
			}
			continue
		}
		stats.Add(result.Stats)
		if rt.OnChunk != nil {
			rt.OnChunk(result)
		}
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Rendered %d pixels, %d rays (%.1f per pixel) in %v\n",
		stats.TotalPixels, stats.TotalRays, stats.RaysPerPixel(), stats.Elapsed)

	return img, stats, renderErr
}
