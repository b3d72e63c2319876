package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ChunkRenderer renders rectangular regions of the image with an integrator
type ChunkRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewChunkRenderer creates a new chunk renderer with the given scene and integrator
func NewChunkRenderer(s *scene.Scene, integratorInst integrator.Integrator) *ChunkRenderer {
	return &ChunkRenderer{
		scene:      s,
		integrator: integratorInst,
	}
}

// RenderBounds traces one ray through the center of every pixel in bounds and writes the
// display color into img. Distinct bounds write distinct pixels, so chunks can be
// rendered concurrently into the same image.
func (cr *ChunkRenderer) RenderBounds(bounds image.Rectangle, img *image.RGBA, sampler core.Sampler) RenderStats {
	full := img.Bounds()
	width, height := float64(full.Dx()), float64(full.Dy())
	camera := cr.scene.Camera

	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), Chunks: 1}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Image rows run top to bottom, camera t runs bottom to top
		t := (height - float64(y-full.Min.Y) - 0.5) / height
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := (float64(x-full.Min.X) + 0.5) / width
			color, rays := cr.integrator.RayColor(camera.GetRay(s, t), cr.scene, sampler)
			stats.TotalRays += rays
			img.SetRGBA(x, y, ToRGBA(color, cr.scene.Exposure))
		}
	}
	return stats
}

// NewChunkGrid splits a width×height image into horizontal bands of rowsPerChunk rows
func NewChunkGrid(width, height, rowsPerChunk int) []image.Rectangle {
	if rowsPerChunk <= 0 {
		rowsPerChunk = DefaultRowsPerChunk
	}
	chunks := make([]image.Rectangle, 0, (height+rowsPerChunk-1)/rowsPerChunk)
	for y := 0; y < height; y += rowsPerChunk {
		chunks = append(chunks, image.Rect(0, y, width, min(y+rowsPerChunk, height)))
	}
	return chunks
}
