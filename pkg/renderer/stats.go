package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TotalRays   int           // Primary, shadow, secondary and occlusion rays cast against the scene
	Chunks      int           // Number of row chunks rendered
	Elapsed     time.Duration // Wall-clock render time
}

// Add accumulates the pixel and ray counts of other
func (rs *RenderStats) Add(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalRays += other.TotalRays
	rs.Chunks += other.Chunks
}

// RaysPerPixel returns the average number of rays cast per pixel
func (rs RenderStats) RaysPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalRays) / float64(rs.TotalPixels)
}

// CalculateAverageLuminance returns the mean luminance of an 8-bit image in [0,1], using
// the same weights as core.Vec3.Luminance
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Luminance() / 255
		}
	}
	return total / float64(pixels)
}
