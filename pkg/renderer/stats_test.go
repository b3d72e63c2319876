package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Top-left: Red (1, 0, 0) -> Lum = 0.299
	// Top-right: Green (0, 1, 0) -> Lum = 0.587
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.114
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0

	// Expected average: (0.299 + 0.587 + 0.114 + 0.0) / 4 = 1.0 / 4 = 0.25

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	// 1x1 White pixel -> Lum = 1.0
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_MatchesColorLuminance(t *testing.T) {
	pixels := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{51, 102, 204, 255},
	}
	for _, c := range pixels {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, c)

		expected := core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255).Luminance()
		if got := CalculateAverageLuminance(img); math.Abs(got-expected) > 1e-12 {
			t.Errorf("Pixel %v: expected %f, got %f", c, expected, got)
		}
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	if got := CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Errorf("Expected 0 for empty image, got %f", got)
	}
}

func TestRenderStats(t *testing.T) {
	var total RenderStats
	total.Add(RenderStats{TotalPixels: 10, TotalRays: 25, Chunks: 1})
	total.Add(RenderStats{TotalPixels: 10, TotalRays: 15, Chunks: 1})

	if total.TotalPixels != 20 || total.TotalRays != 40 || total.Chunks != 2 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if got := total.RaysPerPixel(); got != 2 {
		t.Errorf("Expected 2 rays per pixel, got %f", got)
	}
	if got := (RenderStats{}).RaysPerPixel(); got != 0 {
		t.Errorf("Expected 0 rays per pixel with no pixels, got %f", got)
	}
}
