package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Gamma is the display gamma applied to every channel
const Gamma = 2.2

// ToDisplayValue converts one linear channel to an 8-bit display value: scale by exposure,
// clamp to [0,1], gamma encode, scale to [0,255]
func ToDisplayValue(linear, exposure float64) uint8 {
	v := linear * exposure
	if math.IsNaN(v) {
		v = 0
	}
	v = max(0, min(1, v))
	return uint8(math.Round(math.Pow(v, 1/Gamma) * 255))
}

// ToRGBA converts a linear color to an opaque display color
func ToRGBA(c core.Vec3, exposure float64) color.RGBA {
	return color.RGBA{
		R: ToDisplayValue(c.X, exposure),
		G: ToDisplayValue(c.Y, exposure),
		B: ToDisplayValue(c.Z, exposure),
		A: 255,
	}
}
