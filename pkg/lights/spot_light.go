package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLight is a point light restricted to a cone around its aim axis
type SpotLight struct {
	position  core.Vec3 // Apex of the cone
	axis      core.Vec3 // Unit vector from apex toward the target
	intensity core.Vec3
	exponent  float64 // Cone falloff exponent, akin to specular shininess
	cosCutoff float64 // Cosine of the half cone angle
}

// NewSpotLight creates a new spot light
// from: light position
// to: point the light is aimed at
// intensity: light intensity/color
// exponent: falloff exponent applied to the cosine from the axis
// cutoffDegrees: total cone angle in degrees
func NewSpotLight(from, to, intensity core.Vec3, exponent, cutoffDegrees float64) *SpotLight {
	halfCutoff := cutoffDegrees / 2 * math.Pi / 180.0
	return &SpotLight{
		position:  from,
		axis:      to.Subtract(from).Normalize(),
		intensity: intensity,
		exponent:  exponent,
		cosCutoff: math.Cos(halfCutoff),
	}
}

// Sample implements the Light interface
func (sl *SpotLight) Sample(point core.Vec3) LightSample {
	toLight := sl.position.Subtract(point)
	sample := LightSample{
		Position:  sl.position,
		Direction: toLight.Normalize(),
	}

	// Angle between the aim axis and the apex-to-point vector
	cosAngle := sl.axis.Dot(toLight.Negate().Normalize())
	if cosAngle < sl.cosCutoff {
		return sample
	}

	sample.Intensity = inverseSquare(sl.intensity, toLight).Multiply(math.Pow(cosAngle, sl.exponent))
	return sample
}
