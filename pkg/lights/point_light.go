package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits uniformly in all directions from a single position
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
	}
}

// Sample implements the Light interface with inverse-square falloff
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	return LightSample{
		Intensity: inverseSquare(pl.Intensity, toLight),
		Position:  pl.Position,
		Direction: toLight.Normalize(),
	}
}

// inverseSquare scales intensity by 1/|toLight|². A shading point at the light gets nothing.
func inverseSquare(intensity, toLight core.Vec3) core.Vec3 {
	distSq := toLight.LengthSquared()
	if distSq == 0 {
		return core.Vec3{}
	}
	return intensity.Multiply(1 / distSq)
}
