package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light interface for objects that illuminate a shading point
type Light interface {
	// Sample returns the light arriving at point.
	// The returned Direction points FROM the shading point TO the light.
	Sample(point core.Vec3) LightSample
}

// LightSample contains the light arriving at a shading point from one light
type LightSample struct {
	Intensity core.Vec3 // Incident intensity at the shading point, falloff already applied
	Position  core.Vec3 // Position of the sampled light point
	Direction core.Vec3 // Unit vector from shading point toward Position
}

// Distance returns the distance from the shading point to the sampled light position
func (ls LightSample) Distance(point core.Vec3) float64 {
	return ls.Position.Subtract(point).Length()
}
