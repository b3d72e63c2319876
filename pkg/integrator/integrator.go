package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear color seen along a camera ray.
	// Returns (color, number of rays cast against the scene)
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) (core.Vec3, int)
}
