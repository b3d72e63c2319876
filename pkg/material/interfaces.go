package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection.
// Shapes return a fresh record per query; callers keep the closest one by value.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal at intersection, as stored by the shape
	Material *Material // Material of the hit object
}
