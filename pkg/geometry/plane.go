package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3          // A point on the plane
	Normal   core.Vec3          // Unit normal, one-sided
	Material *material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material *material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to plane
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	// t = (P0 - O)·n / (d·n)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	// The stored normal is returned as is, no flip toward the viewer
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
