package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// Roots at or below tMin belong to the ray's own origin and are skipped, so a refracted
// ray leaving the surface inward finds the opposite wall. The first remaining root must
// be below tMax.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t1, t2, ok := s.roots(ray)
	if !ok {
		return nil, false
	}

	t := t1
	if !inRange(t, tMin, tMax) {
		t = t2
		if !inRange(t, tMin, tMax) {
			return nil, false
		}
	}

	point := ray.At(t)
	return &material.HitRecord{
		T:        t,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}, true
}

// roots solves |O + t·d - C|² = r² and returns the roots in ascending order
func (s *Sphere) roots(ray core.Ray) (float64, float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return t1, t2, true
}
