package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the intersection with t strictly inside (tMin, tMax), or false.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// inRange reports whether t lies strictly between tMin and tMax
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}
