package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// singularTolerance bounds |cos| between the ray and the triangle plane below which the
// ray counts as parallel
const singularTolerance = 1e-12

// Triangle represents a single triangle defined by three vertices, optionally with
// per-vertex normals for smooth shading
type Triangle struct {
	P0, P1, P2 core.Vec3          // The three vertices
	Material   *material.Material // Material of the triangle

	n0, n1, n2 core.Vec3 // Per-vertex normals
	smooth     bool      // Whether all three vertex normals are present
	normal     core.Vec3 // Cached flat face normal
}

// NewTriangle creates a flat-shaded triangle from three vertices
func NewTriangle(p0, p1, p2 core.Vec3, material *material.Material) *Triangle {
	t := &Triangle{
		P0:       p0,
		P1:       p1,
		P2:       p2,
		Material: material,
	}
	t.computeNormal()
	return t
}

// NewSmoothTriangle creates a triangle whose hit normal is interpolated from vertex normals
func NewSmoothTriangle(p0, p1, p2, n0, n1, n2 core.Vec3, material *material.Material) *Triangle {
	t := NewTriangle(p0, p1, p2, material)
	t.n0 = n0
	t.n1 = n1
	t.n2 = n2
	t.smooth = true
	return t
}

// computeNormal calculates and caches normalize((P1-P0) × (P2-P0))
func (t *Triangle) computeNormal() {
	edge1 := t.P1.Subtract(t.P0)
	edge2 := t.P2.Subtract(t.P0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	tHit, alpha, beta, ok := t.solve(ray)
	if !ok {
		return nil, false
	}
	if alpha < 0 || beta < 0 || alpha+beta > 1 || !inRange(tHit, tMin, tMax) {
		return nil, false
	}

	normal := t.normal
	if t.smooth {
		blended := t.n0.Multiply(alpha).
			Add(t.n1.Multiply(beta)).
			Add(t.n2.Multiply(1 - alpha - beta))
		// Zero or non-finite vertex normals fall back to the face normal
		if length := blended.Length(); length > 0 && !math.IsInf(length, 0) {
			normal = blended.Multiply(1 / length)
		}
	}

	return &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Normal:   normal,
		Material: t.Material,
	}, true
}

// solve finds t, alpha (weight of P0) and beta (weight of P1) such that
//
//	O + t·d = alpha·P0 + beta·P1 + (1-alpha-beta)·P2
//
// i.e. t·d + alpha·(P2-P0) + beta·(P2-P1) = P2-O, using Cramer's rule.
// Returns false when the system is singular (ray parallel to a degenerate or edge-on triangle).
// det equals d·(e0×e1), so singularity is judged relative to |e0×e1| and does not
// depend on the triangle's size.
func (t *Triangle) solve(ray core.Ray) (tHit, alpha, beta float64, ok bool) {
	d := ray.Direction
	e0 := t.P2.Subtract(t.P0)
	e1 := t.P2.Subtract(t.P1)
	b := t.P2.Subtract(ray.Origin)

	det := det3(d, e0, e1)
	if det == 0 || math.Abs(det) <= singularTolerance*e0.Cross(e1).Length() {
		return 0, 0, 0, false
	}

	tHit = det3(b, e0, e1) / det
	alpha = det3(d, b, e1) / det
	beta = det3(d, e0, b) / det
	return tHit, alpha, beta, true
}

// det3 is the determinant of the 3×3 matrix with columns a, b, c
func det3(a, b, c core.Vec3) float64 {
	return mgl64.Mat3{
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
		c.X, c.Y, c.Z,
	}.Det()
}

// GetNormal returns the triangle's flat face normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
