package core

import (
	"math"
	"math/rand"
)

// Vec2 holds a pair of sample values
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleUniformSphere maps (u, v) in [0,1)² to a uniformly distributed direction on the
// unit sphere: theta = 2πu is the azimuth, phi = acos(2v-1) the polar angle.
func SampleUniformSphere(sample Vec2) Vec3 {
	theta := 2 * math.Pi * sample.X
	phi := math.Acos(2*sample.Y - 1)
	sinPhi := math.Sin(phi)
	return NewVec3(
		sinPhi*math.Cos(theta),
		sinPhi*math.Sin(theta),
		math.Cos(phi),
	)
}

// SampleHemisphere draws uniform sphere directions until one lies strictly above the
// surface with the given normal. normal must be non-zero and finite or this never returns.
func SampleHemisphere(normal Vec3, sampler Sampler) Vec3 {
	for {
		d := SampleUniformSphere(sampler.Get2D())
		if d.Dot(normal) > 0 {
			return d
		}
	}
}
