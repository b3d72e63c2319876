package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultAOSamples is the occlusion ray quota used when none is configured
const DefaultAOSamples = 100

// AmbientOcclusion estimates the fraction of the hemisphere above (point, normal) that
// is open to the sky. It casts quota occlusion rays in uniformly sampled directions above the
// surface and returns unoccluded/quota along with the number of rays cast.
// A zero or non-finite normal has no hemisphere and reports full occlusion without casting.
func AmbientOcclusion(point, normal core.Vec3, s *scene.Scene, sampler core.Sampler, quota int) (float64, int) {
	if length := normal.Length(); !(length > 0) || math.IsInf(length, 0) {
		return 0, 0
	}
	if quota <= 0 {
		quota = DefaultAOSamples
	}

	unoccluded := 0
	for i := 0; i < quota; i++ {
		direction := core.SampleHemisphere(normal, sampler)
		if _, isHit := s.Intersect(core.NewRay(point, direction)); !isHit {
			unoccluded++
		}
	}

	return float64(unoccluded) / float64(quota), quota
}
