package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted-style ray tracing: mirror reflection and
// refraction at specular surfaces, local Phong shading with hard shadows everywhere else
type WhittedIntegrator struct {
	config scene.SamplingConfig
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config scene.SamplingConfig) *WhittedIntegrator {
	return &WhittedIntegrator{
		config: config,
	}
}

// terminalFunc evaluates a hit where the recursion stops
type terminalFunc func(t *trace, ray core.Ray, hit *material.HitRecord) core.Vec3

// trace carries the per-ray state of one recursion tree
type trace struct {
	scene   *scene.Scene
	sampler core.Sampler
	rays    int
}

func (t *trace) intersect(ray core.Ray, tMax float64) (*material.HitRecord, bool) {
	t.rays++
	return t.scene.Hit(ray, scene.RayEpsilon, tMax)
}

// RayColor traces a camera ray from depth 0
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) (core.Vec3, int) {
	t := &trace{scene: s, sampler: sampler}
	color := wi.radiance(t, ray, 0, wi.shade)
	return color, t.rays
}

// Trace returns the color seen along ray, entering the recursion at depth
func (wi *WhittedIntegrator) Trace(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	return wi.radiance(&trace{scene: s}, ray, depth, wi.shade)
}

// TraceWithAmbientOcclusion is Trace with the terminal shading replaced by an ambient
// occlusion estimate
func (wi *WhittedIntegrator) TraceWithAmbientOcclusion(ray core.Ray, s *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	return wi.radiance(&trace{scene: s, sampler: sampler}, ray, depth, wi.occlusionTerminal)
}

// radiance is the shared recursion. Reflective and transmissive hits recurse while
// depth < MaxDepth and skip local shading; every other hit goes to terminal.
func (wi *WhittedIntegrator) radiance(t *trace, ray core.Ray, depth int, terminal terminalFunc) core.Vec3 {
	hit, isHit := t.intersect(ray, math.Inf(1))
	if !isHit {
		return t.scene.BackgroundColor
	}

	m := hit.Material
	if m == nil || !m.IsRecursive() || depth >= wi.config.MaxDepth {
		return terminal(t, ray, hit)
	}

	color := core.Vec3{}

	if m.Kr != nil {
		reflected := core.Reflect(ray.Direction.Negate(), hit.Normal)
		reflectedRay := core.NewRay(hit.Point, reflected)
		color = color.Add(wi.radiance(t, reflectedRay, depth+1, terminal).MultiplyVec(*m.Kr))
	}

	if m.Kt != nil {
		// Total internal reflection contributes nothing
		if refracted, ok := core.Refract(ray.Direction, hit.Normal, m.IOR); ok {
			refractedRay := core.NewRay(hit.Point, refracted)
			color = color.Add(wi.radiance(t, refractedRay, depth+1, terminal).MultiplyVec(*m.Kt))
		}
	}

	return color
}

func (wi *WhittedIntegrator) occlusionTerminal(t *trace, ray core.Ray, hit *material.HitRecord) core.Vec3 {
	factor, rays := AmbientOcclusion(hit.Point, hit.Normal, t.scene, t.sampler, wi.config.AOSamples)
	t.rays += rays
	return core.NewVec3(1, 1, 1).Multiply(factor)
}

// Shade evaluates local illumination at hit: the ambient term plus diffuse and Phong
// specular terms from every light that is not in shadow. The result is not clamped.
func (wi *WhittedIntegrator) Shade(ray core.Ray, hit *material.HitRecord, s *scene.Scene) core.Vec3 {
	return wi.shade(&trace{scene: s}, ray, hit)
}

func (wi *WhittedIntegrator) shade(t *trace, ray core.Ray, hit *material.HitRecord) core.Vec3 {
	m := hit.Material
	if m == nil {
		return core.Vec3{}
	}

	color := core.Vec3{}
	if m.Ka != nil {
		color = t.scene.AmbientLight.MultiplyVec(*m.Ka)
	}
	if m.Kd == nil && m.Ks == nil {
		return color
	}

	view := ray.Direction.Negate()
	for _, light := range t.scene.Lights {
		sample := light.Sample(hit.Point)
		if sample.Intensity.IsZero() {
			continue
		}

		// Shadows are binary: any blocker closer than the light removes it entirely
		shadowRay := core.NewRay(hit.Point, sample.Direction)
		if _, blocked := t.intersect(shadowRay, sample.Distance(hit.Point)); blocked {
			continue
		}

		if m.Kd != nil {
			cosine := math.Max(hit.Normal.Dot(sample.Direction), 0)
			color = color.Add(sample.Intensity.MultiplyVec(*m.Kd).Multiply(cosine))
		}

		// The Phong term needs an exponent; Pow(0, 0) would light the whole surface
		if m.Ks != nil && m.Shininess > 0 {
			r := core.Reflect(sample.Direction, hit.Normal)
			highlight := math.Pow(math.Max(r.Dot(view), 0), m.Shininess)
			color = color.Add(sample.Intensity.MultiplyVec(*m.Ks).Multiply(highlight))
		}
	}

	return color
}

// AmbientOcclusionIntegrator renders the ambient occlusion variant of Whitted tracing
type AmbientOcclusionIntegrator struct {
	whitted *WhittedIntegrator
}

// NewAmbientOcclusionIntegrator creates an integrator whose terminal hits are ambient occlusion estimates
func NewAmbientOcclusionIntegrator(config scene.SamplingConfig) *AmbientOcclusionIntegrator {
	return &AmbientOcclusionIntegrator{whitted: NewWhittedIntegrator(config)}
}

// RayColor traces a camera ray from depth 0 with ambient occlusion at terminal hits
func (ai *AmbientOcclusionIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) (core.Vec3, int) {
	t := &trace{scene: s, sampler: sampler}
	color := ai.whitted.radiance(t, ray, 0, ai.whitted.occlusionTerminal)
	return color, t.rays
}
