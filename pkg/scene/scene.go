package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// RayEpsilon is the lower t bound for every scene query; it keeps a ray spawned on a
// surface from hitting that same surface
const RayEpsilon = 0.0001

// Scene contains all the elements needed for rendering.
// A scene is built once and only read while tracing.
type Scene struct {
	Camera          *geometry.Camera
	CameraConfig    geometry.CameraConfig
	Shapes          []geometry.Shape // Objects in the scene, tested in order
	Lights          []lights.Light   // Lights in the scene
	AmbientLight    core.Vec3        // Global ambient light color
	BackgroundColor core.Vec3        // Returned for rays that escape the scene
	Exposure        float64          // Linear multiplier applied before display encoding
	SamplingConfig  SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width     int // Image width
	Height    int // Image height
	MaxDepth  int // Maximum reflection/refraction recursion depth
	AOSamples int // Above-hemisphere occlusion rays per ambient occlusion estimate
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:     400,
		Height:    225,
		MaxDepth:  5,
		AOSamples: 100,
	}
}

// New creates an empty scene around the given camera configuration
func New(cameraConfig geometry.CameraConfig) *Scene {
	sampling := DefaultSamplingConfig()
	sampling.Width = cameraConfig.Width
	sampling.Height = cameraConfig.Height()

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		Lights:         make([]lights.Light, 0),
		Exposure:       1.0,
		SamplingConfig: sampling,
	}
}

// Hit returns the closest intersection along ray with t in (tMin, tMax).
// Each shape is tested against the interval shrunk to the best hit so far.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Intersect is Hit over the full ray with the default self-intersection epsilon
func (s *Scene) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	return s.Hit(ray, RayEpsilon, math.Inf(1))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// AddShapes appends shapes to the scene
func (s *Scene) AddShapes(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddMesh flattens a triangle mesh into the scene's shape list
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	s.Shapes = append(s.Shapes, mesh.Shapes()...)
}

// AddQuad adds a parallelogram as two triangles. The face normal is u × v.
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat *material.Material) {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	s.Shapes = append(s.Shapes,
		geometry.NewTriangle(corner, p1, p2, mat),
		geometry.NewTriangle(corner, p2, p3, mat),
	)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// AddSpotLight adds a spot light with a cone of cutoffDegrees total angle
func (s *Scene) AddSpotLight(from, to, intensity core.Vec3, exponent, cutoffDegrees float64) {
	s.Lights = append(s.Lights, lights.NewSpotLight(from, to, intensity, exponent, cutoffDegrees))
}

// AddAreaLight adds an n×n grid of point lights approximating a square area light
func (s *Scene) AddAreaLight(center core.Vec3, size float64, totalIntensity core.Vec3, n int) {
	s.Lights = append(s.Lights, lights.NewAreaLight(center, size, totalIntensity, n)...)
}

// SetCamera replaces the camera and keeps the image size in step with it
func (s *Scene) SetCamera(cameraConfig geometry.CameraConfig) {
	s.Camera = geometry.NewCamera(cameraConfig)
	s.CameraConfig = cameraConfig
	s.SamplingConfig.Width = cameraConfig.Width
	s.SamplingConfig.Height = cameraConfig.Height()
}
