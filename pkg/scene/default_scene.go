package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres on a ground plane, lit by a point
// light and a spot light
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:      core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig)
	s.AmbientLight = core.NewVec3(0.05, 0.05, 0.05)
	s.BackgroundColor = core.NewVec3(0.5, 0.7, 1.0)
	s.SamplingConfig.MaxDepth = 8

	// Create materials
	ground := material.NewPhong(
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.48, 0.48, 0.0),
		core.NewVec3(0.2, 0.2, 0.2),
		10,
	)
	red := material.NewPhong(
		core.NewVec3(0.65, 0.25, 0.2),
		core.NewVec3(0.65, 0.25, 0.2),
		core.NewVec3(1.0, 1.0, 1.0),
		50,
	)
	blue := material.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5), core.NewVec3(0.1, 0.2, 0.5))
	mirror := material.NewMirror(core.NewVec3(0.8, 0.8, 0.8))
	gold := material.NewMirror(core.NewVec3(0.8, 0.6, 0.2))
	glass := material.NewGlass(core.NewVec3(0.95, 0.95, 0.95), 1.5)

	s.AddShapes(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, mirror),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.3), 0.25, glass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.2, -0.3), 0.2, blue),
	)

	s.AddPointLight(core.NewVec3(3, 5, 3), core.NewVec3(30, 30, 30))
	s.AddSpotLight(
		core.NewVec3(-2, 4, 1), // from
		core.NewVec3(0, 0, -1), // to
		core.NewVec3(25, 24, 20),
		8,  // exponent
		40, // cone angle
	)

	return s
}
