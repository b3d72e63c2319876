package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box scene with triangle walls and an
// area light just below the ceiling
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	config := geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
		VFov:        40.0,
	}
	if len(cameraOverrides) > 0 {
		config = geometry.MergeCameraConfig(config, cameraOverrides[0])
	}

	s := New(config)
	s.AmbientLight = core.NewVec3(0.05, 0.05, 0.05)
	s.BackgroundColor = core.NewVec3(0, 0, 0)
	s.SamplingConfig.MaxDepth = 6

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73), core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05), core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15), core.NewVec3(0.12, 0.45, 0.15))
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	glass := material.NewGlass(core.NewVec3(1, 1, 1), 1.5)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Walls are one-sided; each u × v points into the box
	// floor
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), white)
	// ceiling
	s.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// back wall
	s.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), white)
	// left wall
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)
	// right wall
	s.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green)

	s.AddShapes(
		geometry.NewSphere(core.NewVec3(185, 90, 370), 90, mirror),
		geometry.NewSphere(core.NewVec3(370, 90, 200), 90, glass),
	)

	s.AddAreaLight(core.NewVec3(278, 554, 279.5), 130, core.NewVec3(250000, 250000, 250000), 4)

	return s
}
