package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 2.0,
		VFov:        90.0,
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		// VFov 90° gives viewport height 2 at distance 1; aspect 2 gives width 4
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1).Normalize()},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if !vecNear(ray.Origin, core.Vec3{}, tolerance) {
				t.Errorf("Expected origin at camera center, got %v", ray.Origin)
			}
			if !vecNear(ray.Direction, tt.direction, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > tolerance {
				t.Errorf("Ray direction not normalized: %f", ray.Direction.Length())
			}
		})
	}
}

func TestCameraConfig_Height(t *testing.T) {
	config := testCameraConfig()
	if h := config.Height(); h != 200 {
		t.Errorf("Expected height 200, got %d", h)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := testCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 800, VFov: 30})

	if merged.Width != 800 || merged.VFov != 30 {
		t.Errorf("Override fields not applied: %+v", merged)
	}
	if merged.AspectRatio != base.AspectRatio || merged.LookAt != base.LookAt {
		t.Errorf("Zero override fields should keep base values: %+v", merged)
	}
}
