package lights

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewAreaLight_Grid(t *testing.T) {
	center := core.NewVec3(0, 5, 0)
	total := core.NewVec3(90, 45, 9)
	n := 3

	grid := NewAreaLight(center, 2, total, n)
	if len(grid) != n*n {
		t.Fatalf("Expected %d lights, got %d", n*n, len(grid))
	}

	sum := core.Vec3{}
	for i, l := range grid {
		pl, ok := l.(*PointLight)
		if !ok {
			t.Fatalf("Light %d is %T, expected *PointLight", i, l)
		}
		if pl.Position.Y != center.Y {
			t.Errorf("Light %d not co-planar: y=%f", i, pl.Position.Y)
		}
		if pl.Position.X < -1 || pl.Position.X >= 1 || pl.Position.Z < -1 || pl.Position.Z >= 1 {
			t.Errorf("Light %d outside the square: %v", i, pl.Position)
		}
		sum = sum.Add(pl.Intensity)
	}

	if !vecNear(sum, total) {
		t.Errorf("Grid intensities should sum to %v, got %v", total, sum)
	}

	// First light sits at the (-size/2, -size/2) corner
	first := grid[0].(*PointLight)
	if !vecNear(first.Position, core.NewVec3(-1, 5, -1)) {
		t.Errorf("Expected first light at (-1,5,-1), got %v", first.Position)
	}
}

func TestNewAreaLight_Empty(t *testing.T) {
	if grid := NewAreaLight(core.Vec3{}, 1, core.NewVec3(1, 1, 1), 0); len(grid) != 0 {
		t.Errorf("Expected no lights for n=0, got %d", len(grid))
	}
}
