package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func quadMesh() ([]core.Vec3, []int) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}
	faces := []int{
		0, 1, 2, // first triangle
		0, 2, 3, // second triangle
	}
	return vertices, faces
}

// hitMesh is the closest hit over the mesh's flattened triangles
func hitMesh(mesh *TriangleMesh, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, shape := range mesh.Shapes() {
		if hit, ok := shape.Hit(ray, tMin, tMax); ok {
			tMax = hit.T
			closest = hit
		}
	}
	return closest, closest != nil
}

func TestTriangleMesh_Creation(t *testing.T) {
	vertices, faces := quadMesh()
	mesh, err := NewTriangleMesh(vertices, faces, testMaterial, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if mesh.GetTriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.GetTriangleCount())
	}
	if len(mesh.Shapes()) != 2 {
		t.Errorf("Expected 2 shapes, got %d", len(mesh.Shapes()))
	}
}

func TestTriangleMesh_Hit(t *testing.T) {
	vertices, faces := quadMesh()
	mesh, err := NewTriangleMesh(vertices, faces, testMaterial, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		origin    core.Vec3
		shouldHit bool
	}{
		{"hits first triangle", core.NewVec3(0.75, 0.25, -1), true},
		{"hits second triangle", core.NewVec3(0.25, 0.75, -1), true},
		{"misses quad", core.NewVec3(1.5, 0.5, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, 1))
			hit, isHit := hitMesh(mesh, ray, 0.001, 10)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(hit.T-1) > tolerance {
				t.Errorf("Expected t=1, got %f", hit.T)
			}
		})
	}
}

func TestTriangleMesh_ErrorHandling(t *testing.T) {
	vertices, _ := quadMesh()

	tests := []struct {
		name    string
		faces   []int
		options *TriangleMeshOptions
	}{
		{"faces not multiple of 3", []int{0, 1}, nil},
		{"index out of bounds", []int{0, 1, 9}, nil},
		{"negative index", []int{0, -1, 2}, nil},
		{"normal count mismatch", []int{0, 1, 2}, &TriangleMeshOptions{VertexNormals: []core.Vec3{{X: 0, Y: 0, Z: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := NewTriangleMesh(vertices, tt.faces, testMaterial, tt.options)
			if err == nil {
				t.Error("Expected error")
			}
			if mesh != nil {
				t.Error("Expected nil mesh on error")
			}
		})
	}
}

func TestTriangleMesh_VertexNormals(t *testing.T) {
	vertices, faces := quadMesh()
	up := core.NewVec3(0, 0, -1)
	normals := []core.Vec3{up, up, up, up}

	mesh, err := NewTriangleMesh(vertices, faces, testMaterial, &TriangleMeshOptions{VertexNormals: normals})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0.3, 0.6, -1), core.NewVec3(0, 0, 1))
	hit, isHit := hitMesh(mesh, ray, 0.001, 10)
	if !isHit {
		t.Fatal("Expected hit")
	}
	// Interpolated normal follows the supplied vertex normals, not the face winding
	if !vecNear(hit.Normal, up, tolerance) {
		t.Errorf("Expected %v, got %v", up, hit.Normal)
	}
}

func TestTriangleMesh_Rotation(t *testing.T) {
	vertices, faces := quadMesh()
	center := core.NewVec3(0.5, 0.5, 0)
	rotation := core.NewVec3(0, math.Pi/2, 0)

	mesh, err := NewTriangleMesh(vertices, faces, testMaterial, &TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// After 90° about Y through the center the quad lies in the YZ plane at x=0.5
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0.1), core.NewVec3(1, 0, 0))
	hit, isHit := hitMesh(mesh, ray, 0.001, 10)
	if !isHit {
		t.Fatal("Expected hit on rotated quad")
	}
	if math.Abs(hit.Point.X-0.5) > 1e-9 {
		t.Errorf("Expected hit at x=0.5, got %v", hit.Point)
	}
}

func TestComputeVertexNormals(t *testing.T) {
	// Two triangles folded along the shared edge (0,0,0)-(0,1,0)
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 1),
		core.NewVec3(-1, 0, 1),
	}
	faces := []int{
		0, 1, 2,
		0, 3, 1,
	}
	normals := ComputeVertexNormals(vertices, faces)

	for i, n := range normals {
		if math.Abs(n.Length()-1) > tolerance {
			t.Errorf("Normal %d not unit length: %v", i, n)
		}
	}

	// Shared vertices average both faces: the X components cancel
	for _, i := range []int{0, 1} {
		if math.Abs(normals[i].X) > tolerance {
			t.Errorf("Shared vertex %d should have zero X normal, got %v", i, normals[i])
		}
	}
}
