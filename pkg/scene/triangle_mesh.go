package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a scene showcasing flat and smooth shaded triangle meshes
func NewTriangleMeshScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	config := geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 5),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}
	if len(cameraOverrides) > 0 {
		config = geometry.MergeCameraConfig(config, cameraOverrides[0])
	}

	s := New(config)
	s.AmbientLight = core.NewVec3(0.1, 0.1, 0.1)
	s.BackgroundColor = core.NewVec3(0.7, 0.8, 0.9)

	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5)).
		WithReflectance(core.NewVec3(0.3, 0.3, 0.3))
	s.AddShapes(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))

	red := material.NewPhong(
		core.NewVec3(0.8, 0.2, 0.2),
		core.NewVec3(0.8, 0.2, 0.2),
		core.NewVec3(0.5, 0.5, 0.5),
		30,
	)
	gold := material.NewPhong(
		core.NewVec3(0.8, 0.6, 0.2),
		core.NewVec3(0.8, 0.6, 0.2),
		core.NewVec3(1, 1, 1),
		80,
	)

	s.AddMesh(mustMesh(createBoxMesh(core.NewVec3(-1.2, 0.5, 0), core.NewVec3(1, 1, 1), core.NewVec3(0, math.Pi/6, 0), red)))
	s.AddMesh(mustMesh(createIcosahedronMesh(core.NewVec3(1.2, 0.8, 0), 0.8, gold)))

	s.AddPointLight(core.NewVec3(2, 5, 4), core.NewVec3(40, 40, 40))
	s.AddPointLight(core.NewVec3(-4, 3, 2), core.NewVec3(10, 10, 12))

	return s
}

// mustMesh unwraps meshes built from fixed index tables, which cannot fail
func mustMesh(mesh *geometry.TriangleMesh, err error) *geometry.TriangleMesh {
	if err != nil {
		panic(err)
	}
	return mesh
}

// createBoxMesh creates a flat-shaded triangle mesh representing a box, with outward
// facing winding
func createBoxMesh(center, size core.Vec3, rotation core.Vec3, mat *material.Material) (*geometry.TriangleMesh, error) {
	// Calculate the 8 corners of the box
	h := size.Multiply(0.5)
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-h.X, -h.Y, -h.Z)), // 0: left-bottom-back
		center.Add(core.NewVec3(+h.X, -h.Y, -h.Z)), // 1: right-bottom-back
		center.Add(core.NewVec3(+h.X, +h.Y, -h.Z)), // 2: right-top-back
		center.Add(core.NewVec3(-h.X, +h.Y, -h.Z)), // 3: left-top-back
		center.Add(core.NewVec3(-h.X, -h.Y, +h.Z)), // 4: left-bottom-front
		center.Add(core.NewVec3(+h.X, -h.Y, +h.Z)), // 5: right-bottom-front
		center.Add(core.NewVec3(+h.X, +h.Y, +h.Z)), // 6: right-top-front
		center.Add(core.NewVec3(-h.X, +h.Y, +h.Z)), // 7: left-top-front
	}

	// Define the 12 triangles (2 per face, 6 faces)
	faces := []int{
		// Back face (Z-)
		0, 2, 1, 0, 3, 2,
		// Front face (Z+)
		4, 5, 6, 4, 6, 7,
		// Left face (X-)
		0, 7, 3, 0, 4, 7,
		// Right face (X+)
		1, 6, 5, 1, 2, 6,
		// Bottom face (Y-)
		0, 5, 4, 0, 1, 5,
		// Top face (Y+)
		3, 6, 2, 3, 7, 6,
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, &geometry.TriangleMeshOptions{
		Rotation: &rotation,
		Center:   &center,
	})
}

// createIcosahedronMesh creates a smooth-shaded icosahedron. Vertex normals point
// radially outward, so it shades like a faceted sphere.
func createIcosahedronMesh(center core.Vec3, radius float64, mat *material.Material) (*geometry.TriangleMesh, error) {
	phi := (1.0 + math.Sqrt(5)) / 2.0

	// Scale factor so every vertex lies at the requested radius
	scale := radius / math.Sqrt(1+phi*phi)

	unit := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0), core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi), core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1), core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}

	vertices := make([]core.Vec3, len(unit))
	normals := make([]core.Vec3, len(unit))
	for i, u := range unit {
		vertices[i] = center.Add(u.Multiply(scale))
		normals[i] = u.Normalize()
	}

	// 20 triangular faces
	faces := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, &geometry.TriangleMeshOptions{
		VertexNormals: normals,
	})
}
