package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMesh represents a collection of triangles sharing one material.
// It is not a Shape itself; scenes add its triangles individually via Shapes.
type TriangleMesh struct {
	triangles []*Triangle
	material  *material.Material
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	VertexNormals []core.Vec3 // Optional per-vertex normals; enables smooth shading
	SmoothNormals bool        // Compute per-vertex normals from faces when VertexNormals is nil
	Rotation      *core.Vec3  // Optional rotation to apply to vertices (radians)
	Center        *core.Vec3  // Optional center point for rotation
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: material for all triangles
// options: optional parameters (can be nil for basic mesh)
func NewTriangleMesh(vertices []core.Vec3, faces []int, material *material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	for i, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("face index %d at position %d out of bounds (%d vertices)", idx, i, len(vertices))
		}
	}

	if options == nil {
		options = &TriangleMeshOptions{}
	}

	normals := options.VertexNormals
	if normals != nil && len(normals) != len(vertices) {
		return nil, fmt.Errorf("number of vertex normals (%d) must match number of vertices (%d)", len(normals), len(vertices))
	}

	workingVertices := vertices
	if options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			workingVertices[i] = rotateAbout(vertex, *options.Rotation, options.Center)
		}
		if normals != nil {
			rotated := make([]core.Vec3, len(normals))
			for i, n := range normals {
				rotated[i] = n.Rotate(*options.Rotation)
			}
			normals = rotated
		}
	}

	if normals == nil && options.SmoothNormals {
		normals = ComputeVertexNormals(workingVertices, faces)
	}

	numTriangles := len(faces) / 3
	triangles := make([]*Triangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		p0, p1, p2 := workingVertices[i0], workingVertices[i1], workingVertices[i2]
		if normals != nil {
			triangles[i] = NewSmoothTriangle(p0, p1, p2, normals[i0], normals[i1], normals[i2], material)
		} else {
			triangles[i] = NewTriangle(p0, p1, p2, material)
		}
	}

	return &TriangleMesh{
		triangles: triangles,
		material:  material,
	}, nil
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// Shapes returns the individual triangles as shapes, for flattening into a scene
func (tm *TriangleMesh) Shapes() []Shape {
	shapes := make([]Shape, len(tm.triangles))
	for i, tri := range tm.triangles {
		shapes[i] = tri
	}
	return shapes
}

// ComputeVertexNormals averages the area-weighted face normals around each vertex
func ComputeVertexNormals(vertices []core.Vec3, faces []int) []core.Vec3 {
	normals := make([]core.Vec3, len(vertices))
	for i := 0; i+2 < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		// Unnormalized cross product weights by triangle area
		faceNormal := vertices[i1].Subtract(vertices[i0]).Cross(vertices[i2].Subtract(vertices[i0]))
		normals[i0] = normals[i0].Add(faceNormal)
		normals[i1] = normals[i1].Add(faceNormal)
		normals[i2] = normals[i2].Add(faceNormal)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

func rotateAbout(vertex, rotation core.Vec3, center *core.Vec3) core.Vec3 {
	if center != nil {
		vertex = vertex.Subtract(*center)
	}
	vertex = vertex.Rotate(rotation)
	if center != nil {
		vertex = vertex.Add(*center)
	}
	return vertex
}
