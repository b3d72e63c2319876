package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const tolerance = 1e-9

var testMaterial = material.NewDiffuse(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5))

func vecNear(a, b core.Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}
