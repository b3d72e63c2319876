package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// NewAreaLight approximates a square area light of the given side length, centered at
// center in the horizontal (XZ) plane, with an n×n grid of point lights. Each point light
// carries totalIntensity/n² so the grid sums to the total.
func NewAreaLight(center core.Vec3, size float64, totalIntensity core.Vec3, n int) []Light {
	if n <= 0 {
		return nil
	}

	perLight := totalIntensity.Multiply(1 / float64(n*n))
	grid := make([]Light, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			position := core.NewVec3(
				center.X+(float64(i)/float64(n)-0.5)*size,
				center.Y,
				center.Z+(float64(j)/float64(n)-0.5)*size,
			)
			grid = append(grid, NewPointLight(position, perLight))
		}
	}
	return grid
}
