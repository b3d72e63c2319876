package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material is a set of optional reflectance coefficients. A nil coefficient means the
// corresponding term does not apply at all, which is different from a zero color:
// presence of Kr or Kt decides whether the tracer recurses.
type Material struct {
	Ka *core.Vec3 // ambient
	Kd *core.Vec3 // diffuse
	Ks *core.Vec3 // specular, with Shininess as the Phong exponent
	Kr *core.Vec3 // mirror reflectance
	Kt *core.Vec3 // transmittance, with IOR as index of refraction

	Shininess float64
	IOR       float64
}

// Coef returns a pointer to a copy of c, for filling optional coefficients
func Coef(c core.Vec3) *core.Vec3 {
	return &c
}

// NewDiffuse creates a material with ambient and diffuse response only
func NewDiffuse(ka, kd core.Vec3) *Material {
	return &Material{Ka: Coef(ka), Kd: Coef(kd)}
}

// NewPhong creates a material with ambient, diffuse and specular response
func NewPhong(ka, kd, ks core.Vec3, shininess float64) *Material {
	return &Material{
		Ka:        Coef(ka),
		Kd:        Coef(kd),
		Ks:        Coef(ks),
		Shininess: shininess,
	}
}

// NewMirror creates a purely reflective material
func NewMirror(kr core.Vec3) *Material {
	return &Material{Kr: Coef(kr)}
}

// NewGlass creates a transmissive material with the given index of refraction
func NewGlass(kt core.Vec3, ior float64) *Material {
	return &Material{Kt: Coef(kt), IOR: ior}
}

// WithReflectance returns a copy of m with mirror reflectance kr
func (m Material) WithReflectance(kr core.Vec3) *Material {
	m.Kr = Coef(kr)
	return &m
}

// WithTransmittance returns a copy of m with transmittance kt and index of refraction ior
func (m Material) WithTransmittance(kt core.Vec3, ior float64) *Material {
	m.Kt = Coef(kt)
	m.IOR = ior
	return &m
}

// WithSpecular returns a copy of m with specular coefficient ks and exponent shininess
func (m Material) WithSpecular(ks core.Vec3, shininess float64) *Material {
	m.Ks = Coef(ks)
	m.Shininess = shininess
	return &m
}

// IsRecursive reports whether hits on this material spawn reflection or refraction rays
func (m *Material) IsRecursive() bool {
	return m.Kr != nil || m.Kt != nil
}
