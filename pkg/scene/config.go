package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Vec is a JSON triple, written as [x, y, z]
type Vec [3]float64

func (v Vec) vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

func (v *Vec) coef() *core.Vec3 {
	if v == nil {
		return nil
	}
	return material.Coef(v.vec3())
}

// CameraCfg positions the camera; omitted fields take the defaults applied in Build
type CameraCfg struct {
	Center      Vec     `json:"center"`
	LookAt      Vec     `json:"lookAt"`
	Up          Vec     `json:"up,omitempty"`
	Width       int     `json:"width,omitempty"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
	VFov        float64 `json:"vfov,omitempty"`
}

// MaterialCfg lists optional coefficients; an omitted coefficient stays absent
type MaterialCfg struct {
	Ka        *Vec    `json:"ka,omitempty"`
	Kd        *Vec    `json:"kd,omitempty"`
	Ks        *Vec    `json:"ks,omitempty"`
	Shininess float64 `json:"shininess,omitempty"`
	Kr        *Vec    `json:"kr,omitempty"`
	Kt        *Vec    `json:"kt,omitempty"`
	IOR       float64 `json:"ior,omitempty"`
}

// PlaneCfg is a one-sided plane through Point facing Normal
type PlaneCfg struct {
	Point    Vec    `json:"point"`
	Normal   Vec    `json:"normal"`
	Material string `json:"material"`
}

// SphereCfg is a sphere with a positive radius
type SphereCfg struct {
	Center   Vec     `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// TriangleCfg is a single triangle, smooth-shaded when three vertex normals are given
type TriangleCfg struct {
	Vertices [3]Vec `json:"vertices"`
	Normals  []Vec  `json:"normals,omitempty"` // zero or three
	Material string `json:"material"`
}

// MeshCfg loads a PLY file relative to the config file, optionally rotated in degrees about Center
type MeshCfg struct {
	PLY      string `json:"ply"`
	Material string `json:"material"`
	Smooth   bool   `json:"smooth,omitempty"`
	Rotation *Vec   `json:"rotationDeg,omitempty"`
	Center   *Vec   `json:"center,omitempty"`
}

// PointLightCfg is a point light with inverse-square falloff
type PointLightCfg struct {
	Position  Vec `json:"position"`
	Intensity Vec `json:"intensity"`
}

// SpotLightCfg is a spot light aimed from From at To with a full cone angle of CutoffDeg
type SpotLightCfg struct {
	From      Vec     `json:"from"`
	To        Vec     `json:"to"`
	Intensity Vec     `json:"intensity"`
	Exponent  float64 `json:"exponent"`
	CutoffDeg float64 `json:"cutoffDeg"`
}

// AreaLightCfg is a Samples×Samples grid of point lights sharing Intensity
type AreaLightCfg struct {
	Center    Vec     `json:"center"`
	Size      float64 `json:"size"`
	Intensity Vec     `json:"intensity"`
	Samples   int     `json:"samples"`
}

// Config is a JSON scene description
type Config struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Camera      CameraCfg              `json:"camera"`
	Ambient     Vec                    `json:"ambient"`
	Background  Vec                    `json:"background"`
	Exposure    float64                `json:"exposure,omitempty"`
	MaxDepth    *int                   `json:"maxDepth,omitempty"`
	AOSamples   int                    `json:"aoSamples,omitempty"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Planes      []PlaneCfg             `json:"planes,omitempty"`
	Spheres     []SphereCfg            `json:"spheres,omitempty"`
	Triangles   []TriangleCfg          `json:"triangles,omitempty"`
	Meshes      []MeshCfg              `json:"meshes,omitempty"`
	PointLights []PointLightCfg        `json:"pointLights,omitempty"`
	SpotLights  []SpotLightCfg         `json:"spotLights,omitempty"`
	AreaLights  []AreaLightCfg         `json:"areaLights,omitempty"`

	// Directory that relative mesh paths are resolved against
	baseDir string
}

// LoadConfig reads a JSON scene description from path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes a JSON scene description
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene config: %w", err)
	}
	return &cfg, nil
}

// Build turns the description into a scene. Every material referenced by a shape must be
// defined in Materials.
func (c *Config) Build(logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	cameraConfig := geometry.MergeCameraConfig(geometry.CameraConfig{
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40,
	}, geometry.CameraConfig{
		Center:      c.Camera.Center.vec3(),
		LookAt:      c.Camera.LookAt.vec3(),
		Up:          c.Camera.Up.vec3(),
		Width:       c.Camera.Width,
		AspectRatio: c.Camera.AspectRatio,
		VFov:        c.Camera.VFov,
	})

	s := New(cameraConfig)
	s.AmbientLight = c.Ambient.vec3()
	s.BackgroundColor = c.Background.vec3()
	if c.Exposure > 0 {
		s.Exposure = c.Exposure
	}
	if c.MaxDepth != nil {
		if *c.MaxDepth < 0 {
			return nil, fmt.Errorf("maxDepth must be non-negative, got %d", *c.MaxDepth)
		}
		s.SamplingConfig.MaxDepth = *c.MaxDepth
	}
	if c.AOSamples > 0 {
		s.SamplingConfig.AOSamples = c.AOSamples
	}

	materials := make(map[string]*material.Material, len(c.Materials))
	for name, m := range c.Materials {
		if m.Kt != nil && m.IOR <= 0 {
			return nil, fmt.Errorf("material %q: transmissive material needs a positive ior", name)
		}
		if m.Ks != nil && m.Shininess <= 0 {
			return nil, fmt.Errorf("material %q: specular material needs a positive shininess", name)
		}
		materials[name] = &material.Material{
			Ka:        m.Ka.coef(),
			Kd:        m.Kd.coef(),
			Ks:        m.Ks.coef(),
			Kr:        m.Kr.coef(),
			Kt:        m.Kt.coef(),
			Shininess: m.Shininess,
			IOR:       m.IOR,
		}
	}
	lookup := func(kind string, i int, name string) (*material.Material, error) {
		m, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%s %d: unknown material %q", kind, i, name)
		}
		return m, nil
	}

	for i, p := range c.Planes {
		m, err := lookup("plane", i, p.Material)
		if err != nil {
			return nil, err
		}
		s.AddShapes(geometry.NewPlane(p.Point.vec3(), p.Normal.vec3(), m))
	}

	for i, sp := range c.Spheres {
		m, err := lookup("sphere", i, sp.Material)
		if err != nil {
			return nil, err
		}
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, sp.Radius)
		}
		s.AddShapes(geometry.NewSphere(sp.Center.vec3(), sp.Radius, m))
	}

	for i, tr := range c.Triangles {
		m, err := lookup("triangle", i, tr.Material)
		if err != nil {
			return nil, err
		}
		p0, p1, p2 := tr.Vertices[0].vec3(), tr.Vertices[1].vec3(), tr.Vertices[2].vec3()
		switch len(tr.Normals) {
		case 0:
			s.AddShapes(geometry.NewTriangle(p0, p1, p2, m))
		case 3:
			s.AddShapes(geometry.NewSmoothTriangle(p0, p1, p2,
				tr.Normals[0].vec3(), tr.Normals[1].vec3(), tr.Normals[2].vec3(), m))
		default:
			return nil, fmt.Errorf("triangle %d: expected 0 or 3 normals, got %d", i, len(tr.Normals))
		}
	}

	for i, mc := range c.Meshes {
		m, err := lookup("mesh", i, mc.Material)
		if err != nil {
			return nil, err
		}
		mesh, err := c.loadMesh(mc, m, logger)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.AddMesh(mesh)
	}

	for _, l := range c.PointLights {
		s.AddPointLight(l.Position.vec3(), l.Intensity.vec3())
	}
	for _, l := range c.SpotLights {
		s.AddSpotLight(l.From.vec3(), l.To.vec3(), l.Intensity.vec3(), l.Exponent, l.CutoffDeg)
	}
	for i, l := range c.AreaLights {
		if l.Samples <= 0 {
			return nil, fmt.Errorf("area light %d: samples must be positive, got %d", i, l.Samples)
		}
		s.AddAreaLight(l.Center.vec3(), l.Size, l.Intensity.vec3(), l.Samples)
	}

	logger.Printf("Built scene %q: %d primitives, %d lights\n", c.Name, s.GetPrimitiveCount(), len(s.Lights))
	return s, nil
}

func (c *Config) loadMesh(mc MeshCfg, m *material.Material, logger core.Logger) (*geometry.TriangleMesh, error) {
	path := mc.PLY
	if !filepath.IsAbs(path) && c.baseDir != "" {
		path = filepath.Join(c.baseDir, path)
	}

	data, err := loaders.LoadPLY(path, logger)
	if err != nil {
		return nil, err
	}

	options := &geometry.TriangleMeshOptions{SmoothNormals: mc.Smooth}
	if mc.Smooth && len(data.Normals) == len(data.Vertices) {
		options.VertexNormals = data.Normals
	}
	if mc.Rotation != nil {
		rotation := mc.Rotation.vec3().Multiply(math.Pi / 180)
		options.Rotation = &rotation
	}
	if mc.Center != nil {
		center := mc.Center.vec3()
		options.Center = &center
	}

	return geometry.NewTriangleMesh(data.Vertices, data.Faces, m, options)
}
