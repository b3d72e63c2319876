package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

type builtinScene struct {
	info   SceneInfo
	create func(...geometry.CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Spheres over a plane with mirror, glass, point and spot lighting",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "cornell",
			Name:        "Cornell Box",
			Description: "Cornell box with a mirror and a glass sphere under an area light",
			Type:        "builtin",
		},
		create: NewCornellScene,
	},
	{
		info: SceneInfo{
			ID:          "trianglemesh",
			Name:        "Triangle Meshes",
			Description: "Box and smooth-shaded icosahedron meshes",
			Type:        "builtin",
		},
		create: NewTriangleMeshScene,
	},
}

// ListScenes returns the built-in scenes followed by any JSON scenes found in the scenes directory
func ListScenes() ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}

	jsonScenes, err := ListJSONScenes(findScenesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	return append(scenes, jsonScenes...), nil
}

// ListJSONScenes scans dir for *.json scene descriptions. A missing directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		scenes = append(scenes, jsonSceneInfo(filePath))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// jsonSceneInfo reads name and description from the file, falling back to the file name
func jsonSceneInfo(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       "json:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "json",
		FilePath: filePath,
	}

	cfg, err := LoadConfig(filePath)
	if err != nil {
		return info
	}
	if cfg.Name != "" {
		info.Name = cfg.Name
	}
	info.Description = cfg.Description
	return info
}

func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewScene creates a scene by id. Built-in ids are tried first, then "json:<name>" ids and
// paths ending in .json are loaded as scene descriptions.
func NewScene(id string, logger core.Logger, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if id == "" {
		return nil, fmt.Errorf("scene id is empty")
	}

	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(cameraOverrides...), nil
		}
	}

	path := ""
	switch {
	case strings.HasPrefix(id, "json:"):
		dir := findScenesDir()
		if dir == "" {
			return nil, fmt.Errorf("unknown scene %q: no scenes directory", id)
		}
		path = filepath.Join(dir, strings.TrimPrefix(id, "json:")+".json")
	case strings.HasSuffix(id, ".json"):
		path = id
	default:
		return nil, fmt.Errorf("unknown scene %q", id)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Build(logger)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", path, err)
	}
	for _, override := range cameraOverrides {
		s.SetCamera(geometry.MergeCameraConfig(s.CameraConfig, override))
	}
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
