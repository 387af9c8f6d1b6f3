package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned for scene IDs that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier
	DisplayName string // Name shown in listings
	Description string
	Width       int // Suggested image width
	Height      int // Suggested image height
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

func newInfo(id, description string, width, height int) SceneInfo {
	return SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Description: description,
		Width:       width,
		Height:      height,
	}
}

var builtinScenes = []builtinScene{
	{newInfo("basic", "Sphere surrounded by four triangles, ambient light only", 500, 500), NewBasicScene},
	{newInfo("reflection", "Transparent sphere in front of two mirrors", 500, 500), NewReflectionScene},
	{newInfo("shadow", "Semi-transparent sphere casting a soft shadow on triangles", 600, 600), NewShadowScene},
	{newInfo("glossy", "Glossy mirror and diffuse glass sphere over a floor", 600, 600), NewGlossyScene},
	{newInfo("sphere-grid", "Grid of spheres and cylinders exercising the hierarchy", 600, 600), NewSphereGridScene},
}

// ListBuiltinScenes returns the built-in scenes in display order
func ListBuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, s := range builtinScenes {
		infos[i] = s.info
	}
	return infos
}

// LookupBuiltinScene returns the info of a built-in scene
func LookupBuiltinScene(id string) (SceneInfo, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// NewBuiltinScene builds a built-in scene by ID
func NewBuiltinScene(id string) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			scene, err := s.build()
			if err != nil {
				return nil, fmt.Errorf("build scene %q: %w", id, err)
			}
			return scene, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// titleCase converts an ID-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
