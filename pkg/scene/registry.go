package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Builder creates a ready-to-render scene, applying optional camera overrides
type Builder func(cameraOverrides ...renderer.CameraConfig) *Scene

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	Description string
	Build       Builder
}

var builtins = map[string]SceneInfo{
	"default": {
		ID:          "default",
		Description: "three spheres and a glass bubble on a ground sphere",
		Build:       NewDefaultScene,
	},
	"random": {
		ID:          "random",
		Description: "field of random diffuse, metal and glass spheres with motion blur",
		Build:       NewRandomSpheresScene,
	},
	"cornell": {
		ID:          "cornell",
		Description: "Cornell box with an area light and two rotated boxes",
		Build:       NewCornellScene,
	},
	"quads": {
		ID:          "quads",
		Description: "five quads facing the camera",
		Build:       NewQuadsScene,
	},
	"spheregrid": {
		ID:          "spheregrid",
		Description: "grid of metal spheres in OKLCH colors",
		Build:       NewSphereGridScene,
	},
	"textures": {
		ID:          "textures",
		Description: "checker, image and spatial textures on transformed shapes",
		Build: func(cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewTextureScene(nil, cameraOverrides...)
		},
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, info := range builtins {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup finds a built-in scene by ID
func Lookup(id string) (SceneInfo, error) {
	info, ok := builtins[id]
	if !ok {
		return SceneInfo{}, fmt.Errorf("unknown scene %q", id)
	}
	return info, nil
}
