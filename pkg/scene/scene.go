package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Background     integrator.Background
	Objects        []geometry.Hittable // Top-level objects, gathered into World by Preprocess
	World          geometry.Hittable   // Acceleration structure for ray-object intersection
	SamplingConfig SamplingConfig
}

// SamplingConfig holds the sample count and depth a scene looks right at
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// newScene creates an empty scene with the camera resolved from defaults and overrides
func newScene(defaults renderer.CameraConfig, overrides []renderer.CameraConfig, background integrator.Background, sampling SamplingConfig) *Scene {
	cameraConfig := defaults
	if len(overrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, overrides[0])
	}

	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Background:     background,
		SamplingConfig: sampling,
	}
}

// Add appends objects to the scene; call Preprocess afterwards
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Preprocess builds the BVH over the scene's objects. The seed fixes the
// split axes so repeated builds give the same tree.
func (s *Scene) Preprocess(seed int64) {
	if len(s.Objects) == 0 {
		s.World = geometry.NewList()
		return
	}
	s.World = geometry.NewBVH(s.Objects, core.NewSeededSampler(seed))
}

// GetWorld returns the root of the scene's geometry
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackground returns the radiance for rays that leave the scene
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// skyBackground is the blue-to-white gradient used by the outdoor scenes
func skyBackground() integrator.Background {
	return integrator.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}
