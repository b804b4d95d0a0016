package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureScene shows UV, spatial and image textures on transformed shapes.
// A non-nil texture replaces the generated stripe image on the middle sphere.
func NewTextureScene(texture *material.ImageTexture, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	s := newScene(defaultCameraConfig, cameraOverrides, skyBackground(), SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        20,
	})

	if texture == nil {
		texture = stripeTexture(64, 32)
	}

	floor := material.NewSpatialChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.2, 0.2), 1.0)
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 40, material.NewTexturedLambertian(floor)))

	checker := material.NewChecker(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.8, 0.1, 0.1), 10)
	s.Add(geometry.NewSphere(core.NewVec3(-3, 1, 0), 1, material.NewTexturedLambertian(checker)))

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewTexturedLambertian(texture)))

	// A unit sphere stretched into an ellipsoid
	ellipsoid := geometry.NewScale(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)),
		core.NewVec3(0.6, 1.2, 0.6))
	s.Add(geometry.NewTranslate(ellipsoid, core.NewVec3(3, 1.2, 0)))

	// A glass cube tipped onto one corner
	cube := geometry.NewBox(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5), material.NewDielectric(1.5))
	tipped := geometry.NewRotate(cube, core.NewVec3(1, 0, 1), 54.7356)
	s.Add(geometry.NewTranslate(tipped, core.NewVec3(1.5, 0.87, 2.5)))

	// A half-size copy of the unit sphere in gold
	small := geometry.NewUniformScale(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewMetal(core.NewVec3(0.9, 0.7, 0.3), 0.2)),
		0.5)
	s.Add(geometry.NewTranslate(small, core.NewVec3(-1.5, 0.5, 2.5)))

	s.Preprocess(1)
	return s
}

// stripeTexture builds a texture with a horizontal hue band per row block
func stripeTexture(width, height int) *material.ImageTexture {
	bands := []core.Vec3{
		core.NewVec3(0.8, 0.2, 0.2),
		core.NewVec3(0.9, 0.7, 0.1),
		core.NewVec3(0.2, 0.7, 0.3),
		core.NewVec3(0.2, 0.4, 0.9),
	}

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		band := bands[y*len(bands)/height]
		for x := 0; x < width; x++ {
			shade := 0.6 + 0.4*float64(x)/float64(width-1)
			pixels[y*width+x] = band.Multiply(shade)
		}
	}
	return material.NewImageTexture(width, height, pixels)
}
