package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// randomSpheresSeed fixes the layout of the registered random scene
const randomSpheresSeed = 7

// NewRandomSpheresScene creates the random sphere field with the standard layout
func NewRandomSpheresScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return NewRandomSpheresSceneWithSeed(randomSpheresSeed, cameraOverrides...)
}

// NewRandomSpheresSceneWithSeed scatters small diffuse, metal and glass spheres
// around three large ones. Diffuse spheres bounce upwards during the shutter
// interval, so they blur when rendered with motion.
func NewRandomSpheresSceneWithSeed(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            20.0,
		Aperture:        0.1,
		FocusDistance:   10.0,
		ShutterDuration: 1.0,
	}

	s := newScene(defaultCameraConfig, cameraOverrides, skyBackground(), SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	random := rand.New(rand.NewSource(seed))
	randomColor := func(lo, hi float64) core.Vec3 {
		span := hi - lo
		return core.NewVec3(lo+span*random.Float64(), lo+span*random.Float64(), lo+span*random.Float64())
	}

	checker := material.NewSpatialChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9), 0.32)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				bounce := core.NewVec3(0, 0.5*random.Float64(), 0)
				s.Add(geometry.NewMovingSphere(center, center.Add(bounce), 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(0.5, 1)
				fuzz := 0.5 * random.Float64()
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	s.Preprocess(seed)
	return s
}
