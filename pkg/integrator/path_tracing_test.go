package integrator

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testScene is a minimal Scene for exercising the integrator
type testScene struct {
	world      geometry.Hittable
	background Background
}

func (s *testScene) GetWorld() geometry.Hittable { return s.world }
func (s *testScene) GetBackground() Background    { return s.background }

func newTestScene(background Background, objects ...geometry.Hittable) *testScene {
	return &testScene{world: geometry.NewList(objects...), background: background}
}

const colorTolerance = 1e-12

func colorClose(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < colorTolerance
}

var towardSphere = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

func TestPathTracing_DepthTermination(t *testing.T) {
	white := NewSolidBackground(core.NewVec3(1, 1, 1))
	sc := newTestScene(white, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewSeededSampler(42)

	if c := integrator.RayColor(towardSphere, sc, sampler, 0); c != (core.Vec3{}) {
		t.Errorf("Expected black for depth 0, got %v", c)
	}
	if c := integrator.RayColor(towardSphere, sc, sampler, -3); c != (core.Vec3{}) {
		t.Errorf("Expected black for negative depth, got %v", c)
	}
	// One bounce is spent on the hit, leaving nothing for the scattered ray
	if c := integrator.RayColor(towardSphere, sc, sampler, 1); c != (core.Vec3{}) {
		t.Errorf("Expected black for depth 1 on a non-emitter, got %v", c)
	}
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	sky := NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	sc := newTestScene(sky)
	integrator := NewPathTracingIntegrator()

	tests := []struct {
		name     string
		ray      core.Ray
		expected core.Vec3
	}{
		{"straight up", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 3, 0)), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := integrator.RayColor(tt.ray, sc, core.NewSeededSampler(1), 10)
			if !colorClose(c, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestPathTracing_DiffuseConvexObjectUnderUniformSky(t *testing.T) {
	white := NewSolidBackground(core.NewVec3(1, 1, 1))
	sc := newTestScene(white, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewSeededSampler(7)

	// Every bounce off a convex sphere escapes, so each sample is exactly albedo * sky
	for i := 0; i < 100; i++ {
		c := integrator.RayColor(towardSphere, sc, sampler, 5)
		if !colorClose(c, core.NewVec3(0.5, 0.5, 0.5)) {
			t.Fatalf("sample %d: expected (0.5,0.5,0.5), got %v", i, c)
		}
	}
}

func TestPathTracing_MirrorReflectsBackground(t *testing.T) {
	sky := NewGradientBackground(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0))
	sc := newTestScene(sky, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)))
	integrator := NewPathTracingIntegrator()

	// The reflected ray leaves along +Z, which sits halfway up the gradient
	c := integrator.RayColor(towardSphere, sc, core.NewSeededSampler(3), 10)
	expected := core.NewVec3(0.4, 0, 0.4)
	if !colorClose(c, expected) {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestPathTracing_EmitterReturnsEmission(t *testing.T) {
	light := material.NewEmissive(core.NewVec3(4, 4, 4))
	sc := newTestScene(NewSolidBackground(core.Vec3{}), geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, light))
	integrator := NewPathTracingIntegrator()

	c := integrator.RayColor(towardSphere, sc, core.NewSeededSampler(1), 1)
	if c != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", c)
	}
}

func TestPathTracing_ClosedRoomWithoutLightIsBlack(t *testing.T) {
	// Looking out from inside a sphere, no path can reach the bright sky
	white := NewSolidBackground(core.NewVec3(1, 1, 1))
	sc := newTestScene(white, geometry.NewSphere(core.NewVec3(0, 0, 0), 5, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9))))
	integrator := NewPathTracingIntegrator()
	sampler := core.NewSeededSampler(5)

	for i := 0; i < 20; i++ {
		if c := integrator.RayColor(towardSphere, sc, sampler, 8); c != (core.Vec3{}) {
			t.Fatalf("Expected black inside a closed room, got %v", c)
		}
	}
}

func TestSolidBackground(t *testing.T) {
	bg := NewSolidBackground(core.NewVec3(0.1, 0.2, 0.3))
	for _, dir := range []core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0.5)} {
		if c := bg.Color(core.NewRay(core.Vec3{}, dir)); c != core.NewVec3(0.1, 0.2, 0.3) {
			t.Errorf("Expected constant color, got %v", c)
		}
	}
}
