package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene is the read-only view of a scene an integrator needs
type Scene interface {
	GetWorld() geometry.Hittable
	GetBackground() Background
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray with at most depth bounces
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3
}
