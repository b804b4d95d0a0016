package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two colors on a UV grid
type Checker struct {
	Even, Odd core.Vec3
	Scale     float64 // Checks per unit of UV
}

// NewChecker creates a UV checker pattern with scale checks per UV unit
func NewChecker(even, odd core.Vec3, scale float64) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: scale}
}

// Evaluate returns Even or Odd depending on which check (u, v) falls in
func (c *Checker) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(u * c.Scale))
	y := int(math.Floor(v * c.Scale))
	if (x+y)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// SpatialChecker alternates between two colors on a 3D grid, independent of UV
type SpatialChecker struct {
	Even, Odd core.Vec3
	invScale  float64
}

// NewSpatialChecker creates a 3D checker with cells of the given size
func NewSpatialChecker(even, odd core.Vec3, cellSize float64) *SpatialChecker {
	return &SpatialChecker{Even: even, Odd: odd, invScale: 1.0 / cellSize}
}

// Evaluate returns Even or Odd depending on the grid cell containing point
func (c *SpatialChecker) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(point.X * c.invScale))
	y := int(math.Floor(point.Y * c.invScale))
	z := int(math.Floor(point.Z * c.invScale))
	if (x+y+z)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
