package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned rectangular box made up of 6 quads.
// Wrap it in Rotate or Translate to orient it.
type Box struct {
	Material material.Material // Material for all faces
	faces    [6]*Quad
	bbox     core.AABB
}

// NewBox creates a box spanning the two opposite corners a and b
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	extent := core.NewAABB(a, b)
	lo, hi := extent.Min(), extent.Max()

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	box := &Box{Material: mat}

	// Edge order makes every face normal point outward
	box.faces[0] = NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, mat)          // front (Z+)
	box.faces[1] = NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, mat) // right (X+)
	box.faces[2] = NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, mat) // back (Z-)
	box.faces[3] = NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, mat)          // left (X-)
	box.faces[4] = NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), mat) // top (Y+)
	box.faces[5] = NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, mat)          // bottom (Y-)

	box.bbox = core.EmptyAABB
	for _, face := range box.faces {
		box.bbox = box.bbox.Union(face.BoundingBox())
	}

	return box
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	hitAnything := false

	for _, face := range b.faces {
		if face.Hit(ray, rayT, hit) {
			hitAnything = true
			rayT.Max = hit.T
		}
	}

	return hitAnything
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
