package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect.
//
// Hit reports the closest intersection with t inside rayT (bounds included)
// and fills hit only when it returns true. Implementations are read-only
// after construction and safe for concurrent use.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool
	BoundingBox() core.AABB
}
