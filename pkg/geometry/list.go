package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List is a brute-force aggregate that tests every member
type List struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewList creates a list from the given objects
func NewList(objects ...Hittable) *List {
	list := &List{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box.
// Lists are built before rendering and must not change while being hit.
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Len returns the number of objects in the list
func (l *List) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all members
func (l *List) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	hitAnything := false

	for _, object := range l.Objects {
		if object.Hit(ray, rayT, hit) {
			hitAnything = true
			rayT.Max = hit.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all member boxes
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
