package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears shifted by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, tests the object and moves the hit back
func (tr *Translate) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	local := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)
	if !tr.Object.Hit(local, rayT, hit) {
		return false
	}
	hit.Point = hit.Point.Add(tr.Offset)
	return true
}

// BoundingBox returns the translated bounding box
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}

// linearTransform holds a 3x3 object-to-world matrix with its inverse and normal matrix
type linearTransform struct {
	forward mgl64.Mat3 // object -> world
	inverse mgl64.Mat3 // world -> object
	normal  mgl64.Mat3 // inverse transpose of forward
}

func newLinearTransform(forward mgl64.Mat3) linearTransform {
	inverse := forward.Inv()
	return linearTransform{
		forward: forward,
		inverse: inverse,
		normal:  inverse.Transpose(),
	}
}

// hit transforms the ray into object space, delegates and maps the result back.
// The direction is not renormalized, so t is the same in both spaces.
func (lt *linearTransform) hit(object Hittable, ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	local := core.NewRayAtTime(apply(lt.inverse, ray.Origin), apply(lt.inverse, ray.Direction), ray.Time)
	if !object.Hit(local, rayT, hit) {
		return false
	}
	hit.Point = apply(lt.forward, hit.Point)
	hit.Normal = apply(lt.normal, hit.Normal).Normalize()
	return true
}

// boundingBox transforms all eight corners of box and bounds the result
func (lt *linearTransform) boundingBox(box core.AABB) core.AABB {
	corners := box.Corners()
	for i := range corners {
		corners[i] = apply(lt.forward, corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...)
}

// Rotate turns an object about an axis through the origin
type Rotate struct {
	Object Hittable
	linearTransform
	bbox core.AABB
}

// NewRotate wraps object rotated counter-clockwise by degrees about axis
func NewRotate(object Hittable, axis core.Vec3, degrees float64) *Rotate {
	if axis.NearZero() {
		panic("geometry: rotation axis must be non-zero")
	}
	unitAxis := axis.Normalize()
	rotation := mgl64.HomogRotate3D(mgl64.DegToRad(degrees), toMgl(unitAxis)).Mat3()

	r := &Rotate{Object: object, linearTransform: newLinearTransform(rotation)}
	r.bbox = r.linearTransform.boundingBox(object.BoundingBox())
	return r
}

// NewRotateY wraps object rotated by degrees about the Y axis
func NewRotateY(object Hittable, degrees float64) *Rotate {
	return NewRotate(object, core.NewVec3(0, 1, 0), degrees)
}

// Hit tests the rotated object
func (r *Rotate) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	return r.linearTransform.hit(r.Object, ray, rayT, hit)
}

// BoundingBox returns the bounds of the rotated object's box
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}

// Scale stretches an object per axis about the origin
type Scale struct {
	Object  Hittable
	Factors core.Vec3
	linearTransform
	bbox core.AABB
}

// NewScale wraps object scaled by factors; every factor must be non-zero
func NewScale(object Hittable, factors core.Vec3) *Scale {
	if factors.X == 0 || factors.Y == 0 || factors.Z == 0 {
		panic(fmt.Sprintf("geometry: scale factors must be non-zero, got %v", factors))
	}

	s := &Scale{
		Object:          object,
		Factors:         factors,
		linearTransform: newLinearTransform(mgl64.Diag3(toMgl(factors))),
	}
	s.bbox = s.linearTransform.boundingBox(object.BoundingBox())
	return s
}

// NewUniformScale wraps object scaled by the same factor on every axis
func NewUniformScale(object Hittable, factor float64) *Scale {
	return NewScale(object, core.NewVec3(factor, factor, factor))
}

// Hit tests the scaled object
func (s *Scale) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	return s.linearTransform.hit(s.Object, ray, rayT, hit)
}

// BoundingBox returns the bounds of the scaled object's box
func (s *Scale) BoundingBox() core.AABB {
	return s.bbox
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func apply(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	r := m.Mul3x1(toMgl(v))
	return core.NewVec3(r[0], r[1], r[2])
}
