package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is an internal node of a bounding volume hierarchy. Children are
// either further nodes or primitives; a single primitive sits in both slots.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes      int // internal nodes
	Primitives int // leaf references, a duplicated single leaf counts once
	MaxDepth   int
}

// NewBVH builds a hierarchy over objects. Each level splits along an axis
// drawn from sampler after ordering children by the low end of their boxes.
// The input slice is copied and left untouched. It panics when objects is empty.
func NewBVH(objects []Hittable, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH over zero objects")
	}

	// Copy so concurrent builds over the same list don't race on sorting
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, sampler)
}

// NewBVHFromList builds a hierarchy over the members of a list
func NewBVHFromList(list *List, sampler core.Sampler) *BVHNode {
	return NewBVH(list.Objects, sampler)
}

func buildBVH(objects []Hittable, sampler core.Sampler) *BVHNode {
	axis := sampler.Intn(3)
	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if boxMin(objects[1], axis) < boxMin(objects[0], axis) {
			node.Left, node.Right = objects[1], objects[0]
		} else {
			node.Left, node.Right = objects[0], objects[1]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return boxMin(objects[i], axis) < boxMin(objects[j], axis)
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], sampler)
		node.Right = buildBVH(objects[mid:], sampler)
	}

	node.bbox = node.Left.BoundingBox().Union(node.Right.BoundingBox())
	return node
}

func boxMin(object Hittable, axis int) float64 {
	return object.BoundingBox().Axis(axis).Min
}

// Hit tests both children, narrowing the right search to the left hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, hit *material.HitRecord) bool {
	if !n.bbox.Hit(ray, rayT) {
		return false
	}

	hitLeft := n.Left.Hit(ray, rayT, hit)
	if hitLeft {
		rayT.Max = hit.T
	}
	hitRight := n.Right.Hit(ray, rayT, hit)

	return hitLeft || hitRight
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Stats walks the hierarchy and counts nodes and primitives
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(&stats, 1)
	return stats
}

func (n *BVHNode) collectStats(stats *BVHStats, depth int) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(stats, depth+1)
		} else {
			stats.Primitives++
		}
	}
}
