package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_NewAABBOrdersCorners(t *testing.T) {
	box := NewAABB(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))

	if box.Min() != NewVec3(-1, -2, -3) {
		t.Errorf("Expected min (-1,-2,-3), got %v", box.Min())
	}
	if box.Max() != NewVec3(1, 2, 3) {
		t.Errorf("Expected max (1,2,3), got %v", box.Max())
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	forward := NewInterval(0, math.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
	}{
		{"positive direction through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), forward, true},
		{"negative direction through center", NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)), forward, true},
		{"negative diagonal", NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1)), forward, true},
		{"negative direction pointing away", NewRay(NewVec3(-5, 0, 0), NewVec3(-1, 0, 0)), forward, false},
		{"mixed signs miss", NewRay(NewVec3(5, -5, 0), NewVec3(-1, -1, 0)), forward, false},
		{"parallel inside slab", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), forward, true},
		{"parallel outside slab", NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1)), forward, false},
		{"interval ends before box", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), NewInterval(0, 3), false},
		{"interval starts after box", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), NewInterval(7, 10), false},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(0.3, -0.2, 0.9)), forward, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.rayT); got != tt.expected {
				t.Errorf("Expected hit=%t, got %t", tt.expected, got)
			}
		})
	}
}

// slabOverlap computes the sign-corrected overlap of the three slabs with rayT
func slabOverlap(box AABB, ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := box.Axis(axis)
		o := ray.Origin.Axis(axis)
		d := ray.Direction.Axis(axis)
		if d == 0 {
			if o < slab.Min || o > slab.Max {
				return false
			}
			continue
		}
		inv := 1 / d
		near := (slab.Min - o) * inv
		far := (slab.Max - o) * inv
		if d < 0 {
			near, far = far, near
		}
		rayT = NewInterval(math.Max(rayT.Min, near), math.Min(rayT.Max, far))
	}
	return !rayT.IsEmpty()
}

func TestAABB_HitMatchesSlabOverlap(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	box := NewAABB(NewVec3(-0.5, 0, 1), NewVec3(2, 1.5, 3))
	rayT := NewInterval(0.001, 100)

	for i := 0; i < 2000; i++ {
		origin := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		direction := NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		ray := NewRay(origin, direction)

		if got, want := box.Hit(ray, rayT), slabOverlap(box, ray, rayT); got != want {
			t.Fatalf("ray %v: Hit=%t, slab overlap=%t", ray, got, want)
		}
	}
}

func TestAABB_UnionContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 3), NewVec3(-1, 4, 5))

	union := a.Union(b)
	expected := NewAABB(NewVec3(-2, 0, 0), NewVec3(1, 4, 5))
	if union != expected {
		t.Errorf("Expected %v, got %v", expected, union)
	}

	if EmptyAABB.Union(a) != a {
		t.Errorf("Expected empty box to be the union identity")
	}
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABB(NewVec3(0, 0, 2), NewVec3(1, 1, 2)).Pad()

	if flat.Z.Size() < aabbPadding {
		t.Errorf("Expected padded Z extent >= %g, got %g", aabbPadding, flat.Z.Size())
	}
	if flat.X != NewInterval(0, 1) {
		t.Errorf("Expected X axis untouched, got %v", flat.X)
	}
}

func TestAABB_FromPointsAndCorners(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))
	corners := box.Corners()

	rebuilt := NewAABBFromPoints(corners[:]...)
	if rebuilt != box {
		t.Errorf("Expected %v, got %v", box, rebuilt)
	}
	if NewAABBFromPoints().IsValid() {
		t.Error("Expected box from no points to be invalid")
	}
}
