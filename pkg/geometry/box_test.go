package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestBox_FaceNormalsPointOutward(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), nil)

	tests := []struct {
		name           string
		ray            core.Ray
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"front", core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)), 4, core.NewVec3(0, 0, 1)},
		{"back", core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1)), 5, core.NewVec3(0, 0, -1)},
		{"right", core.NewRay(core.NewVec3(5, 0.5, 0.5), core.NewVec3(-1, 0, 0)), 4, core.NewVec3(1, 0, 0)},
		{"left", core.NewRay(core.NewVec3(-5, 0.5, 0.5), core.NewVec3(1, 0, 0)), 5, core.NewVec3(-1, 0, 0)},
		{"top", core.NewRay(core.NewVec3(0.5, 5, 0.5), core.NewVec3(0, -1, 0)), 4, core.NewVec3(0, 1, 0)},
		{"bottom", core.NewRay(core.NewVec3(0.5, -5, 0.5), core.NewVec3(0, 1, 0)), 5, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit material.HitRecord
			if !box.Hit(tt.ray, forward, &hit) {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !hit.FrontFace {
				t.Error("Expected front face hit from outside")
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBox_HitFromInside(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)

	var hit material.HitRecord
	if !box.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, 0, 1)), forward, &hit) {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
}

func TestBox_BoundingBox(t *testing.T) {
	box := NewBox(core.NewVec3(-1, 0, 2), core.NewVec3(1, 3, 4), nil).BoundingBox()

	if !box.X.Contains(-1) || !box.X.Contains(1) || !box.Y.Contains(3) || !box.Z.Contains(2) {
		t.Errorf("Expected box to cover its corners, got %v", box)
	}
	if box.X.Size() > 2.01 {
		t.Errorf("Expected tight X extent, got %v", box.X)
	}
}
