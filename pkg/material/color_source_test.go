package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{white, black, black, white})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, black},
		{"bottom-right", 0.9, 0.1, white},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
		{"wrapped negative", -0.9, -0.1, white},
		{"wrapped large", 2.9, 3.9, black},
		{"exact one wraps to origin", 1.0, 1.0, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("UV(%.1f,%.1f): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}

func TestSpatialChecker(t *testing.T) {
	even := core.NewVec3(1, 0, 0)
	odd := core.NewVec3(0, 0, 1)
	checker := NewSpatialChecker(even, odd, 0.5)

	if got := checker.Evaluate(0, 0, core.NewVec3(0.1, 0.1, 0.1)); got != even {
		t.Errorf("Expected even cell at origin, got %v", got)
	}
	if got := checker.Evaluate(0, 0, core.NewVec3(0.6, 0.1, 0.1)); got != odd {
		t.Errorf("Expected odd cell after one step in X, got %v", got)
	}
	if got := checker.Evaluate(0, 0, core.NewVec3(-0.1, 0.1, 0.1)); got != odd {
		t.Errorf("Expected odd cell across the origin, got %v", got)
	}
}
