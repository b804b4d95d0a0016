package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestEmissive_Scatter(t *testing.T) {
	emissive := NewEmissive(core.NewVec3(4, 4, 4))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := HitRecord{
		Point:     core.NewVec3(1, 0, 0),
		Normal:    core.NewVec3(-1, 0, 0),
		T:         1.0,
		FrontFace: true,
	}

	if _, scattered := emissive.Scatter(ray, hit, core.NewSeededSampler(42)); scattered {
		t.Error("Emissive material should not scatter rays")
	}
}

func TestEmissive_EmitFrontFaceOnly(t *testing.T) {
	emission := core.NewVec3(10.0, 5.0, 2.0)
	emissive := NewEmissive(emission)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name      string
		frontFace bool
		expected  core.Vec3
	}{
		{"front face emits", true, emission},
		{"back face is dark", false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{FrontFace: tt.frontFace, Material: emissive}

			if got := emissive.Emit(ray, hit); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if got := Emitted(ray, hit); got != tt.expected {
				t.Errorf("Emitted: expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEmitted_NonEmissiveIsBlack(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := HitRecord{FrontFace: true, Material: NewLambertian(core.NewVec3(1, 1, 1))}

	if got := Emitted(ray, hit); got != (core.Vec3{}) {
		t.Errorf("Expected black, got %v", got)
	}
}
