package geometry

import (
	"math"
	"testing"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	hit, didHit := plane.Hit(ray, 0.001, 1000.0)
	if !didHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected +y normal, got %v", hit.Normal)
	}
	if hit.MaterialIndex != 1 {
		t.Errorf("Expected material index 1, got %d", hit.MaterialIndex)
	}
}

func TestPlane_Hit_ParallelRayMisses(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	if _, didHit := plane.Hit(ray, 0.001, 1000.0); didHit {
		t.Error("Expected parallel ray to miss")
	}
}

func TestPlane_Hit_BehindOrigin(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0))

	if _, didHit := plane.Hit(ray, 0.001, 1000.0); didHit {
		t.Error("Expected no hit for plane behind the ray")
	}
}

func TestNewPlane_NormalizesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 10, 0), 0)

	if math.Abs(plane.Normal.Length()-1) > 1e-12 {
		t.Errorf("Expected unit normal, got length %v", plane.Normal.Length())
	}
}
