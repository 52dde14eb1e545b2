package material

import (
	"math"
	"testing"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

func flatHit() core.HitRecord {
	return core.HitRecord{
		DidHit: true,
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
}

func TestLambert_Shade(t *testing.T) {
	m := NewLambert(core.NewColor(1, 0.5, 0.25), 1.0)

	got := m.Shade(flatHit(), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	expected := core.NewColor(1/math.Pi, 0.5/math.Pi, 0.25/math.Pi)
	if math.Abs(got.R-expected.R) > 1e-12 ||
		math.Abs(got.G-expected.G) > 1e-12 ||
		math.Abs(got.B-expected.B) > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestLambert_ShadeIgnoresDirections(t *testing.T) {
	m := NewLambert(core.White(), 0.8)
	hit := flatHit()

	a := m.Shade(hit, core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	b := m.Shade(hit, core.NewVec3(1, 1, 0).Normalize(), core.NewVec3(-1, 1, 0).Normalize())

	if a != b {
		t.Errorf("Lambert BRDF should be direction-independent: %v vs %v", a, b)
	}
}

func TestLambertPhong_SpecularPeaksAtMirrorDirection(t *testing.T) {
	m := NewLambertPhong(core.NewColor(0.2, 0.2, 0.2), 0.5, 1.0, 50)
	hit := flatHit()
	lightDir := core.NewVec3(-1, 1, 0).Normalize()

	// Mirror of the light direction about the +y normal.
	mirror := core.NewVec3(1, 1, 0).Normalize()
	offAxis := core.NewVec3(0, 1, 0)

	peak := m.Shade(hit, lightDir, mirror)
	off := m.Shade(hit, lightDir, offAxis)

	if peak.R <= off.R {
		t.Errorf("Expected specular peak at mirror direction: peak=%v off=%v", peak, off)
	}
}

func TestLambertPhong_ReducesToLambertWithoutSpecular(t *testing.T) {
	albedo := core.NewColor(0.6, 0.3, 0.1)
	phong := NewLambertPhong(albedo, 0.9, 0, 25)
	lambert := NewLambert(albedo, 0.9)
	hit := flatHit()
	lightDir := core.NewVec3(0, 1, 0)
	viewDir := core.NewVec3(1, 1, 0).Normalize()

	a := phong.Shade(hit, lightDir, viewDir)
	b := lambert.Shade(hit, lightDir, viewDir)

	if a != b {
		t.Errorf("Expected ks=0 LambertPhong to equal Lambert: %v vs %v", a, b)
	}
}
