package main

import (
	"strings"
	"testing"
)

func TestIsCheckerboardParity(t *testing.T) {
	tests := []struct {
		name  string
		point Vec3
		want  bool
	}{
		{"origin tile", Vec3{0.5, 0, 0.5}, true},
		{"adjacent x tile", Vec3{1.5, 0, 0.5}, false},
		{"adjacent z tile", Vec3{0.5, 0, 1.5}, false},
		{"diagonal tile", Vec3{1.5, 0, 1.5}, true},
		{"negative coordinates even", Vec3{-0.5, 0, -0.5}, true},
		{"negative coordinates odd", Vec3{0.5, 0, -0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCheckerboard(tt.point); got != tt.want {
				t.Errorf("isCheckerboard(%+v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestIsCheckerboardPeriodAndYInvariance(t *testing.T) {
	for x := -3.0; x <= 3.0; x += 0.5 {
		for z := -3.0; z <= 3.0; z += 0.5 {
			base := isCheckerboard(Vec3{x, 0, z})
			if got := isCheckerboard(Vec3{x + 2, 0, z}); got != base {
				t.Errorf("period 2 in x broken at (%f, %f)", x, z)
			}
			if got := isCheckerboard(Vec3{x, 0, z + 2}); got != base {
				t.Errorf("period 2 in z broken at (%f, %f)", x, z)
			}
			if got := isCheckerboard(Vec3{x, 42.5, z}); got != base {
				t.Errorf("y should not affect the pattern at (%f, %f)", x, z)
			}
		}
	}
}

func TestGetShadeReflectiveMonotonic(t *testing.T) {
	prev := -1
	for i := 0; i <= 100; i++ {
		intensity := float64(i) / 100.0
		glyph := getShade(intensity, true)
		index := strings.IndexByte(shadeRamp, glyph)
		if index < 0 {
			t.Fatalf("getShade(%f, true) = %q, not on the ramp", intensity, glyph)
		}
		if index < prev {
			t.Fatalf("ramp index decreased at intensity %f", intensity)
		}
		prev = index
	}
}

func TestGetShadeClamps(t *testing.T) {
	if got := getShade(-3, true); got != shadeRamp[0] {
		t.Errorf("getShade(-3, true) = %q, want %q", got, shadeRamp[0])
	}
	if got := getShade(7, true); got != shadeRamp[len(shadeRamp)-1] {
		t.Errorf("getShade(7, true) = %q, want %q", got, shadeRamp[len(shadeRamp)-1])
	}
}

// The non-reflective branch ignores the ramp entirely: it re-derives a
// checkerboard test from the intensity value packed into the x coordinate.
func TestGetShadeFloorBranch(t *testing.T) {
	if got := getShade(0.5, false); got != denseGlyph {
		t.Errorf("getShade(0.5, false) = %q, want %q", got, denseGlyph)
	}
	if got := getShade(1, false); got != blankGlyph {
		t.Errorf("getShade(1, false) = %q, want %q", got, blankGlyph)
	}
}

func TestRampIndex(t *testing.T) {
	for i := 0; i < len(shadeRamp); i++ {
		if got := rampIndex(shadeRamp[i]); got != i {
			t.Errorf("rampIndex(%q) = %d, want %d", shadeRamp[i], got, i)
		}
	}
	if got := rampIndex(0); got != 0 {
		t.Errorf("rampIndex of an unknown glyph = %d, want 0", got)
	}
}
