package main

import "math"

// isCheckerboard reports whether the point falls on an even tile of the
// unit-cell floor pattern. Only X and Z matter; Y is ignored.
func isCheckerboard(p Vec3) bool {
	checkerX := int(math.Floor(p.X))
	checkerZ := int(math.Floor(p.Z))
	return (checkerX+checkerZ)%2 == 0
}

// getShade maps an intensity in [0,1] to one of the seven ramp glyphs.
// Reflective surfaces use the ramp directly. Non-reflective (floor) surfaces
// ignore the ramp and collapse to dense-or-blank based on a checkerboard
// test of the intensity value itself.
func getShade(t float64, reflective bool) byte {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	index := int(t * float64(len(shadeRamp)-1))
	if index > len(shadeRamp)-1 {
		index = len(shadeRamp) - 1
	}
	if reflective {
		return shadeRamp[index]
	}
	if isCheckerboard(Vec3{X: t}) {
		return denseGlyph
	}
	return blankGlyph
}

// rampIndex returns the position of a glyph on the shading ramp, or 0 for
// anything not on the ramp.
func rampIndex(glyph byte) int {
	for i := 0; i < len(shadeRamp); i++ {
		if shadeRamp[i] == glyph {
			return i
		}
	}
	return 0
}
