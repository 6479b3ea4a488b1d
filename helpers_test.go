package main

import "math"

const testEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < testEpsilon
}

func vec3Equal(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}
