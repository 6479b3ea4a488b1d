package main

import "math"

// Vec3 represents a 3-dimensional vector. All operations return new values;
// a Vec3 is never mutated in place.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the difference of two vectors (v - u).
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Scale returns the vector scaled by a scalar value.
func (v Vec3) Scale(t float64) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction. The caller must
// guarantee a nonzero magnitude; a zero vector propagates NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1.0 / v.Length())
}

// Reflect returns the vector mirrored around a unit normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	// r = v - 2(v · n)n
	return v.Sub(normal.Scale(2.0 * v.Dot(normal)))
}
