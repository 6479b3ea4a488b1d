package main

// Ray is a directed half-line. Direction is always unit length: newRay
// normalizes it at construction and nothing mutates it afterward.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// newRay builds a ray from an origin and an arbitrary (non-zero) direction.
func newRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point on the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
