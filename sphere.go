package main

import "math"

// Sphere is the single scene object, immutable once constructed.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Hit describes the first surface point a ray meets.
type Hit struct {
	T      float64
	Point  Vec3
	Normal Vec3
}

// sceneSphere returns the sphere the scene is built from.
func sceneSphere() Sphere {
	return Sphere{
		Center: Vec3{sphereCenterX, sphereCenterY, sphereCenterZ},
		Radius: sphereRadius,
	}
}

// Intersect solves the ray/sphere quadratic a·t² + b·t + c = 0 and reports
// the nearest forward intersection. Only the smaller root is considered: a
// negative discriminant or a root at t <= 0 is a miss, so a ray originating
// inside the sphere reports no hit.
func (s Sphere) Intersect(r Ray) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2.0 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4*a*c

	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	if t <= 0 {
		return Hit{}, false
	}

	point := r.At(t)
	return Hit{
		T:      t,
		Point:  point,
		Normal: point.Sub(s.Center).Normalize(),
	}, true
}
