package main

// renderScene recomputes every cell of the aspect-corrected viewport for the
// given camera position and records the cells that changed in the frame
// buffer. Cells outside the viewport keep their prior glyph and stay clean.
func renderScene(camera Vec3, fb *frameBuffer) {
	fb.clearDirty()
	adjWidth, adjHeight := adjustedViewport(fb.width, fb.height)
	renderRows(camera, fb, adjWidth, adjHeight)
}

// traceCell resolves one grid cell: a primary ray through the view plane,
// then sphere hit vs. reflection-to-floor vs. direct floor vs. sky.
func traceCell(x, y, adjWidth, adjHeight int, aspect float64, camera Vec3, sphere Sphere) byte {
	u := (float64(x) - float64(adjWidth)/2.0) / float64(adjWidth) * aspect
	v := (float64(adjHeight)/2.0 - float64(y)) / float64(adjHeight)

	ray := newRay(camera, Vec3{u, v, 1})

	if hit, ok := sphere.Intersect(ray); ok {
		reflection := newRay(hit.Point, ray.Direction.Reflect(hit.Normal))
		floorDist := -hit.Point.Y / reflection.Direction.Y
		if floorDist > 0 {
			floorPoint := reflection.At(floorDist)
			return getShade(1, isCheckerboard(floorPoint))
		}
		// Shade the sphere itself by raw hit distance, an approximation
		// rather than a physical quantity.
		return getShade(hit.T, true)
	}

	if ray.Direction.Y < 0 {
		floorDist := -camera.Y / ray.Direction.Y
		floorPoint := ray.At(floorDist)
		return getShade(1, isCheckerboard(floorPoint))
	}

	return blankGlyph
}
