package main

// applyKey applies the camera displacement mapped to a keystroke and reports
// whether the key was recognized. Unrecognized keys leave the camera
// untouched; the caller still re-renders, which yields zero dirty cells.
func applyKey(camera *Vec3, key rune) bool {
	switch key {
	case 'w':
		camera.Z += moveStep
	case 's':
		camera.Z -= moveStep
	case 'a':
		camera.X -= moveStep
	case 'd':
		camera.X += moveStep
	case 'y':
		camera.Y += moveStep
	case 'x':
		camera.Y -= moveStep
	default:
		return false
	}
	return true
}
