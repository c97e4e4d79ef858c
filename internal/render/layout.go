package render

// Aspect is the fixed width:height ratio of the play area.
const Aspect = 16.0 / 9.0

// FitAspect returns the largest 16:9 size that fits in width x height.
// Degenerate sizes yield 1x1.
func FitAspect(width, height float64) (float64, float64) {
	if height <= 0 || width <= 0 {
		return 1, 1
	}
	if width/height >= Aspect {
		return height * Aspect, height
	}
	return width, width / Aspect
}
