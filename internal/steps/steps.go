// Package steps resolves arbitrary cell-count input against the discrete set
// of counts the host can lay out for the selected frame.
package steps

const (
	// FallbackMin is the slider minimum used while no steps are known.
	FallbackMin = 0
	// FallbackMax is the slider maximum used while no steps are known.
	FallbackMax = 300
)

// Nearest returns the member of steps closest to candidate. Ties go to the
// element met first in steps' order. An empty set yields 0.
func Nearest(candidate int, steps []int) int {
	if len(steps) == 0 {
		return 0
	}

	best := steps[0]
	bestDist := distance(best, candidate)
	for _, s := range steps[1:] {
		if d := distance(s, candidate); d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// Bounds returns the smallest and largest step, or the fallback range when
// steps is empty.
func Bounds(steps []int) (int, int) {
	if len(steps) == 0 {
		return FallbackMin, FallbackMax
	}

	lo, hi := steps[0], steps[0]
	for _, s := range steps[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}

// Index reports the position of v in steps, or -1.
func Index(steps []int, v int) int {
	for i, s := range steps {
		if s == v {
			return i
		}
	}
	return -1
}

// Neighbor returns the step adjacent to current in the direction of dir
// (negative for smaller, positive for larger). Values outside the set are
// snapped first; the result stays at the boundary when no neighbour exists.
func Neighbor(steps []int, current, dir int) int {
	if len(steps) == 0 {
		return 0
	}

	current = Nearest(current, steps)
	next := current
	for _, s := range steps {
		switch {
		case dir > 0 && s > current && (next == current || s < next):
			next = s
		case dir < 0 && s < current && (next == current || s > next):
			next = s
		}
	}
	return next
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
