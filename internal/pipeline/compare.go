package pipeline

import "math"

const relTolerance = 1e-9

// ApproxEqual reports whether a and b are equal within a relative tolerance.
// There is no absolute tolerance, so values near zero must match exactly.
func ApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// ApproxGE reports whether a is greater than or approximately equal to b.
func ApproxGE(a, b float64) bool {
	return a > b || ApproxEqual(a, b)
}
