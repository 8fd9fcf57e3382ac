package waves

// Extrema scanning over parallel low/high arrays. A local extremum is
// confirmed by a simple adjacent comparison: a high is local once the next
// bar's high drops below it, a low once the next bar's low rises above it.
// All functions return ok=false when the series ends before an extremum
// can be confirmed; that is a normal outcome, not an error.

// nextHigh returns the first local high at or after fromIdx.
func nextHigh(lows, highs []float64, fromIdx int) (float64, int, bool) {
	for i := fromIdx; i < len(highs)-1; i++ {
		if highs[i+1] < highs[i] {
			return highs[i], i, true
		}
	}
	return 0, 0, false
}

// nextLow returns the first local low at or after fromIdx.
func nextLow(lows, highs []float64, fromIdx int) (float64, int, bool) {
	for i := fromIdx; i < len(lows)-1; i++ {
		if lows[i+1] > lows[i] {
			return lows[i], i, true
		}
	}
	return 0, 0, false
}

// nextHigherHigh scans past currentIdx for the first local high strictly
// above currentHigh. Used by skip chaining: each skip hop advances to the
// next maximum that exceeds the one found so far.
func nextHigherHigh(lows, highs []float64, currentIdx int, currentHigh float64) (float64, int, bool) {
	i := currentIdx + 1
	for i < len(highs)-1 {
		high, highIdx, ok := nextHigh(lows, highs, i)
		if !ok {
			return 0, 0, false
		}
		if high > currentHigh {
			return high, highIdx, true
		}
		i = highIdx + 1
	}
	return 0, 0, false
}

// nextLowerLow scans past currentIdx for the first local low strictly
// below currentLow.
func nextLowerLow(lows, highs []float64, currentIdx int, currentLow float64) (float64, int, bool) {
	i := currentIdx + 1
	for i < len(lows)-1 {
		low, lowIdx, ok := nextLow(lows, highs, i)
		if !ok {
			return 0, 0, false
		}
		if low < currentLow {
			return low, lowIdx, true
		}
		i = lowIdx + 1
	}
	return 0, 0, false
}

// undercuts reports whether any low in [from, to) falls strictly below limit.
func undercuts(lows []float64, from, to int, limit float64) bool {
	for i := from; i < to && i < len(lows); i++ {
		if lows[i] < limit {
			return true
		}
	}
	return false
}

// overshoots reports whether any high in [from, to) rises strictly above limit.
func overshoots(highs []float64, from, to int, limit float64) bool {
	for i := from; i < to && i < len(highs); i++ {
		if highs[i] > limit {
			return true
		}
	}
	return false
}
