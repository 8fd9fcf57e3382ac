package waves

// Condition is one named constraint in a rule table. Check receives the
// waves named by Waves, in order, and must not mutate them.
type Condition struct {
	ID      string
	Waves   []string
	Check   func(waves ...*MonoWave) bool
	Message string
}

// Rule is an ordered table of conditions defining one pattern archetype.
// XYRatio is the normalization constant handed to the diagonal-length
// metric by conditions that use it.
type Rule struct {
	Name       string
	XYRatio    float64
	Conditions []Condition
}

// DefaultXYRatio is the diagonal-length normalization used when a run does
// not configure its own.
const DefaultXYRatio = 1.7
