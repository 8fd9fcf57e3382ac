package waves

import (
	"fmt"
	"sort"
	"strings"
)

// WaveOption is one candidate skip-tuple: one skip count per monowave slot
// in the target pattern shape.
type WaveOption struct {
	Values []int
}

// Sum returns the total skip magnitude of the tuple. Tuples are explored
// in ascending sum order so the most literal segmentations come first.
func (o WaveOption) Sum() int {
	total := 0
	for _, v := range o.Values {
		total += v
	}
	return total
}

func (o WaveOption) String() string {
	parts := make([]string, len(o.Values))
	for i, v := range o.Values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// OptionsGenerator enumerates every skip-tuple for a pattern shape within
// an inclusive [From, To] bound per slot. Bounds can be changed and the
// generator repopulated without disturbing the consuming search loop.
type OptionsGenerator struct {
	slots   int
	From    int
	To      int
	options []WaveOption
}

// NewOptionsGenerator creates a populated generator for the given number of
// slots (5 for impulses and diagonals, 3 for corrections).
func NewOptionsGenerator(slots, from, to int) *OptionsGenerator {
	g := &OptionsGenerator{slots: slots, From: from, To: to}
	g.Populate()
	return g
}

// Populate regenerates the tuple list from the current bounds. Tuples are
// ordered by ascending sum, ties broken lexicographically.
func (g *OptionsGenerator) Populate() {
	if g.To < g.From {
		g.options = nil
		return
	}

	width := g.To - g.From + 1
	count := 1
	for i := 0; i < g.slots; i++ {
		count *= width
	}

	g.options = make([]WaveOption, 0, count)
	values := make([]int, g.slots)
	for i := range values {
		values[i] = g.From
	}
	for {
		tuple := make([]int, g.slots)
		copy(tuple, values)
		g.options = append(g.options, WaveOption{Values: tuple})

		// Odometer increment, last slot fastest.
		pos := g.slots - 1
		for pos >= 0 {
			values[pos]++
			if values[pos] <= g.To {
				break
			}
			values[pos] = g.From
			pos--
		}
		if pos < 0 {
			break
		}
	}

	sort.SliceStable(g.options, func(i, j int) bool {
		si, sj := g.options[i].Sum(), g.options[j].Sum()
		if si != sj {
			return si < sj
		}
		a, b := g.options[i].Values, g.options[j].Values
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

// Options returns the generated tuples in search order.
func (g *OptionsGenerator) Options() []WaveOption {
	return g.options
}

// Number returns how many tuples the generator holds.
func (g *OptionsGenerator) Number() int {
	return len(g.options)
}

// Slots returns the pattern shape the generator was built for.
func (g *OptionsGenerator) Slots() int {
	return g.slots
}
