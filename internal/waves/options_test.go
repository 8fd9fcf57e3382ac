package waves

import (
	"reflect"
	"testing"
)

func TestOptionsGenerator_ThreeSlots(t *testing.T) {
	g := NewOptionsGenerator(3, 0, 1)

	if g.Number() != 8 {
		t.Fatalf("expected 2^3 = 8 tuples, got %d", g.Number())
	}
	opts := g.Options()

	if !reflect.DeepEqual(opts[0].Values, []int{0, 0, 0}) {
		t.Errorf("expected first tuple [0 0 0], got %v", opts[0].Values)
	}
	if !reflect.DeepEqual(opts[len(opts)-1].Values, []int{1, 1, 1}) {
		t.Errorf("expected last tuple [1 1 1], got %v", opts[len(opts)-1].Values)
	}

	for i := 1; i < len(opts); i++ {
		if opts[i].Sum() < opts[i-1].Sum() {
			t.Fatalf("tuple sums must be non-decreasing: %v before %v",
				opts[i-1].Values, opts[i].Values)
		}
	}
}

func TestOptionsGenerator_LexicographicTieBreak(t *testing.T) {
	g := NewOptionsGenerator(2, 0, 1)

	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if g.Number() != len(want) {
		t.Fatalf("expected %d tuples, got %d", len(want), g.Number())
	}
	for i, opt := range g.Options() {
		if !reflect.DeepEqual(opt.Values, want[i]) {
			t.Errorf("tuple %d: expected %v, got %v", i, want[i], opt.Values)
		}
	}
}

func TestOptionsGenerator_Repopulate(t *testing.T) {
	g := NewOptionsGenerator(5, 0, 0)
	if g.Number() != 1 {
		t.Fatalf("expected a single all-zero tuple, got %d", g.Number())
	}

	g.To = 1
	g.Populate()
	if g.Number() != 32 {
		t.Errorf("expected 2^5 = 32 tuples after widening, got %d", g.Number())
	}
	if g.Slots() != 5 {
		t.Errorf("slots must be unchanged by Populate, got %d", g.Slots())
	}
}

func TestOptionsGenerator_EmptyRange(t *testing.T) {
	g := NewOptionsGenerator(3, 2, 1)
	if g.Number() != 0 {
		t.Errorf("expected no tuples for an inverted range, got %d", g.Number())
	}
}

func TestWaveOption_String(t *testing.T) {
	opt := WaveOption{Values: []int{0, 1, 2}}
	if got := opt.String(); got != "[0 1 2]" {
		t.Errorf("expected [0 1 2], got %q", got)
	}
	if opt.Sum() != 3 {
		t.Errorf("expected sum 3, got %d", opt.Sum())
	}
}
