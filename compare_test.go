package lumen

import (
	"math"
	"testing"
)

func TestSameValueNaNEqualsNaN(t *testing.T) {
	if !SameValue(math.NaN(), math.NaN()) {
		t.Errorf("SameValue(NaN, NaN) = false, want true")
	}
}

func TestSameValuePositiveAndNegativeZeroDiffer(t *testing.T) {
	if SameValue(0.0, math.Copysign(0, -1)) {
		t.Errorf("SameValue(+0, -0) = true, want false")
	}
}

func TestSameValueOrdinaryEquality(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{1, 1, true},
		{1, 2, false},
		{"a", "a", true},
		{"a", "b", false},
		{nil, nil, true},
		{nil, 0, false},
	}
	for _, c := range cases {
		if got := SameValue(c.a, c.b); got != c.want {
			t.Errorf("SameValue(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSameDeps(t *testing.T) {
	if !sameDeps([]any{1, "a"}, []any{1, "a"}) {
		t.Errorf("expected equal dep lists to compare equal")
	}
	if sameDeps([]any{1}, []any{1, 2}) {
		t.Errorf("expected different-length dep lists to compare unequal")
	}
	if sameDeps([]any{1}, []any{2}) {
		t.Errorf("expected different dep lists to compare unequal")
	}
}
