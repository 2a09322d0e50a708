package lumen

import (
	"math"
	"reflect"
)

// SameValue implements the same-value-is-Object.is equality predicate
// referenced throughout spec §3-§4 for memoization deps, state-change
// detection and prop diffing: unlike ==, NaN is SameValue to NaN, and
// +0 is not SameValue to -0.
func SameValue(a, b any) bool {
	af, aIsFloat := a.(float64)
	bf, bIsFloat := b.(float64)
	if aIsFloat && bIsFloat {
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		if af == 0 && bf == 0 {
			return math.Signbit(af) == math.Signbit(bf)
		}
		return af == bf
	}

	ai, aIsInt32 := a.(int)
	bi, bIsInt32 := b.(int)
	if aIsInt32 && bIsInt32 {
		return ai == bi
	}

	// func/map/slice values reach here as non-nil any values routinely —
	// event handler props, style maps, dangerouslySetInnerHTML, memo/effect
	// deps — and == panics on them even when only statically known through
	// an interface. Fall back to reference identity for funcs, and treat
	// maps/slices as always different (Go gives no cheap identity check for
	// either, and spec callers pass a fresh literal on every render anyway).
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() {
		switch av.Kind() {
		case reflect.Func:
			if bv.Kind() != reflect.Func {
				return false
			}
			return av.Pointer() == bv.Pointer()
		case reflect.Map, reflect.Slice:
			return false
		}
	}

	return a == b
}

// sameDeps reports whether two dependency lists are SameValue element by
// element and equal in length (spec §4.5's memoization contract: "a
// differs from b if lengths differ or any element differs under
// SameValue").
func sameDeps(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SameValue(a[i], b[i]) {
			return false
		}
	}
	return true
}
