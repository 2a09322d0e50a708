package lumen

import "testing"

func TestHSeparatesKeyRefAndProps(t *testing.T) {
	ref := CreateRef()
	v := H("div", Props{"key": "k1", "ref": ref, "id": "x"}, "child")

	if v.Key != "k1" {
		t.Errorf("Key = %v, want k1", v.Key)
	}
	if v.Ref != ref {
		t.Errorf("Ref not carried through")
	}
	if _, ok := v.Props["key"]; ok {
		t.Errorf("key leaked into Props")
	}
	if _, ok := v.Props["ref"]; ok {
		t.Errorf("ref leaked into Props")
	}
	if v.Props["id"] != "x" {
		t.Errorf("id prop missing")
	}
}

func TestHCardinalityOfChildren(t *testing.T) {
	none := H("div", nil)
	if _, ok := none.Props["children"]; ok {
		t.Errorf("expected no children key when no children given")
	}

	one := H("div", nil, "a")
	if one.Props["children"] != "a" {
		t.Errorf("single child should be stored unwrapped, got %v", one.Props["children"])
	}

	many := H("div", nil, "a", "b")
	if _, ok := many.Props["children"].([]any); !ok {
		t.Errorf("multiple children should be stored as a slice")
	}
}

func TestFlattenChildrenDropsNilAndBool(t *testing.T) {
	flat := flattenChildren([]any{nil, true, false, "x", []any{"y", nil}})
	want := []any{"x", "y"}
	if len(flat) != len(want) {
		t.Fatalf("flat = %v, want %v", flat, want)
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flat = %v, want %v", flat, want)
		}
	}
}

func TestSameTypePlainFuncComponent(t *testing.T) {
	Comp := func(props Props) any { return nil }
	a := H(Comp, nil)
	b := H(Comp, nil)
	if !sameType(a, b) {
		t.Errorf("expected two vnodes built from the same plain func component to share identity")
	}

	Other := func(props Props) any { return nil }
	c := H(Other, nil)
	if sameType(a, c) {
		t.Errorf("expected vnodes from different component functions to differ")
	}
}

func TestSameTypeElementComparesTag(t *testing.T) {
	if !sameType(H("div", nil), H("div", nil)) {
		t.Errorf("expected same-tag elements to match")
	}
	if sameType(H("div", nil), H("span", nil)) {
		t.Errorf("expected different-tag elements not to match")
	}
}

func TestAsComponentInvokesPlainFunc(t *testing.T) {
	Comp := func(props Props) any { return props["x"] }
	fn := asComponent(Comp)
	if fn == nil {
		t.Fatalf("asComponent returned nil for a plain func component")
	}
	if got := fn(Props{"x": 42}); got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestIsValidElement(t *testing.T) {
	if !IsValidElement(H("div", nil)) {
		t.Errorf("expected a vnode to be a valid element")
	}
	if IsValidElement("not a vnode") {
		t.Errorf("expected a plain string not to be a valid element")
	}
}
