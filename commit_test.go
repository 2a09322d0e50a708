package lumen

import (
	"testing"

	"github.com/lumenjs/lumen/dom/fakedom"
)

func TestRefAppliedOnMountAndClearedOnUnmount(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")
	ref := CreateRef()

	Render(H("div", Props{"ref": ref}), doc, container)
	if ref.Current == nil {
		t.Fatalf("expected ref.Current to be set after mount")
	}

	Render(nil, doc, container)
	if ref.Current != nil {
		t.Errorf("expected ref.Current to be cleared after unmount, got %v", ref.Current)
	}
}

func TestRefCallbackClearedBeforeNewOneApplied(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	var log []string
	refA := func(v any) {
		if v == nil {
			log = append(log, "clear-a")
		} else {
			log = append(log, "set-a")
		}
	}
	refB := func(v any) {
		if v == nil {
			log = append(log, "clear-b")
		} else {
			log = append(log, "set-b")
		}
	}

	Render(H("div", Props{"ref": refA}), doc, container)
	Render(H("div", Props{"ref": refB}), doc, container)

	want := []string{"set-a", "clear-a", "set-b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestLayoutEffectRunsSynchronouslyDuringCommit(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	ran := false
	Widget := func(props Props) any {
		UseLayoutEffect(func() func() {
			ran = true
			return nil
		}, []any{})
		return H("div", nil)
	}

	Render(H(Widget, nil), doc, container)
	if !ran {
		t.Fatalf("expected the layout effect to have run by the time Render returns")
	}
}
