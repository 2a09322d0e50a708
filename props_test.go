package lumen

import (
	"testing"

	"github.com/lumenjs/lumen/dom/fakedom"
)

func TestApplyPropsSetsAndRemovesAttributes(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("a", Props{"href": "/one", "title": "t"}), doc, container)
	el := container.Children()[0]
	if v, _ := el.Attribute("href"); v != "/one" {
		t.Fatalf("href = %q, want /one", v)
	}

	Render(H("a", Props{"href": "/two"}), doc, container)
	if v, _ := el.Attribute("href"); v != "/two" {
		t.Errorf("href = %q, want /two", v)
	}
	if _, ok := el.Attribute("title"); ok {
		t.Errorf("title should have been removed, still present")
	}
}

func TestApplyPropsClassNameMapsToClassAttribute(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("div", Props{"className": "box"}), doc, container)
	el := container.Children()[0]
	if v, ok := el.Attribute("class"); !ok || v != "box" {
		t.Errorf("class = %q, ok=%v, want box/true", v, ok)
	}
}

func TestApplyPropsBooleanAttribute(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("input", Props{"disabled": true}), doc, container)
	el := container.Children()[0]
	if _, ok := el.Attribute("disabled"); !ok {
		t.Fatalf("expected disabled attribute to be set")
	}

	Render(H("input", Props{"disabled": false}), doc, container)
	if _, ok := el.Attribute("disabled"); ok {
		t.Errorf("expected disabled attribute to be removed when false")
	}
}

func TestApplyPropsStyleMap(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("div", Props{"style": map[string]any{"opacity": 0.5, "width": 10}}), doc, container)
	el := container.Children()[0]
	style := el.Style()
	if style["opacity"] != "0.5" {
		t.Errorf("opacity = %q, want 0.5 (unitless)", style["opacity"])
	}
	if style["width"] != "10px" {
		t.Errorf("width = %q, want 10px", style["width"])
	}
}

func TestApplyPropsEventHandlerRebindWithoutReAddListener(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	calls := 0
	Render(H("button", Props{"onClick": func() { calls++ }}), doc, container)
	el := container.Children()[0]

	el.Dispatch("click", nil)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	secondCalls := 0
	Render(H("button", Props{"onClick": func() { secondCalls++ }}), doc, container)
	el.Dispatch("click", nil)

	if calls != 1 {
		t.Errorf("stale handler fired: calls = %d, want 1", calls)
	}
	if secondCalls != 1 {
		t.Errorf("secondCalls = %d, want 1", secondCalls)
	}
}

func TestApplyPropsValueAlwaysWritten(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("input", Props{"value": "x"}), doc, container)
	el := container.Children()[0]
	el.SetProperty("value", "externally-changed")

	Render(H("input", Props{"value": "x"}), doc, container)
	if got := el.GetProperty("value"); got != "x" {
		t.Errorf("value = %v, want x (value prop must always be re-applied)", got)
	}
}
