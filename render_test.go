package lumen

import (
	"testing"

	"github.com/lumenjs/lumen/dom"
	"github.com/lumenjs/lumen/dom/fakedom"
)

func TestRenderMountsElementTree(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	tree := H("span", Props{"className": "greeting"}, "hello")
	Render(tree, doc, container)

	children := container.Children()
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
	if children[0].TagName() != "span" {
		t.Fatalf("tag = %q, want span", children[0].TagName())
	}
	if got := children[0].TextContent(); got != "hello" {
		t.Errorf("text = %q, want hello", got)
	}
}

func TestRenderNilUnmounts(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("p", nil, "x"), doc, container)
	if len(container.Children()) != 1 {
		t.Fatalf("expected mount before unmount test")
	}

	Render(nil, doc, container)
	if len(container.Children()) != 0 {
		t.Fatalf("got %d children after Render(nil), want 0", len(container.Children()))
	}
}

func TestRenderReusesSameTypeElement(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("div", Props{"id": "a"}, "one"), doc, container)
	first := container.Children()[0]

	Render(H("div", Props{"id": "b"}, "two"), doc, container)
	second := container.Children()[0]

	if first != second {
		t.Fatalf("expected the same DOM node to be reused across renders")
	}
	if got := second.TextContent(); got != "two" {
		t.Errorf("text = %q, want two", got)
	}
}

func TestRenderReplacesOnTypeChange(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("div", nil, "x"), doc, container)
	first := container.Children()[0]

	Render(H("span", nil, "x"), doc, container)
	second := container.Children()[0]

	if first == second {
		t.Fatalf("expected a new DOM node when the tag changes")
	}
	if second.TagName() != "span" {
		t.Errorf("tag = %q, want span", second.TagName())
	}
}

func TestKeyedChildrenPreserveIdentityAcrossReorder(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	makeList := func(order []string) *VNode {
		items := make([]any, len(order))
		for i, k := range order {
			items[i] = H("li", Props{"key": k}, k)
		}
		return H("ul", nil, items)
	}

	Render(makeList([]string{"a", "b", "c"}), doc, container)
	ul := container.Children()[0]
	before := ul.Children()
	byKey := map[string]*fakedom.Node{}
	for _, n := range before {
		byKey[n.TextContent()] = n
	}

	Render(makeList([]string{"c", "a", "b"}), doc, container)
	after := ul.Children()

	if len(after) != 3 {
		t.Fatalf("got %d children, want 3", len(after))
	}
	order := []string{}
	for _, n := range after {
		order = append(order, n.TextContent())
		if byKey[n.TextContent()] != n {
			t.Errorf("node for key %q was recreated instead of moved", n.TextContent())
		}
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestUnkeyedChildrenReusePositionally(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("ul", nil, H("li", nil, "a"), H("li", nil, "b")), doc, container)
	ul := container.Children()[0]
	firstLi := ul.Children()[0]

	Render(H("ul", nil, H("li", nil, "x"), H("li", nil, "b"), H("li", nil, "c")), doc, container)
	after := ul.Children()

	if after[0] != firstLi {
		t.Fatalf("expected the first unkeyed <li> to be reused in place")
	}
	if got := after[0].TextContent(); got != "x" {
		t.Errorf("text = %q, want x", got)
	}
	if len(after) != 3 {
		t.Fatalf("got %d children, want 3", len(after))
	}
}

// TestSVGNamespacePropagatesToDescendantsAndSurvivesUpdate covers spec §8
// scenario S6: an <svg> subtree's elements carry the SVG namespace, and a
// same-type attribute update on a namespaced element reuses its DOM node.
func TestSVGNamespacePropagatesToDescendantsAndSurvivesUpdate(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	Render(H("svg", nil, H("circle", Props{"r": "5"})), doc, container)
	svg := container.Children()[0]
	circle := svg.Children()[0]

	if svg.Namespace() != dom.NamespaceSVG {
		t.Fatalf("<svg> namespace = %q, want %q", svg.Namespace(), dom.NamespaceSVG)
	}
	if circle.Namespace() != dom.NamespaceSVG {
		t.Fatalf("<circle> namespace = %q, want %q", circle.Namespace(), dom.NamespaceSVG)
	}

	Render(H("svg", nil, H("circle", Props{"r": "10"})), doc, container)
	after := container.Children()[0].Children()[0]

	if after != circle {
		t.Fatalf("expected the same <circle> DOM node to be reused across the update")
	}
}
