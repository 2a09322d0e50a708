package lumen

import (
	"testing"

	"github.com/lumenjs/lumen/dom/fakedom"
)

func TestCreatePortalRendersIntoTargetContainer(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")
	portalTarget := fakedom.NewElement("div")

	tree := H("div", nil, "inline", CreatePortal(H("p", nil, "teleported"), portalTarget))
	Render(tree, doc, container)

	root := container.Children()[0]
	if len(root.Children()) != 1 {
		t.Fatalf("expected only the inline text child under the structural parent (the portal contributes none), got %d", len(root.Children()))
	}
	if len(portalTarget.Children()) != 1 {
		t.Fatalf("expected 1 child in the portal target, got %d", len(portalTarget.Children()))
	}
	if got := portalTarget.Children()[0].TextContent(); got != "teleported" {
		t.Errorf("text = %q, want teleported", got)
	}
}

func TestPortalSwitchingContainerRemountsChildren(t *testing.T) {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")
	targetA := fakedom.NewElement("div")
	targetB := fakedom.NewElement("div")

	Render(CreatePortal(H("span", nil, "x"), targetA), doc, container)
	if len(targetA.Children()) != 1 {
		t.Fatalf("expected portal content mounted in targetA")
	}

	Render(CreatePortal(H("span", nil, "x"), targetB), doc, container)
	if len(targetA.Children()) != 0 {
		t.Errorf("expected targetA emptied after the portal container changed")
	}
	if len(targetB.Children()) != 1 {
		t.Errorf("expected targetB to receive the portal content")
	}
}
