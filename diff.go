package lumen

import (
	"fmt"

	"github.com/lumenjs/lumen/dom"
)

// diffVNode is the per-node diff dispatch (spec §4.4, C5): it fires the
// _diff/diffed option hooks and dispatches on newV's kind. oldDOM is the
// reference DOM node diffing should insert new nodes before (nil means
// append).
func diffVNode(doc dom.Document, parentDOM dom.Node, newV, oldV *VNode, ns dom.Namespace, cq *commitQueue, oldDOM dom.Node, rq *refQueue) {
	if newV == nil {
		if oldV != nil {
			unmountVNode(doc, oldV, false)
		}
		return
	}

	if hook := activeOptions.Diff; hook != nil {
		hook(newV)
	}

	switch newV.Kind {
	case KindText:
		diffText(doc, parentDOM, newV, oldV, oldDOM)
	case KindPortal:
		diffPortal(doc, newV, oldV, cq, rq)
	case KindComponent:
		diffComponentNode(doc, parentDOM, newV, oldV, ns, cq, oldDOM, rq)
	case KindElement:
		diffElementNode(doc, parentDOM, newV, oldV, ns, cq, oldDOM, rq)
	default:
		logStructuralAnomaly("E201", "unknown", fmt.Sprintf("vnode kind %v", newV.Kind))
	}

	if hook := activeOptions.Diffed; hook != nil {
		hook(newV)
	}
}

func diffText(doc dom.Document, parentDOM dom.Node, newV, oldV *VNode, oldDOM dom.Node) {
	if oldV != nil && oldV.Kind == KindText && oldV.dom != nil {
		newV.dom = oldV.dom
		if t, ok := newV.dom.(dom.Text); ok && t.NodeValue() != newV.Text {
			t.SetNodeValue(newV.Text)
		}
		return
	}

	textNode := doc.CreateTextNode(newV.Text)
	newV.dom = textNode
	if oldDOM != nil {
		doc.InsertBefore(parentDOM, textNode, oldDOM)
	} else {
		doc.AppendChild(parentDOM, textNode)
	}
	if oldV != nil {
		unmountVNode(doc, oldV, false)
	}
}

func diffElementNode(doc dom.Document, parentDOM dom.Node, newV, oldV *VNode, ns dom.Namespace, cq *commitQueue, oldDOM dom.Node, rq *refQueue) {
	tag := newV.Type.(string)
	if tag == "svg" {
		ns = dom.NamespaceSVG
	}

	reused := oldV != nil && oldV.Kind == KindElement && oldV.dom != nil && sameType(newV, oldV)

	var el dom.Element
	if reused {
		el, _ = oldV.dom.(dom.Element)
	}
	if el == nil {
		el = doc.CreateElement(tag, ns)
		if oldDOM != nil {
			doc.InsertBefore(parentDOM, el, oldDOM)
		} else {
			doc.AppendChild(parentDOM, el)
		}
		if oldV != nil {
			unmountVNode(doc, oldV, false)
		}
	}
	newV.dom = el

	var prevProps Props
	var oldChildrenParent *VNode
	if reused {
		prevProps = oldV.Props
		oldChildrenParent = oldV
	}
	applyProps(el, newV.Props, prevProps, ns)

	reconcileChildren(doc, el, newV.Props.Child(), newV, oldChildrenParent, ns, cq, el.FirstChild(), rq)

	queueRef(newV, oldV, el, rq)
}

func diffComponentNode(doc dom.Document, parentDOM dom.Node, newV, oldV *VNode, ns dom.Namespace, cq *commitQueue, oldDOM dom.Node, rq *refQueue) {
	reused := oldV != nil && oldV.Kind == KindComponent && oldV.component != nil && sameType(newV, oldV)

	var c *component
	var oldChildrenParent *VNode
	if reused {
		c = oldV.component
		oldChildrenParent = oldV
		// The diff reached c through its parent, so any re-render of c
		// still sitting in the scheduler's queue from this same batch is
		// now redundant (spec §4.6): this render subsumes it.
		dequeueRender(c)
	} else {
		if oldV != nil {
			unmountVNode(doc, oldV, false)
		}
		c = &component{name: componentName(newV.Type)}
	}
	c.props = newV.Props
	c.vnode = newV
	c.doc = doc
	newV.component = c

	if hook := activeOptions.Render; hook != nil {
		hook(newV)
	}

	var result any
	withCurrentComponent(c, func() {
		result = asComponent(newV.Type)(newV.Props)
	})

	reconcileChildren(doc, parentDOM, result, newV, oldChildrenParent, ns, cq, oldDOM, rq)

	if len(c.pendingEffects) > 0 || len(c.pendingLayoutEffects) > 0 {
		cq.append(c)
	}

	if c.providerCtx != nil && c.providerValueChanged {
		notifyContextSubscribers(c)
		c.providerValueChanged = false
	}

	queueRef(newV, oldV, c, rq)
}

func diffPortal(doc dom.Document, newV, oldV *VNode, cq *commitQueue, rq *refQueue) {
	container, ok := portalContainer(newV)
	if !ok || container == nil {
		logContractViolation("E103", "", "portal target is not a usable container")
		return
	}

	var oldChildrenParent *VNode
	switch {
	case oldV != nil && oldV.Kind == KindPortal:
		if oldContainer, had := portalContainer(oldV); had && oldContainer == container {
			oldChildrenParent = oldV
		} else {
			// Different container: unmount-and-recreate (spec §4.4, §9
			// Open Question 1 — the source's behavior, kept as-is).
			for _, child := range oldV.children {
				unmountVNode(doc, child, false)
			}
		}
	case oldV != nil:
		unmountVNode(doc, oldV, false)
	}

	reconcileChildren(doc, container, newV.Props.Child(), newV, oldChildrenParent, container.Namespace(), cq, container.FirstChild(), rq)

	queueRef(newV, oldV, container, rq)
}

func queueRef(newV, oldV *VNode, target any, rq *refQueue) {
	var prevRef any
	if oldV != nil {
		prevRef = oldV.Ref
	}
	rq.enqueue(newV.Ref, prevRef, target)
}

// findParentDOM walks v's structural parent chain for the nearest live DOM
// ancestor: an element's own node, the root wrapper's container, or (if v
// sits inside a portal) the portal's target container (spec §4.6).
func findParentDOM(v *VNode) dom.Node {
	for p := v.parent; p != nil; p = p.parent {
		if p.Kind == KindPortal {
			if container, ok := portalContainer(p); ok {
				return container
			}
			continue
		}
		if p.dom != nil {
			return p.dom
		}
	}
	return nil
}

// namespaceOfAncestor detects the SVG namespace from the nearest element
// or portal-container ancestor (spec §4.6: "detect SVG namespace from that
// ancestor").
func namespaceOfAncestor(v *VNode) dom.Namespace {
	for p := v.parent; p != nil; p = p.parent {
		if p.Kind == KindPortal {
			if container, ok := portalContainer(p); ok {
				return container.Namespace()
			}
			continue
		}
		if el, ok := p.dom.(dom.Element); ok {
			return el.Namespace()
		}
	}
	return ""
}
