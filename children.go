package lumen

import (
	"fmt"

	"github.com/lumenjs/lumen/dom"
)

// reconcileChildren is the child reconciler (spec §4.3, C4): given the raw
// render-result children and the previous parent vnode, it decides
// match/move/insert/remove order and invokes the diff engine for each
// child. newParent.children is populated with the normalized sequence.
func reconcileChildren(
	doc dom.Document,
	parentDOM dom.Node,
	rawChildren any,
	newParent, oldParent *VNode,
	ns dom.Namespace,
	cq *commitQueue,
	oldDOMRef dom.Node,
	rq *refQueue,
) {
	// oldChildren must be read before newParent.children is overwritten:
	// the scheduler's own re-render path reconciles a component's vnode
	// against itself (spec §4.6 — "the old parent vnode is the
	// component's vnode itself"), so newParent and oldParent can be the
	// identical object.
	var oldChildren []*VNode
	if oldParent != nil {
		oldChildren = oldParent.children
	}

	newChildren := normalizeChildren(toRawChildSlice(rawChildren))
	newParent.children = newChildren

	matched := make([]bool, len(oldChildren))
	matches := make([]int, len(newChildren))

	keyIndex := map[any]int{}
	for i, oc := range oldChildren {
		if oc.Key != nil {
			keyIndex[oc.Key] = i
		}
	}

	for i, nc := range newChildren {
		matches[i] = -1

		if nc.Key != nil {
			if idx, ok := keyIndex[nc.Key]; ok && !matched[idx] && sameType(nc, oldChildren[idx]) {
				matches[i] = idx
				matched[idx] = true
			}
			continue
		}

		if i < len(oldChildren) {
			if oc := oldChildren[i]; oc.Key == nil && !matched[i] && sameType(nc, oc) {
				matches[i] = i
				matched[i] = true
				continue
			}
		}
		for j, oc := range oldChildren {
			if oc.Key == nil && !matched[j] && sameType(nc, oc) {
				matches[i] = j
				matched[j] = true
				break
			}
		}
	}

	// Phase C: diff and place, left to right. previousNewDom tracks the
	// last DOM node placed for a preceding new child so each subsequent
	// child computes its own insertion reference. Nodes that will be
	// unmounted stay attached until Phase D, so using one as a reference
	// here is always valid even though it is about to be removed.
	var previousNewDom dom.Node
	for i, nc := range newChildren {
		nc.parent = newParent
		nc.depth = newParent.depth + 1
		nc.index = i

		var oldChild *VNode
		hadOldMatch := matches[i] >= 0
		if hadOldMatch {
			oldChild = oldChildren[matches[i]]
		}

		ref := oldDOMRef
		if previousNewDom != nil {
			ref = previousNewDom.NextSibling()
		}

		diffVNode(doc, parentDOM, nc, oldChild, ns, cq, ref, rq)

		first := firstDomNode(nc)
		last := lastDomNode(nc)

		if hadOldMatch && first != nil {
			var immediatelyAfter bool
			if previousNewDom == nil {
				immediatelyAfter = parentDOM.FirstChild() == first
			} else {
				immediatelyAfter = previousNewDom.NextSibling() == first
			}
			if !immediatelyAfter {
				moveRange(doc, parentDOM, first, last, ref)
			}
		}

		if last != nil {
			previousNewDom = last
		}
	}

	// Phase D: unmount all unmatched old children in a single pass, now
	// that every new child has a valid placed/reused DOM position.
	for i, oc := range oldChildren {
		if !matched[i] {
			unmountVNode(doc, oc, false)
		}
	}
}

// toRawChildSlice normalizes a component's render result (absent, a
// single value, or a sequence) into a slice the same flattening rules can
// run over.
func toRawChildSlice(x any) []any {
	switch v := x.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []*VNode:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out
	default:
		return []any{x}
	}
}

// normalizeChildren implements Phase A (spec §4.3): the factory's
// flattening rules, plus converting bare strings/numbers into text
// vnodes.
func normalizeChildren(raw []any) []*VNode {
	flat := flattenChildren(raw)
	out := make([]*VNode, 0, len(flat))
	for _, c := range flat {
		if v, ok := c.(*VNode); ok {
			out = append(out, v)
			continue
		}
		out = append(out, &VNode{Kind: KindText, Text: stringifyChild(c)})
	}
	return out
}

func stringifyChild(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// firstDomNode/lastDomNode descend through components and fragments to
// find the DOM node a vnode currently owns (spec §4.3: "requires
// descending through components/fragments until an owning DOM node is
// found"). A portal contributes nothing to its structural parent's DOM
// position, since its children's DOM lives in the portal's target
// container instead (spec §4.9).
func firstDomNode(v *VNode) dom.Node {
	if v == nil || v.Kind == KindPortal {
		return nil
	}
	if v.dom != nil {
		return v.dom
	}
	for _, c := range v.children {
		if d := firstDomNode(c); d != nil {
			return d
		}
	}
	return nil
}

func lastDomNode(v *VNode) dom.Node {
	if v == nil || v.Kind == KindPortal {
		return nil
	}
	if v.dom != nil {
		return v.dom
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if d := lastDomNode(v.children[i]); d != nil {
			return d
		}
	}
	return nil
}

// domRange collects the sibling chain from first to last inclusive.
func domRange(first, last dom.Node) []dom.Node {
	var nodes []dom.Node
	cur := first
	for {
		nodes = append(nodes, cur)
		if cur == last || cur == nil {
			break
		}
		cur = cur.NextSibling()
	}
	return nodes
}

// moveRange relocates an already-live DOM range before ref (spec §4.3
// Phase C's move step).
func moveRange(doc dom.Document, parentDOM dom.Node, first, last, ref dom.Node) {
	for _, n := range domRange(first, last) {
		doc.InsertBefore(parentDOM, n, ref)
	}
}
