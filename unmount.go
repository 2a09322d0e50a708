package lumen

import "github.com/lumenjs/lumen/dom"

// unmount tears down v and its subtree: cleanups run, refs clear, context
// subscriptions drop, and DOM is detached (spec §4.7, §4.9, C12).
//
// skipRemove is true when an ancestor's DOM removal will already take this
// node's DOM with it, so the detach here only needs to happen for portal
// subtrees, whose DOM lives in a container the structural ancestor doesn't
// own (spec §4.9: "the unmount routine special-cases portals so that child
// DOM removal is never skipped").
func unmountVNode(doc dom.Document, v *VNode, skipRemove bool) {
	if v == nil {
		return
	}
	if hook := activeOptions.Unmount; hook != nil {
		hook(v)
	}

	if v.Ref != nil {
		applyRef(v.Ref, nil)
	}

	switch v.Kind {
	case KindComponent:
		if c := v.component; c != nil {
			runCleanups(c)
			cleanupContextSubscriptions(c)
			dequeueRender(c)
			c.vnode = nil
		}
		for _, child := range v.children {
			unmountVNode(doc, child, skipRemove)
		}
	case KindPortal:
		target, _ := portalContainer(v)
		for _, child := range v.children {
			// A portal's children live in target, not this subtree's
			// structural parent's DOM, so skipRemove never applies to
			// them (spec §4.9).
			unmountVNode(doc, child, false)
		}
		_ = target
	case KindElement:
		for _, child := range v.children {
			unmountVNode(doc, child, true)
		}
		if v.dom != nil && !skipRemove {
			if parent := v.dom.ParentNode(); parent != nil {
				doc.RemoveChild(parent, v.dom)
			}
		}
	case KindText:
		if v.dom != nil && !skipRemove {
			if parent := v.dom.ParentNode(); parent != nil {
				doc.RemoveChild(parent, v.dom)
			}
		}
	}

	v.dom = nil
	v.component = nil
	v.children = nil
}

// runCleanups invokes every hook slot's cleanup thunk, in slot order
// (spec §4.7: "any non-null cleanup thunk in a component's hook list is
// invoked during unmount").
func runCleanups(c *component) {
	c.mu.Lock()
	hooks := c.hooks
	c.mu.Unlock()
	for _, h := range hooks {
		if h.cleanup != nil {
			cleanup := h.cleanup
			h.cleanup = nil
			cleanup()
		}
	}
}
