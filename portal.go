package lumen

import "github.com/lumenjs/lumen/dom"

// createPortal returns a vnode whose children render into container instead
// of the structural parent's DOM (spec §4.9). The portal itself owns no
// DOM; its ref, if any, receives container.
func createPortal(children any, container dom.Element) *VNode {
	return &VNode{
		Type: portalSentinel,
		Kind: KindPortal,
		Props: Props{
			"children":      children,
			"portalContainer": container,
		},
	}
}

// CreatePortal is the exported entry point (spec §6).
func CreatePortal(children any, container dom.Element) *VNode {
	return createPortal(children, container)
}

func portalContainer(v *VNode) (dom.Element, bool) {
	c, ok := v.Props["portalContainer"].(dom.Element)
	return c, ok
}
