package lumen

import (
	"sync"

	"github.com/lumenjs/lumen/dom"
)

var (
	rootsMu sync.Mutex
	roots   = map[dom.Element]*VNode{}
)

// Render is the public mount/update/unmount entry point (spec §4.10,
// §6, C11). tree is wrapped in a Fragment so the root has a stable type
// for dev-tools; container's previously cached root (if any) is read and
// replaced. Render(nil, doc, container) unmounts whatever is currently
// mounted.
//
// doc is the Document that owns container: the spec's render(vnode,
// container) signature assumes a single ambient document, which this
// engine instead receives explicitly, matching the dom package's split
// between a Document (creates/mutates nodes) and an Element (one node in
// the tree).
func Render(tree any, doc dom.Document, container dom.Element) {
	rootsMu.Lock()
	oldRoot := roots[container]
	rootsMu.Unlock()

	if tree == nil {
		if oldRoot != nil {
			unmountVNode(doc, oldRoot, false)
		}
		rootsMu.Lock()
		delete(roots, container)
		rootsMu.Unlock()
		return
	}

	newRoot := H(Fragment, nil, tree)
	newRoot.dom = container
	newRoot.depth = 0

	if hook := activeOptions.Root; hook != nil {
		hook(newRoot, container)
	}

	cq := &commitQueue{}
	rq := &refQueue{}
	diffVNode(doc, container, newRoot, oldRoot, container.Namespace(), cq, container.FirstChild(), rq)

	rootsMu.Lock()
	roots[container] = newRoot
	rootsMu.Unlock()

	if hook := activeOptions.Commit; hook != nil {
		hook(newRoot, len(cq.components))
	}

	runRefs(rq)
	runLayoutEffects(cq)
	if len(cq.components) > 0 {
		schedulePostPaintEffects(cq)
	}
}

// Hydrate is identical to Render in this engine: there is no SSR
// integration to reconcile against (spec §6).
func Hydrate(tree any, doc dom.Document, container dom.Element) {
	Render(tree, doc, container)
}
