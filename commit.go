package lumen

import "time"

// refAction is one queued (ref, target, previous-ref) tuple applied at
// commit time (spec §6 glossary: "Ref queue").
type refAction struct {
	newRef  any
	prevRef any
	target  any
}

// refQueue accumulates refAction entries during a single diff pass.
type refQueue struct {
	actions []refAction
}

func (q *refQueue) enqueue(newRef, prevRef, target any) {
	if newRef == nil && prevRef == nil {
		return
	}
	q.actions = append(q.actions, refAction{newRef: newRef, prevRef: prevRef, target: target})
}

// applyRef invokes ref as a callback, or assigns target into its
// single-slot container, matching whichever shape it is (spec §6).
func applyRef(ref any, target any) {
	switch r := ref.(type) {
	case nil:
	case func(any):
		r(target)
	case *RefObject:
		r.Current = target
	default:
		logStructuralAnomaly("E201", "ref", "unsupported ref type")
	}
}

// runRefs is commit pipeline step 1 (spec §4.7): clear a replaced ref
// before applying the new one.
func runRefs(q *refQueue) {
	for _, a := range q.actions {
		if a.prevRef != nil && !SameValue(a.prevRef, a.newRef) {
			applyRef(a.prevRef, nil)
		}
		if a.newRef != nil {
			applyRef(a.newRef, a.target)
		}
	}
}

// commitQueue is the ordered list of component instances whose render
// produced pending effects (spec §6 glossary: "Commit queue").
type commitQueue struct {
	components []*component
}

func (q *commitQueue) append(c *component) {
	q.components = append(q.components, c)
}

// runLayoutEffects is commit pipeline step 2 (spec §4.7): synchronous,
// queue order, cleanup-then-callback. A slot's dependency list is
// recorded when the hook runs during render, not after the effect runs;
// there is no separate pending dependency list to promote here.
func runLayoutEffects(q *commitQueue) {
	for _, c := range q.components {
		c.mu.Lock()
		pending := c.pendingLayoutEffects
		c.pendingLayoutEffects = nil
		c.mu.Unlock()
		runEffectSlots(pending)
	}
}

// schedulePostPaintEffects is commit pipeline step 3 (spec §4.7, §5): a
// continuation fires after the next frame (with a timer fallback for
// non-visible hosts), then pending effects run the same way layout
// effects do.
func schedulePostPaintEffects(q *commitQueue) {
	pending := make([]*component, len(q.components))
	copy(pending, q.components)

	run := func() {
		for _, c := range pending {
			c.mu.Lock()
			slots := c.pendingEffects
			c.pendingEffects = nil
			c.mu.Unlock()
			runEffectSlots(slots)
		}
	}

	if hook := activeScheduler.FrameCallback; hook != nil {
		hook(run)
		return
	}
	// Fallback timer for hosts with no frame callback: 35ms, the
	// non-visible-tab fallback value of spec §4.7.
	time.AfterFunc(35*time.Millisecond, run)
}

// runEffectSlots runs the prior cleanup then the new callback for each
// slot, in slot order (spec §4.7, §8 property 5).
func runEffectSlots(slots []*hookSlot) {
	for _, h := range slots {
		if h.cleanup != nil {
			cleanup := h.cleanup
			h.cleanup = nil
			cleanup()
		}
		if fn, ok := h.pendingCallback.(func() func()); ok && fn != nil {
			h.cleanup = fn()
		}
		h.pendingCallback = nil
	}
}
