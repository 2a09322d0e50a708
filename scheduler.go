package lumen

import "sync"

// Scheduler is the pluggable pair of suspension points the engine needs
// from its host (spec §5, §9): a microtask primitive for batching
// re-renders, and a frame callback for post-paint effects. Both default to
// goroutine-based approximations that preserve FIFO order; a host with a
// real event loop (e.g. a WASM target with access to queueMicrotask and
// requestAnimationFrame) can override them.
type Scheduler struct {
	// Microtask schedules fn to run after the current synchronous turn,
	// preserving submission order across multiple calls (spec §9:
	// "semantics are the same as long as the primitive preserves FIFO
	// turn order").
	Microtask func(fn func())
	// FrameCallback schedules fn to run after the next paint. Nil means
	// "use the timer fallback" (spec §4.7's "frame-callback plus a
	// fallback timer of ~35ms").
	FrameCallback func(fn func())
}

var microtaskQueue = make(chan func(), 4096)

func init() {
	go func() {
		for fn := range microtaskQueue {
			fn()
		}
	}()
}

func defaultMicrotask(fn func()) {
	microtaskQueue <- fn
}

var activeScheduler = Scheduler{Microtask: defaultMicrotask}

// SetScheduler overrides the microtask/frame primitives (e.g. to drive the
// engine from a real browser event loop, or synchronously in tests).
func SetScheduler(s Scheduler) {
	if s.Microtask == nil {
		s.Microtask = defaultMicrotask
	}
	activeScheduler = s
}

type schedulerState struct {
	mu        sync.Mutex
	queue     []*component
	queued    map[*component]bool
	scheduled bool
}

var sched = &schedulerState{queued: map[*component]bool{}}

// enqueueRender adds c to the render queue unless it is already queued,
// and schedules a drain if one isn't already pending (spec §4.6).
func enqueueRender(c *component) {
	sched.mu.Lock()
	if sched.queued[c] {
		sched.mu.Unlock()
		return
	}
	sched.queued[c] = true
	sched.queue = append(sched.queue, c)
	needSchedule := !sched.scheduled
	if needSchedule {
		sched.scheduled = true
	}
	sched.mu.Unlock()

	if needSchedule {
		activeScheduler.Microtask(drain)
	}
}

// dequeueRender removes c from the render queue (spec §4.6: invoked when
// the tree diff reaches c through its parent).
func dequeueRender(c *component) {
	sched.mu.Lock()
	defer sched.mu.Unlock()
	if !sched.queued[c] {
		return
	}
	delete(sched.queued, c)
	for i, q := range sched.queue {
		if q == c {
			sched.queue = append(sched.queue[:i], sched.queue[i+1:]...)
			break
		}
	}
}

// drain sorts the queue by vnode depth ascending (parents first, ties
// broken by insertion order via a stable sort) and re-renders each
// component in turn, skipping any already unmounted or already reached
// through an ancestor's own re-render this same batch (spec §4.6, §8
// property 8). sched.queued is left intact across the snapshot (rather
// than bulk-cleared) so that a dequeueRender fired mid-batch — when a
// parent's diff reaches a still-queued child — is visible to later
// iterations over this same live slice, not just to the next batch.
func drain() {
	sched.mu.Lock()
	queue := sched.queue
	sched.queue = nil
	sched.scheduled = false
	sched.mu.Unlock()

	live := queue[:0:0]
	for _, c := range queue {
		if c.vnode != nil {
			live = append(live, c)
		}
	}
	stableSortByDepth(live)

	for _, c := range live {
		sched.mu.Lock()
		stillQueued := sched.queued[c]
		delete(sched.queued, c)
		sched.mu.Unlock()

		if !stillQueued {
			continue // reached and re-rendered via an ancestor earlier in this drain
		}
		if c.vnode == nil {
			continue // unmounted by an earlier sibling/ancestor's re-render
		}
		rerenderComponent(c)
	}
}

// stableSortByDepth is an insertion sort: the queues involved are small in
// practice (components invalidated in one turn), and insertion sort is
// trivially stable without importing sort's Slice machinery for a
// single comparator.
func stableSortByDepth(cs []*component) {
	for i := 1; i < len(cs); i++ {
		j := i
		for j > 0 && cs[j-1].vnode.depth > cs[j].vnode.depth {
			cs[j-1], cs[j] = cs[j], cs[j-1]
			j--
		}
	}
}

// rerenderComponent is the scheduler's re-entry path for a single
// component (spec §4.6): find the closest DOM ancestor, detect the
// namespace, invoke the component body, then reconcile its children
// against its own previously stored children.
func rerenderComponent(c *component) {
	newV := c.vnode
	if newV == nil || c.doc == nil {
		return
	}

	parentDOM := findParentDOM(newV)
	if parentDOM == nil {
		return
	}
	ns := namespaceOfAncestor(newV)
	oldDOM := firstDomNode(newV)

	cq := &commitQueue{}
	rq := &refQueue{}

	if hook := activeOptions.Render; hook != nil {
		hook(newV)
	}

	var result any
	withCurrentComponent(c, func() {
		result = asComponent(newV.Type)(newV.Props)
	})

	reconcileChildren(c.doc, parentDOM, result, newV, newV, ns, cq, oldDOM, rq)

	if len(c.pendingEffects) > 0 || len(c.pendingLayoutEffects) > 0 {
		cq.append(c)
	}
	if c.providerCtx != nil && c.providerValueChanged {
		notifyContextSubscribers(c)
		c.providerValueChanged = false
	}

	if hook := activeOptions.Commit; hook != nil {
		hook(newV, len(cq.components))
	}

	runRefs(rq)
	runLayoutEffects(cq)
	if len(cq.components) > 0 {
		schedulePostPaintEffects(cq)
	}
}

// Flush synchronously drains any pending render queue, for deterministic
// tests that don't want to wait on the microtask goroutine (original
// public-surface supplement, SPEC_FULL §SUPPLEMENTED FEATURES).
func Flush() {
	for {
		sched.mu.Lock()
		empty := len(sched.queue) == 0
		sched.mu.Unlock()
		if empty {
			return
		}
		drain()
	}
}

// Act runs fn and then flushes any renders it triggered, mirroring the
// well-known testing helper of the same name (SPEC_FULL
// §SUPPLEMENTED FEATURES).
func Act(fn func()) {
	fn()
	Flush()
}
