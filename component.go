package lumen

import (
	"sync"

	"github.com/lumenjs/lumen/dom"
)

// hookSlot is the opaque per-hook record described in spec §3: an
// initial flag, the current value, a stable setter/dispatcher, the last
// argument (dependency) list, a pending callback, and a cleanup thunk.
// There is no separate pending argument list: effect hooks record their
// dependency list during render. Not every hook uses every field; see hooks.go for which
// fields each hook kind reads and writes.
type hookSlot struct {
	initialized bool
	value       any
	setter      any // func(any) for useState, func(action any) for useReducer

	lastArgs    []any
	hasLastArgs bool

	pendingCallback any // the effect/reducer function captured this render
	cleanup         func()

	// subscribe identity for useSyncExternalStore's effect slot.
	subscribeIdentity any
}

// component is the per-instance hook store created the first time a
// function vnode is diffed, and reused while the vnode's type identity
// and sibling position+key match the previous vnode's (spec §3).
type component struct {
	mu sync.Mutex

	props Props
	vnode *VNode
	name  string
	doc   dom.Document // the document this instance was last diffed against

	hooks     []*hookSlot
	hookIndex int

	pendingEffects       []*hookSlot
	pendingLayoutEffects []*hookSlot

	// contextSubscriptions is the set of provider component instances this
	// component is currently subscribed to (spec §3's "contextSubscriptions:
	// set of providers this component is currently subscribed to").
	contextSubscriptions map[*component]bool

	// Provider bookkeeping (spec §4.4 "Context providers", §4.8). Only
	// populated for component instances whose type is a Context's
	// Provider function.
	providerCtx          *Context
	providerValue        any
	providerValueChanged bool
	subscribers          map[*component]bool
}

// currentComponent is the process-wide single register hooks consult
// (spec §5): meaningful only during synchronous execution of a component
// function, set and cleared by the diff engine and scheduler around the
// call.
var currentComponent *component

// withCurrentComponent runs fn with c installed as the current component,
// clearing the register on every exit path (including a panic) per the
// design note in spec §9 ("ensure the slot is cleared on every exit path").
func withCurrentComponent(c *component, fn func()) {
	prev := currentComponent
	currentComponent = c
	c.hookIndex = 0
	defer func() {
		currentComponent = prev
	}()
	fn()
}

// nextSlot returns the hook slot at the current position, creating it if
// this is its first appearance, and advances the position (spec §3:
// "index into hooks.list is positional").
func (c *component) nextSlot() *hookSlot {
	idx := c.hookIndex
	c.hookIndex++
	if idx < len(c.hooks) {
		return c.hooks[idx]
	}
	slot := &hookSlot{}
	c.hooks = append(c.hooks, slot)
	return slot
}

// requireCurrentComponent returns the current component or logs a
// contract violation and returns nil (spec §7: contract violations are
// reported via a diagnostic log; recovery not attempted).
func requireCurrentComponent(hookName string) *component {
	if currentComponent == nil {
		logContractViolation("E101", "", hookName)
		return nil
	}
	return currentComponent
}
