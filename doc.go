// Package lumen is a virtual-DOM reconciler and hook runtime: it takes a
// declarative description of a tree built with H/Fragment/createPortal,
// diffs it against the tree it produced last time, and mutates a live
// dom.Document to match with the minimum necessary operations. A
// companion state-and-effect model ("hooks") lets plain functions
// participate in this cycle while keeping per-instance memory across
// re-renders.
//
// The package is organized the way the algorithm it implements is
// organized rather than by Go convention of one type per file:
//
//   - vnode.go       — the VNode model and factory (H, Fragment, refs)
//   - options.go     — the process-wide Option-hook registry
//   - props.go       — the property writer and event delegation
//   - children.go    — keyed/unkeyed child reconciliation
//   - diff.go        — the per-node diff dispatch
//   - portal.go      — the portal vnode kind
//   - unmount.go      — recursive teardown
//   - component.go   — the per-instance hook store record
//   - hooks.go       — useState/useReducer/.../useId
//   - scheduler.go   — the microtask-batched re-render queue
//   - commit.go      — refs, layout effects, post-paint effects
//   - context.go     — createContext / Provider / useContext
//   - render.go      — the public Render/Hydrate entry point
//   - helpers.go     — ComponentLabel, ToChildArray, CloneElement
//
// Non-goals: server-side rendering, suspense/concurrent scheduling,
// class-based components with lifecycle methods, time-slicing,
// asynchronous rendering, strict-mode double-invocation, and hydration
// beyond "treat as a fresh render."
package lumen
