package lumen

import (
	"reflect"
	"strconv"
	"sync"
)

// UseState returns the current value of a stateful slot and a setter that
// accepts either a new value or an updater func(prev any) any (spec §4.5).
// The setter identity is stable across renders; calling it with a value
// that is SameValue to the current one is a no-op (spec §8 property 12).
func UseState(initial any) (any, func(any)) {
	c := requireCurrentComponent("useState")
	if c == nil {
		return resolveLazyInitial(initial), func(any) {}
	}

	slot := c.nextSlot()
	if !slot.initialized {
		slot.value = resolveLazyInitial(initial)
		slot.initialized = true
		slot.setter = makeStateSetter(c, slot)
	}
	return slot.value, slot.setter.(func(any))
}

func resolveLazyInitial(initial any) any {
	if fn, ok := initial.(func() any); ok {
		return fn()
	}
	return initial
}

func makeStateSetter(c *component, slot *hookSlot) func(any) {
	return func(next any) {
		c.mu.Lock()
		newValue := next
		if fn, ok := next.(func(any) any); ok {
			newValue = fn(slot.value)
		}
		if SameValue(slot.value, newValue) {
			c.mu.Unlock()
			return
		}
		slot.value = newValue
		c.mu.Unlock()
		enqueueRender(c)
	}
}

// UseReducer is UseState with an injected reducer; the reducer reference
// is refreshed every render so a dispatch issued later sees the latest
// closure, but the dispatcher identity never changes (spec §4.5).
func UseReducer(reducer func(state, action any) any, initialArg any, init func(any) any) (any, func(any)) {
	c := requireCurrentComponent("useReducer")
	if c == nil {
		if init != nil {
			return init(initialArg), func(any) {}
		}
		return initialArg, func(any) {}
	}

	slot := c.nextSlot()
	if !slot.initialized {
		if init != nil {
			slot.value = init(initialArg)
		} else {
			slot.value = initialArg
		}
		slot.initialized = true
		slot.setter = makeDispatcher(c, slot)
	}
	slot.pendingCallback = reducer
	return slot.value, slot.setter.(func(any))
}

func makeDispatcher(c *component, slot *hookSlot) func(any) {
	return func(action any) {
		c.mu.Lock()
		reducer, _ := slot.pendingCallback.(func(state, action any) any)
		var newValue any
		if reducer != nil {
			newValue = reducer(slot.value, action)
		}
		changed := !SameValue(slot.value, newValue)
		if changed {
			slot.value = newValue
		}
		c.mu.Unlock()
		if changed {
			enqueueRender(c)
		}
	}
}

// UseRef returns a stable *RefObject for the component's lifetime,
// implemented as a memoized value with an (implicit) empty dependency
// list (spec §4.5).
func UseRef(initial any) *RefObject {
	c := requireCurrentComponent("useRef")
	if c == nil {
		return &RefObject{Current: initial}
	}
	slot := c.nextSlot()
	if !slot.initialized {
		slot.value = &RefObject{Current: initial}
		slot.initialized = true
	}
	return slot.value.(*RefObject)
}

// UseMemo recomputes compute() when deps differ from the previous call
// under SameValue; a nil deps slice means "always re-evaluate" (spec
// §4.5).
func UseMemo(compute func() any, deps []any) any {
	c := requireCurrentComponent("useMemo")
	if c == nil {
		return compute()
	}
	slot := c.nextSlot()
	if !slot.initialized || deps == nil || !sameDeps(slot.lastArgs, deps) {
		slot.value = compute()
		slot.lastArgs = deps
		slot.hasLastArgs = true
		slot.initialized = true
	}
	return slot.value
}

// UseCallback is UseMemo(() => fn, deps) (spec §4.5).
func UseCallback(fn any, deps []any) any {
	return UseMemo(func() any { return fn }, deps)
}

// UseEffect schedules effect to run after paint when deps change (spec
// §4.5, §4.7).
func UseEffect(effect func() func(), deps []any) {
	useEffectImpl("useEffect", effect, deps, false)
}

// UseLayoutEffect schedules effect to run synchronously during commit
// when deps change (spec §4.5, §4.7).
func UseLayoutEffect(effect func() func(), deps []any) {
	useEffectImpl("useLayoutEffect", effect, deps, true)
}

func useEffectImpl(hookName string, effect func() func(), deps []any, layout bool) {
	c := requireCurrentComponent(hookName)
	if c == nil {
		return
	}
	slot := c.nextSlot()
	changed := !slot.initialized || deps == nil || !sameDeps(slot.lastArgs, deps)
	slot.initialized = true
	slot.lastArgs = deps
	slot.hasLastArgs = true
	if !changed {
		return
	}
	slot.pendingCallback = effect

	c.mu.Lock()
	if layout {
		c.pendingLayoutEffects = append(c.pendingLayoutEffects, slot)
	} else {
		c.pendingEffects = append(c.pendingEffects, slot)
	}
	c.mu.Unlock()
}

// UseContext walks the current component's vnode parent chain for the
// nearest Provider of ctx, subscribing to it if found (spec §4.5, §4.8).
func UseContext(ctx *Context) any {
	c := requireCurrentComponent("useContext")
	if c == nil {
		return ctx.defaultValue
	}
	provider := findProvider(ctx, c.vnode)
	if provider == nil {
		return ctx.defaultValue
	}
	subscribeToProvider(provider, c)
	return provider.providerValue
}

// UseSyncExternalStore holds a snapshot in a state slot and resubscribes
// whenever subscribe's identity changes, re-checking for a snapshot missed
// between render and subscription (spec §4.5). getServerSnapshot is not
// used during render, since this engine has no SSR mode; it is read only
// when the hook is called outside render, if it is non-nil.
func UseSyncExternalStore(subscribe func(notify func()) func(), getSnapshot func() any, getServerSnapshot func() any) any {
	c := requireCurrentComponent("useSyncExternalStore")
	if c == nil {
		if getServerSnapshot != nil {
			return getServerSnapshot()
		}
		return getSnapshot()
	}

	slot := c.nextSlot()
	if !slot.initialized {
		slot.value = getSnapshot()
		slot.initialized = true
	}
	setter := makeStateSetter(c, slot)
	slot.setter = setter

	effectSlot := c.nextSlot()
	subscribeIdentity := reflect.ValueOf(subscribe).Pointer()
	if !effectSlot.initialized || effectSlot.subscribeIdentity != subscribeIdentity {
		effectSlot.initialized = true
		effectSlot.subscribeIdentity = subscribeIdentity
		notify := func() { setter(getSnapshot()) }
		effectSlot.pendingCallback = func() func() {
			if latest := getSnapshot(); !SameValue(latest, slot.value) {
				setter(latest)
			}
			return subscribe(notify)
		}
		c.mu.Lock()
		c.pendingEffects = append(c.pendingEffects, effectSlot)
		c.mu.Unlock()
	}

	return slot.value
}

var (
	idMu      sync.Mutex
	idCounter uint64
)

// UseId returns a string stable across re-renders of the same hook slot
// and unique across the process (spec §4.5; §9 Open Question 4 notes
// uniqueness holds only within one engine instance).
func UseId() string {
	c := requireCurrentComponent("useId")
	if c == nil {
		return nextId()
	}
	slot := c.nextSlot()
	if !slot.initialized {
		slot.value = nextId()
		slot.initialized = true
	}
	return slot.value.(string)
}

func nextId() string {
	idMu.Lock()
	idCounter++
	n := idCounter
	idMu.Unlock()
	return ":lumen" + strconv.FormatUint(n, 36) + ":"
}

// UseDebugValue is accepted for API compatibility and does nothing (spec
// §4.5).
func UseDebugValue(value any, formatter func(any) string) {}
