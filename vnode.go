package lumen

import (
	"reflect"
	"runtime"

	"github.com/lumenjs/lumen/dom"
)

// Kind discriminates the node forms the engine understands (spec §2, C1):
// text, intrinsic element, function component, and portal. Fragment is not
// its own Kind — it is an ordinary KindComponent whose function is Fragment.
type Kind uint8

const (
	KindText Kind = iota
	KindElement
	KindComponent
	KindPortal
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	case KindPortal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// Component is a plain function that turns props into a render result.
// The result is normalized with the same flattening rules as H's children
// (spec §4.3 Phase A): nil/bool are dropped, nested slices are spliced,
// strings/numbers become text, and *VNode values pass through.
type Component func(props Props) any

// Props holds attributes, event handlers, and (reserved) the "children"
// entry carrying the already-normalized child payload.
type Props map[string]any

// Child returns the normalized children payload stored under the
// reserved "children" key, or nil if the node has none.
func (p Props) Child() any {
	if p == nil {
		return nil
	}
	return p["children"]
}

// RefObject is the single-slot container CreateRef returns. A ref may
// also be a plain func(any) callback; VNode.Ref holds either.
type RefObject struct {
	Current any
}

// CreateRef returns a new empty ref object (spec §6).
func CreateRef() *RefObject {
	return &RefObject{}
}

var portalSentinel = struct{ portal byte }{}

// Fragment groups children without introducing a wrapping element. It is
// an ordinary component whose render result is simply its children
// (spec §3: "the Fragment function (a component whose render is
// children)").
func Fragment(props Props) any {
	return props.Child()
}

// VNode describes a desired node and carries the engine's own
// reconciliation bookkeeping (spec §3). Callers construct these only
// through H, Fragment/component calls, or createPortal; the reconciliation
// slots below are never set by calling code.
type VNode struct {
	// Type is one of: nil (text; Text holds the payload), a string (an
	// intrinsic tag), a Component function (including Fragment), or the
	// portal sentinel.
	Type any
	Kind Kind

	Props Props
	Key   any
	Ref   any // *RefObject or func(any)

	// Text is the stringified payload for a KindText vnode.
	Text string

	// Reconciliation slots, assigned only during diff.
	dom       dom.Node
	children  []*VNode
	component *component
	parent    *VNode
	depth     int
	index     int
}

// IsValidElement reports whether x is a vnode produced by this engine's
// factory (spec: original_source supplement).
func IsValidElement(x any) bool {
	_, ok := x.(*VNode)
	return ok
}

// H constructs a vnode the way JSX/template factories are expected to
// call into this engine (spec §4.1). typ is nil for text (not normally
// called directly; use plain strings/numbers as children instead), a tag
// string for an intrinsic element, or a Component function.
func H(typ any, props Props, children ...any) *VNode {
	finalProps := Props{}
	var key any
	var ref any
	for k, v := range props {
		switch k {
		case "key":
			key = v
		case "ref":
			ref = v
		default:
			finalProps[k] = v
		}
	}

	flat := flattenChildren(children)
	switch len(flat) {
	case 0:
		// leave props["children"] absent
	case 1:
		finalProps["children"] = flat[0]
	default:
		finalProps["children"] = flat
	}

	v := &VNode{Type: typ, Props: finalProps, Key: key, Ref: ref, Kind: kindOf(typ)}
	if hook := activeOptions.VNode; hook != nil {
		hook(v)
	}
	return v
}

// kindOf derives the discriminant Kind from a raw type value.
func kindOf(typ any) Kind {
	switch typ.(type) {
	case nil:
		return KindText
	case string:
		return KindElement
	default:
		if typ == portalSentinel {
			return KindPortal
		}
		return KindComponent
	}
}

// asComponent adapts typ to a callable Component regardless of whether the
// caller declared it as the named Component type or as a plain
// func(Props) any — both have the same underlying function signature, but
// a direct type assertion to Component only succeeds for the former. Using
// reflect.Value.Call here lets every component function work the same way
// it would if Go allowed structural typing for funcs.
func asComponent(typ any) Component {
	if fn, ok := typ.(Component); ok {
		return fn
	}
	rv := reflect.ValueOf(typ)
	if rv.Kind() != reflect.Func {
		return nil
	}
	return func(props Props) any {
		out := rv.Call([]reflect.Value{reflect.ValueOf(props)})
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	}
}

// flattenChildren implements the factory's variadic-child normalization
// (spec §4.1 step 3): drop nil/bool, splice nested sequences, keep
// strings, numbers, and vnodes.
func flattenChildren(children []any) []any {
	var out []any
	for _, c := range children {
		out = appendFlattened(out, c)
	}
	return out
}

func appendFlattened(out []any, c any) []any {
	switch v := c.(type) {
	case nil:
		return out
	case bool:
		return out
	case []any:
		for _, e := range v {
			out = appendFlattened(out, e)
		}
		return out
	case []*VNode:
		for _, e := range v {
			out = appendFlattened(out, e)
		}
		return out
	default:
		return append(out, c)
	}
}

// sameType reports whether two vnodes share reconciliation identity
// (spec §4.3 Phase B, §4.4 step 3): same Kind, and for elements the same
// tag, for components the same underlying function.
func sameType(a, b *VNode) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindText:
		return true
	case KindElement:
		return a.Type.(string) == b.Type.(string)
	case KindPortal:
		return true
	case KindComponent:
		return componentIdentity(a.Type) == componentIdentity(b.Type)
	default:
		return false
	}
}

// componentIdentity returns a comparable identity for a Component value.
// Go function values are not comparable with ==, so the engine compares
// the underlying code pointer instead — the same trick used to compare
// "is this the same render function" in every Go vdom-style library that
// lets a plain func stand in for a component type.
func componentIdentity(typ any) uintptr {
	rv := reflect.ValueOf(typ)
	if rv.Kind() != reflect.Func {
		return 0
	}
	return rv.Pointer()
}

// componentName returns a readable name for diagnostics and metrics
// labels (devtools, §6's dev-tools consumed surface).
func componentName(typ any) string {
	rv := reflect.ValueOf(typ)
	if rv.Kind() != reflect.Func {
		return "?"
	}
	name := rv.String()
	if pc := rv.Pointer(); pc != 0 {
		if rf := runtime.FuncForPC(pc); rf != nil {
			name = rf.Name()
		}
	}
	return name
}
