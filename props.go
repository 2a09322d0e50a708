package lumen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/lumenjs/lumen/dom"
)

// unitlessStyleProps are CSS properties whose numeric values are written
// verbatim instead of gaining a "px" suffix (spec §4.2).
var unitlessStyleProps = map[string]bool{
	"animationIterationCount": true,
	"columnCount":             true,
	"fillOpacity":             true,
	"flexGrow":                true,
	"flexShrink":              true,
	"fontWeight":              true,
	"gridColumn":              true,
	"gridRow":                 true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"strokeOpacity":           true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// eventListeners is the side table mapping a live element to its
// element-local handler map, the way spec §9 suggests for hosts whose
// node type cannot carry arbitrary fields: "a side-table mapping element
// handle → per-event handler mapping." Rebinding a handler is a map
// mutation only, never an AddEventListener/RemoveEventListener call
// (spec invariant 11, §4.2).
var (
	eventListenersMu sync.Mutex
	eventListeners   = map[dom.Node]map[string]any{}
)

func handlerMapFor(el dom.Element) map[string]any {
	eventListenersMu.Lock()
	defer eventListenersMu.Unlock()
	m, ok := eventListeners[el]
	if !ok {
		m = map[string]any{}
		eventListeners[el] = m
	}
	return m
}

func dropHandlerMap(el dom.Element) {
	eventListenersMu.Lock()
	defer eventListenersMu.Unlock()
	delete(eventListeners, el)
}

// isEventPropName reports whether name is an event-handler prop: "on"
// followed by an uppercase letter (spec §4.2).
func isEventPropName(name string) bool {
	if len(name) < 3 || !strings.HasPrefix(name, "on") {
		return false
	}
	c := name[2]
	return c >= 'A' && c <= 'Z'
}

func eventNameFromProp(name string) string {
	return strings.ToLower(name[2:])
}

// invokeHandler calls a handler value of either func(dom.Event) or
// func() shape; anything else is a structural anomaly and is skipped.
func invokeHandler(h any, ev dom.Event) {
	switch fn := h.(type) {
	case func(dom.Event):
		fn(ev)
	case func():
		fn()
	case nil:
	default:
		logStructuralAnomaly("E201", "event-handler", fmt.Sprintf("unsupported handler type %T", h))
	}
}

func bindDelegatedListener(el dom.Element, eventName string) {
	el.AddEventListener(eventName, func(ev dom.Event) {
		eventListenersMu.Lock()
		m := eventListeners[el]
		var h any
		if m != nil {
			h = m[eventName]
		}
		eventListenersMu.Unlock()
		invokeHandler(h, ev)
	})
}

// applyProps is the property writer (spec §4.2, C3): it removes props
// present in old but absent in new, then applies props in new that
// differ. In the default namespace, value/checked are always written
// (even unchanged) so that an externally mutated control is overwritten
// on the next render; under SVG they get no such carve-out and route
// through the same attribute setter as everything else.
func applyProps(el dom.Element, next, prev Props, ns dom.Namespace) {
	for name := range prev {
		if isReservedPropName(name) {
			continue
		}
		if _, stillPresent := next[name]; stillPresent {
			continue
		}
		removeProp(el, name, prev[name], ns)
	}

	for name, value := range next {
		if isReservedPropName(name) {
			continue
		}
		prevValue, existed := prev[name]
		isControlledAlways := ns == "" && (name == "value" || name == "checked")
		if existed && propEqual(prevValue, value) && !isControlledAlways {
			continue
		}
		setProp(el, name, value, prevValue, ns)
	}

	// defaultValue/defaultChecked are write-once at creation (original
	// source supplement, SPEC_FULL §SUPPLEMENTED FEATURES #6): apply
	// only when there was no previous props map at all (first mount).
	if prev == nil {
		if dv, ok := next["defaultValue"]; ok {
			el.SetProperty("value", dv)
		}
		if dc, ok := next["defaultChecked"]; ok {
			el.SetProperty("checked", dc)
		}
	}
}

func isReservedPropName(name string) bool {
	switch name {
	case "children", "key", "ref", "defaultValue", "defaultChecked":
		return true
	}
	return false
}

func removeProp(el dom.Element, name string, oldValue any, ns dom.Namespace) {
	switch {
	case name == "style":
		el.SetAttribute("style", "")
	case name == "dangerouslySetInnerHTML":
		el.SetInnerHTML("")
	case isEventPropName(name):
		eventName := eventNameFromProp(name)
		el.RemoveEventListener(eventName)
		m := handlerMapFor(el)
		delete(m, eventName)
	case ns == "" && (name == "value" || name == "checked"):
		el.SetProperty(name, nil)
	default:
		el.RemoveAttribute(domAttrName(name, ns))
	}
}

func setProp(el dom.Element, name string, value, oldValue any, ns dom.Namespace) {
	switch {
	case name == "style":
		applyStyle(el, value, oldValue)
	case name == "dangerouslySetInnerHTML":
		if m, ok := value.(map[string]any); ok {
			el.SetInnerHTML(fmt.Sprintf("%v", m["__html"]))
		} else {
			el.SetInnerHTML(fmt.Sprintf("%v", value))
		}
	case isEventPropName(name):
		eventName := eventNameFromProp(name)
		m := handlerMapFor(el)
		_, hadListener := m[eventName]
		m[eventName] = value
		if !hadListener {
			bindDelegatedListener(el, eventName)
		}
	case ns == "" && (name == "value" || name == "checked"):
		el.SetProperty(name, value)
	default:
		setAttrLike(el, domAttrName(name, ns), value, ns)
	}
}

// domAttrName applies the className→class / htmlFor→for rename that
// applies in both namespaces (spec §4.2).
func domAttrName(name string, ns dom.Namespace) string {
	switch name {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	default:
		return name
	}
}

// setAttrLike implements the boolean/null coercion rules shared by both
// namespaces: null/false removes the attribute, true sets it to the
// empty string, anything else is stringified (spec §4.2).
func setAttrLike(el dom.Element, name string, value any, ns dom.Namespace) {
	switch v := value.(type) {
	case nil:
		el.RemoveAttribute(name)
	case bool:
		if !v {
			el.RemoveAttribute(name)
			return
		}
		el.SetAttribute(name, "")
	default:
		el.SetAttribute(name, stringifyAttr(value))
	}
}

func stringifyAttr(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// applyStyle implements the style diffing rules (spec §4.2): a string
// value is assigned verbatim as cssText; a map value is diffed key by
// key, with numeric values gaining a "px" suffix unless the property is
// unitless, and a leading "-" marking a CSS custom property.
func applyStyle(el dom.Element, next, prev any) {
	nextMap, nextIsMap := next.(map[string]string)
	nextMapAny, nextIsMapAny := next.(map[string]any)
	prevMap, prevWasMap := prev.(map[string]string)
	prevMapAny, prevWasMapAny := prev.(map[string]any)

	if s, ok := next.(string); ok {
		el.SetStyleCSSText(s)
		return
	}

	if (prevWasMap || prevWasMapAny) && !nextIsMap && !nextIsMapAny {
		// Transitioning map -> a non-map, non-string value clears cssText
		// first (a string value has already replaced cssText above).
		el.SetStyleCSSText("")
	}

	get := func(m map[string]string, ma map[string]any, k string) (string, bool) {
		if m != nil {
			v, ok := m[k]
			return v, ok
		}
		if ma != nil {
			v, ok := ma[k]
			if !ok {
				return "", false
			}
			return styleValueToString(k, v), true
		}
		return "", false
	}

	keys := map[string]bool{}
	for k := range prevMap {
		keys[k] = true
	}
	for k := range prevMapAny {
		keys[k] = true
	}
	for k := range nextMap {
		keys[k] = true
	}
	for k := range nextMapAny {
		keys[k] = true
	}

	for name := range keys {
		oldVal, hadOld := get(prevMap, prevMapAny, name)
		newVal, hasNew := get(nextMap, nextMapAny, name)
		if !hasNew {
			if hadOld {
				clearStyleProperty(el, name)
			}
			continue
		}
		if hadOld && oldVal == newVal {
			continue
		}
		setStyleProperty(el, name, newVal)
	}
}

func styleValueToString(name string, v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return appendPxIfNeeded(name, strconv.Itoa(val))
	case float64:
		return appendPxIfNeeded(name, strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return fmt.Sprintf("%v", val)
	}
}

func appendPxIfNeeded(name, numeric string) string {
	if unitlessStyleProps[name] {
		return numeric
	}
	return numeric + "px"
}

func setStyleProperty(el dom.Element, name, value string) {
	// A leading "-" marks a CSS custom property; the dom.Element
	// implementation is responsible for routing it through the
	// custom-property setter if its host distinguishes the two, per
	// spec §4.2. This engine always calls the same method and lets the
	// host decide.
	el.SetStyleProperty(name, value)
}

func clearStyleProperty(el dom.Element, name string) {
	el.RemoveStyleProperty(name)
}

// propEqual compares two prop values for the property-writer's diff
// (spec §4.2's "differ" check).
func propEqual(a, b any) bool {
	return SameValue(a, b)
}
