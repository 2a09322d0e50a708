package lumen

// ComponentLabel returns a readable name for v's component type, or
// "text"/"element:<tag>"/"portal"/"?" for the other vnode kinds — the
// same identifier devtools and metrics use to label a render (spec §6's
// dev-tools consumed surface).
func ComponentLabel(v *VNode) string {
	if v == nil {
		return "?"
	}
	switch v.Kind {
	case KindText:
		return "text"
	case KindElement:
		return "element:" + v.Type.(string)
	case KindPortal:
		return "portal"
	case KindComponent:
		return componentName(v.Type)
	default:
		return "?"
	}
}

// ToChildArray flattens a children payload (as stored under props’
// reserved "children" key) into a plain slice of vnodes, converting bare
// strings/numbers into text vnodes the same way the child reconciler does
// (SPEC_FULL §SUPPLEMENTED FEATURES: recovered public-surface helper).
func ToChildArray(children any) []*VNode {
	return normalizeChildren(toRawChildSlice(children))
}

// CloneElement returns a new vnode of the same type as original, with
// extraProps merged over its existing props (extraProps values win on
// conflict) and, if any children are given, those replacing the
// original's children. key and ref are preserved unless extraProps
// supplies new ones (SPEC_FULL §SUPPLEMENTED FEATURES).
func CloneElement(original *VNode, extraProps Props, children ...any) *VNode {
	merged := Props{}
	for k, v := range original.Props {
		merged[k] = v
	}
	key := original.Key
	ref := original.Ref
	for k, v := range extraProps {
		switch k {
		case "key":
			key = v
		case "ref":
			ref = v
		default:
			merged[k] = v
		}
	}

	if len(children) > 0 {
		flat := flattenChildren(children)
		switch len(flat) {
		case 0:
			delete(merged, "children")
		case 1:
			merged["children"] = flat[0]
		default:
			merged["children"] = flat
		}
	}

	return &VNode{Type: original.Type, Kind: original.Kind, Props: merged, Key: key, Ref: ref}
}
