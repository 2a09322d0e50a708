package errors

// ErrorTemplate is a registered diagnostic template.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps diagnostic codes to their templates. Codes in the E1xx
// range are contract violations (spec §7); codes in the E2xx range are
// structural anomalies.
var registry = map[string]ErrorTemplate{
	"E101": {
		Category: CategoryContract,
		Message:  "hook called outside render",
		Detail:   "Hooks read the current component from a process-wide register that the diff engine and scheduler set only while a component body is executing (spec §5). Calling a hook from a goroutine, an event handler, or after render has returned has no current component to attach to.",
	},
	"E102": {
		Category: CategoryContract,
		Message:  "hook order changed between renders",
		Detail:   "Hook slots are positional: a component must call the same hooks in the same order on every render (spec §3, hook slot lifecycle). A hook call guarded by a conditional or a loop that runs a different number of times breaks this invariant.",
	},
	"E103": {
		Category: CategoryContract,
		Message:  "portal target is not a usable container",
		Detail:   "createPortal requires a live container node; a nil or non-element container cannot receive child DOM.",
	},
	"E201": {
		Category: CategoryStructural,
		Message:  "unknown vnode type",
		Detail:   "The vnode's type was neither a string tag, the text sentinel, a function, the Fragment marker, nor the portal sentinel.",
	},
	"E202": {
		Category: CategoryStructural,
		Message:  "circular context provider ancestry",
		Detail:   "A context lookup walked the parent chain back to a vnode already visited in the same walk.",
	},
}
