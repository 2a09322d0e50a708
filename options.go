package lumen

// Options is the process-wide table of optional lifecycle hooks external
// observers (devtools, metrics, tracing, hot-reload) consult (spec §2 C2,
// §6). The engine itself has no knowledge of what a hook does beyond
// calling it when present.
type Options struct {
	// VNode fires after the factory constructs a new vnode.
	VNode func(v *VNode)
	// Diff fires at the beginning of each node diff.
	Diff func(v *VNode)
	// Render fires just before a component body is invoked.
	Render func(v *VNode)
	// Diffed fires at the end of each node diff.
	Diffed func(v *VNode)
	// Commit fires at the end of a render entry, after the commit queue
	// has been built and before effects run. pendingEffects is the number
	// of component instances in that queue; the queue itself holds an
	// unexported type, so its size is what the hook table exposes to
	// external consumers (devtools, metrics, tracing).
	Commit func(root *VNode, pendingEffects int)
	// Unmount fires just before a vnode is torn down.
	Unmount func(v *VNode)
	// Root fires before each render-entry diff, announcing the root
	// vnode and its container.
	Root func(v *VNode, container any)
}

// activeOptions is the single registry instance every package-level
// entry point consults. It is a package var rather than a field threaded
// through every call because the engine, like the spec's own note in §9,
// treats it as process-wide; construct a fresh lumen process (separate
// Go test binary or plugin) for isolation between independent trees.
var activeOptions = Options{}

// SetOptions installs the process-wide Option hooks, replacing any
// previous registration. Passing the zero value clears all hooks.
func SetOptions(o Options) {
	activeOptions = o
}

// GetOptions returns the currently installed Option hooks.
func GetOptions() Options {
	return activeOptions
}
