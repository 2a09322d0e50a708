package lumen

// Context carries a default value and a Provider component with a stable
// identity, so every Provider(ctx) call in a tree reconciles against the
// same component type (spec §4.8).
type Context struct {
	defaultValue any
	Provider     Component
}

// CreateContext returns a new context with the given default value
// (spec §6). The returned Provider is a plain component: it returns its
// children prop, while stashing the current value on its component
// instance so diff.go can detect a change and notify subscribers.
func CreateContext(defaultValue any) *Context {
	ctx := &Context{defaultValue: defaultValue}
	ctx.Provider = func(props Props) any {
		if c := requireCurrentComponent("Provider"); c != nil {
			newValue := props["value"]
			switch {
			case c.providerCtx == nil:
				c.providerCtx = ctx
				c.providerValue = newValue
				c.providerValueChanged = false
			case !SameValue(c.providerValue, newValue):
				c.providerValue = newValue
				c.providerValueChanged = true
			default:
				c.providerValueChanged = false
			}
		}
		return props.Child()
	}
	return ctx
}

// findProvider walks the parent chain of startVNode looking for a
// component instance whose providerCtx matches ctx (spec §4.8
// findProvider).
func findProvider(ctx *Context, startVNode *VNode) *component {
	for v := startVNode; v != nil; v = v.parent {
		if v.Kind == KindComponent && v.component != nil && v.component.providerCtx == ctx {
			return v.component
		}
	}
	return nil
}

// subscribeToProvider registers the mutual subscription (spec §4.8).
func subscribeToProvider(provider *component, consumer *component) {
	if provider.subscribers == nil {
		provider.subscribers = map[*component]bool{}
	}
	provider.subscribers[consumer] = true
	if consumer.contextSubscriptions == nil {
		consumer.contextSubscriptions = map[*component]bool{}
	}
	consumer.contextSubscriptions[provider] = true
}

// notifyContextSubscribers enqueues every live subscriber of provider and
// drops subscribers whose vnode has already been unmounted (spec §4.8).
func notifyContextSubscribers(provider *component) {
	for consumer := range provider.subscribers {
		if consumer.vnode == nil {
			delete(provider.subscribers, consumer)
			continue
		}
		enqueueRender(consumer)
	}
}

// cleanupContextSubscriptions removes c from every provider it subscribed
// to (spec §4.7: "then the context subscriptions are removed from all
// providers they pointed at").
func cleanupContextSubscriptions(c *component) {
	for provider := range c.contextSubscriptions {
		delete(provider.subscribers, c)
	}
	c.contextSubscriptions = nil

	// If c was itself a provider, drop every remaining subscriber's
	// back-reference so they don't retain a dead provider.
	for consumer := range c.subscribers {
		delete(consumer.contextSubscriptions, c)
	}
	c.subscribers = nil
}
