// Package fakedom is an in-memory implementation of the dom package's host
// boundary, used by this module's own tests and by host code that wants a
// deterministic document tree without a browser. Its shape follows the
// teacher's own pattern of giving the reconciler a minimal recordable tree
// to diff against in tests (see pkg/vdom's *_test.go files and
// pkg/vtest's synchronous test harness), generalized from an HID-keyed
// patch target to the direct dom.Node interface this spec requires.
package fakedom

import (
	"fmt"
	"strings"

	"github.com/lumenjs/lumen/dom"
)

// Node is the concrete tree node backing every dom.Element / dom.Text
// value this package hands out. It is always used behind a pointer, which
// is what makes it both a dom.Node and a valid side-table map key.
type Node struct {
	isText bool
	tag    string
	ns     dom.Namespace
	text   string

	attrs     map[string]string
	props     map[string]any
	style     map[string]string
	innerHTML string

	listeners map[string]func(dom.Event)

	parent   *Node
	children []*Node
}

var _ dom.Element = (*Node)(nil)
var _ dom.Text = (*Node)(nil)

// NewElement constructs a detached element node, mainly for tests that
// want a container without going through a Document.
func NewElement(tag string) *Node {
	return &Node{tag: tag, attrs: map[string]string{}, props: map[string]any{}}
}

func (n *Node) ParentNode() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) NextSibling() dom.Node {
	if n.parent == nil {
		return nil
	}
	for i, c := range n.parent.children {
		if c == n {
			if i+1 < len(n.parent.children) {
				return n.parent.children[i+1]
			}
			return nil
		}
	}
	return nil
}

func (n *Node) FirstChild() dom.Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) TagName() string       { return n.tag }
func (n *Node) Namespace() dom.Namespace { return n.ns }

func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	n.attrs[name] = value
}

func (n *Node) RemoveAttribute(name string) { delete(n.attrs, name) }

func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) SetProperty(name string, value any) {
	if n.props == nil {
		n.props = map[string]any{}
	}
	n.props[name] = value
}

func (n *Node) GetProperty(name string) any { return n.props[name] }

func (n *Node) SetStyleProperty(name, value string) {
	if n.style == nil {
		n.style = map[string]string{}
	}
	n.style[name] = value
}

func (n *Node) RemoveStyleProperty(name string) { delete(n.style, name) }

func (n *Node) SetStyleCSSText(css string) {
	n.style = map[string]string{"cssText": css}
}

// Style returns a copy of the element's current inline style map, for
// test assertions.
func (n *Node) Style() map[string]string {
	out := make(map[string]string, len(n.style))
	for k, v := range n.style {
		out[k] = v
	}
	return out
}

func (n *Node) SetInnerHTML(html string) { n.innerHTML = html }
func (n *Node) InnerHTML() string        { return n.innerHTML }

func (n *Node) AddEventListener(eventName string, fn func(dom.Event)) {
	if n.listeners == nil {
		n.listeners = map[string]func(dom.Event){}
	}
	n.listeners[eventName] = fn
}

func (n *Node) RemoveEventListener(eventName string) { delete(n.listeners, eventName) }

// Dispatch simulates the host firing eventName on this node, for tests
// that exercise a full click-and-reconcile cycle (spec §8, scenario S1).
func (n *Node) Dispatch(eventName string, native any) {
	if fn, ok := n.listeners[eventName]; ok {
		fn(dom.Event{Type: eventName, Target: n, Native: native})
	}
}

func (n *Node) Focus() {}

func (n *Node) NodeValue() string      { return n.text }
func (n *Node) SetNodeValue(v string)  { n.text = v }

// Children returns a copy of the node's current children, in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// TextContent concatenates all descendant text for assertions.
func (n *Node) TextContent() string {
	if n.isText {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

func (n *Node) String() string {
	if n.isText {
		return fmt.Sprintf("#text(%q)", n.text)
	}
	return fmt.Sprintf("<%s>", n.tag)
}

// Document is the dom.Document implementation backing this fake tree. It
// also records every structural mutation so tests can assert exact
// operation counts (spec §8's keyed-stability and batching properties).
type Document struct {
	Log []string
}

var _ dom.Document = (*Document)(nil)

func (d *Document) CreateElement(tag string, ns dom.Namespace) dom.Element {
	d.Log = append(d.Log, "create:"+tag)
	return &Node{tag: tag, ns: ns, attrs: map[string]string{}, props: map[string]any{}}
}

func (d *Document) CreateTextNode(text string) dom.Text {
	d.Log = append(d.Log, "createText")
	return &Node{isText: true, text: text}
}

func (d *Document) AppendChild(parent, child dom.Node) {
	d.InsertBefore(parent, child, nil)
}

func (d *Document) InsertBefore(parent dom.Node, newNode, reference dom.Node) {
	p := parent.(*Node)
	c := newNode.(*Node)

	d.detach(c)
	c.parent = p

	if reference == nil {
		p.children = append(p.children, c)
		d.Log = append(d.Log, "insert:"+c.String()+"@end")
		return
	}

	ref := reference.(*Node)
	for i, existing := range p.children {
		if existing == ref {
			p.children = append(p.children, nil)
			copy(p.children[i+1:], p.children[i:])
			p.children[i] = c
			d.Log = append(d.Log, "insert:"+c.String()+"@before:"+ref.String())
			return
		}
	}
	// Reference not found among current children: append, matching a
	// host that tolerates a stale reference the way append() would.
	p.children = append(p.children, c)
	d.Log = append(d.Log, "insert:"+c.String()+"@end-fallback")
}

func (d *Document) RemoveChild(parent, child dom.Node) {
	d.detach(child.(*Node))
	d.Log = append(d.Log, "remove:"+child.(*Node).String())
}

func (d *Document) detach(c *Node) {
	if c.parent == nil {
		return
	}
	p := c.parent
	for i, existing := range p.children {
		if existing == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	c.parent = nil
}
