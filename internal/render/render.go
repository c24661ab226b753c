// Package render defines the host-neutral node tree produced by components
// and the Renderer contract implemented by each host.
//
// Components never talk to a host directly: they build a Node whose Style is
// a resolved style.Map and leave translation to the renderer chosen for the
// build target (see package platform).
package render

import "github.com/alexisbeaulieu97/woosign/pkg/style"

// Node is one element of a rendered component.
type Node struct {
	// Tag is the element name on the web host (button, span, div, ...).
	Tag string
	// Role names the component part (container, label, thumb, ...).
	Role string
	// Text is the node's own text content, rendered before its children.
	Text     string
	Attrs    map[string]string
	Style    style.Map
	Children []Node
}

// Renderer translates a node tree into host output.
type Renderer interface {
	Name() string
	Render(Node) string
}

// Walk calls fn for n and every descendant, depth first.
func Walk(n Node, fn func(Node)) {
	fn(n)
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Find returns the first node in n whose Role matches.
func Find(n Node, role string) (Node, bool) {
	if n.Role == role {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := Find(child, role); ok {
			return found, true
		}
	}
	return Node{}, false
}
