package surface

// Node is an in-memory region. The root returned by NewTree is also a Host.
type Node struct {
	class    string
	style    Style
	text     string
	target   float64
	parent   *Node
	children []*Node
	markers  map[string]any
	animator *Animator
}

// TreeOption configures a tree created by NewTree.
type TreeOption func(*Node)

// WithAnimator routes every AnimateWidth call in the tree through a.
// Without it widths jump to their target immediately.
func WithAnimator(a *Animator) TreeOption {
	return func(n *Node) {
		n.animator = a
	}
}

// NewTree creates an empty root node.
func NewTree(opts ...TreeOption) *Node {
	n := &Node{class: "root"}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Append implements Region.
func (n *Node) Append(class string, style Style) Region {
	return n.appendNode(class, style)
}

func (n *Node) appendNode(class string, style Style) *Node {
	child := &Node{
		class:    class,
		style:    style,
		target:   style.Width,
		parent:   n,
		animator: n.animator,
	}
	n.children = append(n.children, child)
	return child
}

// SetText implements Region.
func (n *Node) SetText(text string) {
	n.text = text
}

// AnimateWidth implements Region.
func (n *Node) AnimateWidth(target float64) {
	n.target = target
	if n.animator == nil {
		n.style.Width = target
		return
	}
	n.animator.track(n, target)
}

// Marker implements Host.
func (n *Node) Marker(key string) (any, bool) {
	v, ok := n.markers[key]
	return v, ok
}

// SetMarker implements Host.
func (n *Node) SetMarker(key string, value any) {
	if n.markers == nil {
		n.markers = make(map[string]any)
	}
	n.markers[key] = value
}

// Class returns the class the node was appended with.
func (n *Node) Class() string { return n.class }

// Style returns the node's current style.
func (n *Node) Style() Style { return n.style }

// Text returns the node's text content.
func (n *Node) Text() string { return n.text }

// Width returns the node's current rendered width.
func (n *Node) Width() float64 { return n.style.Width }

// Target returns the width the node is heading toward.
func (n *Node) Target() float64 { return n.target }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct children in append order.
func (n *Node) Children() []*Node { return n.children }

// Find returns the first node in the subtree (depth first, root excluded)
// with the given class.
func (n *Node) Find(class string) *Node {
	for _, c := range n.children {
		if c.class == class {
			return c
		}
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in the subtree with the given class.
func (n *Node) FindAll(class string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.class == class {
			out = append(out, c)
		}
	})
	return out
}

// Count returns the number of nodes below n.
func (n *Node) Count() int {
	count := 0
	n.walk(func(*Node) { count++ })
	return count
}

func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.children {
		fn(c)
		c.walk(fn)
	}
}

func (n *Node) setWidth(w float64) {
	n.style.Width = w
}
