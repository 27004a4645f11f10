package bower

import "fmt"

// WithChild attaches child to n and returns n. The child's subtree is moved
// into n's coordinate space: each position and size, expressed as fractions
// of n's box, is folded into n's box, and depths are shifted so the child
// sits exactly one step in front of n.
//
// A child may be attached once. Panics if child is nil, already composed, or
// n itself, and if n has already been registered.
func (n *Node) WithChild(child *Node) *Node {
	if child == nil {
		panic("bower: cannot add nil child")
	}
	if child == n {
		panic("bower: node cannot be its own child")
	}
	if n.ID >= 0 {
		panic(fmt.Sprintf("bower: WithChild on registered node %s", n))
	}
	if child.composed {
		panic(fmt.Sprintf("bower: child %s is already composed", child))
	}
	if child.ID >= 0 {
		panic(fmt.Sprintf("bower: child %s is already registered", child))
	}

	shiftDepth(child, n.depth-1-child.depth)
	foldInto(child, n.Box())
	child.composed = true
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	return n
}

// foldInto maps n and its descendants from the unit square of parent into
// parent's space. Descendants were already folded into n's local box when they
// were attached, so the same map applies to the whole subtree and each edge is
// folded exactly once.
func foldInto(n *Node, parent Box) {
	n.position = Vec2{
		X: parent.X + n.position.X*parent.Width,
		Y: parent.Y + n.position.Y*parent.Height,
	}
	n.size = Vec2{
		X: n.size.X * parent.Width,
		Y: n.size.Y * parent.Height,
	}
	n.mesh.dirty = true
	for _, child := range n.children {
		foldInto(child, parent)
	}
}

// shiftDepth adds delta to the depth of n and all its descendants.
func shiftDepth(n *Node, delta int) {
	if delta == 0 {
		return
	}
	n.depth += delta
	for _, child := range n.children {
		shiftDepth(child, delta)
	}
}
