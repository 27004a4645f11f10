package bower

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Registry is the flattened, paint-ordered list of every node of a composed
// tree. It is built once per run and only read afterwards; the tree's child
// lists are consumed while it is built.
type Registry struct {
	nodes   []*Node
	sortBuf []*Node
	cursor  Vec2
}

// NewRegistry initializes backend resources for root and all its descendants,
// flattens the tree, sorts it by descending depth and assigns identities.
// Panics if root is nil or has been composed into another node.
func NewRegistry(root *Node, surf Surface) *Registry {
	if root == nil {
		panic("bower: cannot register nil root")
	}
	if root.composed {
		panic(fmt.Sprintf("bower: root %s is composed into another node", root))
	}
	if root.ID >= 0 {
		panic(fmt.Sprintf("bower: root %s is already registered", root))
	}

	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	root.initResources(surf)
	nodes := collectAndInit(root, surf)
	nodes = append(nodes, root)

	r := &Registry{nodes: nodes}
	r.mergeSort()
	r.assignIDs()

	if globalDebug {
		logger.Debug("registry built", "nodes", len(r.nodes), "elapsed", time.Since(t0))
	}
	return r
}

// collectAndInit initializes every descendant of n depth-first in document
// order and returns them in that order. n itself is not included. Children
// are moved out of their parents, so a second call on the same tree returns
// nothing and no node is initialized twice.
func collectAndInit(n *Node, surf Surface) []*Node {
	return appendDescendants(nil, n, surf)
}

func appendDescendants(buf []*Node, n *Node, surf Surface) []*Node {
	children := n.children
	n.children = nil
	for _, child := range children {
		child.initResources(surf)
		buf = append(buf, child)
		buf = appendDescendants(buf, child, surf)
	}
	return buf
}

// assignIDs stamps each node with its index in paint order.
func (r *Registry) assignIDs() {
	for i, n := range r.nodes {
		n.ID = i
	}
}

// --- Accessors ---

// Nodes returns the nodes in paint order (farthest first). The returned slice
// MUST NOT be mutated by the caller.
func (r *Registry) Nodes() []*Node {
	return r.nodes
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// NodeByID returns the node with the given identity, or nil if out of range.
func (r *Registry) NodeByID(id int) *Node {
	if id < 0 || id >= len(r.nodes) {
		return nil
	}
	return r.nodes[id]
}

// FindByName returns the first node in paint order with the given name.
func (r *Registry) FindByName(name string) *Node {
	for _, n := range r.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// --- Frame hooks ---

// Prepare runs every node's per-frame preparation, rebuilding
// resolution-dependent resources when surf differs from the previous frame.
// All nodes are prepared even if some fail; the errors are joined.
func (r *Registry) Prepare(surf Surface) error {
	var errs []error
	for _, n := range r.nodes {
		if err := n.prepareResources(surf); err != nil {
			errs = append(errs, fmt.Errorf("prepare %s: %w", n, err))
		}
	}
	return errors.Join(errs...)
}

// Render draws every node onto dst in paint order (painter's algorithm).
func (r *Registry) Render(dst *ebiten.Image, surf Surface) {
	for _, n := range r.nodes {
		n.renderResources(dst, surf)
	}
}

// Clean trims per-frame resources after the frame has been presented.
func (r *Registry) Clean() {
	for _, n := range r.nodes {
		n.cleanResources()
	}
}

// --- Merge sort ---

// nodeOrdersBefore returns true if a should paint before or at the same
// position as b. Using >= keeps equal depths in flattening order.
func nodeOrdersBefore(a, b *Node) bool {
	return a.depth >= b.depth
}

// mergeSort sorts r.nodes in-place by descending depth using r.sortBuf as
// scratch space. Bottom-up and stable.
func (r *Registry) mergeSort() {
	n := len(r.nodes)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]*Node, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.nodes
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.nodes, r.sortBuf)
	}
	clear(r.sortBuf)
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []*Node, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if nodeOrdersBefore(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
