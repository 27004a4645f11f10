package bower

import "fmt"

// Node is the fundamental scene graph element. A single flat struct is used for
// all node kinds; kind-specific behavior is selected by switching on Kind.
//
// Geometry is expressed in the parent's unit square until the node is attached
// with WithChild, at which point it is folded into the root's absolute space.
type Node struct {
	// Identity. ID is -1 until the node is placed in a Registry, then equals
	// its index in paint order.
	ID   int
	Name string
	Kind NodeKind

	// Geometry (unit square of the parent until composed, absolute after)
	size     Vec2
	position Vec2
	depth    int

	// Hierarchy
	children []*Node
	composed bool

	// Appearance
	color  Color
	radius float64

	// Per-node click callback (nil by default; clicks on the node are no-ops)
	onClick func(*Context)

	// Kind payloads and backend resources
	text  *textBlock
	image *imageData
	mesh  meshCache
}

// nodeDefaults sets the field values shared by all constructors. New nodes
// fill their parent's box.
func nodeDefaults(n *Node) {
	n.ID = -1
	n.size = Vec2{1, 1}
}

// NewEmpty creates a container node with no visual representation.
func NewEmpty() *Node {
	n := &Node{Kind: KindEmpty}
	nodeDefaults(n)
	return n
}

// NewRect creates a filled rectangle node, blue unless recolored.
func NewRect() *Node {
	n := &Node{Kind: KindRect, color: ColorBlue}
	nodeDefaults(n)
	return n
}

// NewText creates a text node rendered with the default font.
func NewText(content string) *Node {
	n := &Node{
		Kind:  KindText,
		color: ColorWhite,
		text: &textBlock{
			content:  content,
			fontSize: defaultFontSize,
		},
	}
	nodeDefaults(n)
	return n
}

// NewImage creates an image node without content. Attach pixels with
// WithSource or WithSourceBytes before the node is registered.
func NewImage() *Node {
	n := &Node{Kind: KindImage, image: &imageData{}}
	nodeDefaults(n)
	return n
}

// --- Builder setters ---

// WithName sets a debug name shown in registry dumps and log lines.
func (n *Node) WithName(name string) *Node {
	n.Name = name
	return n
}

// WithSize sets the node's width and height as fractions of its parent's box.
// Panics if the node has already been composed into a parent or already has
// children.
func (n *Node) WithSize(width, height float64) *Node {
	n.mustBeGeometryFree("WithSize")
	n.size = Vec2{width, height}
	return n
}

// WithPosition sets the node's top-left corner as a fraction of its parent's
// box. Panics if the node has already been composed into a parent.
func (n *Node) WithPosition(x, y float64) *Node {
	n.mustBeGeometryFree("WithPosition")
	n.position = Vec2{x, y}
	return n
}

// WithDepth sets the node's paint-order key. Higher depths paint first, so
// lower depths appear on top. Descendants already attached are shifted by the
// same amount, keeping exactly one step per edge.
func (n *Node) WithDepth(depth int) *Node {
	n.mustBeLocal("WithDepth")
	shiftDepth(n, depth-n.depth)
	return n
}

// WithColor sets the fill color of a rect or the glyph color of a text node.
// Components are in [0, 1]. May be called from click handlers.
func (n *Node) WithColor(r, g, b, a float64) *Node {
	n.mustBeKind("WithColor", KindRect, KindText)
	n.color = Color{r, g, b, a}
	n.mesh.dirty = true
	return n
}

// WithRadius sets the corner radius of a rect or image, as a fraction of the
// shorter side of the node's box.
func (n *Node) WithRadius(radius float64) *Node {
	n.mustBeKind("WithRadius", KindRect, KindImage)
	n.radius = radius
	n.mesh.dirty = true
	return n
}

// OnClick registers the handler invoked when the primary button is pressed
// over this node while it is the topmost node under the pointer.
func (n *Node) OnClick(fn func(*Context)) *Node {
	n.onClick = fn
	return n
}

// Center positions the node so its current size is centered in the parent's
// box. Must be called before the node is composed.
func (n *Node) Center() *Node {
	n.mustBeGeometryFree("Center")
	n.position = Vec2{(1 - n.size.X) / 2, (1 - n.size.Y) / 2}
	return n
}

// CenterX centers the node horizontally, keeping its vertical position.
func (n *Node) CenterX() *Node {
	n.mustBeGeometryFree("CenterX")
	n.position.X = (1 - n.size.X) / 2
	return n
}

// CenterY centers the node vertically, keeping its horizontal position.
func (n *Node) CenterY() *Node {
	n.mustBeGeometryFree("CenterY")
	n.position.Y = (1 - n.size.Y) / 2
	return n
}

// --- Accessors ---

// Size returns the node's width and height. Absolute once composed.
func (n *Node) Size() Vec2 { return n.size }

// Position returns the node's top-left corner. Absolute once composed.
func (n *Node) Position() Vec2 { return n.position }

// Depth returns the node's paint-order key.
func (n *Node) Depth() int { return n.depth }

// Box returns the node's bounds as a Box.
func (n *Node) Box() Box {
	return Box{X: n.position.X, Y: n.position.Y, Width: n.size.X, Height: n.size.Y}
}

// Color returns the node's fill or glyph color.
func (n *Node) Color() Color { return n.color }

// Radius returns the corner radius fraction.
func (n *Node) Radius() float64 { return n.radius }

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller. Empty once the node has been flattened into a Registry.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Clickable reports whether the node has a click handler.
func (n *Node) Clickable() bool { return n.onClick != nil }

// Composed reports whether the node has been attached to a parent.
func (n *Node) Composed() bool { return n.composed }

// String returns a short description for log lines.
func (n *Node) String() string {
	name := n.Name
	if name == "" {
		name = "-"
	}
	return fmt.Sprintf("%s(%s id=%d depth=%d)", n.Kind, name, n.ID, n.depth)
}

// --- Helpers ---

// mustBeLocal panics when geometry is changed after the node left its
// node-local space, either by composition or by registration.
func (n *Node) mustBeLocal(op string) {
	if n.composed {
		panic(fmt.Sprintf("bower: %s on composed node %s", op, n))
	}
	if n.ID >= 0 {
		panic(fmt.Sprintf("bower: %s on registered node %s", op, n))
	}
}

// mustBeGeometryFree is mustBeLocal for size and position edits, which
// additionally require that no children have been folded into the node's
// current box yet.
func (n *Node) mustBeGeometryFree(op string) {
	n.mustBeLocal(op)
	if len(n.children) > 0 {
		panic(fmt.Sprintf("bower: %s on %s after children were attached", op, n))
	}
}

// mustBeKind panics when a kind-specific setter is used on the wrong kind.
func (n *Node) mustBeKind(op string, kinds ...NodeKind) {
	for _, k := range kinds {
		if n.Kind == k {
			return
		}
	}
	panic(fmt.Sprintf("bower: %s is not supported on %s nodes", op, n.Kind))
}
