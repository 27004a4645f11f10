package bower

// --- Hit testing ---

// PointerMoved records the pointer position in unit coordinates. Callers
// normalize window pixels before calling (see State).
func (r *Registry) PointerMoved(x, y float64) {
	r.cursor = Vec2{x, y}
}

// Cursor returns the last recorded pointer position.
func (r *Registry) Cursor() Vec2 {
	return r.cursor
}

// HitTest finds the topmost node whose box contains (x, y).
// Returns nil if nothing is hit.
func (r *Registry) HitTest(x, y float64) *Node {
	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(r.nodes) - 1; i >= 0; i-- {
		n := r.nodes[i]
		if n.Box().Contains(x, y) {
			return n
		}
	}
	return nil
}

// Press handles a primary-button press at the last recorded pointer position.
// The topmost node under the pointer receives the click; if it has no handler,
// or nothing is under the pointer, the press is ignored. Reports whether a
// handler ran.
func (r *Registry) Press(win Window) bool {
	n := r.HitTest(r.cursor.X, r.cursor.Y)
	if n == nil || n.onClick == nil {
		return false
	}
	ctx := &Context{
		Node:     n,
		X:        r.cursor.X,
		Y:        r.cursor.Y,
		window:   win,
		registry: r,
	}
	n.onClick(ctx)
	ctx.window = nil
	ctx.registry = nil
	return true
}

// --- Context ---

// Context is handed to click handlers. It is valid only for the duration of
// the handler call and must not be retained.
type Context struct {
	// Node is the node that received the click.
	Node *Node
	// X and Y are the pointer position in unit coordinates.
	X, Y float64

	window   Window
	registry *Registry
}

// Window returns the host window, or nil when dispatching without one.
func (c *Context) Window() Window {
	return c.window
}

// SetFullscreen enters or leaves borderless fullscreen.
func (c *Context) SetFullscreen(fullscreen bool) {
	if c.window != nil {
		c.window.SetFullscreen(fullscreen)
	}
}

// ToggleFullscreen flips the window between fullscreen and windowed.
func (c *Context) ToggleFullscreen() {
	if c.window != nil {
		c.window.SetFullscreen(!c.window.IsFullscreen())
	}
}

// SetTitle changes the window title.
func (c *Context) SetTitle(title string) {
	if c.window != nil {
		c.window.SetTitle(title)
	}
}

// Lookup returns the registered node with the given identity, or nil.
func (c *Context) Lookup(id int) *Node {
	if c.registry == nil {
		return nil
	}
	return c.registry.NodeByID(id)
}

// LookupName returns the first registered node with the given name, or nil.
func (c *Context) LookupName(name string) *Node {
	if c.registry == nil {
		return nil
	}
	return c.registry.FindByName(name)
}
