package bower

import "testing"

// fakeWindow records window calls made by click handlers.
type fakeWindow struct {
	title       string
	w, h        int
	fullscreen  bool
	fullscreens int
}

func (w *fakeWindow) SetTitle(title string)     { w.title = title }
func (w *fakeWindow) SetSize(width, height int) { w.w, w.h = width, height }
func (w *fakeWindow) Size() (int, int)          { return w.w, w.h }
func (w *fakeWindow) SetFullscreen(fs bool) {
	w.fullscreen = fs
	w.fullscreens++
}
func (w *fakeWindow) IsFullscreen() bool { return w.fullscreen }

// overlapTree builds X (depth 2, full square) with Y (depth 0) covering
// [0.2, 0.6] x [0.2, 0.6] through an intermediate container.
func overlapTree(hits *[]string) (*Node, *Node, *Node) {
	y := NewRect().WithName("Y").WithPosition(0.2, 0.2).WithSize(0.4, 0.4).
		OnClick(func(*Context) { *hits = append(*hits, "Y") })
	mid := NewEmpty().WithName("mid").WithChild(y)
	x := NewRect().WithName("X").WithDepth(2).
		OnClick(func(*Context) { *hits = append(*hits, "X") }).
		WithChild(mid)
	return x, y, mid
}

func TestHitTestTopmostWins(t *testing.T) {
	var hits []string
	x, y, _ := overlapTree(&hits)
	r := NewRegistry(x, testSurface)

	if y.Depth() != 0 || x.Depth() != 2 {
		t.Fatalf("depths = (%d, %d), want (2, 0)", x.Depth(), y.Depth())
	}
	if got := r.HitTest(0.3, 0.3); got != y {
		t.Errorf("HitTest(0.3, 0.3) = %v, want Y", got)
	}
	if got := r.HitTest(0.8, 0.8); got != x {
		t.Errorf("HitTest(0.8, 0.8) = %v, want X", got)
	}

	r.PointerMoved(0.3, 0.3)
	if !r.Press(nil) {
		t.Error("Press should report a handled click")
	}
	if len(hits) != 1 || hits[0] != "Y" {
		t.Errorf("hits = %v, want [Y]", hits)
	}
}

func TestPressOutsideIsNoop(t *testing.T) {
	var hits []string
	x, _, _ := overlapTree(&hits)
	r := NewRegistry(x, testSurface)

	r.PointerMoved(-0.5, -0.5)
	if r.Press(nil) {
		t.Error("Press outside should not be handled")
	}
	if len(hits) != 0 {
		t.Errorf("hits = %v, want none", hits)
	}
}

func TestPressWithoutHandlerDoesNotFallThrough(t *testing.T) {
	called := false
	cover := NewEmpty().WithSize(0.5, 0.5)
	root := NewRect().WithDepth(1).
		OnClick(func(*Context) { called = true }).
		WithChild(cover)
	r := NewRegistry(root, testSurface)

	r.PointerMoved(0.1, 0.1)
	if r.Press(nil) || called {
		t.Error("press on a handler-less topmost node should be ignored")
	}
	r.PointerMoved(0.9, 0.9)
	if !r.Press(nil) || !called {
		t.Error("press on root should reach its handler")
	}
}

func TestPressBeforeMoveUsesOrigin(t *testing.T) {
	var got Vec2
	root := NewRect().OnClick(func(c *Context) { got = Vec2{c.X, c.Y} })
	r := NewRegistry(root, testSurface)
	if !r.Press(nil) {
		t.Fatal("press at origin should hit the full-screen root")
	}
	if got != (Vec2{}) {
		t.Errorf("context position = %v, want origin", got)
	}
}

func TestHitTestEdges(t *testing.T) {
	left := NewRect().WithName("left").WithSize(0.5, 1)
	right := NewRect().WithName("right").WithPosition(0.5, 0).WithSize(0.5, 1)
	r := NewRegistry(NewEmpty().WithChild(left).WithChild(right), testSurface)

	tests := []struct {
		x, y float64
		want *Node
	}{
		{0.49, 0.5, left},
		{0.5, 0.5, right}, // shared edge belongs to the right box
		{0.0, 0.0, left},
	}
	for _, tt := range tests {
		if got := r.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got := r.HitTest(1, 1); got != nil {
		t.Errorf("HitTest(1, 1) = %v, want nil", got)
	}
}

func TestReentrantToggleFullscreen(t *testing.T) {
	win := &fakeWindow{}
	label := NewText("windowed").WithName("label")
	button := NewRect().WithName("button").WithSize(0.5, 0.5).
		OnClick(func(c *Context) {
			c.ToggleFullscreen()
			c.Node.WithColor(0, 1, 0, 1)
			if l := c.LookupName("label"); l != nil {
				if c.Window().IsFullscreen() {
					l.WithContent("fullscreen")
				} else {
					l.WithContent("windowed")
				}
			}
		})
	root := NewEmpty().WithChild(label).WithChild(button)
	r := NewRegistry(root, testSurface)
	before := append([]*Node(nil), r.Nodes()...)

	r.PointerMoved(0.25, 0.25)
	for i := range 3 {
		if !r.Press(win) {
			t.Fatalf("press %d not handled", i)
		}
	}

	if !win.fullscreen || win.fullscreens != 3 {
		t.Errorf("fullscreen = %v after %d toggles, want true after 3", win.fullscreen, win.fullscreens)
	}
	if label.Content() != "fullscreen" {
		t.Errorf("label = %q, want fullscreen", label.Content())
	}
	if button.Color() != (Color{0, 1, 0, 1}) {
		t.Errorf("button color = %v", button.Color())
	}
	for i, n := range r.Nodes() {
		if n != before[i] || n.ID != i {
			t.Fatalf("registry changed at %d", i)
		}
	}
	if err := r.Prepare(testSurface); err != nil {
		t.Errorf("Prepare after handlers: %v", err)
	}
}

func TestContextWithoutWindow(t *testing.T) {
	var ctx *Context
	root := NewRect().OnClick(func(c *Context) {
		ctx = c
		c.ToggleFullscreen()
		c.SetFullscreen(true)
		c.SetTitle("x")
		if c.Lookup(0) != c.Node {
			t.Error("Lookup(0) should return the root")
		}
	})
	r := NewRegistry(root, testSurface)
	r.Press(nil)

	if ctx.Window() != nil || ctx.Lookup(0) != nil {
		t.Error("context should be detached after the handler returns")
	}
}

func TestContextSetTitle(t *testing.T) {
	win := &fakeWindow{}
	root := NewRect().OnClick(func(c *Context) { c.SetTitle("clicked") })
	r := NewRegistry(root, testSurface)
	r.Press(win)
	if win.title != "clicked" {
		t.Errorf("title = %q, want clicked", win.title)
	}
}
