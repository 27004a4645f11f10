package bower

import "testing"

func TestWithChildFoldsThreeLevels(t *testing.T) {
	b := NewRect().WithPosition(0.25, 0.25).WithSize(0.5, 0.5)
	a := NewEmpty().WithPosition(0.1, 0.1).WithSize(0.8, 0.8).WithChild(b)
	NewEmpty().WithChild(a)

	if !approxVec(b.Position(), Vec2{0.3, 0.3}) {
		t.Errorf("B position = %v, want (0.3, 0.3)", b.Position())
	}
	if !approxVec(b.Size(), Vec2{0.4, 0.4}) {
		t.Errorf("B size = %v, want (0.4, 0.4)", b.Size())
	}
}

func TestWithChildFoldOrderIndependent(t *testing.T) {
	// Attaching top-down gives the same result as bottom-up.
	root := NewEmpty()
	a := NewEmpty().WithPosition(0.1, 0.1).WithSize(0.8, 0.8)
	root.WithChild(a)
	b := NewRect().WithPosition(0.25, 0.25).WithSize(0.5, 0.5)
	a.WithChild(b)

	if !approxVec(b.Position(), Vec2{0.3, 0.3}) || !approxVec(b.Size(), Vec2{0.4, 0.4}) {
		t.Errorf("B box = %v, want (0.3, 0.3, 0.4, 0.4)", b.Box())
	}
}

func TestWithChildFoldsIntoOffsetRoot(t *testing.T) {
	// B = R.pos + R.size*(a.pos + a.size*b.pos), size = R.size*a.size*b.size
	b := NewRect().WithPosition(0.5, 0).WithSize(0.5, 1)
	a := NewEmpty().WithPosition(0, 0.5).WithSize(1, 0.5).WithChild(b)
	NewEmpty().WithPosition(0.2, 0.2).WithSize(0.5, 0.5).WithChild(a)

	want := Box{X: 0.2 + 0.5*(0+1*0.5), Y: 0.2 + 0.5*(0.5+0.5*0), Width: 0.5 * 1 * 0.5, Height: 0.5 * 0.5 * 1}
	got := b.Box()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("B box = %v, want %v", got, want)
	}
}

func TestWithChildDepthChain(t *testing.T) {
	leaf := NewRect()
	mid := NewEmpty().WithChild(leaf)
	root := NewEmpty().WithDepth(2).WithChild(mid)

	got := []int{root.Depth(), mid.Depth(), leaf.Depth()}
	want := []int{2, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("depths = %v, want %v", got, want)
		}
	}
}

func TestWithDepthShiftsAttachedSubtree(t *testing.T) {
	leaf := NewRect()
	mid := NewEmpty().WithChild(leaf)
	if leaf.Depth() != -1 {
		t.Fatalf("leaf depth = %d, want -1", leaf.Depth())
	}
	mid.WithDepth(5)
	if mid.Depth() != 5 || leaf.Depth() != 4 {
		t.Errorf("depths = (%d, %d), want (5, 4)", mid.Depth(), leaf.Depth())
	}
}

func TestWithChildSiblingsShareDepth(t *testing.T) {
	a, b := NewRect(), NewRect()
	root := NewEmpty().WithDepth(1).WithChild(a).WithChild(b)
	if a.Depth() != 0 || b.Depth() != 0 {
		t.Errorf("sibling depths = (%d, %d), want (0, 0)", a.Depth(), b.Depth())
	}
	if root.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", root.NumChildren())
	}
}

func TestWithChildZeroSizeParentCollapses(t *testing.T) {
	child := NewRect().WithPosition(0.5, 0.5).WithSize(0.5, 0.5)
	NewEmpty().WithPosition(0.3, 0.4).WithSize(0, 0).WithChild(child)

	if child.Size() != (Vec2{}) {
		t.Errorf("size = %v, want zero", child.Size())
	}
	if !approxVec(child.Position(), Vec2{0.3, 0.4}) {
		t.Errorf("position = %v, want (0.3, 0.4)", child.Position())
	}
}

func TestWithChildOutOfRangeNotClamped(t *testing.T) {
	child := NewRect().WithPosition(1.5, -0.5).WithSize(2, 2)
	NewEmpty().WithSize(0.5, 0.5).WithChild(child)
	want := Box{X: 0.75, Y: -0.25, Width: 1, Height: 1}
	if child.Box() != want {
		t.Errorf("box = %v, want %v", child.Box(), want)
	}
}

func TestWithChildPanics(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		expectPanic(t, func() { NewEmpty().WithChild(nil) })
	})
	t.Run("self", func(t *testing.T) {
		n := NewEmpty()
		expectPanic(t, func() { n.WithChild(n) })
	})
	t.Run("twice", func(t *testing.T) {
		child := NewRect()
		NewEmpty().WithChild(child)
		expectPanic(t, func() { NewEmpty().WithChild(child) })
	})
	t.Run("registered", func(t *testing.T) {
		root := NewEmpty()
		NewRegistry(root, Surface{Width: 100, Height: 100})
		expectPanic(t, func() { NewEmpty().WithChild(root) })
	})
	t.Run("registered parent", func(t *testing.T) {
		root := NewEmpty()
		NewRegistry(root, Surface{Width: 100, Height: 100})
		expectPanic(t, func() { root.WithChild(NewRect()) })
		if len(root.children) != 0 {
			t.Errorf("children = %d, want 0", len(root.children))
		}
	})
}

func TestComposedGeometryIsFrozen(t *testing.T) {
	child := NewRect()
	NewEmpty().WithChild(child)
	expectPanic(t, func() { child.WithSize(0.5, 0.5) })
	expectPanic(t, func() { child.WithPosition(0.5, 0.5) })
	expectPanic(t, func() { child.WithDepth(3) })

	// Appearance stays editable.
	child.WithColor(1, 0, 0, 1)
	if child.Color() != (Color{1, 0, 0, 1}) {
		t.Errorf("Color = %v", child.Color())
	}
}
