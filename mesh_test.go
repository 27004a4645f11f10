package bower

import "testing"

func TestBuildRoundedBoxQuad(t *testing.T) {
	c := Color{R: 0.5, G: 1, B: 0.8, A: 0.6}
	verts, inds := buildRoundedBox(nil, nil, 10, 20, 100, 50, 0, c, 0, 0)
	if len(verts) != 4 || len(inds) != 6 {
		t.Fatalf("got %d verts, %d inds, want 4, 6", len(verts), len(inds))
	}
	if verts[0].DstX != 10 || verts[0].DstY != 20 || verts[2].DstX != 110 || verts[2].DstY != 70 {
		t.Errorf("corners = (%v,%v) (%v,%v)", verts[0].DstX, verts[0].DstY, verts[2].DstX, verts[2].DstY)
	}
	for i, v := range verts {
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vert %d samples (%v, %v), want white pixel center", i, v.SrcX, v.SrcY)
		}
		if v.ColorR != 0.5 || v.ColorA != 0.6 {
			t.Errorf("vert %d color = (%v, %v)", i, v.ColorR, v.ColorA)
		}
	}
}

func TestBuildRoundedBoxRounded(t *testing.T) {
	verts, inds := buildRoundedBox(nil, nil, 0, 0, 100, 100, 0.25, ColorWhite, 0, 0)
	rim := 4 * (cornerSegments + 1)
	if len(verts) != rim+1 {
		t.Fatalf("verts = %d, want %d", len(verts), rim+1)
	}
	if len(inds) != 3*rim {
		t.Fatalf("inds = %d, want %d", len(inds), 3*rim)
	}
	// Hub at the center.
	if verts[0].DstX != 50 || verts[0].DstY != 50 {
		t.Errorf("hub = (%v, %v), want (50, 50)", verts[0].DstX, verts[0].DstY)
	}
	// Every rim vertex stays inside the box.
	for i, v := range verts {
		if v.DstX < -0.001 || v.DstX > 100.001 || v.DstY < -0.001 || v.DstY > 100.001 {
			t.Errorf("vert %d (%v, %v) outside box", i, v.DstX, v.DstY)
		}
	}
	for _, idx := range inds {
		if int(idx) >= len(verts) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildRoundedBoxRadiusClamp(t *testing.T) {
	// A radius above one half behaves like one half: the first arc starts at
	// the middle of the left edge.
	verts, _ := buildRoundedBox(nil, nil, 0, 0, 100, 40, 3, ColorWhite, 0, 0)
	first := verts[1]
	if !near(first.DstX, 0) || !near(first.DstY, 20) {
		t.Errorf("first rim vertex = (%v, %v), want (0, 20)", first.DstX, first.DstY)
	}
}

func TestBuildRoundedBoxEmpty(t *testing.T) {
	verts, inds := buildRoundedBox(nil, nil, 0, 0, 0, 10, 0.2, ColorWhite, 0, 0)
	if len(verts) != 0 || len(inds) != 0 {
		t.Errorf("empty box produced %d verts", len(verts))
	}
}

func TestBuildRoundedBoxTextured(t *testing.T) {
	verts, _ := buildRoundedBox(nil, nil, 10, 10, 100, 50, 0, ColorWhite, 64, 32)
	if verts[0].SrcX != 0 || verts[0].SrcY != 0 {
		t.Errorf("top-left src = (%v, %v), want (0, 0)", verts[0].SrcX, verts[0].SrcY)
	}
	if verts[2].SrcX != 64 || verts[2].SrcY != 32 {
		t.Errorf("bottom-right src = (%v, %v), want (64, 32)", verts[2].SrcX, verts[2].SrcY)
	}
}

func TestBuildRoundedBoxAppends(t *testing.T) {
	verts, inds := buildRoundedBox(nil, nil, 0, 0, 10, 10, 0, ColorWhite, 0, 0)
	verts, inds = buildRoundedBox(verts, inds, 20, 0, 10, 10, 0, ColorWhite, 0, 0)
	if len(verts) != 8 || inds[6] != 4 {
		t.Errorf("second quad should index from 4, got inds %v", inds)
	}
}

func TestMeshCacheValidity(t *testing.T) {
	var m meshCache
	if m.valid(testSurface) {
		t.Error("empty cache should be invalid")
	}
	m.rebuild(Box{Width: 1, Height: 1}, 0, ColorBlue, testSurface, 0, 0)
	if !m.valid(testSurface) {
		t.Error("rebuilt cache should be valid")
	}
	if m.valid(Surface{Width: 10, Height: 10}) {
		t.Error("cache should be invalid on another surface")
	}
	m.dirty = true
	if m.valid(testSurface) {
		t.Error("dirty cache should be invalid")
	}
}

func TestWithColorInvalidatesMesh(t *testing.T) {
	rect := NewRect()
	NewRegistry(rect, testSurface)
	rect.WithColor(1, 0, 0, 1)
	if rect.mesh.valid(testSurface) {
		t.Fatal("recolor should invalidate the mesh")
	}
	if err := rect.prepareResources(testSurface); err != nil {
		t.Fatal(err)
	}
	if rect.mesh.verts[0].ColorR != 1 || rect.mesh.verts[0].ColorB != 0 {
		t.Error("mesh should carry the new color")
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}
