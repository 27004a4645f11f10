package bower

import (
	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// cornerSegments is the number of arc segments per rounded corner.
const cornerSegments = 8

// meshCache holds a node's triangulated box in device pixels. It is rebuilt
// when the surface size changes or the node's appearance is edited.
type meshCache struct {
	verts   []ebiten.Vertex
	inds    []uint16
	surface Surface
	dirty   bool
}

// valid reports whether the cached mesh matches surf.
func (m *meshCache) valid(surf Surface) bool {
	return !m.dirty && m.surface == surf && len(m.verts) > 0
}

// rebuild triangulates box on surf. srcW and srcH are the source image size
// for textured boxes; pass 0 for solid fills sampled from the white pixel.
func (m *meshCache) rebuild(box Box, radius float64, c Color, surf Surface, srcW, srcH float32) {
	px := box.Pixels(surf)
	m.verts, m.inds = buildRoundedBox(m.verts[:0], m.inds[:0],
		float32(px.Min.X), float32(px.Min.Y), float32(px.Dx()), float32(px.Dy()),
		float32(radius), c, srcW, srcH)
	m.surface = surf
	m.dirty = false
}

// buildRoundedBox appends a fan-triangulated rectangle with rounded corners.
// radius is a fraction of the shorter side and is clamped to [0, 0.5]. With a
// zero radius the box is a plain quad (4 vertices, 6 indices); otherwise the
// hub is the box center followed by cornerSegments+1 points per corner.
// Returns the grown slices; empty boxes produce nothing.
func buildRoundedBox(verts []ebiten.Vertex, inds []uint16, x, y, w, h, radius float32, c Color, srcW, srcH float32) ([]ebiten.Vertex, []uint16) {
	if w <= 0 || h <= 0 {
		return verts, inds
	}
	textured := srcW > 0 && srcH > 0
	cr, cg, cb, ca := float32(c.R), float32(c.G), float32(c.B), float32(c.A)

	vertex := func(dx, dy float32) ebiten.Vertex {
		v := ebiten.Vertex{
			DstX: dx, DstY: dy,
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
		if textured {
			v.SrcX = (dx - x) / w * srcW
			v.SrcY = (dy - y) / h * srcH
		}
		return v
	}

	base := uint16(len(verts))
	r := math32.Min(math32.Max(radius, 0), 0.5) * math32.Min(w, h)
	if r < 0.5 {
		verts = append(verts,
			vertex(x, y), vertex(x+w, y), vertex(x+w, y+h), vertex(x, y+h))
		inds = append(inds, base, base+1, base+2, base+2, base+3, base)
		return verts, inds
	}

	// Hub at the center, then each corner arc clockwise from the top-left.
	verts = append(verts, vertex(x+w/2, y+h/2))
	corners := [4][3]float32{
		{x + r, y + r, math32.Pi},
		{x + w - r, y + r, 1.5 * math32.Pi},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 0.5 * math32.Pi},
	}
	for _, corner := range corners {
		for s := 0; s <= cornerSegments; s++ {
			angle := corner[2] + float32(s)/cornerSegments*(math32.Pi/2)
			sin, cos := math32.Sincos(angle)
			verts = append(verts, vertex(corner[0]+cos*r, corner[1]+sin*r))
		}
	}

	rim := uint16(4 * (cornerSegments + 1))
	for i := uint16(0); i < rim; i++ {
		next := (i + 1) % rim
		inds = append(inds, base, base+1+i, base+1+next)
	}
	return verts, inds
}
