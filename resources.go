package bower

import "github.com/hajimehoshi/ebiten/v2"

// Backend resource hooks. Each dispatches on Kind; empty nodes have no
// resources and every hook is a no-op for them.

// initResources creates the node's resources for surf. Called once, in
// document order, while the registry is built.
func (n *Node) initResources(surf Surface) {
	switch n.Kind {
	case KindRect:
		n.mesh.rebuild(n.Box(), n.radius, n.color, surf, 0, 0)
	case KindText:
		n.text.layout()
	case KindImage:
		if n.image.src == nil {
			logger.Warn("image node has no content", "node", n)
			return
		}
		if !surf.valid() {
			return
		}
		if err := n.image.fit(n.Box(), surf); err != nil {
			logger.Error("image init failed", "node", n, "err", err)
		}
	}
}

// prepareResources refreshes resolution-dependent state before drawing.
func (n *Node) prepareResources(surf Surface) error {
	switch n.Kind {
	case KindRect:
		if !n.mesh.valid(surf) {
			n.mesh.rebuild(n.Box(), n.radius, n.color, surf, 0, 0)
		}
	case KindText:
		n.text.layout()
	case KindImage:
		if err := n.image.fit(n.Box(), surf); err != nil {
			return err
		}
		if n.image.scaled != nil && !n.mesh.valid(surf) {
			sz := n.image.scaledSize
			n.mesh.rebuild(n.Box(), n.radius, ColorWhite, surf, float32(sz.X), float32(sz.Y))
		}
	}
	return nil
}

// renderResources issues the node's draw calls into dst.
func (n *Node) renderResources(dst *ebiten.Image, surf Surface) {
	switch n.Kind {
	case KindRect:
		if len(n.mesh.inds) == 0 {
			return
		}
		var op ebiten.DrawTrianglesOptions
		dst.DrawTriangles(n.mesh.verts, n.mesh.inds, ensureWhitePixel(), &op)
	case KindText:
		n.text.draw(dst, n.Box(), n.color, surf)
	case KindImage:
		if n.image.scaled == nil || len(n.mesh.inds) == 0 {
			return
		}
		var op ebiten.DrawTrianglesOptions
		op.Filter = ebiten.FilterLinear
		dst.DrawTriangles(n.mesh.verts, n.mesh.inds, n.image.scaled, &op)
	}
}

// cleanResources trims resources after a frame.
func (n *Node) cleanResources() {
	if n.Kind == KindImage {
		n.image.trim()
	}
}
