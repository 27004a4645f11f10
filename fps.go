package bower

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS in the top-left corner. The
// text is redrawn every ~0.5 seconds into a small offscreen image.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed time.Duration
	stale   bool
}

const fpsRefresh = 500 * time.Millisecond

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), stale: true}
}

func (o *fpsOverlay) update(dt time.Duration) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.stale = true
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	if o.stale {
		o.stale = false
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	dst.DrawImage(o.img, &op)
}
