package bower

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
	A float64 `toml:"a"`
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlue is the default rectangle fill.
var ColorBlue = Color{0, 0, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for Image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in the unit coordinate space. The origin
// is the top-left corner of the window, with Y increasing downward.
type Box struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the box. The left and top edges
// are inside; the right and bottom edges belong to the neighbouring box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// Pixels maps the box onto a surface and returns it in device pixels.
func (b Box) Pixels(surf Surface) image.Rectangle {
	w, h := float64(surf.Width), float64(surf.Height)
	return image.Rect(
		int(b.X*w), int(b.Y*h),
		int((b.X+b.Width)*w), int((b.Y+b.Height)*h),
	)
}

// Surface is the render surface configuration handed to node resource hooks.
// Ebitengine owns the device and queue; nodes only see the size.
type Surface struct {
	Width, Height int
}

// valid reports whether the surface has a drawable area.
func (s Surface) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// NodeKind distinguishes rendering behavior for a Node.
type NodeKind uint8

const (
	KindEmpty NodeKind = iota // group node with no visual output
	KindRect                  // filled, optionally rounded rectangle
	KindText                  // text laid out inside the node box
	KindImage                 // decoded image stretched over the node box
)

var kindNames = [...]string{"empty", "rect", "text", "image"}

// String returns the lower-case kind name.
func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// TextAlign controls text placement within a text node's box.
type TextAlign uint8

const (
	TextAlignStart  TextAlign = iota // left (horizontal) or top (vertical)
	TextAlignCenter                  // centered on the axis
	TextAlignEnd                     // right (horizontal) or bottom (vertical)
)

// --- White pixel singleton ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Solid fills sample its center (0.5, 0.5).
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
