package bower

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxTextureSide is the largest texture edge an image node will allocate.
const maxTextureSide = 8192

// ErrImageDecode is wrapped by errors returned when image content cannot be
// decoded. Read failures wrap the underlying fs error instead.
var ErrImageDecode = errors.New("bower: cannot decode image")

// imageData holds the decoded source and its resolution-dependent texture.
type imageData struct {
	src    image.Image
	origin string

	// Texture resampled to the node's pixel box (unexported)
	scaled     *ebiten.Image
	scaledSize image.Point
	stale      []*ebiten.Image
}

// LoadImage creates an image node from a file. Supported formats are PNG,
// JPEG, GIF, BMP and WebP.
func LoadImage(path string) (*Node, error) {
	return NewImage().WithSource(path)
}

// WithSource reads and decodes the image at path. The node is returned
// unchanged together with the error when the file cannot be read or decoded.
// May be called after registration, for example from a click handler.
func (n *Node) WithSource(path string) (*Node, error) {
	n.mustBeKind("WithSource", KindImage)
	data, err := os.ReadFile(path)
	if err != nil {
		return n, fmt.Errorf("bower: read image: %w", err)
	}
	return n.withDecoded(data, path)
}

// WithSourceBytes decodes image data already in memory, such as an embedded
// asset.
func (n *Node) WithSourceBytes(data []byte) (*Node, error) {
	n.mustBeKind("WithSourceBytes", KindImage)
	return n.withDecoded(data, "<bytes>")
}

func (n *Node) withDecoded(data []byte, origin string) (*Node, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return n, fmt.Errorf("%w %s: %w", ErrImageDecode, origin, err)
	}
	n.image.src = src
	n.image.origin = origin
	// Resampled on the next prepare.
	n.image.retire()
	n.mesh.dirty = true
	return n, nil
}

// SourceSize returns the decoded image size in pixels, or zero without content.
func (n *Node) SourceSize() (width, height int) {
	if n.image == nil || n.image.src == nil {
		return 0, 0
	}
	b := n.image.src.Bounds()
	return b.Dx(), b.Dy()
}

// --- Resources ---

// fit resamples the source to the node's pixel box on surf. The previous
// texture is kept until clean so draws already queued this frame stay valid.
func (d *imageData) fit(box Box, surf Surface) error {
	if d.src == nil {
		return nil
	}
	px := box.Pixels(surf)
	size := image.Pt(px.Dx(), px.Dy())
	if size.X <= 0 || size.Y <= 0 {
		d.retire()
		return nil
	}
	if size.X > maxTextureSide || size.Y > maxTextureSide {
		return fmt.Errorf("%w: image %s needs %dx%d texture (max %d)",
			ErrOutOfMemory, d.origin, size.X, size.Y, maxTextureSide)
	}
	if d.scaled != nil && d.scaledSize == size {
		return nil
	}
	resampled := transform.Resize(d.src, size.X, size.Y, transform.Linear)
	d.retire()
	d.scaled = ebiten.NewImageFromImage(resampled)
	d.scaledSize = size
	return nil
}

// retire queues the current texture for deallocation at clean time.
func (d *imageData) retire() {
	if d.scaled != nil {
		d.stale = append(d.stale, d.scaled)
		d.scaled = nil
		d.scaledSize = image.Point{}
	}
}

// trim deallocates retired textures.
func (d *imageData) trim() {
	for i, img := range d.stale {
		img.Deallocate()
		d.stale[i] = nil
	}
	d.stale = d.stale[:0]
}
