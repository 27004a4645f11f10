package bower

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultFontSize is the glyph size in pixels for new text nodes.
const defaultFontSize = 24

// --- Font ---

// Font is a parsed TrueType/OpenType font shared by any number of text nodes.
type Font struct {
	source *text.GoTextFaceSource
}

// LoadFont parses TTF or OTF data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bower: failed to parse font data: %w", err)
	}
	return &Font{source: source}, nil
}

var defaultFont *Font

// ensureDefaultFont returns the lazily-parsed Go Regular font.
func ensureDefaultFont() *Font {
	if defaultFont == nil {
		f, err := LoadFont(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	}
	return defaultFont
}

// --- textBlock ---

// textBlock holds text content, formatting and cached layout state.
type textBlock struct {
	content  string
	font     *Font
	fontSize float64
	alignH   TextAlign
	alignV   TextAlign

	// Cached layout (unexported)
	face        *text.GoTextFace
	lineSpacing float64
	measuredW   float64
	measuredH   float64
	layoutDirty bool
}

// --- Builder setters ---

// WithContent replaces the node's text. May be called from click handlers;
// the layout is refreshed on the next frame.
func (n *Node) WithContent(content string) *Node {
	n.mustBeKind("WithContent", KindText)
	n.text.content = content
	n.text.layoutDirty = true
	return n
}

// WithFontSize sets the glyph size in pixels.
func (n *Node) WithFontSize(px float64) *Node {
	n.mustBeKind("WithFontSize", KindText)
	n.text.fontSize = px
	n.text.face = nil
	n.text.layoutDirty = true
	return n
}

// WithFont sets the font face source. A nil font selects Go Regular.
func (n *Node) WithFont(f *Font) *Node {
	n.mustBeKind("WithFont", KindText)
	n.text.font = f
	n.text.face = nil
	n.text.layoutDirty = true
	return n
}

// WithAlign places the text inside the node's box.
func (n *Node) WithAlign(horizontal, vertical TextAlign) *Node {
	n.mustBeKind("WithAlign", KindText)
	n.text.alignH = horizontal
	n.text.alignV = vertical
	return n
}

// Content returns the text of a text node, or "" for other kinds.
func (n *Node) Content() string {
	if n.text == nil {
		return ""
	}
	return n.text.content
}

// MeasuredSize returns the laid-out text size in pixels. Zero until the node
// has been initialized by a Registry.
func (n *Node) MeasuredSize() (width, height float64) {
	if n.text == nil {
		return 0, 0
	}
	return n.text.measuredW, n.text.measuredH
}

// --- Resources ---

// ensureFace creates the face on first use or after a font change.
func (tb *textBlock) ensureFace() {
	if tb.face != nil {
		return
	}
	f := tb.font
	if f == nil {
		f = ensureDefaultFont()
	}
	tb.face = &text.GoTextFace{Source: f.source, Size: tb.fontSize}
	m := tb.face.Metrics()
	tb.lineSpacing = m.HAscent + m.HDescent + m.HLineGap
	tb.layoutDirty = true
}

// layout re-measures the content if dirty.
func (tb *textBlock) layout() {
	tb.ensureFace()
	if !tb.layoutDirty {
		return
	}
	tb.measuredW, tb.measuredH = text.Measure(tb.content, tb.face, tb.lineSpacing)
	tb.layoutDirty = false
}

// draw renders the text clipped to the node box.
func (tb *textBlock) draw(dst *ebiten.Image, box Box, c Color, surf Surface) {
	if tb.face == nil || tb.content == "" {
		return
	}
	r := box.Pixels(surf).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	clip := dst.SubImage(r).(*ebiten.Image)

	op := &text.DrawOptions{}
	op.LineSpacing = tb.lineSpacing
	var x, y float64
	op.PrimaryAlign, x = alignAxis(tb.alignH, r.Min.X, r.Max.X)
	op.SecondaryAlign, y = alignAxis(tb.alignV, r.Min.Y, r.Max.Y)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(clip, tb.content, tb.face, op)
}

// alignAxis maps a TextAlign to the text/v2 alignment and its anchor between
// lo and hi.
func alignAxis(a TextAlign, lo, hi int) (text.Align, float64) {
	switch a {
	case TextAlignCenter:
		return text.AlignCenter, float64(lo+hi) / 2
	case TextAlignEnd:
		return text.AlignEnd, float64(hi)
	default:
		return text.AlignStart, float64(lo)
	}
}
