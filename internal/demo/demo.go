// Package demo holds the built-in views shown by the bower command.
package demo

import (
	"fmt"
	"sort"

	"github.com/phanxgames/bower"
)

// Nested is three nested rounded rectangles with a greeting on top.
// Clicking the greeting, which fills the inner panel, toggles fullscreen.
func Nested() *bower.Node {
	text := bower.NewText("Hello bower!").
		WithName("greeting").
		WithAlign(bower.TextAlignCenter, bower.TextAlignCenter).
		OnClick(func(c *bower.Context) { c.ToggleFullscreen() })
	sub := bower.NewRect().
		WithName("panel").
		WithSize(0.8, 0.8).
		WithPosition(0.1, 0.1).
		WithColor(100.0/255, 100.0/255, 100.0/255, 0.5).
		WithChild(text).
		WithDepth(1)
	square := bower.NewRect().
		WithName("frame").
		WithSize(0.9, 0.9).
		WithPosition(0.05, 0.05).
		WithRadius(0.1).
		WithChild(sub).
		WithDepth(2)

	return bower.NewEmpty().
		WithName("root").
		WithPosition(0.05, 0.05).
		WithSize(0.9, 0.9).
		WithChild(square)
}

// Grid is a 3x3 grid of buttons. Each click cycles the button's color and
// updates the status line.
func Grid() *bower.Node {
	palette := []bower.Color{
		{R: 0.9, G: 0.3, B: 0.3, A: 1},
		{R: 0.3, G: 0.7, B: 0.9, A: 1},
		{R: 0.3, G: 0.9, B: 0.5, A: 1},
	}
	status := bower.NewText("click a cell").
		WithName("status").
		WithSize(1, 0.1).
		WithPosition(0, 0.9).
		WithFontSize(18)

	board := bower.NewEmpty().WithName("board").WithSize(0.9, 0.8).WithPosition(0.05, 0.05)
	for row := range 3 {
		for col := range 3 {
			name := fmt.Sprintf("cell-%d-%d", row, col)
			next := (row + col) % len(palette)
			c := palette[next]
			cell := bower.NewRect().
				WithName(name).
				WithSize(0.3, 0.3).
				WithPosition(float64(col)*0.35, float64(row)*0.35).
				WithRadius(0.15).
				WithColor(c.R, c.G, c.B, c.A)
			cell.OnClick(func(ctx *bower.Context) {
				next = (next + 1) % len(palette)
				p := palette[next]
				ctx.Node.WithColor(p.R, p.G, p.B, p.A)
				if s := ctx.LookupName("status"); s != nil {
					s.WithContent(fmt.Sprintf("%s at (%.2f, %.2f)", name, ctx.X, ctx.Y))
				}
			})
			board.WithChild(cell)
		}
	}
	return bower.NewEmpty().WithName("root").WithChild(board).WithChild(status)
}

var views = map[string]func() *bower.Node{
	"nested": Nested,
	"grid":   Grid,
}

// Lookup returns the view builder registered under name.
func Lookup(name string) (func() *bower.Node, bool) {
	v, ok := views[name]
	return v, ok
}

// Names lists the available views in sorted order.
func Names() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
