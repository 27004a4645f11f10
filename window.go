package bower

import "github.com/hajimehoshi/ebiten/v2"

// Window is the host window handle exposed to click handlers and to
// applications that customize the window before the loop starts.
type Window interface {
	SetTitle(title string)
	SetSize(width, height int)
	Size() (width, height int)
	SetFullscreen(fullscreen bool)
	IsFullscreen() bool
}

// WindowConfigurer is implemented by applications that adjust the window
// (title, size, fullscreen) before the run loop starts.
type WindowConfigurer interface {
	ConfigureWindow(w Window)
}

// ebitenWindow forwards to Ebitengine's process-wide window functions.
type ebitenWindow struct{}

func (ebitenWindow) SetTitle(title string)         { ebiten.SetWindowTitle(title) }
func (ebitenWindow) SetSize(width, height int)     { ebiten.SetWindowSize(width, height) }
func (ebitenWindow) Size() (int, int)              { return ebiten.WindowSize() }
func (ebitenWindow) SetFullscreen(fullscreen bool) { ebiten.SetFullscreen(fullscreen) }
func (ebitenWindow) IsFullscreen() bool            { return ebiten.IsFullscreen() }
