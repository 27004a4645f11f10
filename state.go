package bower

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Application supplies the view: a composed node tree handed to the engine
// once at startup. Applications may also implement WindowConfigurer.
type Application interface {
	View() *Node
}

// ViewFunc adapts a plain function to Application.
type ViewFunc func() *Node

// View calls f.
func (f ViewFunc) View() *Node { return f() }

// State is the top-level object that owns the registry, surface, cursor and
// window for one run. It implements ebiten.Game; everything runs on
// Ebitengine's single game goroutine.
type State struct {
	cfg      RunConfig
	window   Window
	surface  Surface
	registry *Registry

	// Cursor in window pixels, for move detection
	lastCursor image.Point
	cursorSeen bool

	// Automation (see inject.go, testrunner.go, screenshot.go)
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	fps        *fpsOverlay
	lastUpdate time.Time

	// now is the clock for frame budgets and FPS refresh
	now func() time.Time

	// err stops the loop on the next Update (ErrOutOfMemory)
	err error
}

// NewState configures the window, builds the application's view and
// registers it against a surface of the configured size.
func NewState(app Application, cfg RunConfig) *State {
	return newState(app, cfg, ebitenWindow{})
}

func newState(app Application, cfg RunConfig, win Window) *State {
	cfg = cfg.withDefaults()
	s := &State{
		cfg:     cfg,
		window:  win,
		surface: Surface{Width: cfg.Width, Height: cfg.Height},
		now:     time.Now,
	}
	if wc, ok := app.(WindowConfigurer); ok {
		wc.ConfigureWindow(win)
	}
	s.registry = NewRegistry(app.View(), s.surface)
	if cfg.ShowFPS {
		s.fps = newFPSOverlay()
	}
	if globalDebug {
		logger.Debug("view registered\n" + s.registry.Dump())
	}
	return s
}

// --- Accessors ---

// Registry returns the run's node registry.
func (s *State) Registry() *Registry { return s.registry }

// Surface returns the current surface configuration.
func (s *State) Surface() Surface { return s.surface }

// Window returns the host window.
func (s *State) Window() Window { return s.window }

// Config returns the effective run configuration.
func (s *State) Config() RunConfig { return s.cfg }

// --- ebiten.Game ---

// Update processes input. Escape ends the run.
func (s *State) Update() error {
	if s.err != nil {
		return s.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.tickFPS()
	s.processInput()
	return nil
}

// tickFPS advances the FPS overlay by the wall time since the last Update.
func (s *State) tickFPS() {
	if s.fps == nil {
		return
	}
	t := s.now()
	if !s.lastUpdate.IsZero() {
		s.fps.update(t.Sub(s.lastUpdate))
	}
	s.lastUpdate = t
}

// Draw renders one frame and applies the frame error policy.
func (s *State) Draw(screen *ebiten.Image) {
	err := s.renderFrame(screen)
	switch framePolicy(err) {
	case frameReconfigure:
		var b image.Rectangle
		if screen != nil {
			b = screen.Bounds()
		}
		s.resize(Surface{Width: b.Dx(), Height: b.Dy()})
		logger.Debug("surface reconfigured", "reason", err, "surface", s.surface)
	case frameTerminate:
		logger.Error("frame failed, stopping", "err", err)
		s.err = err
	case frameSkip:
		logger.Warn("frame skipped", "err", err)
	}
}

// Layout tracks the window size; the surface is the window in
// device-independent pixels.
func (s *State) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.resize(Surface{Width: outsideWidth, Height: outsideHeight})
	return s.surface.Width, s.surface.Height
}

// resize reconfigures the surface. Zero-sized surfaces (minimized windows)
// are ignored. Resolution-dependent node resources are rebuilt on the next
// prepare.
func (s *State) resize(surf Surface) {
	if !surf.valid() || surf == s.surface {
		return
	}
	if globalDebug {
		logger.Debug("surface resized", "from", s.surface, "to", surf)
	}
	s.surface = surf
}

// renderFrame prepares, paints and trims one frame.
func (s *State) renderFrame(screen *ebiten.Image) error {
	if screen == nil || screen.Bounds().Empty() {
		return ErrSurfaceLost
	}
	b := screen.Bounds()
	if b.Dx() != s.surface.Width || b.Dy() != s.surface.Height {
		return fmt.Errorf("%w: target %dx%d, surface %dx%d",
			ErrSurfaceOutdated, b.Dx(), b.Dy(), s.surface.Width, s.surface.Height)
	}

	start := s.now()
	if err := s.registry.Prepare(s.surface); err != nil {
		return err
	}
	if s.cfg.FrameBudgetMS > 0 {
		budget := time.Duration(s.cfg.FrameBudgetMS) * time.Millisecond
		if elapsed := s.now().Sub(start); elapsed > budget {
			return fmt.Errorf("%w: prepare took %v (budget %v)", ErrSurfaceTimeout, elapsed, budget)
		}
	}

	screen.Fill(s.cfg.ClearColor.toRGBA())
	s.registry.Render(screen, s.surface)
	if s.fps != nil {
		s.fps.draw(screen)
	}
	s.flushScreenshots(screen)
	s.registry.Clean()
	return nil
}

// --- Input ---

// processInput feeds injected or real pointer input into the registry.
func (s *State) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !s.cursorSeen || mx != s.lastCursor.X || my != s.lastCursor.Y {
		s.cursorSeen = true
		s.lastCursor = image.Pt(mx, my)
		s.pointerMoved(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.press()
	}
}

// pointerMoved normalizes a window-pixel position into unit coordinates.
func (s *State) pointerMoved(px, py float64) {
	if !s.surface.valid() {
		return
	}
	s.registry.PointerMoved(px/float64(s.surface.Width), py/float64(s.surface.Height))
}

// press dispatches a primary-button press. Releases are not tracked.
func (s *State) press() {
	handled := s.registry.Press(s.window)
	if globalDebug {
		c := s.registry.Cursor()
		logger.Debug("press", "x", c.X, "y", c.Y, "handled", handled)
	}
}
