package bower

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window, builds the application's view and runs the loop until
// the window is closed, Escape is pressed or a frame fails with
// ErrOutOfMemory. Zero config fields take their DefaultRunConfig values.
//
//	bower.Run(bower.ViewFunc(view), bower.RunConfig{Title: "hello"})
func Run(app Application, cfg RunConfig) error {
	return run(app, cfg, nil)
}

// RunWithScript is Run with a TestRunner attached before the first frame.
func RunWithScript(app Application, cfg RunConfig, runner *TestRunner) error {
	return run(app, cfg, runner)
}

func run(app Application, cfg RunConfig, runner *TestRunner) error {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("bower: %w", err)
	}
	SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)

	s := NewState(app, cfg)
	if runner != nil {
		s.SetTestRunner(runner)
	}
	err := ebiten.RunGame(s)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
