package bower

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string `toml:"title"`
	// Width and Height are the initial window size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// ClearColor fills the screen before nodes are painted. The zero Color
	// means unset and selects the default; use a tiny nonzero alpha such as
	// Color{A: 1e-6} for an effectively transparent clear.
	ClearColor Color `toml:"clear_color"`
	// Resizable lets the user resize the window.
	Resizable bool `toml:"resizable"`
	// Fullscreen starts the window in borderless fullscreen.
	Fullscreen bool `toml:"fullscreen"`
	// Debug logs registry dumps, build stats and tree warnings.
	Debug bool `toml:"debug"`
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool `toml:"show_fps"`
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string `toml:"screenshot_dir"`
	// FrameBudgetMS is the longest frame preparation, in milliseconds, before
	// the frame is dropped. Zero disables the check.
	FrameBudgetMS int `toml:"frame_budget_ms"`
}

// DefaultRunConfig returns the configuration used for zero fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "bower",
		Width:         800,
		Height:        600,
		ClearColor:    Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		Resizable:     true,
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig decodes a TOML file on top of DefaultRunConfig. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load run config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load run config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("load run config %s: %w", path, err)
	}
	return cfg, nil
}

// withDefaults fills zero-valued fields from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = d.ClearColor
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}

func (c RunConfig) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Width, c.Height)
	}
	if c.FrameBudgetMS < 0 {
		return fmt.Errorf("frame budget %dms is negative", c.FrameBudgetMS)
	}
	return nil
}
