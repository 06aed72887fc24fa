// app is the window and the frame loop that drives it
package app

import (
	"log"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/simple2d/internal/audio"
	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/input"
	"github.com/silbinarywolf/simple2d/internal/monotime"
	"github.com/silbinarywolf/simple2d/internal/platform"
	"github.com/silbinarywolf/simple2d/internal/renderer"
)

const (
	DefaultFPSCap  = 60
	DefaultQuitKey = input.KeyEscape
)

// Background is what every frame is cleared to before callbacks draw
var Background = renderer.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}

type Config struct {
	Title  string
	Width  int
	Height int
	// FPSCap is the target frames per second, defaults to 60
	FPSCap int
	VSync  bool
	// QuitKey stops the loop when pressed, defaults to "Escape"
	QuitKey string
	// MaxFrames stops the loop after this many frames. 0 runs until quit.
	MaxFrames int
}

// WithDefaults fills in unset optional fields and validates the rest
func (config Config) WithDefaults() (Config, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return config, errors.Errorf("invalid window size %dx%d", config.Width, config.Height)
	}
	if config.FPSCap < 0 {
		return config, errors.Errorf("invalid fps cap %d", config.FPSCap)
	}
	if config.MaxFrames < 0 {
		return config, errors.Errorf("invalid max frames %d", config.MaxFrames)
	}
	if config.FPSCap == 0 {
		config.FPSCap = DefaultFPSCap
	}
	if config.QuitKey == "" {
		config.QuitKey = DefaultQuitKey
	}
	return config, nil
}

// Platform gives the platform config this window needs for a renderer
func (config Config) Platform(api renderer.API) platform.Config {
	return platform.Config{
		Title:  config.Title,
		Width:  config.Width,
		Height: config.Height,
		VSync:  config.VSync,
		API:    api,
	}
}

// Drivers are the already opened collaborators a Window runs on
type Drivers struct {
	Platform platform.Platform
	Renderer renderer.Renderer
	// Mixer defaults to a silent mixer
	Mixer audio.Mixer
	// Clock defaults to the system clock
	Clock monotime.Clock
}

type State int

const (
	Running State = iota
	Quitting
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Quitting:
		return "quitting"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

type Window struct {
	config   Config
	handler  Handler
	platform platform.Platform
	renderer renderer.Renderer
	mixer    audio.Mixer
	clock    monotime.Clock

	state     State
	shown     bool
	err       error
	telemetry Telemetry
	heldKeys  []string
}

// New creates a window on drivers. The platform must have its GPU context
// current, New initializes the renderer on it.
func New(config Config, handler Handler, drivers Drivers) (*Window, error) {
	config, err := config.WithDefaults()
	if err != nil {
		return nil, err
	}
	if drivers.Platform == nil || drivers.Renderer == nil {
		return nil, errors.New("window needs a platform and a renderer")
	}
	if handler == nil {
		handler = NoHandler{}
	}
	w := &Window{
		config:   config,
		handler:  handler,
		platform: drivers.Platform,
		renderer: drivers.Renderer,
		mixer:    drivers.Mixer,
		clock:    drivers.Clock,
	}
	if w.mixer == nil {
		w.mixer = audio.Silent{}
	}
	if w.clock == nil {
		w.clock = monotime.System{}
	}
	if err := w.renderer.Init(config.Width, config.Height); err != nil {
		w.teardown()
		return nil, fatal.Wrapf(fatal.Context, err, "unable to initialize %s renderer", w.renderer.API())
	}
	return w, nil
}

func (w *Window) Config() Config {
	return w.config
}

func (w *Window) State() State {
	return w.state
}

func (w *Window) Platform() platform.Platform {
	return w.platform
}

func (w *Window) Renderer() renderer.Renderer {
	return w.renderer
}

func (w *Window) Mixer() audio.Mixer {
	return w.mixer
}

// Quit stops the loop once the current frame is finished
func (w *Window) Quit() {
	if w.state == Running {
		w.state = Quitting
	}
}

// Show runs the frame loop until quit and then tears the window down. It
// returns the first error a callback returned, if any.
func (w *Window) Show() error {
	if w.shown {
		return errors.New("window has already been shown")
	}
	w.shown = true
	w.run()
	w.teardown()
	return w.err
}

// teardown releases everything in reverse order of acquisition
func (w *Window) teardown() {
	w.platform.QuitImage()
	if err := w.mixer.Close(); err != nil {
		log.Printf("warning: unable to close audio: %v", err)
	}
	w.platform.DestroyContext()
	w.renderer.Close()
	w.platform.DestroyWindow()
	w.platform.Quit()
	w.state = Stopped
}
