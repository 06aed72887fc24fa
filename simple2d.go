// simple2d opens a window with a GPU context and runs a frame paced loop
// that draws triangles, quads, images and text.
//
// The backend is picked at build time:
//
//	go build              OpenGL 2.1 on SDL2
//	go build -tags gles   OpenGL ES 2.0 on SDL2
//	go build -tags headless   CPU rasterizer, no window, no audio device
package simple2d

import (
	"log"

	"github.com/silbinarywolf/simple2d/internal/app"
	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/input"
	"github.com/silbinarywolf/simple2d/internal/renderer"
	"github.com/silbinarywolf/simple2d/internal/resource"
)

type (
	Window       = app.Window
	Handler      = app.Handler
	NoHandler    = app.NoHandler
	HandlerFuncs = app.HandlerFuncs
	Telemetry    = app.Telemetry

	Vertex = renderer.Vertex
	Color  = renderer.Color

	Image = resource.Image
	Text  = resource.Text
	Sound = resource.Sound
)

const (
	KeyA      = input.KeyA
	KeyD      = input.KeyD
	KeyW      = input.KeyW
	KeyS      = input.KeyS
	KeyLeft   = input.KeyLeft
	KeyRight  = input.KeyRight
	KeyUp     = input.KeyUp
	KeyDown   = input.KeyDown
	KeySpace  = input.KeySpace
	KeyReturn = input.KeyReturn
	KeyEscape = input.KeyEscape
)

type Options struct {
	Title  string
	Width  int
	Height int
	// FPSCap defaults to 60
	FPSCap int
	VSync  bool
	// Handler receives the frame callbacks. Nil does nothing.
	Handler Handler
	// QuitKey defaults to "Escape"
	QuitKey string
	// MaxFrames stops the loop after this many frames, 0 runs until quit
	MaxFrames int
}

// CreateWindow opens the window and its GPU context. Failures to do so are
// fatal errors, see IsFatal.
func CreateWindow(options Options) (*Window, error) {
	config, err := app.Config{
		Title:     options.Title,
		Width:     options.Width,
		Height:    options.Height,
		FPSCap:    options.FPSCap,
		VSync:     options.VSync,
		QuitKey:   options.QuitKey,
		MaxFrames: options.MaxFrames,
	}.WithDefaults()
	if err != nil {
		return nil, err
	}
	drivers, err := openDrivers(config)
	if err != nil {
		return nil, err
	}
	return app.New(config, options.Handler, drivers)
}

// CreateImage loads the image at path into w's context
func CreateImage(w *Window, path string) (*Image, error) {
	return w.CreateImage(path)
}

// CreateText renders msg in white with the font at fontPath
func CreateText(w *Window, fontPath, msg string, size int) (*Text, error) {
	return w.CreateText(fontPath, msg, size)
}

// CreateSound loads the sound at path. It never fails, a sound that could
// not be loaded plays nothing.
func CreateSound(w *Window, path string) *Sound {
	return w.CreateSound(path)
}

// Show runs w until it quits and returns a process exit status
func Show(w *Window) int {
	if err := w.Show(); err != nil {
		log.Printf("error: %+v", err)
		return 1
	}
	return 0
}

// IsFatal reports whether err means rendering can not continue
func IsFatal(err error) bool {
	_, ok := fatal.As(err)
	return ok
}
