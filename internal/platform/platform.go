// platform is the window, GPU context, input and asset decoding a Window
// runs on top of.
package platform

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/silbinarywolf/simple2d/internal/renderer"
)

type Config struct {
	Title  string
	Width  int
	Height int
	// VSync is a hint, failing to enable it only logs a warning
	VSync bool
	// API is the context profile the renderer needs
	API renderer.API
}

// Font is an opened font at a fixed size
type Font interface {
	// Render rasterizes msg on a single line with anti-aliasing
	Render(msg string, c color.Color) (*image.RGBA, error)
	Close() error
}

type Platform interface {
	// PollEvent returns the next pending event without blocking. The bool is
	// false once the queue is empty.
	PollEvent() (Event, bool)
	// AppendHeldKeys appends the names of every key held down right now
	AppendHeldKeys(dst []string) []string
	CursorPosition() (x, y int)
	// Present swaps the back buffer to the window
	Present()

	LoadImage(path string) (*image.RGBA, error)
	OpenFont(path string, size int) (Font, error)

	// Teardown, called in this order by the window:
	// QuitImage, (audio), DestroyContext, (renderer), DestroyWindow, Quit.
	QuitImage()
	DestroyContext()
	DestroyWindow()
	Quit()
}

// ToRGBA converts img to an *image.RGBA with its origin at (0,0)
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
