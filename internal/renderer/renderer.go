// renderer is the primitive drawing contract every GPU backend implements.
//
// The backend is picked by build tags in the root package, callers only ever
// see the Renderer interface.
package renderer

import (
	"image"

	"golang.org/x/image/draw"
)

// API is the graphics API family a backend needs its context created with
type API int

const (
	// Desktop is OpenGL 2.1
	Desktop API = iota
	// Embedded is OpenGL ES 2.0
	Embedded
	// Software rasterizes on the CPU and needs no GPU context
	Software
)

func (api API) String() string {
	switch api {
	case Desktop:
		return "desktop"
	case Embedded:
		return "embedded"
	case Software:
		return "software"
	}
	return "unknown"
}

// Color is a RGBA color with each channel in the 0-1 range
type Color struct {
	R, G, B, A float32
}

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// Vertex is a position in window pixels and its color
type Vertex struct {
	X, Y float32
	Color
}

// Texture is an image uploaded to the renderer
type Texture interface {
	Size() (width, height int)
}

type Renderer interface {
	API() API
	// Init sets up a pixel-space projection with (0,0) at the top-left. It
	// must be called exactly once, after the context exists and before any
	// draw call.
	Init(width, height int) error
	Clear(c Color)
	DrawTriangle(v1, v2, v3 Vertex)
	NewTexture(img *image.RGBA) (Texture, error)
	// DrawTexture binds tex, draws it at its native size with its top-left
	// corner at (x, y) and unbinds it.
	DrawTexture(tex Texture, x, y int) error
	DeleteTexture(tex Texture)
	Close()
}

// DrawQuad draws v1..v4 as the triangles (v1, v2, v3) and (v3, v4, v1), so
// the implicit diagonal is always v1-v3.
func DrawQuad(r Renderer, v1, v2, v3, v4 Vertex) {
	r.DrawTriangle(v1, v2, v3)
	r.DrawTriangle(v3, v4, v1)
}

// Tight returns img with its origin at (0,0) and no row padding, copying
// only when needed. GPU uploads need this layout.
func Tight(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	if bounds.Min == (image.Point{}) && img.Stride == 4*bounds.Dx() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
