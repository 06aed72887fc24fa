// desktop draws with the OpenGL 2.1 fixed function pipeline
package desktop

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"

	"github.com/silbinarywolf/simple2d/internal/renderer"
)

var _ renderer.Renderer = new(Renderer)

type Renderer struct {
	initialized bool
	live        map[*texture]struct{}
}

type texture struct {
	id     uint32
	width  int
	height int
}

func (t *texture) Size() (int, int) {
	return t.width, t.height
}

func New() *Renderer {
	return &Renderer{
		live: make(map[*texture]struct{}),
	}
}

func (r *Renderer) API() renderer.API {
	return renderer.Desktop
}

func (r *Renderer) Init(width, height int) error {
	if r.initialized {
		return errors.New("desktop renderer already initialized")
	}
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "unable to load OpenGL 2.1 functions")
	}
	r.initialized = true

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Enable(gl.BLEND)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return nil
}

func (r *Renderer) Clear(c renderer.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) DrawTriangle(v1, v2, v3 renderer.Vertex) {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Begin(gl.TRIANGLES)
	for _, v := range [...]renderer.Vertex{v1, v2, v3} {
		gl.Color4f(v.R, v.G, v.B, v.A)
		gl.Vertex2f(v.X, v.Y)
	}
	gl.End()
}

func (r *Renderer) NewTexture(img *image.RGBA) (renderer.Texture, error) {
	if !r.initialized {
		return nil, errors.New("desktop renderer not initialized")
	}
	if img == nil {
		return nil, errors.New("nil image")
	}
	img = renderer.Tight(img)
	bounds := img.Bounds()

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return nil, errors.New("unable to generate texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	var pixels unsafe.Pointer
	if len(img.Pix) > 0 {
		pixels = gl.Ptr(img.Pix)
	}
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		pixels,
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return nil, errors.Errorf("glTexImage2D failed with 0x%x", code)
	}

	tex := &texture{
		id:     id,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	r.live[tex] = struct{}{}
	return tex, nil
}

func (r *Renderer) DrawTexture(t renderer.Texture, x, y int) error {
	tex, ok := t.(*texture)
	if !ok {
		return errors.Errorf("texture %T was not created by this renderer", t)
	}
	if _, ok := r.live[tex]; !ok || !gl.IsTexture(tex.id) {
		return errors.Errorf("texture %d is not a live texture", tex.id)
	}
	x0, y0 := float32(x), float32(y)
	x1, y1 := x0+float32(tex.width), y0+float32(tex.height)

	// Surfaces are premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.Color4f(1, 1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x0, y0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x1, y0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x1, y1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x0, y1)
	gl.End()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.TEXTURE_2D)
	return nil
}

func (r *Renderer) DeleteTexture(t renderer.Texture) {
	tex, ok := t.(*texture)
	if !ok {
		return
	}
	if _, ok := r.live[tex]; !ok {
		return
	}
	delete(r.live, tex)
	gl.DeleteTextures(1, &tex.id)
}

// Close runs after the GL context is destroyed, which already released every
// texture, so it only drops the bookkeeping.
func (r *Renderer) Close() {
	r.live = make(map[*texture]struct{})
	r.initialized = false
}
