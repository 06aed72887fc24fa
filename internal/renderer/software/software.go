// software is a CPU rasterizer used by headless builds and as the reference
// the GPU backends are compared against.
package software

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/silbinarywolf/simple2d/internal/renderer"
)

const (
	// subpixelBits is the fixed-point precision vertices are snapped to.
	// Edge functions are then exact integers, so two triangles sharing an
	// edge agree on every pixel center along it.
	subpixelBits = 8
	subpixelOne  = 1 << subpixelBits

	// coordinateLimit keeps edge function products inside int64
	coordinateLimit = 1 << 29
)

var _ renderer.Renderer = new(Renderer)

type Renderer struct {
	frame  *image.RGBA
	live   map[*texture]struct{}
	bound  *texture
	closed bool
}

type texture struct {
	img *image.RGBA
}

func (t *texture) Size() (int, int) {
	bounds := t.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func New() *Renderer {
	return &Renderer{
		live: make(map[*texture]struct{}),
	}
}

func (r *Renderer) API() renderer.API {
	return renderer.Software
}

func (r *Renderer) Init(width, height int) error {
	if r.frame != nil {
		return errors.New("software renderer already initialized")
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	r.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Frame is the framebuffer drawn into. It is nil before Init.
func (r *Renderer) Frame() *image.RGBA {
	return r.frame
}

// LiveTextures is the number of textures created and not yet deleted
func (r *Renderer) LiveTextures() int {
	return len(r.live)
}

func (r *Renderer) Clear(c renderer.Color) {
	if r.frame == nil {
		return
	}
	draw.Draw(r.frame, r.frame.Bounds(), image.NewUniform(premultiply(c)), image.Point{}, draw.Src)
}

type point struct {
	x, y int64
}

func snap(x, y float32) point {
	return point{
		x: clampCoordinate(int64(math.Round(float64(x) * subpixelOne))),
		y: clampCoordinate(int64(math.Round(float64(y) * subpixelOne))),
	}
}

func clampCoordinate(v int64) int64 {
	if v > coordinateLimit {
		return coordinateLimit
	}
	if v < -coordinateLimit {
		return -coordinateLimit
	}
	return v
}

// edge is twice the signed area of (a, b, p)
func edge(a, b, p point) int64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

// owns decides pixels exactly on the edge a->b. The rule only has to give
// opposite answers for a->b and b->a, which is what two neighbouring
// triangles of the same winding see.
func owns(w int64, a, b point) bool {
	if w > 0 {
		return true
	}
	if w < 0 {
		return false
	}
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x-a.x > 0)
}

func (r *Renderer) DrawTriangle(v1, v2, v3 renderer.Vertex) {
	if r.frame == nil {
		return
	}
	p0, p1, p2 := snap(v1.X, v1.Y), snap(v2.X, v2.Y), snap(v3.X, v3.Y)
	c0, c1, c2 := v1.Color, v2.Color, v3.Color
	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
		c1, c2 = c2, c1
		area = -area
	}

	bounds := r.frame.Bounds()
	minX := max(int(min(p0.x, p1.x, p2.x)>>subpixelBits)-1, bounds.Min.X)
	maxX := min(int(max(p0.x, p1.x, p2.x)>>subpixelBits)+1, bounds.Max.X-1)
	minY := max(int(min(p0.y, p1.y, p2.y)>>subpixelBits)-1, bounds.Min.Y)
	maxY := min(int(max(p0.y, p1.y, p2.y)>>subpixelBits)+1, bounds.Max.Y-1)

	invArea := 1 / float64(area)
	for y := minY; y <= maxY; y++ {
		py := int64(y)*subpixelOne + subpixelOne/2
		for x := minX; x <= maxX; x++ {
			p := point{x: int64(x)*subpixelOne + subpixelOne/2, y: py}
			w0 := edge(p1, p2, p)
			w1 := edge(p2, p0, p)
			w2 := edge(p0, p1, p)
			if !owns(w0, p1, p2) || !owns(w1, p2, p0) || !owns(w2, p0, p1) {
				continue
			}
			b0, b1, b2 := float64(w0)*invArea, float64(w1)*invArea, float64(w2)*invArea
			r.blend(x, y, renderer.Color{
				R: float32(b0*float64(c0.R) + b1*float64(c1.R) + b2*float64(c2.R)),
				G: float32(b0*float64(c0.G) + b1*float64(c1.G) + b2*float64(c2.G)),
				B: float32(b0*float64(c0.B) + b1*float64(c1.B) + b2*float64(c2.B)),
				A: float32(b0*float64(c0.A) + b1*float64(c1.A) + b2*float64(c2.A)),
			})
		}
	}
}

// blend composites straight-alpha c over the pixel at (x, y)
func (r *Renderer) blend(x, y int, c renderer.Color) {
	a := clamp01(float64(c.A))
	i := r.frame.PixOffset(x, y)
	pix := r.frame.Pix[i : i+4 : i+4]
	pix[0] = over(clamp01(float64(c.R))*a, pix[0], a)
	pix[1] = over(clamp01(float64(c.G))*a, pix[1], a)
	pix[2] = over(clamp01(float64(c.B))*a, pix[2], a)
	pix[3] = over(a, pix[3], a)
}

func over(src float64, dst uint8, alpha float64) uint8 {
	v := src + float64(dst)/255*(1-alpha)
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func premultiply(c renderer.Color) color.RGBA {
	a := clamp01(float64(c.A))
	return color.RGBA{
		R: uint8(math.Round(clamp01(float64(c.R)) * a * 255)),
		G: uint8(math.Round(clamp01(float64(c.G)) * a * 255)),
		B: uint8(math.Round(clamp01(float64(c.B)) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func (r *Renderer) NewTexture(img *image.RGBA) (renderer.Texture, error) {
	if r.frame == nil {
		return nil, errors.New("software renderer not initialized")
	}
	if r.closed {
		return nil, errors.New("software renderer closed")
	}
	if img == nil {
		return nil, errors.New("nil image")
	}
	src := renderer.Tight(img)
	owned := image.NewRGBA(src.Bounds())
	copy(owned.Pix, src.Pix)
	tex := &texture{img: owned}
	r.live[tex] = struct{}{}
	return tex, nil
}

func (r *Renderer) DrawTexture(tex renderer.Texture, x, y int) error {
	t, ok := tex.(*texture)
	if !ok || t == nil {
		return errors.Errorf("texture %T does not belong to the software renderer", tex)
	}
	if _, ok := r.live[t]; !ok {
		return errors.New("texture has been deleted")
	}
	if r.bound != nil {
		return errors.New("another texture is already bound")
	}
	r.bound = t
	width, height := t.Size()
	draw.Draw(r.frame, image.Rect(x, y, x+width, y+height), t.img, image.Point{}, draw.Over)
	r.bound = nil
	return nil
}

func (r *Renderer) DeleteTexture(tex renderer.Texture) {
	t, ok := tex.(*texture)
	if !ok || t == nil {
		return
	}
	delete(r.live, t)
}

func (r *Renderer) Close() {
	r.closed = true
}
