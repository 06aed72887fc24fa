package software

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/silbinarywolf/simple2d/internal/renderer"
)

func newRenderer(t *testing.T, width, height int) *Renderer {
	t.Helper()
	r := New()
	if err := r.Init(width, height); err != nil {
		t.Fatal(err)
	}
	r.Clear(renderer.Black)
	return r
}

func vertex(x, y float32, c renderer.Color) renderer.Vertex {
	return renderer.Vertex{X: x, Y: y, Color: c}
}

type quad [4]renderer.Vertex

var quadTests = []struct {
	Name string
	Quad quad
}{
	{
		Name: "unit square, uniform white",
		Quad: quad{
			vertex(10, 10, renderer.White),
			vertex(11, 10, renderer.White),
			vertex(11, 11, renderer.White),
			vertex(10, 11, renderer.White),
		},
	},
	{
		Name: "skewed convex quad, per-vertex color",
		Quad: quad{
			vertex(2.25, 3.5, renderer.Color{R: 1, G: 0, B: 0, A: 1}),
			vertex(17.75, 1.25, renderer.Color{R: 0, G: 1, B: 0, A: 1}),
			vertex(19.5, 14.75, renderer.Color{R: 0, G: 0, B: 1, A: 1}),
			vertex(4.125, 18.5, renderer.Color{R: 1, G: 1, B: 1, A: 0.5}),
		},
	},
	{
		Name: "counter-clockwise winding",
		Quad: quad{
			vertex(3, 3, renderer.White),
			vertex(3, 17, renderer.Color{R: 0, G: 1, B: 1, A: 1}),
			vertex(16, 17, renderer.White),
			vertex(16, 3, renderer.Color{R: 1, G: 0, B: 1, A: 1}),
		},
	},
}

func TestQuadMatchesTwoTriangles(t *testing.T) {
	for _, test := range quadTests {
		q := test.Quad

		fromQuad := newRenderer(t, 24, 24)
		renderer.DrawQuad(fromQuad, q[0], q[1], q[2], q[3])

		fromTriangles := newRenderer(t, 24, 24)
		fromTriangles.DrawTriangle(q[0], q[1], q[2])
		fromTriangles.DrawTriangle(q[2], q[3], q[0])

		if !bytes.Equal(fromQuad.Frame().Pix, fromTriangles.Frame().Pix) {
			t.Errorf("%s: quad and triangle pair differ", test.Name)
		}
	}
}

func TestUnitSquareCoversOnePixel(t *testing.T) {
	q := quadTests[0].Quad
	r := newRenderer(t, 24, 24)
	renderer.DrawQuad(r, q[0], q[1], q[2], q[3])

	frame := r.Frame()
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			got := frame.RGBAAt(x, y)
			want := color.RGBA{A: 255}
			if x == 10 && y == 10 {
				want = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			if got != want {
				t.Fatalf("pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

// insideConvex is a reference point-in-quad test, -1 outside, 0 on an edge
// and 1 strictly inside.
func insideConvex(q quad, px, py float64) int {
	sign := 0
	onEdge := false
	for i := 0; i < 4; i++ {
		a, b := q[i], q[(i+1)%4]
		cross := (float64(b.X)-float64(a.X))*(py-float64(a.Y)) - (float64(b.Y)-float64(a.Y))*(px-float64(a.X))
		switch {
		case cross == 0:
			onEdge = true
		case sign == 0 && cross > 0:
			sign = 1
		case sign == 0 && cross < 0:
			sign = -1
		case (cross > 0) != (sign > 0):
			return -1
		}
	}
	if onEdge {
		return 0
	}
	return 1
}

// Drawing with half alpha over black makes any pixel covered twice brighter
// than one covered once, so overlap along the diagonal would show up.
func TestQuadHasNoGapOrOverlap(t *testing.T) {
	half := renderer.Color{R: 1, G: 1, B: 1, A: 0.5}
	for _, test := range quadTests {
		var q quad
		for i, v := range test.Quad {
			v.Color = half
			q[i] = v
		}
		r := newRenderer(t, 24, 24)
		renderer.DrawQuad(r, q[0], q[1], q[2], q[3])

		frame := r.Frame()
		for y := 0; y < 24; y++ {
			for x := 0; x < 24; x++ {
				red := frame.RGBAAt(x, y).R
				switch insideConvex(q, float64(x)+0.5, float64(y)+0.5) {
				case 1:
					if red != 128 {
						t.Fatalf("%s: pixel (%d, %d) inside the quad has red %d, want 128", test.Name, x, y, red)
					}
				case -1:
					if red != 0 {
						t.Fatalf("%s: pixel (%d, %d) outside the quad has red %d, want 0", test.Name, x, y, red)
					}
				default:
					if red != 0 && red != 128 {
						t.Fatalf("%s: pixel (%d, %d) on the border has red %d", test.Name, x, y, red)
					}
				}
			}
		}
	}
}

func TestTriangleWindingDoesNotMatter(t *testing.T) {
	a := vertex(1, 1, renderer.Color{R: 1, G: 0, B: 0, A: 1})
	b := vertex(20, 4, renderer.Color{R: 0, G: 1, B: 0, A: 1})
	c := vertex(6, 19, renderer.Color{R: 0, G: 0, B: 1, A: 1})

	clockwise := newRenderer(t, 24, 24)
	clockwise.DrawTriangle(a, b, c)
	counterClockwise := newRenderer(t, 24, 24)
	counterClockwise.DrawTriangle(a, c, b)

	if !bytes.Equal(clockwise.Frame().Pix, counterClockwise.Frame().Pix) {
		t.Errorf("winding order changed the rasterized pixels")
	}
}

func TestTriangleInterpolatesColor(t *testing.T) {
	red := renderer.Color{R: 1, G: 0, B: 0, A: 1}
	r := newRenderer(t, 8, 8)
	r.DrawTriangle(vertex(0, 0, red), vertex(16, 0, red), vertex(0, 16, red))
	if got := r.Frame().RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected solid red, got %v", got)
	}
}

func TestDegenerateTriangleDrawsNothing(t *testing.T) {
	r := newRenderer(t, 8, 8)
	before := append([]byte(nil), r.Frame().Pix...)
	r.DrawTriangle(vertex(0, 0, renderer.White), vertex(4, 4, renderer.White), vertex(8, 8, renderer.White))
	if !bytes.Equal(before, r.Frame().Pix) {
		t.Errorf("a zero-area triangle changed the framebuffer")
	}
}

func TestTextureLifecycle(t *testing.T) {
	r := newRenderer(t, 8, 8)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	tex, err := r.NewTexture(img)
	if err != nil {
		t.Fatal(err)
	}
	if r.LiveTextures() != 1 {
		t.Fatalf("expected 1 live texture, got %d", r.LiveTextures())
	}
	if w, h := tex.Size(); w != 2 || h != 2 {
		t.Fatalf("unexpected texture size %dx%d", w, h)
	}

	if err := r.DrawTexture(tex, 3, 4); err != nil {
		t.Fatal(err)
	}
	frame := r.Frame()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, p := range []image.Point{{3, 4}, {4, 4}, {3, 5}, {4, 5}} {
		if got := frame.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("pixel %v: got %v, want %v", p, got, white)
		}
	}
	if got := frame.RGBAAt(5, 4); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel outside the texture was drawn: %v", got)
	}

	r.DeleteTexture(tex)
	if r.LiveTextures() != 0 {
		t.Fatalf("expected 0 live textures, got %d", r.LiveTextures())
	}
	if err := r.DrawTexture(tex, 0, 0); err == nil {
		t.Errorf("expected drawing a deleted texture to fail")
	}
}

func TestInitOnce(t *testing.T) {
	r := New()
	if _, err := r.NewTexture(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Errorf("expected upload before init to fail")
	}
	if err := r.Init(4, 4); err != nil {
		t.Fatal(err)
	}
	if err := r.Init(4, 4); err == nil {
		t.Errorf("expected second init to fail")
	}
	if err := New().Init(0, 4); err == nil {
		t.Errorf("expected zero width to fail")
	}
}
