package renderer

import (
	"image"
	"image/color"
	"testing"
)

type triangle [3]Vertex

type recordingRenderer struct {
	triangles []triangle
}

func (r *recordingRenderer) API() API                                { return Software }
func (r *recordingRenderer) Init(width, height int) error            { return nil }
func (r *recordingRenderer) Clear(c Color)                           {}
func (r *recordingRenderer) NewTexture(*image.RGBA) (Texture, error) { return nil, nil }
func (r *recordingRenderer) DrawTexture(Texture, int, int) error     { return nil }
func (r *recordingRenderer) DeleteTexture(Texture)                   {}
func (r *recordingRenderer) Close()                                  {}

func (r *recordingRenderer) DrawTriangle(v1, v2, v3 Vertex) {
	r.triangles = append(r.triangles, triangle{v1, v2, v3})
}

func TestDrawQuadSplitsOnDiagonalV1V3(t *testing.T) {
	v1 := Vertex{X: 0, Y: 0, Color: Color{1, 0, 0, 1}}
	v2 := Vertex{X: 10, Y: 0, Color: Color{0, 1, 0, 1}}
	v3 := Vertex{X: 10, Y: 10, Color: Color{0, 0, 1, 1}}
	v4 := Vertex{X: 0, Y: 10, Color: White}

	r := &recordingRenderer{}
	DrawQuad(r, v1, v2, v3, v4)

	want := []triangle{
		{v1, v2, v3},
		{v3, v4, v1},
	}
	if len(r.triangles) != len(want) {
		t.Fatalf("expected %d triangles, got %d", len(want), len(r.triangles))
	}
	for i := range want {
		if r.triangles[i] != want[i] {
			t.Errorf("triangle %d: got %+v, want %+v", i, r.triangles[i], want[i])
		}
	}
}

func TestTight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if Tight(img) != img {
		t.Errorf("an already tight image should be returned as-is")
	}

	img.Set(2, 2, color.RGBA{R: 255, A: 255})
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	tight := Tight(sub)
	if tight == sub {
		t.Fatalf("expected a copy of a sub image")
	}
	if got := tight.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Fatalf("unexpected bounds %v", got)
	}
	if tight.Stride != 8 {
		t.Errorf("expected stride 8, got %d", tight.Stride)
	}
	if got := tight.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel not carried over, got %v", got)
	}
}
