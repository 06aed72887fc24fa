package resource

import (
	"image"
	"image/color"

	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/platform"
	"github.com/silbinarywolf/simple2d/internal/renderer"
)

// Text is a single line of text rendered in opaque white with its own font
type Text struct {
	FontPath string
	Size     int

	renderer renderer.Renderer
	font     platform.Font
	message  string
	surface  *image.RGBA
	texture  renderer.Texture
}

// CreateText opens the font at fontPath and renders msg with it
func CreateText(r renderer.Renderer, opener FontOpener, fontPath, msg string, size int) (*Text, error) {
	font, err := opener.OpenFont(fontPath, size)
	if err != nil {
		return nil, fatal.Wrapf(fatal.FontLoad, err, "unable to open font %q", fontPath)
	}
	txt := &Text{
		FontPath: fontPath,
		Size:     size,
		renderer: r,
		font:     font,
	}
	if err := txt.SetMessage(msg); err != nil {
		font.Close()
		return nil, err
	}
	return txt, nil
}

// SetMessage renders msg with the retained font and replaces the texture
func (txt *Text) SetMessage(msg string) error {
	if txt.font == nil {
		return fatal.New(fatal.FontLoad, "text was freed")
	}
	surface, err := txt.font.Render(msg, color.White)
	if err != nil {
		return fatal.Wrapf(fatal.FontLoad, err, "unable to render %q", msg)
	}
	texture, err := txt.renderer.NewTexture(surface)
	if err != nil {
		return fatal.Wrapf(fatal.TextureUpload, err, "unable to upload text %q", msg)
	}
	if txt.texture != nil {
		txt.renderer.DeleteTexture(txt.texture)
	}
	txt.message = msg
	txt.surface = surface
	txt.texture = texture
	return nil
}

func (txt *Text) Message() string {
	return txt.message
}

func (txt *Text) Width() int {
	if txt.surface == nil {
		return 0
	}
	return txt.surface.Bounds().Dx()
}

func (txt *Text) Height() int {
	if txt.surface == nil {
		return 0
	}
	return txt.surface.Bounds().Dy()
}

// Surface is the rendered glyphs, nil after Free
func (txt *Text) Surface() *image.RGBA {
	return txt.surface
}

// Texture is nil after Free
func (txt *Text) Texture() renderer.Texture {
	return txt.texture
}

// Free releases the texture, the surface and then the font
func (txt *Text) Free() {
	if txt == nil {
		return
	}
	if txt.texture != nil {
		txt.renderer.DeleteTexture(txt.texture)
		txt.texture = nil
	}
	txt.surface = nil
	if txt.font != nil {
		txt.font.Close()
		txt.font = nil
	}
}
