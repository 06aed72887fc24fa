package resource

import (
	"image"

	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/renderer"
)

type Image struct {
	Path string

	renderer renderer.Renderer
	surface  *image.RGBA
	texture  renderer.Texture
}

// CreateImage loads the image at path and uploads it as a texture
func CreateImage(r renderer.Renderer, loader ImageLoader, path string) (*Image, error) {
	surface, err := loader.LoadImage(path)
	if err != nil {
		return nil, fatal.Wrapf(fatal.ImageLoad, err, "unable to load image %q", path)
	}
	texture, err := r.NewTexture(surface)
	if err != nil {
		return nil, fatal.Wrapf(fatal.TextureUpload, err, "unable to upload image %q", path)
	}
	return &Image{
		Path:     path,
		renderer: r,
		surface:  surface,
		texture:  texture,
	}, nil
}

func (img *Image) Width() int {
	return img.surface.Bounds().Dx()
}

func (img *Image) Height() int {
	return img.surface.Bounds().Dy()
}

// Surface is the decoded pixels, nil after Free
func (img *Image) Surface() *image.RGBA {
	return img.surface
}

// Texture is nil after Free
func (img *Image) Texture() renderer.Texture {
	return img.texture
}

// Free releases the texture and then the surface
func (img *Image) Free() {
	if img == nil {
		return
	}
	if img.texture != nil {
		img.renderer.DeleteTexture(img.texture)
		img.texture = nil
	}
	img.surface = nil
}
