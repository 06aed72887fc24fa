package app

import (
	"github.com/silbinarywolf/simple2d/internal/fatal"
	"github.com/silbinarywolf/simple2d/internal/renderer"
	"github.com/silbinarywolf/simple2d/internal/resource"
)

func (w *Window) DrawTriangle(v1, v2, v3 renderer.Vertex) {
	w.renderer.DrawTriangle(v1, v2, v3)
}

// DrawQuad draws v1..v4 as the triangles (v1, v2, v3) and (v3, v4, v1)
func (w *Window) DrawQuad(v1, v2, v3, v4 renderer.Vertex) {
	renderer.DrawQuad(w.renderer, v1, v2, v3, v4)
}

// DrawImage draws img at its native size with its top-left corner at (x, y)
func (w *Window) DrawImage(img *resource.Image, x, y int) error {
	if img == nil || img.Texture() == nil {
		return fatal.New(fatal.TextureBind, "image has no texture")
	}
	if err := w.renderer.DrawTexture(img.Texture(), x, y); err != nil {
		return fatal.Wrapf(fatal.TextureBind, err, "unable to draw image %q", img.Path)
	}
	return nil
}

// DrawText draws txt with its top-left corner at (x, y)
func (w *Window) DrawText(txt *resource.Text, x, y int) error {
	if txt == nil || txt.Texture() == nil {
		return fatal.New(fatal.TextureBind, "text has no texture")
	}
	if err := w.renderer.DrawTexture(txt.Texture(), x, y); err != nil {
		return fatal.Wrapf(fatal.TextureBind, err, "unable to draw text %q", txt.Message())
	}
	return nil
}

// CreateImage loads an image into this window's context
func (w *Window) CreateImage(path string) (*resource.Image, error) {
	return resource.CreateImage(w.renderer, w.platform, path)
}

// CreateText renders msg with the font at fontPath into this window's context
func (w *Window) CreateText(fontPath, msg string, size int) (*resource.Text, error) {
	return resource.CreateText(w.renderer, w.platform, fontPath, msg, size)
}

// CreateSound decodes a sound for this window's mixer
func (w *Window) CreateSound(path string) *resource.Sound {
	return resource.CreateSound(w.mixer, path)
}
