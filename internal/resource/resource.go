// resource owns images, text and sounds. Images and text hold a GPU texture
// and must be created after the window's context exists and freed before
// the window is torn down.
package resource

import (
	"image"

	"github.com/silbinarywolf/simple2d/internal/platform"
)

// ImageLoader decodes an image file into pixels
type ImageLoader interface {
	LoadImage(path string) (*image.RGBA, error)
}

// FontOpener opens a font file at a point size
type FontOpener interface {
	OpenFont(path string, size int) (platform.Font, error)
}
