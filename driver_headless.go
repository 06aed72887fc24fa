//go:build headless

package simple2d

import (
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/simple2d/internal/app"
	"github.com/silbinarywolf/simple2d/internal/audio"
	"github.com/silbinarywolf/simple2d/internal/platform/headless"
	"github.com/silbinarywolf/simple2d/internal/renderer/software"
)

func openDrivers(config app.Config) (app.Drivers, error) {
	r := software.New()
	return app.Drivers{
		Platform: headless.New(config.Platform(r.API())),
		Renderer: r,
		Mixer:    &audio.Recorder{},
	}, nil
}

// Screenshot writes the last drawn frame to path as a PNG
func Screenshot(w *Window, path string) error {
	r, ok := w.Renderer().(*software.Renderer)
	if !ok || r.Frame() == nil {
		return errors.New("no software framebuffer to capture")
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create screenshot")
	}
	if err := png.Encode(file, r.Frame()); err != nil {
		file.Close()
		return errors.Wrap(err, "unable to encode screenshot")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "unable to write screenshot")
	}
	return nil
}
