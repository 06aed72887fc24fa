//go:build !gles && !headless

package simple2d

import (
	"github.com/silbinarywolf/simple2d/internal/app"
	"github.com/silbinarywolf/simple2d/internal/platform/sdl2"
	"github.com/silbinarywolf/simple2d/internal/renderer/desktop"
)

func openDrivers(config app.Config) (app.Drivers, error) {
	r := desktop.New()
	p, err := sdl2.Open(config.Platform(r.API()))
	if err != nil {
		return app.Drivers{}, err
	}
	return app.Drivers{
		Platform: p,
		Renderer: r,
		Mixer:    openMixer(),
	}, nil
}
