package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/silbinarywolf/simple2d"
	"github.com/silbinarywolf/simple2d/internal/asset"
	"github.com/silbinarywolf/simple2d/internal/ent"
)

var (
	title    = flag.String("title", "simple2d", "window title")
	width    = flag.Int("width", 640, "window width in pixels")
	height   = flag.Int("height", 480, "window height in pixels")
	fps      = flag.Int("fps", 60, "frames per second cap")
	vsync    = flag.Bool("vsync", true, "wait for vertical sync")
	fontSize = flag.Int("font-size", 18, "telemetry text size")
	frames   = flag.Int("frames", 0, "quit after this many frames, 0 runs until escape")
	assets   = flag.String("assets", "", "directory to unpack the demo assets to, defaults to a temporary directory")
	shot     = flag.String("screenshot", "", "headless builds only: write the last frame to this PNG")
)

type demo struct {
	simple2d.NoHandler

	player ent.Player
	sprite *simple2d.Image
	label  *simple2d.Text
	beep   *simple2d.Sound
}

func (d *demo) groundY(w *simple2d.Window) float32 {
	return float32(w.Config().Height) - 40
}

func (d *demo) KeyPressed(w *simple2d.Window, key string) {
	if key == simple2d.KeyReturn {
		d.beep.Play()
	}
}

func (d *demo) KeyHeld(w *simple2d.Window, key string) {
	switch key {
	case simple2d.KeyA, simple2d.KeyLeft:
		d.player.Inputs.IsHoldingLeft = true
	case simple2d.KeyD, simple2d.KeyRight:
		d.player.Inputs.IsHoldingRight = true
	case simple2d.KeySpace, simple2d.KeyW, simple2d.KeyUp:
		d.player.Inputs.IsHoldingJump = true
	}
}

func (d *demo) Update(w *simple2d.Window) error {
	if d.player.Update(d.groundY(w)) {
		d.beep.Play()
	}
	// Held keys are reported again next frame
	d.player.Inputs = ent.PlayerInput{}

	telemetry := w.Telemetry()
	if telemetry.Frames%15 == 1 {
		msg := fmt.Sprintf("fps %.1f  loop %v  delay %v  cursor %d,%d",
			telemetry.FPS, telemetry.Loop, telemetry.Delay, telemetry.CursorX, telemetry.CursorY)
		if err := d.label.SetMessage(msg); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) Render(w *simple2d.Window) error {
	config := w.Config()
	right, bottom := float32(config.Width), float32(config.Height)
	top := d.groundY(w)

	sky, horizon := simple2d.Color{R: 0.3, G: 0.5, B: 0.9, A: 1}, simple2d.Color{R: 0.8, G: 0.9, B: 1, A: 1}
	w.DrawQuad(
		simple2d.Vertex{X: 0, Y: 0, Color: sky},
		simple2d.Vertex{X: right, Y: 0, Color: sky},
		simple2d.Vertex{X: right, Y: top, Color: horizon},
		simple2d.Vertex{X: 0, Y: top, Color: horizon},
	)
	w.DrawQuad(
		simple2d.Vertex{X: 0, Y: top, Color: simple2d.Color{R: 0.2, G: 0.6, B: 0.2, A: 1}},
		simple2d.Vertex{X: right, Y: top, Color: simple2d.Color{R: 0.2, G: 0.6, B: 0.2, A: 1}},
		simple2d.Vertex{X: right, Y: bottom, Color: simple2d.Color{R: 0.1, G: 0.3, B: 0.1, A: 1}},
		simple2d.Vertex{X: 0, Y: bottom, Color: simple2d.Color{R: 0.1, G: 0.3, B: 0.1, A: 1}},
	)
	w.DrawTriangle(
		simple2d.Vertex{X: right - 120, Y: top, Color: simple2d.Color{R: 0.5, G: 0.5, B: 0.55, A: 1}},
		simple2d.Vertex{X: right - 60, Y: top - 90, Color: simple2d.Color{R: 1, G: 1, B: 1, A: 1}},
		simple2d.Vertex{X: right, Y: top, Color: simple2d.Color{R: 0.4, G: 0.4, B: 0.45, A: 1}},
	)
	if err := d.player.Draw(w, d.sprite); err != nil {
		return err
	}
	if err := w.DrawText(d.label, 8, 8); err != nil {
		return err
	}
	if *shot != "" && w.Telemetry().Frames == uint64(*frames) {
		return simple2d.Screenshot(w, *shot)
	}
	return nil
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	dir := *assets
	if dir == "" {
		tmp, err := os.MkdirTemp("", "simple2d-demo")
		if err != nil {
			log.Fatal(err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	paths, err := asset.WriteTo(dir)
	if err != nil {
		log.Fatal(err)
	}

	d := &demo{}
	w, err := simple2d.CreateWindow(simple2d.Options{
		Title:     *title,
		Width:     *width,
		Height:    *height,
		FPSCap:    *fps,
		VSync:     *vsync,
		Handler:   d,
		MaxFrames: *frames,
	})
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if d.sprite, err = simple2d.CreateImage(w, paths.Player); err != nil {
		log.Fatalf("%+v", err)
	}
	defer d.sprite.Free()
	if d.label, err = simple2d.CreateText(w, paths.Font, "simple2d", *fontSize); err != nil {
		log.Fatalf("%+v", err)
	}
	defer d.label.Free()
	d.beep = simple2d.CreateSound(w, paths.Beep)
	defer d.beep.Free()

	d.player.Init(d.sprite)
	d.player.X = float32(*width)/2 - d.player.Width/2
	d.player.Y = d.groundY(w) - d.player.Height

	return simple2d.Show(w)
}
