package app

import (
	"github.com/silbinarywolf/simple2d/internal/platform"
)

func (w *Window) run() {
	pacer := newPacer(w.config.FPSCap, w.clock.Now())
	for w.state == Running {
		w.frame(&pacer)
	}
}

// frame runs one iteration. A frame that asks to quit still finishes.
func (w *Window) frame(pacer *pacer) {
	w.renderer.Clear(Background)

	pace := pacer.tick(w.clock.Now())
	w.clock.Sleep(pace.delay)
	pacer.woke(w.clock.Now())

	w.handleEvents()
	w.heldKeys = w.platform.AppendHeldKeys(w.heldKeys[:0])
	for _, key := range w.heldKeys {
		w.handler.KeyHeld(w, key)
	}

	x, y := w.platform.CursorPosition()
	w.telemetry = Telemetry{
		CursorX: x,
		CursorY: y,
		Frames:  pace.frames,
		Elapsed: pace.elapsed,
		Loop:    pace.loop,
		Delay:   pace.delay,
		FPS:     pace.fps,
	}

	if err := w.handler.Update(w); err != nil {
		w.fail(err)
	}
	if err := w.handler.Render(w); err != nil {
		w.fail(err)
	}
	w.platform.Present()

	if w.config.MaxFrames > 0 && pace.frames >= uint64(w.config.MaxFrames) {
		w.Quit()
	}
}

// handleEvents drains every pending event without blocking
func (w *Window) handleEvents() {
	for {
		event, ok := w.platform.PollEvent()
		if !ok {
			return
		}
		switch event := event.(type) {
		case platform.Quit:
			w.Quit()
		case platform.KeyPress:
			if event.Name == w.config.QuitKey {
				w.Quit()
				continue
			}
			w.handler.KeyPressed(w, event.Name)
		}
	}
}

// fail keeps the first callback error and stops the loop
func (w *Window) fail(err error) {
	if w.err == nil {
		w.err = err
	}
	w.Quit()
}
