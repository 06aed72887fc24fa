package app

import "time"

// Telemetry is refreshed once per frame, before Update is called
type Telemetry struct {
	CursorX int
	CursorY int
	// Frames is the number of frames started since Show
	Frames uint64
	// Elapsed is the time since the loop started
	Elapsed time.Duration
	// Loop is how long the previous frame took, excluding its sleep
	Loop time.Duration
	// Delay is how long this frame slept to hold the fps cap
	Delay time.Duration
	// FPS is the average frame rate since the loop started
	FPS float64
}

func (w *Window) Telemetry() Telemetry {
	return w.telemetry
}
