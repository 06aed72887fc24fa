package app

import "time"

// pacer works out how long each frame has to sleep to hold a frame rate.
// All times are offsets from the same monotonic clock.
type pacer struct {
	target time.Duration
	start  time.Duration
	begin  time.Duration
	frames uint64
}

type pace struct {
	frames  uint64
	elapsed time.Duration
	loop    time.Duration
	delay   time.Duration
	fps     float64
}

func newPacer(fpsCap int, now time.Duration) pacer {
	return pacer{
		target: time.Second / time.Duration(fpsCap),
		start:  now,
		begin:  now,
	}
}

// tick counts a frame that started its pacing step at now
func (p *pacer) tick(now time.Duration) pace {
	p.frames++
	result := pace{
		frames:  p.frames,
		elapsed: now - p.start,
		loop:    now - p.begin,
	}
	if result.elapsed > 0 {
		result.fps = float64(p.frames) / result.elapsed.Seconds()
	}
	if result.delay = p.target - result.loop; result.delay < 0 {
		result.delay = 0
	}
	return result
}

// woke marks the end of the frame's sleep, the next frame's work is
// measured from here
func (p *pacer) woke(now time.Duration) {
	p.begin = now
}
