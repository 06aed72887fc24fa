// monotime is the clock the frame loop paces itself with
package monotime

import "time"

// Now returns the time elapsed since the process started. It is monotonic
// and more precise than time.Now on Windows.
func Now() time.Duration {
	return now()
}

// Clock is the time source of the frame loop. Tests swap it for a fake so
// pacing can be checked without sleeping.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// System is the real clock
type System struct{}

var _ Clock = System{}

func (System) Now() time.Duration {
	return now()
}

func (System) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
