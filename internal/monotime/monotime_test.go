package monotime

import (
	"testing"
	"time"
)

func TestNowIsMonotonic(t *testing.T) {
	prev := Now()
	for i := 0; i < 1000; i++ {
		cur := Now()
		if cur < prev {
			t.Fatalf("clock went backwards: %v then %v", prev, cur)
		}
		prev = cur
	}
}

func TestSystemSleep(t *testing.T) {
	clock := System{}
	start := clock.Now()
	clock.Sleep(2 * time.Millisecond)
	if elapsed := clock.Now() - start; elapsed < 2*time.Millisecond {
		t.Errorf("expected to sleep at least 2ms, slept %v", elapsed)
	}
	// negative durations must return immediately
	clock.Sleep(-time.Second)
}
