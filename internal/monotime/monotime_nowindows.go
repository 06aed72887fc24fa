//go:build !windows

package monotime

import (
	"time"
)

var processStart = time.Now()

func now() time.Duration {
	// time.Since reads the monotonic clock reading carried by processStart
	return time.Since(processStart)
}
