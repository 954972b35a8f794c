package cereal

import (
	"golang.org/x/sys/unix"
)

// GetTime is CLOCK_MONOTONIC in nanoseconds, the logMonoTime clock.
func GetTime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return uint64(ts.Nano())
}
