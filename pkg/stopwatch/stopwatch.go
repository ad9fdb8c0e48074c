package stopwatch

import (
	"golang.org/x/sys/unix"
)

// Seconds returns the current wall-clock time as fractional seconds with
// microsecond resolution, read via gettimeofday(2). This is deliberately the
// wall clock and not the monotonic clock: the benchmarks report elapsed wall
// time, and a clock step during a run skews the result rather than being
// hidden.
func Seconds() float64 {
	var tv unix.Timeval
	// Cannot fail on Linux with a valid pointer.
	_ = unix.Gettimeofday(&tv)
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}

// Elapsed returns the wall-clock seconds since a previous Seconds reading.
func Elapsed(start float64) float64 {
	return Seconds() - start
}
