package util

import (
	"runtime"
	"time"
)

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Workers returns n, or the number of CPUs when n is not positive
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Bands splits [0, total) into at most n contiguous ranges. The last
// range absorbs the remainder.
func Bands(total, n int) [][2]int {
	if total <= 0 {
		return nil
	}
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}

	size := total / n
	bands := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		start := i * size
		end := start + size
		if i == n-1 {
			end = total
		}
		bands = append(bands, [2]int{start, end})
	}
	return bands
}

// RollingAverage keeps the mean of the last Window samples
type RollingAverage struct {
	Window  int
	samples []time.Duration
	sum     time.Duration
}

// Add records a sample and returns the current average
func (ra *RollingAverage) Add(d time.Duration) time.Duration {
	window := ra.Window
	if window <= 0 {
		window = 1
	}

	ra.samples = append(ra.samples, d)
	ra.sum += d
	if len(ra.samples) > window {
		ra.sum -= ra.samples[0]
		ra.samples = ra.samples[1:]
	}
	return ra.Average()
}

// Average returns the mean of the recorded samples, or zero if there are none
func (ra *RollingAverage) Average() time.Duration {
	if len(ra.samples) == 0 {
		return 0
	}
	return ra.sum / time.Duration(len(ra.samples))
}
