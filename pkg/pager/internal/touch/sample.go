// Package touch reads a touchscreen through evdev and reports single-finger
// samples in normalized coordinates. Devices can only be opened on linux.
package touch

import "time"

// Sample is one finger report. X and Y are in [0, 1] across the device.
type Sample struct {
	X, Y float64
	Down bool
	At   time.Duration
}
