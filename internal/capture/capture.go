// Package capture wraps monitor enumeration and screen grabbing. Capture
// failures are fatal to the capture cycle that hit them; nothing here retries.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// ErrNoMonitor is returned when no monitor contains the requested point.
var ErrNoMonitor = errors.New("no monitor at point")

// Monitor identifies one display and its bounds in virtual screen
// coordinates.
type Monitor struct {
	Index  int
	Bounds image.Rectangle
}

// Monitors enumerates the active displays.
func Monitors() []Monitor {
	n := screenshot.NumActiveDisplays()
	out := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Monitor{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return out
}

// FromPoint resolves the monitor containing (x, y).
func FromPoint(x, y int) (Monitor, error) {
	for _, m := range Monitors() {
		if image.Pt(x, y).In(m.Bounds) {
			return m, nil
		}
	}
	return Monitor{}, ErrNoMonitor
}

// Capturer grabs a raster image of a monitor.
type Capturer interface {
	Capture(m Monitor) (image.Image, error)
}

// Screen captures real displays.
type Screen struct{}

// Capture implements Capturer.
func (Screen) Capture(m Monitor) (image.Image, error) {
	img, err := screenshot.CaptureRect(m.Bounds)
	if err != nil {
		return nil, fmt.Errorf("capturing display %d: %w", m.Index, err)
	}
	return img, nil
}
