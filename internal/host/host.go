// Package host adapts a Bubble Tea program into the display capabilities the
// star field needs: a pixel viewport, resize and pointer notifications, and a
// cancellable per-frame callback.
package host

import "time"

// FrameID identifies a requested frame. The zero value is never issued.
type FrameID uint64

// Scheduler invokes a callback once on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
	Pending() int
}

// Events delivers viewport and pointer notifications. The returned func
// deregisters the listener and may be called more than once.
type Events interface {
	OnResize(fn func(w, h int)) (remove func())
	OnPointerMove(fn func(x, y float64)) (remove func())
	Listeners() int
}

// Viewport reports the current drawable size in pixels.
type Viewport interface {
	Size() (w, h int)
}
