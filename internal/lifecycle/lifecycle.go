// Package lifecycle gates the star field on viewport width and owns every
// resource an active field holds.
package lifecycle

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/olivier-w/gateway/internal/field"
	"github.com/olivier-w/gateway/internal/host"
	"github.com/olivier-w/gateway/internal/surface"
)

// Breakpoint is the minimum viewport width, in pixels, that counts as wide.
const Breakpoint = 1024

// State is the controller state.
type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	default:
		return "inactive"
	}
}

// Host is the set of display capabilities the controller consumes.
type Host interface {
	host.Scheduler
	host.Events
	host.Viewport
}

// SurfaceFunc opens a drawable surface of w x h pixels.
type SurfaceFunc func(w, h int) (surface.Surface, error)

// session is everything one activation owns. It is dropped whole on deactivate.
type session struct {
	surface       surface.Surface
	field         *field.Field
	pointer       field.Pointer
	frame         host.FrameID
	removeResize  func()
	removePointer func()
}

// Controller runs the star field while the viewport is wide.
type Controller struct {
	host    Host
	open    SurfaceFunc
	rng     *rand.Rand
	state   State
	session *session
	frames  uint64
}

// New creates an inactive controller. Call Sync to evaluate the viewport.
func New(h Host, open SurfaceFunc, rng *rand.Rand) *Controller {
	return &Controller{host: h, open: open, rng: rng}
}

func (c *Controller) State() State { return c.state }

// Frames returns how many frames have been drawn since the controller was created.
func (c *Controller) Frames() uint64 { return c.frames }

// Field returns the live field, or nil while inactive.
func (c *Controller) Field() *field.Field {
	if c.session == nil {
		return nil
	}
	return c.session.field
}

// Surface returns the live surface, or nil while inactive.
func (c *Controller) Surface() surface.Surface {
	if c.session == nil {
		return nil
	}
	return c.session.surface
}

// Wide reports whether a viewport of width w qualifies for the star field.
func Wide(w int) bool { return w >= Breakpoint }

// Sync starts or tears down the field when the viewport crosses the breakpoint.
func (c *Controller) Sync() {
	w, h := c.host.Size()
	switch {
	case Wide(w) && c.state == Inactive:
		if err := c.activate(w, h); err != nil {
			log.Printf("star field unavailable: %v", err)
		}
	case !Wide(w) && c.state == Active:
		c.deactivate()
	}
}

// Close tears the field down regardless of viewport size.
func (c *Controller) Close() {
	if c.state == Active {
		c.deactivate()
	}
}

func (c *Controller) activate(w, h int) error {
	surf, err := c.open(w, h)
	if err != nil {
		return fmt.Errorf("open surface: %w", err)
	}
	if surf == nil {
		return fmt.Errorf("open surface: no surface for %dx%d", w, h)
	}

	s := &session{
		surface: surf,
		field:   field.New(w, h, c.rng),
	}
	s.removeResize = c.host.OnResize(func(w, h int) {
		s.surface.SetSize(w, h)
		s.field.Resize(w, h)
	})
	s.removePointer = c.host.OnPointerMove(s.pointer.Move)

	c.session = s
	c.state = Active
	log.Printf("star field active: %dx%d px, %d particles", w, h, len(s.field.Particles()))

	c.frame(time.Time{})
	return nil
}

func (c *Controller) deactivate() {
	s := c.session
	c.host.CancelFrame(s.frame)
	s.removeResize()
	s.removePointer()
	c.session = nil
	c.state = Inactive
	log.Printf("star field stopped")
}

// frame draws one frame and schedules the next.
func (c *Controller) frame(time.Time) {
	s := c.session
	if s == nil {
		return
	}
	s.field.Step(s.pointer)
	s.field.Draw(s.surface)
	c.frames++
	s.frame = c.host.RequestFrame(c.frame)
}
