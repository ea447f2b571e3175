package field

import (
	"math"
	"math/rand"

	"github.com/olivier-w/gateway/internal/surface"
)

const (
	minParticles    = 300
	maxParticles    = 800
	pixelsPerSprite = 3000

	AttractRadius = 300.0
	RepelRadius   = 80.0
	attractForce  = 0.15
	attractScale  = 0.5
	pointerDrag   = 0.05
	attractGlow   = 0.8
	repelForce    = 0.2
	repelGlow     = 0.5

	Damping       = 0.92
	baselinePull  = 0.002
	WrapMargin    = 20.0
	depthSizeRate = 1.8
)

var (
	glowColor = surface.RGBA{R: 150, G: 200, B: 255}
	coreColor = surface.RGBA{R: 200, G: 230, B: 255}
)

// Particle is one point of light. Z is its depth: 0 is far, approaching 1 is near.
type Particle struct {
	X, Y        float64
	Y0          float64 // resting row the particle is pulled back toward
	Z, VZ       float64
	BaseOpacity float64
	Opacity     float64
	VX, VY      float64
	Mass        float64 // not read by the force model
}

// Size is the draw radius derived from depth.
func (p *Particle) Size() float64 { return p.Z * depthSizeRate }

// Pointer is the most recent pointer position and its per-event velocity.
type Pointer struct {
	X, Y   float64
	VX, VY float64
}

// Move records a new position; velocity is the delta from the previous one.
func (p *Pointer) Move(x, y float64) {
	p.VX = x - p.X
	p.VY = y - p.Y
	p.X = x
	p.Y = y
}

// Field is a fixed-size collection of particles inside a width x height area.
// It is not safe for concurrent use.
type Field struct {
	particles []Particle
	width     float64
	height    float64
	rng       *rand.Rand
}

// Count returns the number of particles for a viewport of the given size.
func Count(width, height int) int {
	n := width * height / pixelsPerSprite
	return min(max(n, minParticles), maxParticles)
}

// New populates a field sized for width x height.
func New(width, height int, rng *rand.Rand) *Field {
	f := &Field{
		particles: make([]Particle, Count(width, height)),
		width:     float64(width),
		height:    float64(height),
		rng:       rng,
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:           rng.Float64() * f.width,
			Y:           rng.Float64() * f.height,
			Y0:          rng.Float64() * f.height,
			Z:           rng.Float64(),
			VZ:          rng.Float64()*0.008 + 0.003,
			BaseOpacity: randomOpacity(rng),
			Opacity:     randomOpacity(rng),
			VX:          (rng.Float64() - 0.5) * 0.3,
			VY:          (rng.Float64() - 0.5) * 0.2,
			Mass:        rng.Float64()*0.5 + 0.5,
		}
	}
	return f
}

func randomOpacity(rng *rand.Rand) float64 {
	return rng.Float64()*0.5 + 0.15
}

// Particles exposes the live particle slice.
func (f *Field) Particles() []Particle { return f.particles }

// Resize changes the wrap bounds. Particles are not repositioned; wraparound
// brings strays back within a few frames.
func (f *Field) Resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Step advances every particle by one frame under pointer p.
func (f *Field) Step(p Pointer) {
	for i := range f.particles {
		f.step(&f.particles[i], p)
	}
}

func (f *Field) step(s *Particle, m Pointer) {
	applyPointer(s, m)

	s.VX *= Damping
	s.VY *= Damping
	s.VY += (s.Y0 - s.Y) * baselinePull

	s.X += s.VX
	s.Y += s.VY

	s.Z += s.VZ
	if s.Z >= 1 {
		f.recycle(s)
	}

	f.wrap(s)
}

func applyPointer(s *Particle, m Pointer) {
	dx := m.X - s.X
	dy := m.Y - s.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	switch {
	case dist >= AttractRadius:
		s.Opacity = s.BaseOpacity
	case dist >= RepelRadius:
		influence := 1 - dist/AttractRadius
		force := influence * attractForce
		s.VX += dx/dist*force*attractScale + m.VX*pointerDrag
		s.VY += dy/dist*force*attractScale + m.VY*pointerDrag
		s.Opacity = s.BaseOpacity + influence*attractGlow
	default:
		// A pointer sitting exactly on the particle has no direction to push.
		if dist > 0 {
			force := (1 - dist/RepelRadius) * repelForce
			s.VX -= dx / dist * force
			s.VY -= dy / dist * force
		}
		s.Opacity = s.BaseOpacity + repelGlow
	}
}

// recycle reinitialises a particle whose depth cycle completed. VZ is kept.
func (f *Field) recycle(s *Particle) {
	s.Z = 0
	s.X = f.rng.Float64() * f.width
	s.Y = f.rng.Float64() * f.height
	s.Y0 = s.Y
	s.VX = 0
	s.VY = 0
	s.BaseOpacity = randomOpacity(f.rng)
}

func (f *Field) wrap(s *Particle) {
	if s.X < -WrapMargin {
		s.X = f.width + WrapMargin
	}
	if s.X > f.width+WrapMargin {
		s.X = -WrapMargin
	}
	if s.Y < -WrapMargin {
		s.Y = f.height + WrapMargin
	}
	if s.Y > f.height+WrapMargin {
		s.Y = -WrapMargin
	}
}

// Draw clears dst and paints every particle as a glow disc under a core disc.
func (f *Field) Draw(dst surface.Surface) {
	w, h := dst.Size()
	dst.ClearRect(0, 0, float64(w), float64(h))
	for i := range f.particles {
		s := &f.particles[i]
		size := s.Size()

		glow := glowColor
		glow.A = s.Opacity * 0.4
		dst.SetFillColor(glow)
		dst.FillCircle(s.X, s.Y, math.Max(0.5, size*1.3))

		core := coreColor
		core.A = s.Opacity
		dst.SetFillColor(core)
		dst.FillCircle(s.X, s.Y, math.Max(0.2, size))
	}
}
