package surface

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// litThreshold is the accumulated alpha below which a dot stays dark.
	litThreshold = 0.03
	// coverageSamples is the per-axis supersampling used to estimate disc coverage.
	coverageSamples = 4
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type dot struct {
	alpha float64
	color colorful.Color
}

// Raster is a terminal-backed Surface. Every character cell holds a 2x4
// Braille dot grid and covers cellW x cellH pixels.
type Raster struct {
	cellW, cellH int
	width        int
	height       int
	cols, rows   int
	dots         []dot
	fill         RGBA
	profile      Profile
}

// NewRaster creates a raster of cols x rows cells, each cellW x cellH pixels.
func NewRaster(cols, rows, cellW, cellH int) (*Raster, error) {
	if cols <= 0 || rows <= 0 || cellW < 2 || cellH < 4 {
		return nil, fmt.Errorf("%w: %dx%d cells of %dx%d px", ErrGeometry, cols, rows, cellW, cellH)
	}
	r := &Raster{cellW: cellW, cellH: cellH, profile: DetectProfile()}
	r.SetSize(cols*cellW, rows*cellH)
	return r, nil
}

// SetProfile overrides the detected colour profile.
func (r *Raster) SetProfile(p Profile) { r.profile = p }

// SetSize resizes the pixel area and clears it. Partial cells are dropped.
func (r *Raster) SetSize(w, h int) {
	r.width = max(w, 0)
	r.height = max(h, 0)
	r.cols = max(r.width/r.cellW, 1)
	r.rows = max(r.height/r.cellH, 1)
	r.dots = make([]dot, r.cols*2*r.rows*4)
}

func (r *Raster) Size() (int, int) { return r.width, r.height }

// Cells returns the raster size in character cells.
func (r *Raster) Cells() (cols, rows int) { return r.cols, r.rows }

func (r *Raster) dotSize() (float64, float64) {
	return float64(r.cellW) / 2, float64(r.cellH) / 4
}

func (r *Raster) dotCols() int { return r.cols * 2 }
func (r *Raster) dotRows() int { return r.rows * 4 }

// ClearRect resets every dot whose area intersects the rectangle.
func (r *Raster) ClearRect(x, y, w, h float64) {
	dw, dh := r.dotSize()
	c0, c1 := r.span(x, x+w, dw, r.dotCols())
	r0, r1 := r.span(y, y+h, dh, r.dotRows())
	for dr := r0; dr <= r1; dr++ {
		for dc := c0; dc <= c1; dc++ {
			r.dots[dr*r.dotCols()+dc] = dot{}
		}
	}
}

func (r *Raster) SetFillColor(c RGBA) { r.fill = c }

// FillCircle composites the current fill colour over every dot the disc
// touches, weighted by the fraction of the dot it covers.
func (r *Raster) FillCircle(x, y, radius float64) {
	if radius <= 0 || r.fill.A <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	dw, dh := r.dotSize()
	c0, c1 := r.span(x-radius, x+radius, dw, r.dotCols())
	r0, r1 := r.span(y-radius, y+radius, dh, r.dotRows())
	if c0 > c1 || r0 > r1 {
		return
	}

	src := r.fill.colorful()
	rr := radius * radius
	hit := false
	for dr := r0; dr <= r1; dr++ {
		for dc := c0; dc <= c1; dc++ {
			n := 0
			for sy := range coverageSamples {
				py := (float64(dr) + (float64(sy)+0.5)/coverageSamples) * dh
				for sx := range coverageSamples {
					px := (float64(dc) + (float64(sx)+0.5)/coverageSamples) * dw
					if (px-x)*(px-x)+(py-y)*(py-y) <= rr {
						n++
					}
				}
			}
			if n == 0 {
				continue
			}
			hit = true
			r.composite(dc, dr, src, float64(n)/(coverageSamples*coverageSamples))
		}
	}

	// Discs smaller than the sampling grid still deposit their area.
	if !hit {
		dc := int(math.Floor(x / dw))
		dr := int(math.Floor(y / dh))
		if dc >= 0 && dc < r.dotCols() && dr >= 0 && dr < r.dotRows() {
			r.composite(dc, dr, src, math.Min(1, math.Pi*rr/(dw*dh)))
		}
	}
}

func (r *Raster) composite(dc, dr int, src colorful.Color, coverage float64) {
	a := clamp01(r.fill.A * coverage)
	if a == 0 {
		return
	}
	d := &r.dots[dr*r.dotCols()+dc]
	out := a + d.alpha*(1-a)
	if d.alpha == 0 {
		d.color = src
	} else {
		d.color = d.color.BlendRgb(src, a/out)
	}
	d.alpha = out
}

// span converts a pixel interval to an inclusive, clipped dot index range.
func (r *Raster) span(lo, hi, size float64, n int) (int, int) {
	a := int(math.Floor(lo / size))
	b := int(math.Ceil(hi/size)) - 1
	if b < a {
		b = a
	}
	return max(a, 0), min(b, n-1)
}

// Alpha reports the accumulated alpha of the dot containing pixel (x, y).
func (r *Raster) Alpha(x, y float64) float64 {
	dw, dh := r.dotSize()
	dc := int(math.Floor(x / dw))
	dr := int(math.Floor(y / dh))
	if dc < 0 || dc >= r.dotCols() || dr < 0 || dr >= r.dotRows() {
		return 0
	}
	return r.dots[dr*r.dotCols()+dc].alpha
}

// Lines renders every cell row. Dark cells are plain spaces.
func (r *Raster) Lines() []string {
	lines := make([]string, r.rows)
	black := colorful.Color{}
	for row := range r.rows {
		var sb strings.Builder
		state := newANSIState(r.profile)
		for col := range r.cols {
			var pattern uint
			var bright dot
			for dx := range 2 {
				for dy := range 4 {
					d := r.dots[(row*4+dy)*r.dotCols()+col*2+dx]
					if d.alpha < litThreshold {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if d.alpha > bright.alpha {
						bright = d
					}
				}
			}
			if pattern == 0 {
				state.reset(&sb)
				sb.WriteByte(' ')
				continue
			}
			state.set(&sb, black.BlendRgb(bright.color, 0.35+0.65*clamp01(bright.alpha)))
			sb.WriteRune(rune(0x2800 + pattern))
		}
		state.reset(&sb)
		lines[row] = sb.String()
	}
	return lines
}

func (r *Raster) View() string {
	return strings.Join(r.Lines(), "\n")
}
