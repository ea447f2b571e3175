package surface

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a fill colour with straight (non-premultiplied) alpha in [0,1].
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Profile is the colour capability of the output terminal.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileANSI16
	ProfileANSI256
	ProfileTrueColor
)

var (
	profileOnce sync.Once
	profile     Profile
	seqCache    sync.Map
)

// DetectProfile inspects NO_COLOR, COLORTERM and TERM once per process.
func DetectProfile() Profile {
	profileOnce.Do(func() {
		profile = profileFromEnv(os.LookupEnv)
	})
	return profile
}

func profileFromEnv(lookup func(string) (string, bool)) Profile {
	if _, disabled := lookup("NO_COLOR"); disabled {
		return ProfileNone
	}
	term, _ := lookup("TERM")
	colorTerm, _ := lookup("COLORTERM")
	term = strings.ToLower(term)
	colorTerm = strings.ToLower(colorTerm)
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return ProfileTrueColor
	case strings.Contains(term, "256color"):
		return ProfileANSI256
	case term == "", term == "dumb":
		return ProfileNone
	default:
		return ProfileANSI16
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type ansiState struct {
	profile Profile
	current uint32
}

func newANSIState(p Profile) ansiState {
	return ansiState{profile: p, current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c colorful.Color) {
	if s.profile == ProfileNone {
		return
	}
	r, g, b := c.Clamped().RGB255()
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, r, g, b))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == ProfileNone || s.current == ^uint32(0) {
		return
	}
	sb.WriteString("\x1b[0m")
	s.current = ^uint32(0)
}

var ansi16 = []colorful.Color{
	{R: 0, G: 0, B: 0},
	{R: 205.0 / 255, G: 49.0 / 255, B: 49.0 / 255},
	{R: 13.0 / 255, G: 188.0 / 255, B: 121.0 / 255},
	{R: 229.0 / 255, G: 229.0 / 255, B: 16.0 / 255},
	{R: 36.0 / 255, G: 114.0 / 255, B: 200.0 / 255},
	{R: 188.0 / 255, G: 63.0 / 255, B: 188.0 / 255},
	{R: 17.0 / 255, G: 168.0 / 255, B: 205.0 / 255},
	{R: 229.0 / 255, G: 229.0 / 255, B: 229.0 / 255},
}

func colorSequence(p Profile, r, g, b uint8) string {
	key := uint32(p)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch p {
	case ProfileTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	case ProfileANSI256:
		idx := 16 + 36*(int(r)*5/255) + 6*(int(g)*5/255) + int(b)*5/255
		seq = fmt.Sprintf("\x1b[38;5;%dm", idx)
	case ProfileANSI16:
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		best := 0
		bestDist := math.MaxFloat64
		for i, pc := range ansi16 {
			if d := c.DistanceRgb(pc); d < bestDist {
				bestDist = d
				best = i
			}
		}
		seq = fmt.Sprintf("\x1b[%dm", 30+best)
	}

	seqCache.Store(key, seq)
	return seq
}
