package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/gateway/internal/config"
	"github.com/olivier-w/gateway/internal/host"
	"github.com/olivier-w/gateway/internal/lifecycle"
	"github.com/olivier-w/gateway/internal/surface"
	"github.com/olivier-w/gateway/internal/ui"
)

type options struct {
	seed       int64
	cellWidth  int
	cellHeight int
	fps        int
	logPath    string
	noStars    bool
}

func defaultOptions() *options {
	return &options{cellWidth: 8, cellHeight: 16, fps: 60}
}

func (o *options) validate() error {
	if o.cellWidth < 2 || o.cellHeight < 4 {
		return fmt.Errorf("cell size %dx%d too small (minimum 2x4)", o.cellWidth, o.cellHeight)
	}
	if o.fps < 1 || o.fps > 240 {
		return fmt.Errorf("fps %d out of range 1-240", o.fps)
	}
	return nil
}

func run(o *options) error {
	if err := o.validate(); err != nil {
		return err
	}

	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, "gateway")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settings, err := config.Load()
	if err != nil {
		log.Printf("settings unavailable, using defaults: %v", err)
		settings = config.Default()
	}

	model, stars := buildModel(o, settings)
	if stars != nil {
		defer stars.Close()
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// buildModel wires the terminal host, the star field controller and the
// directory model together.
func buildModel(o *options, settings *config.Settings) (ui.Model, *lifecycle.Controller) {
	h := host.NewTerminal(o.cellWidth, o.cellHeight, time.Second/time.Duration(o.fps))

	var stars *lifecycle.Controller
	if !o.noStars {
		seed := o.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		cellW, cellH := o.cellWidth, o.cellHeight
		stars = lifecycle.New(h, func(w, hh int) (surface.Surface, error) {
			r, err := surface.NewRaster(w/cellW, hh/cellH, cellW, cellH)
			if err != nil {
				return nil, err
			}
			return r, nil
		}, rand.New(rand.NewSource(seed)))
	}

	return ui.New(ui.Options{
		Host:     h,
		Stars:    stars,
		Settings: settings,
		FPS:      o.fps,
	}), stars
}
