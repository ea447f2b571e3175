package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/gateway/internal/config"
	"github.com/olivier-w/gateway/internal/lifecycle"
)

func TestRootCmdParsesFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--seed", "42", "--cell-width", "10", "--fps", "30", "--no-stars"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	width, _ := cmd.Flags().GetInt("cell-width")
	fps, _ := cmd.Flags().GetInt("fps")
	noStars, _ := cmd.Flags().GetBool("no-stars")
	if seed != 42 || width != 10 || fps != 30 || !noStars {
		t.Fatalf("unexpected flags: seed=%d width=%d fps=%d noStars=%v", seed, width, fps, noStars)
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*options)
		wantErr bool
	}{
		{"defaults", func(*options) {}, false},
		{"narrow cell", func(o *options) { o.cellWidth = 1 }, true},
		{"short cell", func(o *options) { o.cellHeight = 3 }, true},
		{"zero fps", func(o *options) { o.fps = 0 }, true},
		{"huge fps", func(o *options) { o.fps = 1000 }, true},
	}
	for _, tt := range tests {
		o := defaultOptions()
		tt.mutate(o)
		if err := o.validate(); (err != nil) != tt.wantErr {
			t.Fatalf("%s: expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestBuildModelStartsStarsOnWideWindow(t *testing.T) {
	t.Setenv("GATEWAY_CONFIG_DIR", t.TempDir())
	o := defaultOptions()
	o.seed = 7
	model, stars := buildModel(o, config.Default())
	if stars == nil {
		t.Fatal("expected star field controller")
	}

	if _, cmd := model.Update(tea.WindowSizeMsg{Width: 200, Height: 60}); cmd == nil {
		t.Fatal("expected frame command once the window is wide")
	}
	if stars.State() != lifecycle.Active {
		t.Fatalf("expected active star field, got %v", stars.State())
	}
	stars.Close()
}

func TestBuildModelWithoutStars(t *testing.T) {
	o := defaultOptions()
	o.noStars = true
	if _, stars := buildModel(o, config.Default()); stars != nil {
		t.Fatal("expected no controller with --no-stars")
	}
}
