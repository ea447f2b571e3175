package host

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameInterval approximates a 60 Hz display refresh.
const DefaultFrameInterval = time.Second / 60

// FrameMsg is delivered by the tick command queued for a requested frame.
type FrameMsg struct {
	ID   FrameID
	Time time.Time
}

type listener[F any] struct {
	id uint64
	fn F
}

// Terminal implements Scheduler, Events and Viewport on top of Bubble Tea.
// It is only used from the program's Update loop and needs no locking.
type Terminal struct {
	cellW, cellH int
	cols, rows   int
	interval     time.Duration

	lastFrame FrameID
	frames    map[FrameID]func(time.Time)
	queued    []tea.Cmd

	lastListener uint64
	resize       []listener[func(w, h int)]
	pointer      []listener[func(x, y float64)]
}

// NewTerminal creates a host whose character cells map to cellW x cellH pixels.
func NewTerminal(cellW, cellH int, interval time.Duration) *Terminal {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Terminal{
		cellW:    cellW,
		cellH:    cellH,
		interval: interval,
		frames:   make(map[FrameID]func(time.Time)),
	}
}

// CellSize returns the pixel size of one character cell.
func (t *Terminal) CellSize() (w, h int) { return t.cellW, t.cellH }

// Cells returns the terminal size in character cells.
func (t *Terminal) Cells() (cols, rows int) { return t.cols, t.rows }

func (t *Terminal) Size() (int, int) {
	return t.cols * t.cellW, t.rows * t.cellH
}

func (t *Terminal) RequestFrame(fn func(time.Time)) FrameID {
	t.lastFrame++
	id := t.lastFrame
	t.frames[id] = fn
	t.queued = append(t.queued, tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: now}
	}))
	return id
}

// CancelFrame drops a pending frame. The tick already in flight still
// arrives but Deliver ignores it.
func (t *Terminal) CancelFrame(id FrameID) {
	delete(t.frames, id)
}

func (t *Terminal) Pending() int { return len(t.frames) }

// Deliver runs the callback for msg if its frame is still pending.
func (t *Terminal) Deliver(msg FrameMsg) {
	fn, ok := t.frames[msg.ID]
	if !ok {
		return
	}
	delete(t.frames, msg.ID)
	fn(msg.Time)
}

// Cmd drains the tick commands queued by RequestFrame.
func (t *Terminal) Cmd() tea.Cmd {
	if len(t.queued) == 0 {
		return nil
	}
	cmds := t.queued
	t.queued = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (t *Terminal) OnResize(fn func(w, h int)) func() {
	t.lastListener++
	id := t.lastListener
	t.resize = append(t.resize, listener[func(w, h int)]{id: id, fn: fn})
	return func() { t.resize = removeListener(t.resize, id) }
}

func (t *Terminal) OnPointerMove(fn func(x, y float64)) func() {
	t.lastListener++
	id := t.lastListener
	t.pointer = append(t.pointer, listener[func(x, y float64)]{id: id, fn: fn})
	return func() { t.pointer = removeListener(t.pointer, id) }
}

func (t *Terminal) Listeners() int { return len(t.resize) + len(t.pointer) }

func removeListener[F any](ls []listener[F], id uint64) []listener[F] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// Resize records the new terminal size and notifies resize listeners.
func (t *Terminal) Resize(cols, rows int) {
	t.cols = max(cols, 0)
	t.rows = max(rows, 0)
	w, h := t.Size()
	for _, l := range t.resize {
		l.fn(w, h)
	}
}

// PointerMove notifies pointer listeners with the centre pixel of the cell.
func (t *Terminal) PointerMove(col, row int) {
	x := (float64(col) + 0.5) * float64(t.cellW)
	y := (float64(row) + 0.5) * float64(t.cellH)
	for _, l := range t.pointer {
		l.fn(x, y)
	}
}
