package host

import (
	"testing"
	"time"
)

func TestRequestFrameQueuesTickAndDelivers(t *testing.T) {
	h := NewTerminal(8, 16, 0)
	var calls int
	id := h.RequestFrame(func(time.Time) { calls++ })
	if id == 0 {
		t.Fatal("expected non-zero frame id")
	}
	if h.Pending() != 1 {
		t.Fatalf("expected 1 pending frame, got %d", h.Pending())
	}
	if h.Cmd() == nil {
		t.Fatal("expected queued tick command")
	}
	if h.Cmd() != nil {
		t.Fatal("expected queue to be drained")
	}

	h.Deliver(FrameMsg{ID: id, Time: time.Now()})
	h.Deliver(FrameMsg{ID: id, Time: time.Now()})
	if calls != 1 {
		t.Fatalf("expected callback once, got %d", calls)
	}
	if h.Pending() != 0 {
		t.Fatalf("expected no pending frames, got %d", h.Pending())
	}
}

func TestCancelFrameIgnoresLateTick(t *testing.T) {
	h := NewTerminal(8, 16, time.Millisecond)
	var called bool
	id := h.RequestFrame(func(time.Time) { called = true })
	h.CancelFrame(id)
	h.Deliver(FrameMsg{ID: id})
	if called {
		t.Fatal("expected cancelled frame not to run")
	}
	if h.Pending() != 0 {
		t.Fatalf("expected no pending frames, got %d", h.Pending())
	}
}

func TestFrameCmdProducesFrameMsg(t *testing.T) {
	h := NewTerminal(8, 16, time.Millisecond)
	id := h.RequestFrame(func(time.Time) {})
	msg, ok := h.Cmd()().(FrameMsg)
	if !ok {
		t.Fatal("expected FrameMsg from tick command")
	}
	if msg.ID != id {
		t.Fatalf("expected frame id %d, got %d", id, msg.ID)
	}
}

func TestResizeNotifiesInPixels(t *testing.T) {
	h := NewTerminal(8, 16, 0)
	var gotW, gotH int
	remove := h.OnResize(func(w, h int) { gotW, gotH = w, h })
	h.Resize(160, 50)
	if gotW != 1280 || gotH != 800 {
		t.Fatalf("expected 1280x800, got %dx%d", gotW, gotH)
	}
	if w, hh := h.Size(); w != 1280 || hh != 800 {
		t.Fatalf("expected viewport 1280x800, got %dx%d", w, hh)
	}

	remove()
	remove()
	h.Resize(10, 10)
	if gotW != 1280 {
		t.Fatalf("expected removed listener to stay silent, got width %d", gotW)
	}
	if h.Listeners() != 0 {
		t.Fatalf("expected no listeners, got %d", h.Listeners())
	}
}

func TestPointerMoveMapsToCellCentre(t *testing.T) {
	h := NewTerminal(8, 16, 0)
	var x, y float64
	h.OnPointerMove(func(px, py float64) { x, y = px, py })
	h.PointerMove(3, 2)
	if x != 28 || y != 40 {
		t.Fatalf("expected (28, 40), got (%v, %v)", x, y)
	}
}

func TestListenerRemovalDuringNotify(t *testing.T) {
	h := NewTerminal(8, 16, 0)
	var calls int
	var removeFirst func()
	removeFirst = h.OnResize(func(int, int) {
		calls++
		removeFirst()
	})
	h.OnResize(func(int, int) { calls++ })

	h.Resize(10, 10)
	if calls != 2 {
		t.Fatalf("expected both listeners to run, got %d calls", calls)
	}
	if h.Listeners() != 1 {
		t.Fatalf("expected 1 listener left, got %d", h.Listeners())
	}
}
