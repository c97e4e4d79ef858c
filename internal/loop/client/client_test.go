package client

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/logging"
	"github.com/tomz197/gunrunner/internal/loop"
	"github.com/tomz197/gunrunner/internal/loop/server"
)

const frame = time.Second / 60

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, gs server.GameServer) (*Client, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := NewClient(strings.NewReader(""), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Username:     "tester",
		Server:       gs,
		Logger:       logging.Discard(),
	})
	return c, &out
}

func TestClientStartsAndPlays(t *testing.T) {
	c, out := newTestClient(t, nil)
	now := time.Now()

	if !c.advance(input.Keys{}, now, frame) {
		t.Fatal("client stopped on first frame")
	}
	if c.state.Screen != ScreenStart {
		t.Fatalf("screen = %v, want start once assets settle", c.state.Screen)
	}
	if !strings.Contains(out.String(), "Press ENTER") && !strings.Contains(out.String(), "Controls") {
		t.Fatal("start screen text not written")
	}

	c.advance(input.Keys{Enter: true, Pressed: true}, now, frame)
	if c.state.Screen != ScreenPlaying || c.session.Phase() != loop.PhaseRunning {
		t.Fatalf("screen/phase = %v/%v, want playing/running", c.state.Screen, c.session.Phase())
	}

	out.Reset()
	for i := 0; i < 5; i++ {
		c.advance(input.Keys{Right: true, Pressed: true}, now, frame)
	}
	if got := c.session.World.Tick; got != 5 {
		t.Fatalf("world tick = %d, want 5", got)
	}
	if !strings.Contains(out.String(), "HP: 3") {
		t.Fatal("HP text not rendered")
	}
}

func TestClientQuitAndClosed(t *testing.T) {
	c, _ := newTestClient(t, nil)
	if c.advance(input.Keys{Quit: true, Pressed: true}, time.Now(), frame) {
		t.Fatal("quit should stop the client")
	}

	c, _ = newTestClient(t, nil)
	if c.advance(input.Keys{Closed: true}, time.Now(), frame) {
		t.Fatal("closed input should stop the client")
	}
}

func TestClientInactivity(t *testing.T) {
	c, _ := newTestClient(t, nil)
	start := time.Now()

	c.advance(input.Keys{}, start.Add(91*time.Second), frame)
	if !c.state.isInactive {
		t.Fatal("expected inactivity warning after 91s")
	}

	c.advance(input.Keys{Pressed: true}, start.Add(92*time.Second), frame)
	if c.state.isInactive {
		t.Fatal("a key press should clear the warning")
	}

	if c.advance(input.Keys{}, start.Add(213*time.Second), frame) {
		t.Fatal("expected disconnect after 120s without input")
	}
}

func TestClientShutdownCountdown(t *testing.T) {
	gs := server.NewServer()
	c, _ := newTestClient(t, gs)
	now := time.Now()
	c.advance(input.Keys{}, now, frame)

	go gs.Shutdown(10 * time.Millisecond)
	deadline := time.After(time.Second)
	for c.state.Screen != ScreenShutdown {
		select {
		case <-deadline:
			t.Fatal("shutdown event never arrived")
		default:
		}
		c.advance(input.Keys{}, now, frame)
	}

	if !c.advance(input.Keys{}, now, time.Second) {
		t.Fatal("client should keep showing the countdown")
	}
	if c.advance(input.Keys{}, now, 10*time.Second) {
		t.Fatal("client should stop when the countdown ends")
	}
}

func TestClientReportsResultOnce(t *testing.T) {
	gs := server.NewServer()
	c, _ := newTestClient(t, gs)
	now := time.Now()

	c.advance(input.Keys{}, now, frame)
	c.advance(input.Keys{Enter: true, Pressed: true}, now, frame)
	c.session.World.GameOver = true
	c.advance(input.Keys{Pressed: true}, now, frame)
	c.advance(input.Keys{Pressed: true}, now, frame)

	if got := gs.Stats().Defeats; got != 1 {
		t.Fatalf("defeats = %d, want 1", got)
	}

	// Restart from the end overlay.
	c.advance(input.Keys{Enter: true, Pressed: true}, now, frame)
	if c.session.Phase() != loop.PhaseRunning {
		t.Fatalf("phase = %v, want running after restart", c.session.Phase())
	}
	if c.state.resultSent {
		t.Fatal("restart should allow the next result to be reported")
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(300, 80)
	if w != 200 || h != 60 || col != 50 || row != 10 {
		t.Fatalf("clampTermSize(300, 80) = %d,%d,%d,%d", w, h, col, row)
	}
}
