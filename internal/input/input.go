// Package input turns raw terminal bytes into game intents.
package input

import (
	"bufio"
	"io"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last press. Terminals only report repeats, so this must outlast the repeat interval.
const keyHoldDuration = 120 * time.Millisecond

// Keys is one frame's decoded keyboard state.
// Left and Right are held; the remaining flags are set only on the frame the
// key byte arrived.
type Keys struct {
	Quit  bool
	Left  bool
	Right bool
	Jump  bool
	Shoot bool
	Enter bool

	Pressed bool // Any byte arrived this frame
	Closed  bool // The underlying reader is exhausted
}

// Apply writes the decoded keys into the intents.
func (k Keys) Apply(in *Intents) {
	in.MoveLeft = k.Left
	in.MoveRight = k.Right
	if k.Jump {
		in.TriggerJump()
	}
	if k.Shoot {
		in.TriggerShoot()
	}
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for held movement.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := newStream()
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes from the stream without blocking and
// decodes them together with the held-key state.
func (s *Stream) Read() Keys {
	return s.readAt(time.Now())
}

// ResetKeyInput forgets held keys, e.g. after a restart.
func (s *Stream) ResetKeyInput() {
	s.state = keyState{}
}

func (s *Stream) readAt(now time.Time) Keys {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	keys := parse(buf, &s.state, now)
	keys.Left = now.Sub(s.state.left) < keyHoldDuration
	keys.Right = now.Sub(s.state.right) < keyHoldDuration
	keys.Pressed = len(buf) > 0
	keys.Closed = s.closed
	return keys
}

// parse decodes buf, updating held-key timestamps and returning edge keys.
func parse(buf []byte, state *keyState, now time.Time) Keys {
	var keys Keys
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				keys.Jump = true
			case 'C': // Right arrow
				state.right = now
			case 'D': // Left arrow
				state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', 0x03: // Ctrl+C
			keys.Quit = true
		case 'a', 'A':
			state.left = now
		case 'd', 'D':
			state.right = now
		case 'w', 'W', 'k', 'K':
			keys.Jump = true
		case ' ', 'j', 'J':
			keys.Shoot = true
		case '\n', '\r':
			keys.Enter = true
		}
	}
	return keys
}
