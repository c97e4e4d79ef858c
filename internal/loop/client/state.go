package client

import "time"

// Screen is what the client is currently showing.
type Screen int

const (
	ScreenLoading  Screen = iota // Waiting for assets
	ScreenStart                  // Title screen
	ScreenPlaying                // Session running or showing its end overlay
	ScreenShutdown               // Server is shutting down
)

// ClientState holds per-connection UI state. The game itself lives in the
// client's loop.Session.
type ClientState struct {
	Screen        Screen
	Running       bool      // Client loop running
	lastInput     time.Time // Last time any key arrived
	shutdownTimer float64   // Countdown before auto-disconnect on shutdown
	isInactive    bool      // Whether the client is in inactive warning state
	resultSent    bool      // Outcome of the current round reported to the server

	prevScreen  Screen
	wasInactive bool
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		Screen:     ScreenLoading,
		prevScreen: ScreenLoading,
		Running:    true,
		lastInput:  now,
	}
}
