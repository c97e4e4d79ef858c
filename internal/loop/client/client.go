// Package client runs one terminal player: it reads keys, drives a
// loop.Session and draws it onto a colour half-block canvas.
package client

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/draw"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/loop/server"
	"github.com/tomz197/gunrunner/internal/render"
)

// Assets is the image source plus its loading progress.
type Assets interface {
	render.Assets
	Progress() (settled, total int)
	Ready() bool
}

// Client handles rendering and input for a single terminal.
type Client struct {
	server       server.GameServer // Nil when playing locally
	handle       *server.ClientHandle
	session      *loop.Session
	driver       *loop.Driver
	assets       Assets
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastFrame    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	err          error
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Server       server.GameServer
	Sounds       audio.Player
	Assets       Assets
	Logger       *log.Logger
	TickInterval time.Duration // Zero uses config.TickTime
}

// NewClient creates a client reading keys from r and drawing to w.
// When opts.Server is set the client registers with it.
func NewClient(r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	assets := opts.Assets
	if assets == nil {
		assets = asset.Unavailable()
	}

	var handle *server.ClientHandle
	id := uuid.NewString()
	if opts.Server != nil {
		handle = opts.Server.RegisterClient(opts.Username)
		id = handle.ID
	}

	session := loop.NewSession(loop.SessionOptions{
		ID: id,
		Viewport: config.Viewport{
			Width:  config.TerminalViewWidth,
			Height: config.TerminalViewHeight,
			Scale:  1,
		},
		Sounds: opts.Sounds,
		Logger: logger,
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.TerminalViewWidth, config.TerminalViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	interval := opts.TickInterval
	if interval <= 0 {
		interval = config.TickTime
	}

	now := time.Now()
	return &Client{
		server:       opts.Server,
		handle:       handle,
		session:      session,
		driver:       loop.NewDriver(interval),
		assets:       assets,
		state:        NewClientState(now),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastFrame:    now,
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("session", id),
	}
}

// Session returns the game session driven by this client.
func (c *Client) Session() *loop.Session {
	return c.session
}

// Run drives the client until the player quits, the input closes, the
// server shuts down or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.driver.Start(ctx, c.frame)
	<-c.driver.Done()
	c.driver.Stop()

	c.session.Close()
	if c.server != nil {
		c.server.UnregisterClient(c.handle.ID)
	}

	draw.ClearScreen(c.writer)
	if c.err != nil && !errors.Is(c.err, context.Canceled) {
		return c.err
	}
	return nil
}

// frame is one driver tick.
func (c *Client) frame() bool {
	now := time.Now()
	delta := now.Sub(c.lastFrame)
	c.lastFrame = now
	return c.advance(c.inputStream.Read(), now, delta)
}

// advance processes one frame of input, game state and drawing.
func (c *Client) advance(keys input.Keys, now time.Time, delta time.Duration) bool {
	c.processInput(keys, now)
	c.processServerEvents()
	if !c.state.Running {
		return false
	}

	c.updateScreen()

	switch c.state.Screen {
	case ScreenLoading:
		c.updateLoadingState()
	case ScreenStart:
		c.updateStartState(keys)
	case ScreenPlaying:
		c.updatePlayingState(keys)
	case ScreenShutdown:
		c.updateShutdownState(delta)
	}

	if err := c.drawFrame(now); err != nil {
		c.err = err
		c.logger.Warn("write frame", "err", err)
		return false
	}
	return c.state.Running
}

// processInput handles quitting and inactivity.
func (c *Client) processInput(keys input.Keys, now time.Time) {
	if keys.Pressed {
		c.state.lastInput = now
		c.state.isInactive = false
	} else if now.Sub(c.state.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive player")
		c.state.Running = false
	} else if now.Sub(c.state.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if keys.Quit || keys.Closed {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				if c.state.Screen != ScreenShutdown {
					c.state.Screen = ScreenShutdown
					c.state.shutdownTimer = config.ShutdownDisplaySeconds
					c.session.Close()
				}
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateLoadingState waits for every asset to settle.
func (c *Client) updateLoadingState() {
	if !c.assets.Ready() {
		return
	}
	c.session.AssetsReady()
	c.state.Screen = ScreenStart
}

// updateStartState handles the title screen.
func (c *Client) updateStartState(keys input.Keys) {
	if keys.Enter {
		c.startGame()
	}
}

// updatePlayingState feeds intents to the session and advances it.
func (c *Client) updatePlayingState(keys input.Keys) {
	switch c.session.Phase() {
	case loop.PhaseRunning:
		keys.Apply(&c.session.Intents)
		if c.session.Update() == loop.PhaseEnded {
			c.reportResult()
		}
	case loop.PhaseEnded:
		if keys.Enter {
			c.startGame()
		}
	}
}

// reportResult sends the finished round to the server once.
func (c *Client) reportResult() {
	if c.state.resultSent || c.server == nil {
		return
	}
	c.state.resultSent = true
	w := c.session.World
	c.server.RecordResult(c.handle.ID, w.Outcome(), w.Score)
}

// startGame starts or restarts the session.
func (c *Client) startGame() {
	c.inputStream.ResetKeyInput()
	if err := c.session.Start(); err != nil {
		c.logger.Warn("start session", "err", err)
		return
	}
	c.state.resultSent = false
	c.state.Screen = ScreenPlaying
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState(delta time.Duration) {
	c.state.shutdownTimer -= delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
