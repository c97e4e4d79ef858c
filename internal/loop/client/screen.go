package client

import (
	"fmt"
	"image/color"
	"time"

	"github.com/tomz197/gunrunner/internal/loop"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/render"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	screenChanged := c.state.Screen != c.state.prevScreen
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if screenChanged || inactiveChanged {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
		c.state.prevScreen = c.state.Screen
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	switch {
	case c.state.Screen == ScreenPlaying && !c.state.isInactive:
		render.Pass(c.canvas, c.session.World, c.assets)
		c.canvas.Render(c.chunkWriter)
		c.canvas.RenderBorder(c.chunkWriter)
		c.drawPlayingHUD()
	default:
		c.canvas.Fill(render.ColorBackground)
		c.canvas.Render(c.chunkWriter)
		c.canvas.RenderBorder(c.chunkWriter)
		c.drawUI(now)
	}

	return c.chunkWriter.Flush()
}

// drawUI draws the text screens shown outside of play.
func (c *Client) drawUI(now time.Time) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	c.chunkWriter.SetStyle(uiForeground, render.ColorBackground)
	defer c.chunkWriter.ResetStyle()

	if c.state.Screen == ScreenShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY, now)
		return
	}

	switch c.state.Screen {
	case ScreenLoading:
		c.drawLoadingScreen(centerX, centerY)
	case ScreenStart:
		c.drawStartScreen(centerX, centerY, now)
	}
}

// uiForeground is the text colour of the screens, drawn on the sky colour.
var uiForeground = color.NRGBA{R: 20, G: 30, B: 60, A: 0xff}

// writeCentered writes a line centered on centerX and marks it for redraw.
func (c *Client) writeCentered(centerX, row int, s string) {
	col := centerX - len(s)/2
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, len(s))
}

// drawPlayingHUD writes session information the render pass does not show.
// Fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	cw := c.chunkWriter
	w := c.session.World

	cw.SetStyle(uiForeground, render.ColorBackground)
	scoreText := fmt.Sprintf("Score: %-4d", w.Score)
	cw.WriteAt(termWidth-len(scoreText)-1, 1, scoreText)
	c.canvas.MarkTextDirty(termWidth-len(scoreText)-1, 1, len(scoreText))

	if boss := w.Boss(); boss != nil && c.session.Phase() == loop.PhaseRunning {
		bossText := fmt.Sprintf("Boss: %-3d", max(boss.Health, 0))
		cw.WriteAt(termWidth-len(bossText)-1, 2, bossText)
		c.canvas.MarkTextDirty(termWidth-len(bossText)-1, 2, len(bossText))
	}

	if c.server != nil {
		playersText := fmt.Sprintf("Players: %-4d", c.server.Count())
		cw.WriteAt(termWidth-len(playersText)-1, termHeight, playersText)
		c.canvas.MarkTextDirty(termWidth-len(playersText)-1, termHeight, len(playersText))
	}
	cw.ResetStyle()
}

// drawLoadingScreen shows asset loading progress.
func (c *Client) drawLoadingScreen(centerX, centerY int) {
	settled, total := c.assets.Progress()
	c.writeCentered(centerX, centerY, fmt.Sprintf("Loading assets %d/%d", settled, total))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int, now time.Time) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	remaining := int(config.InactivityDisconnectUser - now.Sub(c.state.lastInput).Seconds())
	c.writeCentered(centerX, centerY, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		max(remaining, 0),
	))
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int, now time.Time) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _   _ _  _ ___ _   _ _  _ _  _ ___ ___  `,
		` / __| | | | \| | _ \ | | | \| | \| | __| _ \ `,
		`| (_ | |_| | .' |   / |_| | .' | .' | _||   / `,
		` \___|\___/|_|\_|_|_\\___/|_|\_|_|\_|___|_|_\ `,
		`                                              `,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
		c.canvas.MarkTextDirty(centerX-titleWidth/2, titleStartY+i, titleWidth)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "~ Run, jump and shoot your way to the boss ~")

	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")

	controlLines := []string{
		"A D / < >  . . . .  Move",
		"W K / Up . . . . .  Jump",
		"SPACE / J  . . . . Shoot",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	if now.UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press ENTER to Start  <<")
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
