package client

import (
	"fmt"
	"time"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/loop/sim"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	screenChanged := c.state.Screen != c.state.prevScreen
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if screenChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevScreen = c.state.Screen
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	snap := c.game.Snapshot()
	if c.state.Screen == ScreenPlaying && !c.state.isInactive {
		drawWorld(c.canvas, snap)
		drawLives(c.canvas, snap.HUD.Lives, snap.Ship.Size, snap.Ship.Indent)
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	// Draw UI overlay
	c.drawUI(snap, now)

	return c.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(snap *sim.Snapshot, now time.Time) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY, now)
		return
	}

	switch c.state.Screen {
	case ScreenStart:
		c.drawStartScreen(centerX, centerY, now)
	case ScreenPlaying:
		c.drawPlayingHUD(termWidth, termHeight, snap.HUD)
	}
}

// writeText writes s at (col, row) and marks the cells so the canvas
// repaints them once the text is gone.
func (c *Client) writeText(col, row int, color, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() || col < 1 {
		return
	}
	if color == "" {
		c.chunkWriter.WriteAt(col, row, s)
	} else {
		c.chunkWriter.WriteColorAt(col, row, color, s)
	}
	c.canvas.MarkTextDirty(col, row, len(s))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int, now time.Time) {
	title := "INACTIVITY WARNING"
	c.writeText(centerX-len(title)/2, centerY-2, "", title)

	left := c.idleQuit - now.Sub(c.state.lastInput)
	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(left.Seconds()),
	)
	c.writeText(centerX-len(msg)/2, centerY, "", msg)

	hint := "Press any key to continue"
	c.writeText(centerX-len(hint)/2, centerY+2, "", hint)
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int, now time.Time) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		` ___  ___ ___ ___  ___ `,
		`| _ \/ _ \_ _|   \/ __|`,
		`|   / (_) | || |) \__ \`,
		`|_|_\\___/___|___/|___/`,
	}
	titleWidth := len(titleArt[0])

	titleStartY := centerY - 7
	for i, line := range titleArt {
		c.writeText(centerX-titleWidth/2, titleStartY+i, "", line)
	}

	subtitle := "~ Asteroids in your terminal ~"
	c.writeText(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, "", subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	c.writeText(centerX-len(controlHeader)/2, controlsY, "", controlHeader)

	controlLines := []string{
		"W / Up  . . . . Thrust",
		"A D / < >  . .  Rotate",
		"SPACE  . . . . . Shoot",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeText(centerX-len(line)/2, controlsY+1+i, "", line)
	}

	// Blinking start prompt
	prompt := ">>  Press SPACE to Start  <<"
	promptY := controlsY + len(controlLines) + 2
	if now.UnixMilli()/600%2 == 0 {
		c.writeText(centerX-len(prompt)/2, promptY, draw.ColorBrightCyan, prompt)
	}
}

// drawPlayingHUD draws score, high score, level and the fading banner.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, hud sim.HUD) {
	scoreText := fmt.Sprintf("Score: %8d", hud.Score)
	c.writeText(termWidth-len(scoreText)-1, 1, "", scoreText)

	bestText := fmt.Sprintf("Best: %-8d", hud.HighScore)
	c.writeText(termWidth/2-len(bestText)/2, 1, draw.ColorGray, bestText)

	levelText := fmt.Sprintf("Level: %-3d", hud.Level+1)
	c.writeText(2, termHeight, draw.ColorGray, levelText)

	if color := draw.AlphaColor(hud.BannerAlpha); color != "" && hud.Banner != "" {
		row := termHeight * 3 / 4
		c.writeText(termWidth/2-len(hud.Banner)/2, row, color, hud.Banner)
	}
}
