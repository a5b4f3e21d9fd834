package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/chamale-rac/breakout/internal/core"
)

// hudHeight is the number of screen rows reserved above the playfield
// for the score line and its separator.
const hudHeight = 2

// Minimum usable terminal size; below this the frame shows a hint
// instead of an unreadable playfield.
const (
	minScreenW = 40
	minScreenH = 10
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// spriteColors maps sprite kinds to display colors.
var spriteColors = map[core.SpriteKind]core.Color{
	core.SpriteBall:    core.ColorBrightWhite,
	core.SpritePaddle:  core.ColorBrightCyan,
	core.SpriteBlock:   core.ColorOrange,
	core.SpritePowerUp: core.ColorBrightYellow,
}

// spriteGlyphs maps sprite kinds to their default fill glyph. Sprites
// carrying their own glyph (power-up pickups) override this.
var spriteGlyphs = map[core.SpriteKind]rune{
	core.SpriteBall:    '●',
	core.SpritePaddle:  '=',
	core.SpriteBlock:   '█',
	core.SpritePowerUp: '?',
}

// RenderFrame composes one frame into the screen buffer: HUD on top,
// the projected playfield below it, and any phase overlay on top of both.
func RenderFrame(dst *core.Screen, scene core.Scene, state core.GameState) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	drawHUD(dst, state)
	drawScene(dst, scene)
	drawOverlay(dst, state)
}

// drawHUD draws the score, lives, and frame readout plus a separator.
func drawHUD(dst *core.Screen, state core.GameState) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", state.Score), core.ColorBrightYellow)

	hearts := "Lives: " + strings.Repeat("♥", state.Lives)
	drawTextCenteredColored(dst, 0, hearts, core.ColorBrightRed)

	frameText := fmt.Sprintf("Frame: %d", state.Frame)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(frameText)-1, 0, frameText, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawScene projects field-space sprites onto the rows below the HUD.
func drawScene(dst *core.Screen, scene core.Scene) {
	fieldRows := dst.Height() - hudHeight
	if fieldRows <= 0 || scene.FieldW <= 0 || scene.FieldH <= 0 {
		return
	}

	for _, sp := range scene.Sprites {
		cell := projectRect(sp.Bounds, scene.FieldW, scene.FieldH, dst.Width(), fieldRows)
		glyph := sp.Glyph
		if glyph == 0 {
			glyph = spriteGlyphs[sp.Kind]
		}
		cell.Y += hudHeight
		dst.DrawRect(cell, glyph, spriteColors[sp.Kind])
	}
}

// projectRect scales a field-space rectangle into cell space. Sprites
// with nonzero area keep at least one cell so they stay visible on
// small terminals, and the result is clamped inside the cell grid.
func projectRect(r core.RectF, fieldW, fieldH float64, cellsW, cellsH int) core.Rect {
	sx := float64(cellsW) / fieldW
	sy := float64(cellsH) / fieldH

	x := int(math.Floor(r.X * sx))
	y := int(math.Floor(r.Y * sy))
	w := int(math.Floor(r.W * sx))
	h := int(math.Floor(r.H * sy))

	if w < 1 && r.W > 0 {
		w = 1
	}
	if h < 1 && r.H > 0 {
		h = 1
	}
	w = core.Min(w, cellsW)
	h = core.Min(h, cellsH)
	x = core.Clamp(x, 0, cellsW-w)
	y = core.Clamp(y, 0, cellsH-h)

	return core.NewRect(x, y, w, h)
}

// drawOverlay draws the phase message, if any, over the playfield.
func drawOverlay(dst *core.Screen, state core.GameState) {
	switch state.Phase {
	case core.PhasePlaying:
		if state.Ready {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case core.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case core.PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", state.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case core.PhaseVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", state.Score)
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// drawTextCenteredColored centers by rune count, so multibyte glyphs
// like the hearts line land where they should.
func drawTextCenteredColored(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - utf8.RuneCountInString(text)) / 2
	dst.DrawTextColored(x, y, text, c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
