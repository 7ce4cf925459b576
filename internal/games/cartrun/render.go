package cartrun

import (
	"fmt"

	"github.com/vovakirdan/cartrun/internal/core"
)

// Visual characters for rendering
const (
	CartChar  = '█'
	WheelChar = 'o'
	TrackChar = '═'
)

// Render draws the current scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderScene(dst, g.Snapshot())
}

// RenderScene draws a scene scaled from world units to screen cells.
// Row 0 is the HUD; the world maps onto the remaining rows.
func RenderScene(dst *core.Screen, sc Scene) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 1 || sc.WorldW <= 0 || sc.WorldH <= 0 {
		return
	}

	sx := float64(dst.Width()) / sc.WorldW
	sy := float64(dst.Height()-1) / sc.WorldH
	col := func(x float64) int { return int(x * sx) }
	row := func(y float64) int { return 1 + int(y*sy) }

	for _, sp := range sc.Segments {
		x0, x1 := col(sp.X0), col(sp.X1)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		dst.DrawHLine(x0, row(sp.Y), x1-x0, TrackChar, core.ColorGray)
	}

	// Cart body sits on the row above its base; wheels share the track row
	baseRow := row(sc.Cart.Bottom())
	x0 := col(sc.Cart.X)
	w := core.Max(1, col(sc.Cart.Right())-x0)
	h := core.Max(1, baseRow-row(sc.Cart.Y))
	dst.DrawRect(core.NewRect(x0, baseRow-h, w, h), CartChar, core.ColorBrown)
	dst.SetColored(x0, baseRow, WheelChar, core.ColorWhite)
	dst.SetColored(x0+w-1, baseRow, WheelChar, core.ColorWhite)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", sc.Score), core.ColorYellow)

	if sc.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press Space or R to restart", sc.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
