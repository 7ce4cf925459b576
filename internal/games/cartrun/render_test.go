package cartrun

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cartrun/internal/core"
)

func TestRenderDrawsTrackAndCart(t *testing.T) {
	g := newTestGame(flatOnly)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 800x500 world onto 80 columns and 23 rows below the HUD
	rowScale := 23.0 / 500
	trackRow := 1 + int(300*rowScale)
	if cell := screen.GetCell(40, trackRow); cell.Rune != TrackChar {
		t.Errorf("expected track at (40, %d), got %q", trackRow, cell.Rune)
	}
	if cell := screen.GetCell(5, trackRow-1); cell.Rune != CartChar || cell.Color != core.ColorBrown {
		t.Errorf("expected cart body at (5, %d), got %+v", trackRow-1, cell)
	}
	if r := screen.Get(5, trackRow); r != WheelChar {
		t.Errorf("expected wheel at (5, %d), got %q", trackRow, r)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(scripted(0.1, 0.5))
	for i := 0; i < 500 && !g.State().GameOver; i++ {
		step(g, false)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over screen should show GAME OVER")
	}
	if !strings.Contains(out, "restart") {
		t.Error("game over screen should prompt for restart")
	}
}

func TestRenderSceneTinyScreen(t *testing.T) {
	g := newTestGame(flatOnly)
	screen := core.NewScreen(1, 1)
	RenderScene(screen, g.Snapshot())
	if screen.Get(0, 0) != ' ' {
		t.Errorf("1x1 screen should stay blank, got %q", screen.Get(0, 0))
	}
}
