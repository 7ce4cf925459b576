package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cartrun/internal/config"
	"github.com/vovakirdan/cartrun/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"help", runeKey('?'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.want {
			t.Errorf("Action(%s) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(3)
	if h.Held() {
		t.Fatal("new tracker should not be held")
	}

	h.Press()
	for i := 0; i < 3; i++ {
		if !h.Held() {
			t.Errorf("tick %d: expected held inside the grace window", i)
		}
		h.Advance()
	}
	if h.Held() {
		t.Error("hold should expire after the grace window")
	}

	// Auto-repeat renews the window
	h.Press()
	h.Advance()
	h.Advance()
	h.Press()
	h.Advance()
	h.Advance()
	if !h.Held() {
		t.Error("repeat press should extend the hold")
	}

	h.Release()
	if h.Held() {
		t.Error("Release should drop the hold")
	}
}

func TestHoldTrackerDefaultGrace(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press()
	for i := 0; i < DefaultHoldGrace; i++ {
		h.Advance()
	}
	if h.Held() {
		t.Errorf("hold outlived %d ticks", DefaultHoldGrace)
	}
}

func TestDefaultGraceShorterThanJumpWindow(t *testing.T) {
	tick := time.Second / 60
	window := config.DefaultCartRunConfig().Physics.JumpWindow
	if time.Duration(DefaultHoldGrace)*tick >= window {
		t.Errorf("default grace of %d ticks covers the whole %v jump window", DefaultHoldGrace, window)
	}
}
