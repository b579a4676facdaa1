package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KIM-17/matching-card-game/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		isQuit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter flips", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlip, false},
		{"space flips", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlip, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"scoreboard", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.expected || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, isQuit, tt.expected, tt.isQuit)
			}
		})
	}
}

func TestMapTierKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		index int
		ok    bool
	}{
		{"one", runeKey('1'), 0, true},
		{"three", runeKey('3'), 2, true},
		{"nine", runeKey('9'), 8, true},
		{"zero", runeKey('0'), 0, false},
		{"letter", runeKey('a'), 0, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := km.MapTierKey(tt.msg)
			if index != tt.index || ok != tt.ok {
				t.Errorf("MapTierKey(%q) = %d, %v; expected %d, %v", tt.msg.String(), index, ok, tt.index, tt.ok)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
