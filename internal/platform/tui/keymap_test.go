package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falling-blocks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound letter", runeKey('x'), core.ActionAnyKey},
		{"unbound arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionAnyKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapBackDisabledByDefault(t *testing.T) {
	keys := DefaultKeyMap()
	if key.Matches(runeKey('b'), keys.Back) {
		t.Error("back should be disabled until a menu hosts the game")
	}
	keys.Back.SetEnabled(true)
	if !key.Matches(runeKey('b'), keys.Back) {
		t.Error("enabled back should match b")
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, keys.Up},
		{runeKey('k'), keys.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, keys.Down},
		{runeKey('j'), keys.Down},
		{tea.KeyMsg{Type: tea.KeyEnter}, keys.Select},
		{runeKey('q'), keys.Quit},
	}

	for _, tc := range tests {
		if !key.Matches(tc.msg, tc.binding) {
			t.Errorf("%q should match %v", tc.msg.String(), tc.binding.Keys())
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("full help lists %d bindings, expected 8", total)
	}
}
