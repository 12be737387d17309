package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/songeyume/bibli/internal/tui"
)

func options() []tui.FacetOption {
	return []tui.FacetOption{
		{Value: "Fantasy", Count: 12},
		{Value: "Romance", Count: 7, Active: true},
		{Value: "Policier", Count: 3},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{}
}

func TestFacetPicker_StartsOnActiveOption(t *testing.T) {
	p := tui.NewFacetPicker("Tags", "tag", options())

	// Selecting immediately should yield the already-active option.
	_, cmd := p.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should produce a message")
	}
	msg, ok := cmd().(tui.FacetChosenMsg)
	if !ok {
		t.Fatalf("message type %T", cmd())
	}
	if msg.Canceled || msg.Value != "Romance" || msg.Facet != "tag" {
		t.Errorf("chosen = %+v", msg)
	}
}

func TestFacetPicker_NavigateAndChoose(t *testing.T) {
	p := tui.NewFacetPicker("Tags", "tag", options())

	p, _ = p.Update(keyMsg("down"))
	_, cmd := p.Update(keyMsg("enter"))
	msg := cmd().(tui.FacetChosenMsg)
	if msg.Value != "Policier" {
		t.Errorf("chosen after down = %q", msg.Value)
	}
}

func TestFacetPicker_CursorClampsAtEnds(t *testing.T) {
	p := tui.NewFacetPicker("Tags", "tag", options())

	for i := 0; i < 10; i++ {
		p, _ = p.Update(keyMsg("down"))
	}
	_, cmd := p.Update(keyMsg("enter"))
	if msg := cmd().(tui.FacetChosenMsg); msg.Value != "Policier" {
		t.Errorf("cursor overran the list: %q", msg.Value)
	}

	for i := 0; i < 10; i++ {
		p, _ = p.Update(keyMsg("up"))
	}
	_, cmd = p.Update(keyMsg("enter"))
	if msg := cmd().(tui.FacetChosenMsg); msg.Value != "Fantasy" {
		t.Errorf("cursor underran the list: %q", msg.Value)
	}
}

func TestFacetPicker_EscCancels(t *testing.T) {
	p := tui.NewFacetPicker("Tags", "tag", options())
	_, cmd := p.Update(keyMsg("esc"))
	msg := cmd().(tui.FacetChosenMsg)
	if !msg.Canceled {
		t.Error("esc should cancel")
	}
}

func TestFacetPicker_EmptyOptions(t *testing.T) {
	p := tui.NewFacetPicker("Tags", "tag", nil)
	_, cmd := p.Update(keyMsg("enter"))
	if msg := cmd().(tui.FacetChosenMsg); !msg.Canceled {
		t.Error("enter on an empty picker should cancel")
	}
}
