package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plantmath/strainfib/internal/config"
	"github.com/plantmath/strainfib/internal/strain"
)

func newTestModel() Model {
	return NewModel(context.Background(), strain.Hybrid, config.AppConfig{
		Timeout: 30 * time.Second,
		Terms:   10,
	}, "test")
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyMsg(tea.KeyDown))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg(tea.KeyUp))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyMsg(tea.KeyUp))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor should not go negative, got %d", m.cursor)
	}

	// Down stops on the last item.
	for i := 0; i < 20; i++ {
		next, _ = m.Update(keyMsg(tea.KeyDown))
		m = next.(Model)
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor after many downs = %d, want %d", m.cursor, len(menuItems)-1)
	}
}

func TestSelectExitQuits(t *testing.T) {
	m := newTestModel()
	m.cursor = actionExit

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

func TestSingleActionPromptsForInput(t *testing.T) {
	m := newTestModel()
	m.cursor = actionSingle

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	if m.mode != modeInput {
		t.Fatalf("mode = %v, want modeInput", m.mode)
	}

	// Type "10" and submit.
	next, _ = m.Update(runeMsg("1"))
	m = next.(Model)
	next, _ = m.Update(runeMsg("0"))
	m = next.(Model)
	if m.inputValue != "10" {
		t.Fatalf("inputValue = %q, want %q", m.inputValue, "10")
	}

	next, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	if m.mode != modeRunning {
		t.Fatalf("mode after submit = %v, want modeRunning", m.mode)
	}
	if cmd == nil {
		t.Fatal("expected an action command")
	}

	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	if !ok {
		t.Fatalf("expected actionDoneMsg, got %T", msg)
	}
	if done.isErr {
		t.Fatalf("unexpected error output: %s", done.output)
	}
	if !strings.Contains(done.output, "Fibonacci(10) = 55") {
		t.Errorf("missing result in output:\n%s", done.output)
	}
}

func TestInputRejectsNonDigits(t *testing.T) {
	m := newTestModel()
	m.mode = modeInput
	m.inputAction = actionSingle

	next, _ := m.Update(runeMsg("x"))
	m = next.(Model)
	if m.inputValue != "" {
		t.Errorf("inputValue = %q, want empty after non-digit", m.inputValue)
	}

	// Submitting an empty value keeps prompting.
	next, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	if m.mode != modeInput || cmd != nil {
		t.Errorf("empty submit should stay in input mode")
	}
}

func TestEscReturnsToMenu(t *testing.T) {
	m := newTestModel()
	m.mode = modeInput
	m.inputValue = "42"

	next, _ := m.Update(keyMsg(tea.KeyEsc))
	m = next.(Model)
	if m.mode != modeMenu {
		t.Errorf("mode after esc = %v, want modeMenu", m.mode)
	}
	if m.inputValue != "" {
		t.Errorf("inputValue should be cleared, got %q", m.inputValue)
	}
}

func TestActionDoneSwitchesToOutput(t *testing.T) {
	m := newTestModel()
	m.mode = modeRunning

	next, _ := m.Update(actionDoneMsg{output: "hello"})
	m = next.(Model)
	if m.mode != modeOutput || m.body != "hello" {
		t.Errorf("mode = %v body = %q, want output mode with body", m.mode, m.body)
	}

	next, _ = m.Update(keyMsg(tea.KeyEsc))
	m = next.(Model)
	if m.mode != modeMenu || m.body != "" {
		t.Errorf("esc should clear output and return to menu")
	}
}

func TestWisdomRendersImmediately(t *testing.T) {
	m := newTestModel()
	m.cursor = actionWisdom

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	if m.mode != modeOutput {
		t.Fatalf("mode = %v, want modeOutput", m.mode)
	}
	if !strings.Contains(m.body, "memo table") {
		t.Errorf("missing wisdom text:\n%s", m.body)
	}
}

func TestRangeActionProducesWindow(t *testing.T) {
	m := newTestModel()
	m.cursor = actionRange

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected an action command")
	}
	done := cmd().(actionDoneMsg)
	if done.isErr {
		t.Fatalf("unexpected error: %s", done.output)
	}
	if !strings.Contains(done.output, "6765") || !strings.Contains(done.output, "102334155") {
		t.Errorf("missing range values in output:\n%s", done.output)
	}
}

func TestViewShowsMenuAndFooter(t *testing.T) {
	m := newTestModel()
	m.width = 80
	m.height = 24

	view := m.View()
	if !strings.Contains(view, "Strain-Enhanced Single Fibonacci") {
		t.Errorf("view missing menu items:\n%s", view)
	}
	if !strings.Contains(view, "goroutines") {
		t.Errorf("view missing stats footer:\n%s", view)
	}
}

func TestViewBeforeSizing(t *testing.T) {
	m := newTestModel()
	if m.View() != "Initializing..." {
		t.Errorf("zero-width view should show placeholder")
	}
}
