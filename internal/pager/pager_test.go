package pager

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestPagerScrolling(t *testing.T) {
	m := New("register", numberedLines(30))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 11}) // 10 content lines + footer

	steps := []struct {
		key    tea.KeyMsg
		offset int
	}{
		{keyRunes('j'), 1},
		{tea.KeyMsg{Type: tea.KeyDown}, 2},
		{keyRunes('k'), 1},
		{tea.KeyMsg{Type: tea.KeyPgDown}, 11},
		{tea.KeyMsg{Type: tea.KeyPgDown}, 20},
		{keyRunes('j'), 20},
		{keyRunes('g'), 0},
		{tea.KeyMsg{Type: tea.KeyUp}, 0},
		{keyRunes('G'), 20},
		{tea.KeyMsg{Type: tea.KeyPgUp}, 10},
	}

	for i, step := range steps {
		if _, cmd := m.Update(step.key); cmd != nil {
			t.Fatalf("step %d (%s): unexpected command", i, step.key)
		}
		if m.viewport.YOffset != step.offset {
			t.Fatalf("step %d (%s): expected offset %d, got %d", i, step.key, step.offset, m.viewport.YOffset)
		}
	}
}

func TestPagerView(t *testing.T) {
	m := New("balance", numberedLines(30))
	if m.View() != "" {
		t.Fatalf("expected an empty view before the first resize")
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "line 10") || strings.Contains(view, "line 11") {
		t.Fatalf("expected lines 1-10 to be visible: %q", view)
	}
	if !strings.Contains(view, "balance  lines 1-10 of 30  (q to quit)") {
		t.Fatalf("footer missing or wrong: %q", view)
	}

	m.Update(keyRunes('G'))
	view = ansi.Strip(m.View())
	if !strings.Contains(view, "line 30") || !strings.Contains(view, "lines 21-30 of 30") {
		t.Fatalf("expected the last page: %q", view)
	}
}

func TestPagerQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		keyRunes('q'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := New("t", "x")
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestPagerProgram(t *testing.T) {
	model := New("register", numberedLines(30))
	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(80, 24))

	tm.Send(keyRunes('j'))
	tm.Send(keyRunes('G')) // 23 visible lines, so the last offset is 7
	tm.Send(keyRunes('q'))

	final := tm.FinalModel(t).(*Model)
	if final.viewport.YOffset != 7 {
		t.Fatalf("expected offset 7 after G, got %d", final.viewport.YOffset)
	}
}
