package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceOverlayPlain(t *testing.T) {
	view := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"

	got := SpliceOverlay(view, []string{"XY", "ZW"}, 3, 1)
	lines := strings.Split(ansi.Strip(got), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbXYbbbbb", lines[1])
	assert.Equal(t, "cccZWccccc", lines[2])
}

func TestSpliceOverlayPadsShortLines(t *testing.T) {
	got := SpliceOverlay("ab\n", []string{"XY"}, 4, 0)
	assert.Equal(t, "ab  XY", ansi.Strip(strings.Split(got, "\n")[0]))
}

func TestSpliceOverlayDropsRowsOutsideView(t *testing.T) {
	view := "aaaa\nbbbb"
	got := SpliceOverlay(view, []string{"1", "2", "3"}, 0, 1)
	lines := strings.Split(ansi.Strip(got), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "aaaa", lines[0])
	assert.Equal(t, "1bbb", lines[1])
}

func TestSpliceOverlayPreservesStyledSuffix(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := SpliceOverlay(styled, []string{"__"}, 2, 0)
	assert.Equal(t, "he__o world", ansi.Strip(got))
}

func TestClampOverlay(t *testing.T) {
	x, y := ClampOverlay(70, 20, 20, 5, 80, 24)
	assert.Equal(t, 60, x)
	assert.Equal(t, 19, y)

	x, y = ClampOverlay(5, 5, 100, 30, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = ClampOverlay(5, 5, 10, 3, 80, 24)
	assert.Equal(t, 5, x)
	assert.Equal(t, 5, y)
}

func TestMenuNavigationAndShortcut(t *testing.T) {
	var fired []string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			fired = append(fired, name)
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "DASHBOARD", Key: "d", Action: action("dashboard")},
		{Label: "DISABLED", Disabled: true},
		{Label: "EXIT", Key: "q", Action: action("exit")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected, "disabled item is skipped")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Equal(t, 0, m.Selected)
	assert.Equal(t, []string{"exit", "dashboard"}, fired)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "▸ DASHBOARD [d]")
}

func TestButtonShortcutAndFocus(t *testing.T) {
	presses := 0
	b := NewButton("View More", "v", func() tea.Cmd { presses++; return nil })

	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 0, presses, "enter ignored while unfocused")

	b, _ = b.Update(tea.KeyPressMsg{Code: 'v', Text: "v"})
	assert.Equal(t, 1, presses)

	b.Focused = true
	_, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 2, presses)

	assert.Contains(t, ansi.Strip(b.View()), "View More (v)")

	b.Disabled = true
	assert.Empty(t, b.View())
}

func TestProgressBarWidth(t *testing.T) {
	bar := NewProgressBar("", 0.5, false, 20)
	assert.Equal(t, 20, lipgloss.Width(bar.View()))

	colored := bar.WithColor(lipgloss.Color("#22C55E"))
	assert.Equal(t, 20, lipgloss.Width(colored.View()))
}

func TestTextInputValueTrimmed(t *testing.T) {
	ti := NewTextInput("Skill", "e.g. Kubernetes", 40)
	ti.Focus()
	ti.Model.SetValue("  Rust  ")
	assert.Equal(t, "Rust", ti.Value())

	ti.Reset()
	assert.Equal(t, "", ti.Value())
}

func TestSkeletonLines(t *testing.T) {
	out := SkeletonLines(3, 20)
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestModalBoxContainsTitleAndBody(t *testing.T) {
	box := ansi.Strip(ModalBox("Go Details", "line one\nline two", 40))
	assert.Contains(t, box, "Go Details")
	assert.Contains(t, box, "line two")
}
