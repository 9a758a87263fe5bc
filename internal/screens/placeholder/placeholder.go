package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proprep/internal/screen"
	"github.com/abhisek/proprep/internal/ui/theme"
)

// PlaceholderScreen is shown in place of a screen that has nothing to
// display yet, with a hint on how to fix that.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and message.
func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	heading := theme.Hint.Render("╌╌ Nothing here yet ╌╌")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(p.message)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

// Message returns the hint shown on the screen.
func (p *PlaceholderScreen) Message() string {
	return p.message
}
