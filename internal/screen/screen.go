package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/proprep/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// SizeMsg carries the size of the content area (the terminal minus header
// and footer). The router sends it to a screen when it becomes active and
// on every resize.
type SizeMsg struct {
	Width  int
	Height int
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeCapturer is an optional interface for screens that use Esc
// themselves (closing a modal, cancelling input). While CapturesEscape
// returns true the app forwards Esc instead of navigating back.
type EscapeCapturer interface {
	CapturesEscape() bool
}
