package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/proprep/internal/ui/theme"
)

// Button is a styled button component. It fires on Enter while focused,
// or on its shortcut key at any time.
type Button struct {
	Label    string
	Key      string
	Focused  bool
	OnPress  func() tea.Cmd
	Disabled bool
}

// NewButton creates a new button with an optional shortcut key.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Disabled || b.OnPress == nil {
		return b, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch k := kmsg.String(); {
	case b.Key != "" && k == b.Key:
		return b, b.OnPress()
	case b.Focused && k == "enter":
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button. Hidden buttons render as an empty string.
func (b Button) View() string {
	if b.Disabled {
		return ""
	}
	label := b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
