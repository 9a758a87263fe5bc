package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/proprep/internal/ui/theme"
)

// Card renders a bordered box of the given outer width with a dim title
// and an optional glyph on the title row.
func Card(title, glyph string, glyphColor lipgloss.Style, body string, width int) string {
	return renderCard(theme.Card, title, glyph, glyphColor, body, width)
}

// FocusedCard is Card with the border in the primary color, for the
// item under the cursor in a list of cards.
func FocusedCard(title, glyph string, glyphColor lipgloss.Style, body string, width int) string {
	return renderCard(theme.Card.BorderForeground(theme.Primary), title, glyph, glyphColor, body, width)
}

func renderCard(style lipgloss.Style, title, glyph string, glyphColor lipgloss.Style, body string, width int) string {
	inner := width - 4 // border + padding
	if inner < 1 {
		inner = 1
	}

	head := theme.CardTitle.Render(title)
	if glyph != "" {
		gap := inner - lipgloss.Width(head) - lipgloss.Width(glyph)
		if gap < 1 {
			gap = 1
		}
		head += strings.Repeat(" ", gap) + glyphColor.Render(glyph)
	}

	return style.
		Width(width).
		Render(head + "\n" + body)
}

// ModalBox renders a dialog box of outer width w with a title and body.
// Callers position it, usually centered with SpliceOverlay.
func ModalBox(title, body string, w int) string {
	return theme.Modal.
		Width(w).
		Render(theme.ModalTitle.Render(title) + "\n\n" + body)
}

// SkeletonLines renders n placeholder bars of decreasing width, shown
// while content loads.
func SkeletonLines(n, width int) string {
	lines := make([]string, n)
	for i := range lines {
		w := width - i*width/10
		if w < 1 {
			w = 1
		}
		lines[i] = theme.Skeleton.Render(strings.Repeat("▆", w))
	}
	return strings.Join(lines, "\n")
}
