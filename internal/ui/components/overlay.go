package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay lines placed at (x, y). Truncation is ANSI-aware, so styling in
// the view survives on both sides of the overlay. View lines shorter than
// x are padded with spaces; lines outside the view are dropped.
func SpliceOverlay(view string, overlay []string, x, y int) string {
	if len(overlay) == 0 {
		return view
	}
	if x < 0 {
		x = 0
	}

	lines := strings.Split(view, "\n")
	for i, ol := range overlay {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}

		line := lines[row]
		width := ansi.StringWidth(line)

		var b strings.Builder
		if width < x {
			b.WriteString(line)
			b.WriteString(strings.Repeat(" ", x-width))
		} else if x > 0 {
			b.WriteString(ansi.Truncate(line, x, ""))
		}
		b.WriteString("\x1b[0m")
		b.WriteString(ol)
		b.WriteString("\x1b[0m")

		if end := x + ansi.StringWidth(ol); end < width {
			b.WriteString(ansi.TruncateLeft(line, end, ""))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// ClampOverlay returns the top-left position of a w×h box anchored at
// (x, y) so that it stays inside a screen of sw×sh cells.
func ClampOverlay(x, y, w, h, sw, sh int) (int, int) {
	if x+w > sw {
		x = sw - w
	}
	if y+h > sh {
		y = sh - h
	}
	return max(x, 0), max(y, 0)
}
