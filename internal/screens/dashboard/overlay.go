package dashboard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/proprep/internal/insight"
	"github.com/abhisek/proprep/internal/ui/components"
	"github.com/abhisek/proprep/internal/ui/theme"
)

const (
	tooltipWidth    = 40
	tooltipMaxLines = 3
	modalMaxWidth   = 64
)

// renderTooltip draws the hover card: the skill name over a summary
// clamped to a few lines, or skeleton bars while loading.
func renderTooltip(v insight.TooltipView) []string {
	inner := tooltipWidth - 2

	var body string
	if v.Loading {
		body = components.SkeletonLines(tooltipMaxLines, inner)
	} else {
		body = clampLines(v.Summary, inner, tooltipMaxLines)
	}

	title := theme.TooltipTitle.Render(ansi.Truncate(v.Skill, inner, "…"))
	box := theme.Tooltip.Width(tooltipWidth).Render(title + "\n" + body)
	return strings.Split(box, "\n")
}

// clampLines wraps s to width and keeps at most n lines, marking a cut
// with an ellipsis.
func clampLines(s string, width, n int) string {
	lines := strings.Split(lipgloss.Wrap(s, width, ""), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	lines[n-1] = ansi.Truncate(last, width-1, "") + "…"
	return strings.Join(lines, "\n")
}

// overlayTooltip splices the tooltip just below and right of the pointer,
// kept inside the content area.
func (d *DashboardScreen) overlayTooltip(view string, width, height int) string {
	if _, open := d.ctrl.Selected(); open {
		return view
	}
	v, ok := d.ctrl.Tooltip()
	if !ok {
		return view
	}

	lines := renderTooltip(v)
	x, y := components.ClampOverlay(v.Pointer.X+2, v.Pointer.Y+1,
		lipgloss.Width(lines[0]), len(lines), width, height)
	return components.SpliceOverlay(view, lines, x, y)
}

// renderModal draws the detail dialog for the selected skill.
func (d *DashboardScreen) renderModal(v insight.ModalView, width int) []string {
	w := min(width-4, modalMaxWidth)
	inner := w - 6 // border + padding

	var body string
	if v.Loading {
		body = components.SkeletonLines(3, inner)
	} else {
		body = strings.Join(v.Lines, "\n") + "\n\n" + d.highlights()
	}

	box := components.ModalBox(v.Skill+" Details", body, w)
	box += "\n" + lipgloss.NewStyle().Width(w).Align(lipgloss.Right).
		Render(theme.Hint.Render("esc to close"))
	return strings.Split(box, "\n")
}

// highlights ties the skill back to the industry on screen.
func (d *DashboardScreen) highlights() string {
	demand := d.insight.DemandLevel.Descriptor()
	demandStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(demand.Color)).Bold(true)
	bullet := lipgloss.NewStyle().Foreground(theme.Primary).Render("•")

	return theme.ModalTitle.Render("Key Highlights") + "\n" +
		bullet + " Industry demand: " + demandStyle.Render(demand.Label) + "\n" +
		bullet + " Industry: " + d.insight.Industry
}

// overlayModal splices the detail modal centered over the view.
func (d *DashboardScreen) overlayModal(view string, width, height int) string {
	v, ok := d.ctrl.Modal()
	if !ok {
		return view
	}

	lines := d.renderModal(v, width)
	w := lipgloss.Width(strings.Join(lines, "\n"))
	x, y := components.ClampOverlay((width-w)/2, (height-len(lines))/2,
		w, len(lines), width, height)
	return components.SpliceOverlay(view, lines, x, y)
}
