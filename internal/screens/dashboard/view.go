package dashboard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/proprep/internal/market"
	"github.com/abhisek/proprep/internal/ui/components"
	"github.com/abhisek/proprep/internal/ui/theme"
)

// WideWidth is the content width from which the four summary cards sit
// on one row instead of a 2x2 grid.
const WideWidth = 120

const (
	sectionTopSkills = iota
	sectionRecommended
)

// zoneKey identifies one badge. The same skill can appear in more than
// one section.
type zoneKey struct {
	section int
	index   int
}

var noFocus = zoneKey{-1, -1}

// zone is the one-line hit box of a badge in body coordinates, before
// scrolling.
type zone struct {
	key   zoneKey
	skill string
	x, y  int
	w     int
}

// block is rendered output together with the badge zones inside it,
// relative to its top-left corner.
type block struct {
	view  string
	zones []zone
}

func (b block) width() int  { return lipgloss.Width(b.view) }
func (b block) height() int { return lipgloss.Height(b.view) }

func (b block) shifted(dx, dy int) []zone {
	out := make([]zone, len(b.zones))
	for i, z := range b.zones {
		z.x += dx
		z.y += dy
		out[i] = z
	}
	return out
}

// hjoin places blocks side by side, top aligned, gap columns apart.
func hjoin(gap int, blocks ...block) block {
	spacer := strings.Repeat(" ", gap)
	var (
		views []string
		zones []zone
		x     int
	)
	for i, b := range blocks {
		if i > 0 {
			views = append(views, spacer)
			x += gap
		}
		views = append(views, b.view)
		zones = append(zones, b.shifted(x, 0)...)
		x += b.width()
	}
	return block{view: lipgloss.JoinHorizontal(lipgloss.Top, views...), zones: zones}
}

// vjoin stacks blocks with one blank line between them.
func vjoin(blocks ...block) block {
	var (
		views []string
		zones []zone
		y     int
	)
	for i, b := range blocks {
		if i > 0 {
			views = append(views, "")
			y++
		}
		views = append(views, b.view)
		zones = append(zones, b.shifted(0, y)...)
		y += b.height()
	}
	return block{view: strings.Join(views, "\n"), zones: zones}
}

// card wraps body in a bordered card. Body text starts two columns in
// and two rows down (border, title row).
func card(title, glyph string, glyphStyle lipgloss.Style, body block, w int) block {
	return block{
		view:  components.Card(title, glyph, glyphStyle, body.view, w),
		zones: body.shifted(2, 2),
	}
}

// badges lays skills out in rows no wider than width. Each badge is one
// line high, so a zone is exact.
func (d *DashboardScreen) badges(section int, skills []string, style lipgloss.Style, width int) block {
	var (
		rows  []string
		row   []string
		zones []zone
		x, y  int
	)
	for i, skill := range skills {
		key := zoneKey{section, i}

		label := ansi.Truncate(skill, max(width-style.GetHorizontalPadding(), 1), "…")
		st := style
		if key == d.focus {
			st = st.Inherit(theme.BadgeFocus)
		}
		b := st.Render(label)
		w := lipgloss.Width(b)

		if x > 0 && x+w > width {
			rows = append(rows, strings.Join(row, " "))
			row = nil
			x = 0
			y++
		}
		zones = append(zones, zone{key: key, skill: skill, x: x, y: y, w: w})
		row = append(row, b)
		x += w + 1
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	if len(rows) == 0 {
		rows = append(rows, theme.Hint.Render("none"))
	}
	return block{view: strings.Join(rows, "\n"), zones: zones}
}

func text(s string) block {
	return block{view: s}
}

// render builds the whole dashboard body for the given width.
func (d *DashboardScreen) render(width int) block {
	in := d.insight
	gap := 1

	// Four cards on one row when wide, a 2x2 grid otherwise.
	cols := 2
	if width >= WideWidth {
		cols = 4
	}
	cw := (width - gap*(cols-1)) / cols
	inner := cw - 4

	outlook := in.MarketOutlook.Descriptor()
	outlookStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(outlook.Color)).Bold(true)
	outlookCard := card("Market Outlook", outlook.Icon, outlookStyle, text(
		outlookStyle.Render(outlook.Label)+"\n"+
			theme.Hint.Render("Next update "+market.FormatRelative(in.NextUpdate, d.now())),
	), cw)

	growthBar := components.NewProgressBar("", in.GrowthRate/100, false, inner)
	growthCard := card("Industry Growth", "↗", lipgloss.NewStyle().Foreground(theme.Secondary), text(
		theme.CardValue.Render(market.FormatGrowth(in.GrowthRate))+"\n"+growthBar.View(),
	), cw)

	demand := in.DemandLevel.Descriptor()
	demandStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(demand.Color))
	demandCard := card("Demand Level", "◉", demandStyle, text(
		demandStyle.Bold(true).Render(demand.Label)+"\n"+
			demandStyle.Render(strings.Repeat("━", max(inner, 1))),
	), cw)

	topCard := card("Top Skills", "✦", lipgloss.NewStyle().Foreground(theme.Accent),
		d.badges(sectionTopSkills, in.TopSkills, theme.TopSkillBadge, inner), cw)

	var summary block
	if cols == 4 {
		summary = hjoin(gap, outlookCard, growthCard, demandCard, topCard)
	} else {
		summary = vjoin(
			hjoin(gap, outlookCard, growthCard),
			hjoin(gap, demandCard, topCard),
		)
	}

	salary := card("Salary Ranges by Role", "$", lipgloss.NewStyle().Foreground(theme.Success),
		text(salaryChart(in.SalaryRanges, width-4)), width)

	half := (width - gap) / 2
	trends := card("Key Industry Trends", "⇡", lipgloss.NewStyle().Foreground(theme.Primary),
		text(bulletList(in.KeyTrends)), half)
	recommended := card("Recommended Skills", "★", lipgloss.NewStyle().Foreground(theme.Success),
		d.badges(sectionRecommended, in.RecommendedSkills, theme.RecommendedBadge, half-4), half)

	return vjoin(
		text(header(in, width)),
		summary,
		salary,
		hjoin(gap, trends, recommended),
	)
}

func header(in *market.IndustryInsight, width int) string {
	title := theme.CardValue.Render(in.Industry)
	updated := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Background(theme.BgCard).
		Padding(0, 1).
		Render("Last updated: " + market.FormatDate(in.LastUpdated))

	gap := width - lipgloss.Width(title) - lipgloss.Width(updated)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + updated
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return theme.Hint.Render("none")
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("•") + " " + item
	}
	return strings.Join(lines, "\n")
}

// salaryChart draws min, median and max bars per role, scaled to the
// highest max across roles, labelled in thousands of USD.
func salaryChart(ranges []market.SalaryRange, width int) string {
	if len(ranges) == 0 {
		return theme.Hint.Render("no salary data")
	}

	top := 0.0
	for _, r := range ranges {
		top = max(top, r.Max)
	}

	const labelWidth = 8
	barWidth := width - labelWidth - 8
	if barWidth < 4 {
		barWidth = 4
	}

	bar := func(label string, v float64, c lipgloss.Style) string {
		n := 0
		if top > 0 {
			n = int(v / top * float64(barWidth))
		}
		return theme.Hint.Width(labelWidth).Render(label) +
			c.Render(strings.Repeat("▇", max(n, 1))) + " " +
			theme.Body.Render(market.FormatThousands(v))
	}

	minStyle := lipgloss.NewStyle().Foreground(theme.SalaryMin)
	medStyle := lipgloss.NewStyle().Foreground(theme.SalaryMedian)
	maxStyle := lipgloss.NewStyle().Foreground(theme.SalaryMax)

	var lines []string
	lines = append(lines, theme.Hint.Render("in thousands USD"))
	for _, r := range ranges {
		role := theme.CardValue.Render(r.Role)
		if r.Location != "" {
			role += theme.Hint.Render(" · " + r.Location)
		}
		lines = append(lines,
			role,
			bar("Min", r.Min, minStyle),
			bar("Median", r.Median, medStyle),
			bar("Max", r.Max, maxStyle),
		)
	}
	lines = append(lines,
		minStyle.Render("▇")+" Min  "+medStyle.Render("▇")+" Median  "+maxStyle.Render("▇")+" Max")
	return strings.Join(lines, "\n")
}

// layout recomputes the body and its badge zones for the current width.
func (d *DashboardScreen) layout() string {
	if d.width <= 0 {
		return ""
	}
	b := d.render(d.width)
	d.zones = b.zones
	d.lines = b.height()
	d.scroll = clampScroll(d.scroll, d.lines, d.height)
	return b.view
}

func (d *DashboardScreen) View(width, height int) string {
	d.width, d.height = width, height
	body := d.layout()

	lines := strings.Split(body, "\n")
	end := min(d.scroll+height, len(lines))
	visible := strings.Join(lines[d.scroll:end], "\n")

	// Pad to the full height so overlays can land anywhere.
	if n := end - d.scroll; n < height {
		visible += strings.Repeat("\n", height-n)
	}

	visible = d.overlayTooltip(visible, width, height)
	visible = d.overlayModal(visible, width, height)
	if d.lookup.Focused() {
		bar := theme.Tooltip.Width(min(width, 60)).Render(d.lookup.View())
		visible = components.SpliceOverlay(visible, []string{bar}, 0, height-1)
	}
	return visible
}
