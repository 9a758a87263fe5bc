// Package dashboard renders one industry's market insight and lets the
// user explore its skills through hover tooltips and a detail modal.
package dashboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/proprep/internal/insight"
	"github.com/abhisek/proprep/internal/market"
	"github.com/abhisek/proprep/internal/router"
	"github.com/abhisek/proprep/internal/screen"
	"github.com/abhisek/proprep/internal/ui/components"
	"github.com/abhisek/proprep/internal/ui/layout"
)

// DashboardScreen shows an IndustryInsight. Each instance owns a fresh
// insight cache through its controller; popping the screen drops it.
type DashboardScreen struct {
	ctx     context.Context
	insight *market.IndustryInsight
	fetcher insight.Fetcher
	ctrl    *insight.Controller

	lookup components.TextInput

	zones  []zone
	focus  zoneKey
	scroll int
	lines  int

	width  int
	height int

	now func() time.Time
}

var (
	_ screen.Screen          = (*DashboardScreen)(nil)
	_ screen.KeyHintProvider = (*DashboardScreen)(nil)
	_ screen.EscapeCapturer  = (*DashboardScreen)(nil)
)

// New creates a dashboard for in. A nil fetcher behaves as if no LLM
// provider were configured.
func New(ctx context.Context, in *market.IndustryInsight, f insight.Fetcher) *DashboardScreen {
	if f == nil {
		f = insight.Unavailable{}
	}
	return &DashboardScreen{
		ctx:     ctx,
		insight: in,
		fetcher: f,
		ctrl:    insight.NewController(ctx, f),
		lookup:  components.NewTextInput("Skill", "e.g. Kubernetes", 40),
		focus:   noFocus,
		now:     time.Now,
	}
}

// Controller exposes the insight controller.
func (d *DashboardScreen) Controller() *insight.Controller {
	return d.ctrl
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return d.insight.Industry + " Insights"
}

// CapturesEscape keeps Esc on this screen while the modal or the lookup
// input is open.
func (d *DashboardScreen) CapturesEscape() bool {
	_, open := d.ctrl.Selected()
	return open || d.lookup.Focused()
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.lookup.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Look up"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if _, open := d.ctrl.Selected(); open {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab/←→", Description: "Skills"},
		{Key: "Enter", Description: "Details"},
		{Key: "/", Description: "Look up"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SizeMsg:
		d.width, d.height = msg.Width, msg.Height
		d.layout()
		return d, nil

	case insight.FetchedMsg:
		// The cache already holds the entry; the next View picks it up.
		return d, nil

	case tea.KeyMsg:
		if d.lookup.Focused() {
			return d, d.updateLookup(msg)
		}
		if _, open := d.ctrl.Selected(); open {
			switch msg.String() {
			case "esc", "q", "enter":
				d.ctrl.Deselect()
			}
			return d, nil
		}
		return d, d.handleKey(msg)

	case tea.MouseMotionMsg:
		if _, open := d.ctrl.Selected(); open || d.lookup.Focused() {
			return d, nil
		}
		return d, d.pointerAt(msg.Mouse())

	case tea.MouseClickMsg:
		if _, open := d.ctrl.Selected(); open {
			d.ctrl.Deselect()
			return d, nil
		}
		m := msg.Mouse()
		if z, ok := d.zoneAt(m.X, m.Y); ok {
			d.focus = z.key
			return d, d.ctrl.Select(z.skill)
		}
		return d, nil

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			d.scrollBy(-3)
		case tea.MouseWheelDown:
			d.scrollBy(3)
		}
		return d, nil
	}

	if d.lookup.Focused() {
		var cmd tea.Cmd
		d.lookup, cmd = d.lookup.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "right", "l":
		return d.moveFocus(1)
	case "shift+tab", "left", "h":
		return d.moveFocus(-1)
	case "enter":
		if z, ok := d.focused(); ok {
			return d.ctrl.Select(z.skill)
		}
	case "/":
		d.ctrl.HoverLeave()
		d.focus = noFocus
		return d.lookup.Focus()
	case "up", "k":
		d.scrollBy(-1)
	case "down", "j":
		d.scrollBy(1)
	case "r":
		fresh := New(d.ctx, d.insight, d.fetcher)
		fresh.now = d.now
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: fresh} }
	case "q":
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (d *DashboardScreen) updateLookup(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		skill := d.lookup.Value()
		d.lookup.Blur()
		d.lookup.Reset()
		return d.ctrl.Select(skill)
	case "esc":
		d.lookup.Blur()
		d.lookup.Reset()
		return nil
	}
	var cmd tea.Cmd
	d.lookup, cmd = d.lookup.Update(msg)
	return cmd
}

// pointerAt turns a pointer position into hover transitions.
func (d *DashboardScreen) pointerAt(m tea.Mouse) tea.Cmd {
	p := insight.Pointer{X: m.X, Y: m.Y}
	z, ok := d.zoneAt(m.X, m.Y)
	if !ok {
		if _, hovering := d.ctrl.Hovered(); hovering {
			d.ctrl.HoverLeave()
		}
		d.focus = noFocus
		return nil
	}

	if h, hovering := d.ctrl.Hovered(); hovering && h.Skill == z.skill && d.focus == z.key {
		d.ctrl.HoverMove(p)
		return nil
	}
	d.focus = z.key
	return d.ctrl.HoverEnter(z.skill, p)
}

// moveFocus steps keyboard focus across badges and hovers the new one
// with the pointer anchored on the badge.
func (d *DashboardScreen) moveFocus(step int) tea.Cmd {
	if len(d.zones) == 0 {
		return nil
	}

	next := 0
	if step < 0 {
		next = len(d.zones) - 1
	}
	for i, z := range d.zones {
		if z.key == d.focus {
			next = (i + step + len(d.zones)) % len(d.zones)
			break
		}
	}

	z := d.zones[next]
	d.focus = z.key
	d.reveal(z)
	return d.ctrl.HoverEnter(z.skill, insight.Pointer{X: z.x, Y: z.y - d.scroll})
}

func (d *DashboardScreen) focused() (zone, bool) {
	for _, z := range d.zones {
		if z.key == d.focus {
			return z, true
		}
	}
	return zone{}, false
}

// zoneAt finds the badge under a content-area position.
func (d *DashboardScreen) zoneAt(x, y int) (zone, bool) {
	y += d.scroll
	for _, z := range d.zones {
		if y == z.y && x >= z.x && x < z.x+z.w {
			return z, true
		}
	}
	return zone{}, false
}

func (d *DashboardScreen) scrollBy(n int) {
	prev := d.scroll
	d.scroll = clampScroll(d.scroll+n, d.lines, d.height)
	if d.scroll != prev {
		// Badges moved out from under the pointer.
		d.ctrl.HoverLeave()
		d.focus = noFocus
	}
}

// reveal scrolls just enough to bring z into view.
func (d *DashboardScreen) reveal(z zone) {
	if d.height <= 0 {
		return
	}
	switch {
	case z.y < d.scroll:
		d.scroll = z.y
	case z.y >= d.scroll+d.height-1:
		d.scroll = z.y - d.height + 2
	}
	d.scroll = clampScroll(d.scroll, d.lines, d.height)
}

func clampScroll(scroll, lines, height int) int {
	if limit := lines - height; scroll > limit {
		scroll = limit
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
