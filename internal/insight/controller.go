package insight

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/proprep/internal/logger"
)

// Pointer is a terminal cell position.
type Pointer struct {
	X, Y int
}

// Hover is the skill currently under the pointer (or keyboard focus).
type Hover struct {
	Skill   string
	Pointer Pointer
}

// FetchedMsg is delivered to the Update loop when a fetch settles. The
// entry is already in the cache by the time it arrives.
type FetchedMsg struct {
	Skill   string
	Entry   Entry
	Failure FailureKind
}

// Controller owns the insight cache of one dashboard and the hover and
// selection state that decide what the tooltip and modal show. Hover and
// selection are only touched from the Update loop; the cache is shared
// with fetch commands.
type Controller struct {
	// ctx is the dashboard screen's context and lives as long as the screen.
	ctx      context.Context
	cache    *Cache
	fetcher  Fetcher
	hover    *Hover
	selected string
}

// NewController creates a Controller with an empty cache.
func NewController(ctx context.Context, f Fetcher) *Controller {
	return &Controller{
		ctx:     ctx,
		cache:   NewCache(),
		fetcher: f,
	}
}

// Cache returns the controller's cache.
func (c *Controller) Cache() *Cache {
	return c.cache
}

// RequestInsight starts a fetch for skill unless it is empty, cached or
// already in flight, in which case it returns nil. The skill is marked in
// flight before the command is returned, so a second request issued
// before the first settles is a no-op.
func (c *Controller) RequestInsight(skill string) tea.Cmd {
	if !c.cache.Begin(skill) {
		return nil
	}

	ctx, cache, fetcher := c.ctx, c.cache, c.fetcher
	return func() tea.Msg {
		res := fetcher.Fetch(ctx, skill)
		logFailure(ctx, skill, res)
		cache.Complete(skill, res.Entry)
		return FetchedMsg{Skill: skill, Entry: res.Entry, Failure: res.Failure}
	}
}

// HoverEnter records skill under the pointer and requests its insight.
func (c *Controller) HoverEnter(skill string, p Pointer) tea.Cmd {
	if skill == "" {
		return nil
	}
	c.hover = &Hover{Skill: skill, Pointer: p}
	return c.RequestInsight(skill)
}

// HoverMove updates the pointer of the current hover.
func (c *Controller) HoverMove(p Pointer) {
	if c.hover != nil {
		c.hover.Pointer = p
	}
}

// HoverLeave clears the hover. In-flight fetches keep running and still
// populate the cache.
func (c *Controller) HoverLeave() {
	c.hover = nil
}

// Hovered returns the current hover, if any.
func (c *Controller) Hovered() (Hover, bool) {
	if c.hover == nil {
		return Hover{}, false
	}
	return *c.hover, true
}

// Select opens the detail modal for skill. An idle skill is fetched so
// that a modal opened without a prior hover does not stay loading.
func (c *Controller) Select(skill string) tea.Cmd {
	if skill == "" {
		return nil
	}
	c.selected = skill
	return c.RequestInsight(skill)
}

// Deselect closes the detail modal.
func (c *Controller) Deselect() {
	c.selected = ""
}

// Selected returns the selected skill, if any.
func (c *Controller) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

// Affects reports whether msg changes what is currently on screen.
func (c *Controller) Affects(msg FetchedMsg) bool {
	if c.hover != nil && c.hover.Skill == msg.Skill {
		return true
	}
	return c.selected == msg.Skill
}

// TooltipView is what the hover tooltip shows.
type TooltipView struct {
	Skill   string
	Summary string
	Loading bool
	Pointer Pointer
}

// Tooltip returns the tooltip for the current hover. There is no tooltip
// without a hover, or for a hovered skill that is neither cached nor in
// flight.
func (c *Controller) Tooltip() (TooltipView, bool) {
	if c.hover == nil {
		return TooltipView{}, false
	}
	v := TooltipView{Skill: c.hover.Skill, Pointer: c.hover.Pointer}
	if e, ok := c.cache.Lookup(c.hover.Skill); ok {
		v.Summary = e.Summary
		return v, true
	}
	if c.cache.Status(c.hover.Skill) == StatusLoading {
		v.Loading = true
		return v, true
	}
	return TooltipView{}, false
}

// ModalView is what the detail modal shows.
type ModalView struct {
	Skill   string
	Lines   []string
	Loading bool
}

// Modal returns the detail modal for the selected skill.
func (c *Controller) Modal() (ModalView, bool) {
	if c.selected == "" {
		return ModalView{}, false
	}
	v := ModalView{Skill: c.selected}
	if e, ok := c.cache.Lookup(c.selected); ok {
		v.Lines = e.DetailLines()
	} else {
		v.Loading = true
	}
	return v, true
}

func logFailure(ctx context.Context, skill string, res Result) {
	if !res.Failed() {
		return
	}
	logger.G(ctx).
		WithField("skill", skill).
		WithField("failure", res.Failure.String()).
		WithError(res.Err).
		Warn("skill insight unavailable")
}
