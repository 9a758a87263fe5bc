package dashboard

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/proprep/internal/insight"
	"github.com/abhisek/proprep/internal/market"
	"github.com/abhisek/proprep/internal/router"
	"github.com/abhisek/proprep/internal/screen"
)

// countingFetcher answers every skill with a canned summary and counts
// calls per skill.
type countingFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	fail  bool
}

func (f *countingFetcher) Fetch(_ context.Context, skill string) insight.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[skill]++
	if f.fail {
		return insight.Result{Entry: insight.FallbackEntry(), Failure: insight.FailureNetwork}
	}
	return insight.Result{Entry: insight.NewEntry(skill, skill+" powers cloud tooling.")}
}

func (f *countingFetcher) count(skill string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[skill]
}

func testInsight() *market.IndustryInsight {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return &market.IndustryInsight{
		Industry:          "Software Engineering",
		MarketOutlook:     market.OutlookPositive,
		GrowthRate:        12.5,
		DemandLevel:       market.DemandHigh,
		TopSkills:         []string{"Go", "Python", "Kubernetes"},
		KeyTrends:         []string{"Platform engineering", "AI assisted coding"},
		RecommendedSkills: []string{"Rust", "Go"},
		SalaryRanges: []market.SalaryRange{
			{Role: "Backend Engineer", Min: 90000, Median: 125000, Max: 170000, Location: "US"},
		},
		LastUpdated: now,
		NextUpdate:  now.Add(market.RefreshInterval),
	}
}

func newTestDashboard(t *testing.T, f insight.Fetcher, width, height int) *DashboardScreen {
	t.Helper()
	d := New(context.Background(), testInsight(), f)
	d.now = func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC) }
	d.Update(screen.SizeMsg{Width: width, Height: height})
	d.View(width, height)
	return d
}

func zoneFor(t *testing.T, d *DashboardScreen, section int, skill string) zone {
	t.Helper()
	for _, z := range d.zones {
		if z.key.section == section && z.skill == skill {
			return z
		}
	}
	t.Fatalf("no zone for %q in section %d", skill, section)
	return zone{}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y}
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestZonesMatchRenderedBadges(t *testing.T) {
	for _, width := range []int{90, 130} {
		d := New(context.Background(), testInsight(), &countingFetcher{})
		body := d.render(width)
		lines := strings.Split(body.view, "\n")

		require.Len(t, body.zones, 5)
		for _, z := range body.zones {
			require.Less(t, z.y, len(lines))
			got := ansi.Strip(ansi.Cut(lines[z.y], z.x, z.x+z.w))
			assert.Equal(t, " "+z.skill+" ", got, "width %d zone %+v", width, z)
		}
	}
}

func TestWideLayoutPutsSummaryCardsOnOneRow(t *testing.T) {
	d := New(context.Background(), testInsight(), &countingFetcher{})

	wide := d.render(130)
	narrow := d.render(90)

	// Header, blank line, card border, card title.
	assert.Equal(t, 4, wide.zones[0].y)
	assert.Greater(t, narrow.zones[0].y, 4)
	assert.Less(t, wide.height(), narrow.height())
}

func TestHoverFetchesOnceAndShowsTooltip(t *testing.T) {
	f := &countingFetcher{}
	d := newTestDashboard(t, f, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Python")

	_, cmd := d.Update(motion(z.x, z.y))
	require.NotNil(t, cmd)

	h, ok := d.ctrl.Hovered()
	require.True(t, ok)
	assert.Equal(t, "Python", h.Skill)

	// Moving within the badge only moves the pointer.
	_, again := d.Update(motion(z.x+1, z.y))
	assert.Nil(t, again)

	msg := run(cmd)
	fetched, ok := msg.(insight.FetchedMsg)
	require.True(t, ok)
	d.Update(fetched)

	assert.Equal(t, 1, f.count("Python"))
	assert.Contains(t, ansi.Strip(d.View(100, 40)), "Python powers cloud tooling.")
}

func TestTooltipLoadingWhileInFlight(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Go")

	_, cmd := d.Update(motion(z.x, z.y))
	require.NotNil(t, cmd)

	v, ok := d.ctrl.Tooltip()
	require.True(t, ok)
	assert.True(t, v.Loading)
	assert.Contains(t, d.View(100, 40), "▆")
}

func TestHoverLeaveClearsTooltip(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Go")

	_, cmd := d.Update(motion(z.x, z.y))
	d.Update(motion(0, 0))

	_, hovering := d.ctrl.Hovered()
	assert.False(t, hovering)
	assert.Equal(t, noFocus, d.focus)

	// The abandoned fetch still lands in the cache.
	d.Update(run(cmd))
	_, cached := d.ctrl.Cache().Lookup("Go")
	assert.True(t, cached)
}

func TestSameSkillInTwoSectionsFetchesOnce(t *testing.T) {
	f := &countingFetcher{}
	d := newTestDashboard(t, f, 100, 40)
	top := zoneFor(t, d, sectionTopSkills, "Go")
	rec := zoneFor(t, d, sectionRecommended, "Go")

	_, first := d.Update(motion(top.x, top.y))
	_, second := d.Update(motion(rec.x, rec.y))

	require.NotNil(t, first)
	assert.Nil(t, second)
	assert.Equal(t, rec.key, d.focus)

	run(first)
	assert.Equal(t, 1, f.count("Go"))
}

func TestFailedFetchShowsFallback(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{fail: true}, 100, 40)
	z := zoneFor(t, d, sectionRecommended, "Rust")

	_, cmd := d.Update(motion(z.x, z.y))
	d.Update(run(cmd))

	assert.Contains(t, ansi.Strip(d.View(100, 40)), insight.FallbackSummary)
}

func TestClickOpensModalAndEscCloses(t *testing.T) {
	f := &countingFetcher{}
	d := newTestDashboard(t, f, 100, 40)
	z := zoneFor(t, d, sectionRecommended, "Rust")

	_, cmd := d.Update(click(z.x, z.y))
	require.NotNil(t, cmd)

	skill, open := d.ctrl.Selected()
	require.True(t, open)
	assert.Equal(t, "Rust", skill)
	assert.True(t, d.CapturesEscape())

	d.Update(run(cmd))
	view := ansi.Strip(d.View(100, 40))
	assert.Contains(t, view, "Rust Details")
	assert.Contains(t, view, "Key Highlights")
	assert.Contains(t, view, "Industry demand: High")

	d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, open = d.ctrl.Selected()
	assert.False(t, open)
	assert.False(t, d.CapturesEscape())
}

func TestClickAnywhereClosesModal(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Go")

	d.Update(click(z.x, z.y))
	d.Update(click(0, 0))

	_, open := d.ctrl.Selected()
	assert.False(t, open)
}

func TestModalLoadingUntilFetched(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Kubernetes")

	d.Update(click(z.x, z.y))

	v, ok := d.ctrl.Modal()
	require.True(t, ok)
	assert.True(t, v.Loading)
	assert.NotContains(t, ansi.Strip(d.View(100, 40)), "Key Highlights")
}

func TestKeyboardFocusHoversBadges(t *testing.T) {
	f := &countingFetcher{}
	d := newTestDashboard(t, f, 100, 40)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.NotNil(t, cmd)
	h, ok := d.ctrl.Hovered()
	require.True(t, ok)
	assert.Equal(t, "Go", h.Skill)

	first := d.zones[0]
	assert.Equal(t, insight.Pointer{X: first.x, Y: first.y - d.scroll}, h.Pointer)

	d.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	h, _ = d.ctrl.Hovered()
	assert.Equal(t, "Python", h.Skill)

	// Wraps backwards from the first badge.
	d.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	d.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	h, _ = d.ctrl.Hovered()
	assert.Equal(t, "Go", h.Skill)
	assert.Equal(t, zoneKey{sectionRecommended, 1}, d.focus)

	_, sel := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	skill, open := d.ctrl.Selected()
	assert.True(t, open)
	assert.Equal(t, "Go", skill)
	assert.Nil(t, sel, "Go is already in flight from the first focus")
}

func TestLookupSelectsWithoutHover(t *testing.T) {
	f := &countingFetcher{}
	d := newTestDashboard(t, f, 100, 40)

	d.Update(key("/"))
	require.True(t, d.lookup.Focused())
	assert.True(t, d.CapturesEscape())

	for _, r := range "Terraform" {
		d.Update(key(string(r)))
	}
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.False(t, d.lookup.Focused())
	skill, open := d.ctrl.Selected()
	require.True(t, open)
	assert.Equal(t, "Terraform", skill)
	_, hovering := d.ctrl.Hovered()
	assert.False(t, hovering)

	run(cmd)
	assert.Equal(t, 1, f.count("Terraform"))
}

func TestLookupEscCancels(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 40)

	d.Update(key("/"))
	d.Update(key("x"))
	d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	assert.False(t, d.lookup.Focused())
	assert.Equal(t, "", d.lookup.Value())
	_, open := d.ctrl.Selected()
	assert.False(t, open)
}

func TestReloadReplacesWithFreshCache(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Go")
	_, cmd := d.Update(motion(z.x, z.y))
	run(cmd)

	_, reload := d.Update(key("r"))
	msg, ok := run(reload).(router.ReplaceScreenMsg)
	require.True(t, ok)

	fresh, ok := msg.Screen.(*DashboardScreen)
	require.True(t, ok)
	assert.NotSame(t, d, fresh)
	assert.Equal(t, 0, fresh.Controller().Cache().Len())
	assert.Equal(t, 1, d.Controller().Cache().Len())
}

func TestScrollClearsHover(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 100, 12)
	z := zoneFor(t, d, sectionTopSkills, "Go")

	d.Update(motion(z.x, z.y))
	d.Update(key("j"))

	assert.Equal(t, 1, d.scroll)
	_, hovering := d.ctrl.Hovered()
	assert.False(t, hovering)

	// Zones are found in scrolled coordinates.
	found, ok := d.zoneAt(z.x, z.y-1)
	require.True(t, ok)
	assert.Equal(t, "Go", found.skill)
}

func TestNilFetcherFallsBack(t *testing.T) {
	d := newTestDashboard(t, nil, 100, 40)
	z := zoneFor(t, d, sectionTopSkills, "Go")

	_, cmd := d.Update(motion(z.x, z.y))
	msg := run(cmd).(insight.FetchedMsg)

	assert.Equal(t, insight.FailureProvider, msg.Failure)
	assert.Equal(t, insight.FallbackSummary, msg.Entry.Summary)
}

func TestViewShowsMarketData(t *testing.T) {
	d := newTestDashboard(t, &countingFetcher{}, 130, 60)
	view := ansi.Strip(d.View(130, 60))

	assert.Contains(t, view, "Last updated: 14/03/2025")
	assert.Contains(t, view, "Positive")
	assert.Contains(t, view, "12.5%")
	assert.Contains(t, view, "Backend Engineer")
	assert.Contains(t, view, "$125k")
	assert.Contains(t, view, "Platform engineering")
	assert.Contains(t, view, "Next update 6 days from now")
}

func TestClampLines(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := strings.Split(clampLines(long, 20, 3), "\n")

	require.Len(t, got, 3)
	assert.True(t, strings.HasSuffix(got[2], "…"))
	assert.Equal(t, "short", clampLines("short", 20, 3))
}
