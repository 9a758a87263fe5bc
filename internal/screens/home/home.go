package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/proprep/internal/insight"
	"github.com/abhisek/proprep/internal/logger"
	"github.com/abhisek/proprep/internal/market"
	"github.com/abhisek/proprep/internal/quiz"
	"github.com/abhisek/proprep/internal/router"
	"github.com/abhisek/proprep/internal/screen"
	"github.com/abhisek/proprep/internal/screens/dashboard"
	"github.com/abhisek/proprep/internal/screens/placeholder"
	"github.com/abhisek/proprep/internal/screens/quizzes"
	"github.com/abhisek/proprep/internal/store"
	"github.com/abhisek/proprep/internal/ui/components"
	"github.com/abhisek/proprep/internal/ui/layout"
)

// Deps are the collaborators the home screen hands to the screens it opens.
type Deps struct {
	Ctx         context.Context
	Markets     store.MarketRepo
	Assessments store.AssessmentRepo
	Fetcher     insight.Fetcher

	// Industry pins the dashboard to one industry. Empty means the most
	// recently stored insight.
	Industry string

	// LLMConfigured is false when no provider key was found.
	LLMConfigured bool
}

type summary struct {
	Industry string
	Quizzes  int
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	summary summary
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "DASHBOARD", Key: "d", Action: h.openDashboard},
		{Label: "QUIZ REVIEW", Key: "r", Action: h.openQuizzes},
		{Label: "EXIT", Key: "q", Action: func() tea.Cmd { return tea.Quit }},
	})
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.SizeMsg); ok {
		// Sent whenever the screen becomes active again, so imports made
		// while the TUI is open show up after navigating back.
		h.refresh()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate the terminal by adding back
	// header and footer.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.summary, cw, compact),
	}
	if !h.deps.LLMConfigured {
		sections = append(sections, renderLLMBanner(cw))
	}
	if compact {
		sections = append(sections, renderCompactMenu(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) refresh() {
	ctx := h.deps.Ctx
	h.summary = summary{}

	if in, err := h.loadInsight(); err == nil && in != nil {
		h.summary.Industry = in.Industry
	}
	if h.deps.Assessments != nil {
		n, err := h.deps.Assessments.Count(ctx)
		if err != nil {
			logger.G(ctx).WithError(err).Warn("count assessments")
		}
		h.summary.Quizzes = n
	}
}

var errNoMarketRepo = errors.New("market store not configured")

func (h *HomeScreen) loadInsight() (*market.IndustryInsight, error) {
	if h.deps.Markets == nil {
		return nil, errNoMarketRepo
	}

	var (
		rec *store.MarketRecord
		err error
	)
	if h.deps.Industry != "" {
		rec, err = h.deps.Markets.LatestFor(h.deps.Ctx, h.deps.Industry)
	} else {
		rec, err = h.deps.Markets.Latest(h.deps.Ctx)
	}
	if err != nil || rec == nil {
		return nil, err
	}
	return market.FromRecord(rec)
}

func (h *HomeScreen) openDashboard() tea.Cmd {
	in, err := h.loadInsight()
	if err != nil {
		logger.G(h.deps.Ctx).WithError(err).Warn("load market insight")
	}
	if in == nil {
		return push(placeholder.New("Dashboard",
			"No market insight stored yet.\n\n"+
				"Import one with  proprep market import <file>\n"+
				"or generate one with  proprep market generate <industry>"))
	}
	return push(dashboard.New(h.deps.Ctx, in, h.deps.Fetcher))
}

func (h *HomeScreen) openQuizzes() tea.Cmd {
	if h.deps.Assessments == nil {
		return push(placeholder.New("Quiz Review", "No quiz store configured."))
	}
	recs, err := h.deps.Assessments.List(h.deps.Ctx, 0)
	if err != nil {
		logger.G(h.deps.Ctx).WithError(err).Warn("list assessments")
	}
	all, err := quiz.FromRecords(recs)
	if err != nil {
		logger.G(h.deps.Ctx).WithError(err).Warn("decode assessments")
	}
	if len(all) == 0 {
		return push(placeholder.New("Quiz Review",
			"No quiz assessments yet.\n\n"+
				"Import some with  proprep quiz import <file>"))
	}
	return push(quizzes.New(all))
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}
