package home

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/proprep/internal/market"
	"github.com/abhisek/proprep/internal/quiz"
	"github.com/abhisek/proprep/internal/router"
	"github.com/abhisek/proprep/internal/screen"
	"github.com/abhisek/proprep/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "home.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func depsFor(st *store.Store) Deps {
	return Deps{
		Ctx:           context.Background(),
		Markets:       st.MarketRepo(),
		Assessments:   st.AssessmentRepo(),
		LLMConfigured: true,
	}
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg.Screen
}

func TestEmptyStoreOpensPlaceholders(t *testing.T) {
	h := New(depsFor(openStore(t)))

	_, cmd := h.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Equal(t, "Dashboard", pushed(t, cmd).Title())

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Equal(t, "Quiz Review", pushed(t, cmd).Title())
}

func TestStoredDataOpensScreens(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	in, err := market.LoadFile("../../market/testdata/tech.yaml")
	require.NoError(t, err)
	rec, err := in.ToRecord()
	require.NoError(t, err)
	require.NoError(t, st.MarketRepo().Save(ctx, rec))

	a := quiz.Assessment{ID: "q1", Category: "Technical", QuizScore: 80, CreatedAt: time.Now()}
	arec, err := a.ToRecord()
	require.NoError(t, err)
	require.NoError(t, st.AssessmentRepo().Save(ctx, arec))

	h := New(depsFor(st))
	assert.Equal(t, in.Industry, h.summary.Industry)
	assert.Equal(t, 1, h.summary.Quizzes)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, in.Industry+" Insights", pushed(t, cmd).Title())

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Equal(t, "Quiz Review", pushed(t, cmd).Title())
}

func TestSummaryRefreshesWhenShownAgain(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	h := New(depsFor(st))
	require.Equal(t, 0, h.summary.Quizzes)

	a := quiz.Assessment{ID: "q1", QuizScore: 50, CreatedAt: time.Now()}
	arec, err := a.ToRecord()
	require.NoError(t, err)
	require.NoError(t, st.AssessmentRepo().Save(ctx, arec))

	h.Update(screen.SizeMsg{Width: 100, Height: 24})
	assert.Equal(t, 1, h.summary.Quizzes)
}

func TestViewShowsMenuAndBanner(t *testing.T) {
	deps := depsFor(openStore(t))
	deps.LLMConfigured = false
	h := New(deps)

	view := ansi.Strip(h.View(120, 40))
	assert.Contains(t, view, "DASHBOARD")
	assert.Contains(t, view, "QUIZ REVIEW")
	assert.Contains(t, view, "EXIT")
	assert.Contains(t, view, "No LLM API key")
}

func TestExitQuits(t *testing.T) {
	h := New(Deps{})
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
