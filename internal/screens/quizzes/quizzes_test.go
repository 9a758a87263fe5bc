package quizzes

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/proprep/internal/quiz"
)

func testAssessments(n int) []quiz.Assessment {
	base := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	out := make([]quiz.Assessment, n)
	for i := range out {
		out[i] = quiz.Assessment{
			ID:             "a" + string(rune('0'+i)),
			Category:       "Technical",
			QuizScore:      90 - float64(i)*15,
			CreatedAt:      base.Add(-time.Duration(i) * 24 * time.Hour),
			ImprovementTip: "Revisit channel ownership rules.",
			Questions: []quiz.QuestionResult{
				{Question: "What closes a channel?", Answer: "The sender", UserAnswer: "The sender", IsCorrect: true},
				{Question: "Is a nil map writable?", Answer: "No", UserAnswer: "Yes", Explanation: "Writes to a nil map panic."},
			},
		}
	}
	return out
}

func press(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestQuizzesScreen_Title(t *testing.T) {
	q := New(testAssessments(2))
	if q.Title() != "Quiz Review" {
		t.Errorf("Title = %q, want %q", q.Title(), "Quiz Review")
	}
}

func TestQuizzesScreen_ShowsFirstPage(t *testing.T) {
	q := New(testAssessments(5))
	view := ansi.Strip(q.View(100, 40))

	for _, want := range []string{"Quiz 1", "Quiz 2", "Quiz 3", "90.0%", "Jan 15, 2025 14:30", "View more (v)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Quiz 4") {
		t.Error("Quiz 4 shown before view more")
	}
}

func TestQuizzesScreen_ToggleViewMore(t *testing.T) {
	q := New(testAssessments(5))

	_, cmd := q.Update(press("v"))
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	q.Update(cmd())

	view := ansi.Strip(q.View(100, 60))
	if !strings.Contains(view, "Quiz 5") {
		t.Error("expected all quizzes after view more")
	}
	if !strings.Contains(view, "Show less (v)") {
		t.Error("expected show less button")
	}

	// Collapse with the cursor on a hidden card.
	for range 4 {
		q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd = q.Update(press("v"))
	q.Update(cmd())
	if q.cursor != quiz.PageSize-1 {
		t.Errorf("cursor = %d, want %d", q.cursor, quiz.PageSize-1)
	}
}

func TestQuizzesScreen_NoToggleForShortList(t *testing.T) {
	q := New(testAssessments(3))

	_, cmd := q.Update(press("v"))
	if cmd != nil {
		t.Error("toggle should be disabled with 3 assessments")
	}
	if strings.Contains(ansi.Strip(q.View(100, 40)), "View more") {
		t.Error("view more should be hidden")
	}
}

func TestQuizzesScreen_OpenAndCloseResult(t *testing.T) {
	q := New(testAssessments(3))

	q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	a, ok := q.Selected()
	if !ok {
		t.Fatal("expected result modal to open")
	}
	if a.ID != "a1" {
		t.Errorf("selected %q, want a1", a.ID)
	}
	if !q.CapturesEscape() {
		t.Error("modal should capture esc")
	}

	view := ansi.Strip(q.View(100, 40))
	for _, want := range []string{"Quiz Results", "75.0%", "1 of 2 correct", "Improvement Tip", "Correct answer: No"} {
		if !strings.Contains(view, want) {
			t.Errorf("modal missing %q", want)
		}
	}

	q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := q.Selected(); ok {
		t.Error("esc should close the modal")
	}
	if q.CapturesEscape() {
		t.Error("closed modal should not capture esc")
	}
}

func TestQuizzesScreen_CursorBounds(t *testing.T) {
	q := New(testAssessments(2))

	q.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if q.cursor != 0 {
		t.Errorf("cursor = %d, want 0", q.cursor)
	}
	for range 5 {
		q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if q.cursor != 1 {
		t.Errorf("cursor = %d, want 1", q.cursor)
	}
}

func TestQuizzesScreen_TallModalScrolls(t *testing.T) {
	all := testAssessments(1)
	for i := 0; i < 10; i++ {
		all[0].Questions = append(all[0].Questions, all[0].Questions[1])
	}
	q := New(all)
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	first := q.View(100, 24)
	q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	second := q.View(100, 24)

	if first == second {
		t.Error("scrolling the modal should change the view")
	}
	if q.modalScroll != 1 {
		t.Errorf("modalScroll = %d, want 1", q.modalScroll)
	}
}
