// Package quizzes lists past interview quiz assessments and shows the
// result of one in a modal.
package quizzes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/proprep/internal/quiz"
	"github.com/abhisek/proprep/internal/screen"
	"github.com/abhisek/proprep/internal/ui/components"
	"github.com/abhisek/proprep/internal/ui/layout"
	"github.com/abhisek/proprep/internal/ui/theme"
)

const modalMaxWidth = 72

// toggleMsg flips between the first page and the full list.
type toggleMsg struct{}

// QuizzesScreen is the quiz review list.
type QuizzesScreen struct {
	all     []quiz.Assessment
	showAll bool
	toggle  components.Button

	cursor int
	scroll int

	// open is the index into all of the assessment in the result modal,
	// or -1.
	open        int
	modalScroll int
}

var (
	_ screen.Screen          = (*QuizzesScreen)(nil)
	_ screen.KeyHintProvider = (*QuizzesScreen)(nil)
	_ screen.EscapeCapturer  = (*QuizzesScreen)(nil)
)

// New creates the screen. all is expected newest first.
func New(all []quiz.Assessment) *QuizzesScreen {
	q := &QuizzesScreen{all: all, open: -1}
	q.toggle = components.NewButton("View more", "v", func() tea.Cmd {
		return func() tea.Msg { return toggleMsg{} }
	})
	q.toggle.Disabled = !quiz.HasMore(all)
	return q
}

func (q *QuizzesScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizzesScreen) Title() string {
	return "Quiz Review"
}

// CapturesEscape keeps Esc on the screen while the result modal is open.
func (q *QuizzesScreen) CapturesEscape() bool {
	return q.open >= 0
}

// Selected returns the assessment in the result modal.
func (q *QuizzesScreen) Selected() (quiz.Assessment, bool) {
	if q.open < 0 {
		return quiz.Assessment{}, false
	}
	return q.all[q.open], true
}

func (q *QuizzesScreen) KeyHints() []layout.KeyHint {
	if q.open >= 0 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Close"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Results"},
	}
	if !q.toggle.Disabled {
		hints = append(hints, layout.KeyHint{Key: "v", Description: q.toggle.Label})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (q *QuizzesScreen) visible() []quiz.Assessment {
	return quiz.Visible(q.all, q.showAll)
}

func (q *QuizzesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case toggleMsg:
		q.showAll = !q.showAll
		q.toggle.Label = "View more"
		if q.showAll {
			q.toggle.Label = "Show less"
		}
		if n := len(q.visible()); q.cursor >= n {
			q.cursor = n - 1
		}
		return q, nil

	case tea.KeyMsg:
		if q.open >= 0 {
			switch msg.String() {
			case "esc", "q", "enter":
				q.open = -1
				q.modalScroll = 0
			case "up", "k":
				q.modalScroll = max(q.modalScroll-1, 0)
			case "down", "j":
				q.modalScroll++
			}
			return q, nil
		}

		switch msg.String() {
		case "up", "k":
			if q.cursor > 0 {
				q.cursor--
			}
		case "down", "j":
			if q.cursor < len(q.visible())-1 {
				q.cursor++
			}
		case "enter":
			if q.cursor < len(q.visible()) {
				q.open = q.cursor
				q.modalScroll = 0
			}
		default:
			var cmd tea.Cmd
			q.toggle, cmd = q.toggle.Update(msg)
			return q, cmd
		}
	}
	return q, nil
}

func (q *QuizzesScreen) View(width, height int) string {
	cw := min(width-4, 90)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Recent Quizzes"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Review your past quiz performance"))
	b.WriteString("\n\n")
	headLines := 3

	cards := make([]string, 0, len(q.visible()))
	cursorTop, cursorHeight := 0, 0
	offset := 0
	for i, a := range q.visible() {
		c := renderCard(i, a, cw, i == q.cursor)
		if i == q.cursor {
			cursorTop, cursorHeight = offset, lipgloss.Height(c)
		}
		offset += lipgloss.Height(c)
		cards = append(cards, c)
	}
	if !q.toggle.Disabled {
		cards = append(cards, "", q.toggle.View())
	}

	// Keep the card under the cursor in view.
	avail := max(height-headLines, 1)
	if cursorTop < q.scroll {
		q.scroll = cursorTop
	}
	if cursorTop+cursorHeight > q.scroll+avail {
		q.scroll = cursorTop + cursorHeight - avail
	}

	lines := strings.Split(strings.Join(cards, "\n"), "\n")
	start := min(q.scroll, len(lines))
	end := min(start+avail, len(lines))
	list := lipgloss.NewStyle().PaddingLeft((width - cw) / 2).
		Render(strings.Join(lines[start:end], "\n"))
	b.WriteString(list)

	view := lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
	if q.open >= 0 {
		view = q.overlayModal(view, width, height)
	}
	return view
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return theme.Correct
	case score >= 60:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return theme.Incorrect
	}
}

func renderCard(i int, a quiz.Assessment, w int, focused bool) string {
	inner := w - 4
	body := theme.Hint.Render(a.FormatDate())
	if a.Category != "" {
		body += theme.Hint.Render(" · " + a.Category)
	}
	if a.ImprovementTip != "" {
		body += "\n" + theme.Body.Render(ansi.Truncate(a.ImprovementTip, inner, "…"))
	}

	title := fmt.Sprintf("Quiz %d", i+1)
	score := a.FormatScore()
	if focused {
		return components.FocusedCard("▸ "+title, score, scoreStyle(a.QuizScore), body, w)
	}
	return components.Card(title, score, scoreStyle(a.QuizScore), body, w)
}

// resultBody renders the full result of a: score, tip and every question.
func resultBody(a quiz.Assessment, inner int) string {
	var b strings.Builder

	bar := components.NewProgressBar("", a.QuizScore/100, false, inner)
	fmt.Fprintf(&b, "%s  %s\n%s\n",
		scoreStyle(a.QuizScore).Render(a.FormatScore()),
		theme.Hint.Render(fmt.Sprintf("%d of %d correct", a.Correct(), len(a.Questions))),
		bar.View())

	if a.ImprovementTip != "" {
		b.WriteString("\n" + theme.CardTitle.Render("Improvement Tip") + "\n")
		b.WriteString(theme.Body.Width(inner).Render(a.ImprovementTip) + "\n")
	}

	if len(a.Questions) > 0 {
		b.WriteString("\n" + theme.CardTitle.Render("Question Review") + "\n")
	}
	for i, qr := range a.Questions {
		mark, style := "✗", theme.Incorrect
		if qr.IsCorrect {
			mark, style = "✓", theme.Correct
		}
		b.WriteString("\n" + style.Render(mark) + " " +
			theme.Body.Width(inner-2).Render(fmt.Sprintf("Q%d. %s", i+1, qr.Question)) + "\n")
		b.WriteString(theme.Hint.Render("  Your answer: ") + qr.UserAnswer + "\n")
		if !qr.IsCorrect {
			b.WriteString(theme.Hint.Render("  Correct answer: ") + theme.Correct.Render(qr.Answer) + "\n")
		}
		if qr.Explanation != "" {
			b.WriteString(theme.Hint.Width(inner).Render("  "+qr.Explanation) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (q *QuizzesScreen) overlayModal(view string, width, height int) string {
	a := q.all[q.open]
	w := min(width-4, modalMaxWidth)

	lines := strings.Split(components.ModalBox("Quiz Results", resultBody(a, w-6), w), "\n")
	if len(lines) > height {
		// Taller than the screen: show a window of it.
		maxScroll := len(lines) - height
		q.modalScroll = min(q.modalScroll, maxScroll)
		lines = lines[q.modalScroll : q.modalScroll+height]
	} else {
		q.modalScroll = 0
	}

	x, y := components.ClampOverlay((width-w)/2, (height-len(lines))/2, w, len(lines), width, height)
	return components.SpliceOverlay(view, lines, x, y)
}
