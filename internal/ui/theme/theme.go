package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm blues on slate, like a job board after dark
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	SalaryMin    = lipgloss.Color("#93C5FD") // Blue 300
	SalaryMedian = lipgloss.Color("#3B82F6") // Blue 500
	SalaryMax    = lipgloss.Color("#1D4ED8") // Blue 700
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Bold(true)

	CardValue = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)

	// TopSkillBadge and RecommendedBadge are the two skill badge kinds.
	TopSkillBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E40AF")).
			Background(lipgloss.Color("#DBEAFE")).
			Padding(0, 1)

	RecommendedBadge = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#15803D")).
				Background(lipgloss.Color("#F0FDF4")).
				Padding(0, 1)

	// BadgeFocus is layered over a badge under the pointer or focus.
	BadgeFocus = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	Tooltip = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#334155")).
		Background(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)

	TooltipTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#FFFFFF")).
			Bold(true)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgCard).
		Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Skeleton = lipgloss.NewStyle().
			Foreground(Border)
)
