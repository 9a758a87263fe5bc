package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestCompactThresholds(t *testing.T) {
	if !IsCompactWidth(99) || IsCompactWidth(100) {
		t.Error("compact width threshold should be 100")
	}
	if !IsCompactHeight(29) || IsCompactHeight(30) {
		t.Error("compact height threshold should be 30")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestRenderHeaderHeight(t *testing.T) {
	header := RenderHeader("Dashboard", "gemini-2.0-flash", 100)
	if h := lipgloss.Height(header); h != HeaderHeight {
		t.Errorf("header height = %d, want %d", h, HeaderHeight)
	}
	if !strings.Contains(header, "ProPrep") || !strings.Contains(header, "gemini-2.0-flash") {
		t.Errorf("header missing brand or status: %q", header)
	}
}

func TestRenderFooterShowsHints(t *testing.T) {
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(footer, "Esc") || !strings.Contains(footer, "Back") {
		t.Errorf("footer missing hint: %q", footer)
	}
}

func TestRenderHeaderTruncatesLongTitle(t *testing.T) {
	title := strings.Repeat("financial-services-and-insurance ", 5) + "Insights"
	header := RenderHeader(title, "openrouter/google/gemini-2.0-flash-exp", MinWidth)
	if h := lipgloss.Height(header); h != HeaderHeight {
		t.Errorf("header height = %d, want %d", h, HeaderHeight)
	}
	if w := lipgloss.Width(header); w != MinWidth {
		t.Errorf("header width = %d, want %d", w, MinWidth)
	}
}

func TestRenderFooterDropsOverflowingHints(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Next skill"},
		{Key: "Enter", Description: "Details"},
		{Key: "/", Description: "Look up"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
	footer := RenderFooter(hints, 40)
	if h := lipgloss.Height(footer); h != FooterHeight {
		t.Errorf("footer height = %d, want %d", h, FooterHeight)
	}
	if !strings.Contains(footer, "Tab") {
		t.Error("first hint should fit")
	}
	if strings.Contains(footer, "Back") {
		t.Error("last hint should be dropped at width 40")
	}
}

func TestRenderFrameCutsTallContent(t *testing.T) {
	header := RenderHeader("Quiz Review", "mock", 80)
	footer := RenderFooter(nil, 80)
	content := strings.Repeat("line\n", 100)

	frame := RenderFrame(header, content, footer, 80, 30)
	if h := lipgloss.Height(frame); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}
