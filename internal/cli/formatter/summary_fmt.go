package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/autowatch/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RenderSummary renders the end-of-run counters.
func RenderSummary(s domain.RunSummary) string {
	rows := []struct {
		label string
		value int
		style lipgloss.Style
		note  string
	}{
		{"Subjects", s.SubjectsVisited, StyleBold, skippedNote(s.SubjectsSkipped)},
		{"Videos completed", s.VideosCompleted, StyleGreen, ""},
		{"Videos rejected", s.VideosRejected, StyleYellow, ""},
		{"Videos failed", s.VideosFailed, StyleRed, ""},
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r.label))
	}

	var b strings.Builder
	for i, r := range rows {
		fmt.Fprintf(&b, "%-*s  %s", width, r.label, CountStyle(r.value, r.style).Render(fmt.Sprint(r.value)))
		if r.note != "" {
			b.WriteString("  " + Dim(r.note))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	if s.VideosAttempted() == 0 {
		b.WriteString("\n\n" + Dim("No videos were processed."))
	} else {
		b.WriteString("\n\n" + RenderRatio(s.VideosCompleted, s.VideosAttempted(), 20))
	}
	return RenderBox("Run summary", b.String())
}

func skippedNote(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("(%d skipped)", n)
}
