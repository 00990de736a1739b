package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/core"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrOrange = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// Render draws the report for a terminal of width w.
func Render(r Report, w int) string {
	if w < 50 {
		w = 50
	}
	barW := 24
	if w > 100 {
		barW = 32
	}

	var s strings.Builder

	s.WriteString(ui.TitleStyle().Render("  " + ui.IconDiamond + " TempCleaner status"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  OS         %s\n", r.OS))
	admin := ui.TagWarningStyle().Render(" standard user ")
	if r.Elevated {
		admin = ui.TagSuccessStyle().Render(" administrator ")
	}
	s.WriteString(fmt.Sprintf("  Privilege  %s\n", admin))
	s.WriteString("  " + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("─", w-4)) + "\n")

	for _, v := range r.Volumes {
		name := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-14s", v.Target))
		switch {
		case !v.Exists:
			s.WriteString(fmt.Sprintf("  %s %s\n", name,
				lipgloss.NewStyle().Foreground(ui.ColorMuted).Italic(true).Render("not found  "+v.Path)))
		case v.Err != "":
			s.WriteString(fmt.Sprintf("  %s %s\n", name,
				lipgloss.NewStyle().Foreground(ui.ColorError).Render(ui.IconError+" "+v.Err)))
		default:
			s.WriteString(fmt.Sprintf("  %s %s  %5.1f%%  %s free of %s\n", name,
				colorBar(v.UsedPercent, barW), v.UsedPercent,
				core.FormatSize(int64(v.Free)), core.FormatSize(int64(v.Total))))
			s.WriteString("  " + strings.Repeat(" ", 15) +
				lipgloss.NewStyle().Foreground(ui.ColorTextDim).Render(v.Path) + "\n")
		}
	}
	return s.String()
}

// colorBar renders a ████░░░░ bar colored by severity.
func colorBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	barColor := clrGreen
	switch {
	case pct >= 90:
		barColor = clrRed
	case pct >= 75:
		barColor = clrOrange
	case pct >= 50:
		barColor = clrYellow
	}

	fStr := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled))
	eStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("░", width-filled))
	return fStr + eStr
}
