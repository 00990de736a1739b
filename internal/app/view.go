package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/tasks"
	"github.com/lakshaymaurya-felt/tempcleaner/internal/ui"
)

// ─── Top-level renderer ─────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.width
	if w < 50 {
		w = 50
	}

	if m.showDetail {
		return m.renderDetail(w)
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")
	s.WriteString(m.renderButtons(w))
	s.WriteString("\n")

	if m.pending != nil {
		s.WriteString(m.renderConfirm())
		s.WriteString("\n")
	}

	s.WriteString(m.renderStatus())
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := ui.TitleStyle().Render(ui.IconDiamond + " TempCleaner")

	badge := ui.TagWarningStyle().Render(" standard user ")
	if m.elevated {
		badge = ui.TagSuccessStyle().Render(" administrator ")
	}
	osLine := lipgloss.NewStyle().Foreground(ui.ColorTextDim).Render(m.osName)

	inner := lipgloss.JoinVertical(lipgloss.Left, title, osLine+"  "+badge)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(0, 1).
		Width(w - 2).
		Render(inner)
}

// ─── Buttons ─────────────────────────────────────────────────────────────────

func (m Model) renderButtons(w int) string {
	section := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorSecondary)
	dim := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	var lines []string
	lastKind := buttonKind(-1)
	for i, b := range m.buttons {
		if b.kind != lastKind {
			switch b.kind {
			case kindTarget:
				lines = append(lines, section.Render("  Targets"))
			case kindTask:
				lines = append(lines, "", section.Render("  Commands"))
			}
			lastKind = b.kind
		}

		icon := ui.IconFolder
		if b.kind == kindTask {
			icon = ui.IconCommand
		}

		label := b.label()
		if b.kind == kindTarget {
			label = lipgloss.NewStyle().Bold(true).Render(b.target.Name) + "  " +
				lipgloss.NewStyle().Foreground(ui.ColorTextDim).Render(b.target.Path)
			if size, ok := m.sizes[b.target.Name]; ok {
				label += "  " + dim.Render("("+size+")")
			}
			if b.target.RequiresAdmin && !m.elevated {
				label += "  " + ui.TagWarningStyle().Render(" admin ")
			}
		}
		if b.kind == kindCleanAll {
			label = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWarning).Render(label)
		}

		line := fmt.Sprintf("   %s %s", icon, label)
		if i == m.cursor {
			cursor := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render(ui.IconBlock)
			line = "  " + cursor + line[3:]
		}
		lines = append(lines, line)
	}

	tip := m.buttons[m.cursor].tooltip()
	lines = append(lines, "", lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Italic(true).
		Width(w-4).
		Render("  "+tip))

	return strings.Join(lines, "\n")
}

// ─── Dialogs ─────────────────────────────────────────────────────────────────

func (m Model) renderConfirm() string {
	b := m.pending
	var q string
	switch b.kind {
	case kindTarget:
		q = fmt.Sprintf("Delete everything inside %s?\n%s", b.target.Name, b.target.Path)
	case kindCleanAll:
		q = fmt.Sprintf("Delete the contents of all %d targets?", len(m.targets()))
	default:
		q = fmt.Sprintf("Run %q now?\n%s", b.task.Command, b.task.Description)
	}
	hint := ui.HintBarStyle().Render("y confirm " + ui.IconPipe + " n cancel")
	return ui.DialogStyle().Render(
		lipgloss.NewStyle().Foreground(ui.ColorWarning).Bold(true).Render(ui.IconWarning+" "+q) + "\n\n" + hint)
}

func (m Model) renderStatus() string {
	var parts []string

	if m.warning != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Render("  "+ui.IconWarning+" "+m.warning))
	}

	line := m.status
	style := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	if m.statusErr {
		style = lipgloss.NewStyle().Foreground(ui.ColorError)
	}
	prefix := "  "
	if m.running > 0 {
		prefix = "  " + m.spinner.View() + " "
		style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	}
	parts = append(parts, prefix+style.Render(line))
	return strings.Join(parts, "\n")
}

// ─── Output detail ───────────────────────────────────────────────────────────

func (m Model) renderDetail(w int) string {
	title := ui.TitleStyle().Render("  " + ui.IconDiamond + " Command output")
	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(w - 2).
		Render(m.detail.View())
	hint := ui.HintBarStyle().Render(fmt.Sprintf("  ↑↓ scroll %s esc close  %3.0f%%", ui.IconPipe, m.detail.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.renderStatus(), hint)
}

func renderOutput(t tasks.Task, r tasks.Result) string {
	var s strings.Builder
	fmt.Fprintf(&s, "$ %s\n", t.Command)
	fmt.Fprintf(&s, "exit code: %d\n", r.ExitCode)
	if out := strings.TrimRight(r.Stdout, "\r\n"); out != "" {
		s.WriteString("\n── stdout ──\n")
		s.WriteString(out)
		s.WriteString("\n")
	}
	if errOut := strings.TrimRight(r.Stderr, "\r\n"); errOut != "" {
		s.WriteString("\n── stderr ──\n")
		s.WriteString(errOut)
		s.WriteString("\n")
	}
	return s.String()
}
