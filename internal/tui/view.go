package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"multimr/internal/wizard"
)

// — styles ——————————————————————————————————————————————————————————————————

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	helpStyle    = lipgloss.NewStyle().Faint(true)
	helpKeyStyle = lipgloss.NewStyle().Faint(true).Bold(true)

	labelStyle = lipgloss.NewStyle().Faint(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedBoxStyle = boxStyle.BorderForeground(lipgloss.Color("205"))

	bodyStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.width == 0 || m.wiz.Done() {
		return ""
	}

	screen := m.wiz.Screen()
	head := titleStyle.Render("Multi MR - " + screen.Title())
	if m.dryRun {
		head += "  " + warnStyle.Render("DRY RUN")
	}

	var body string
	switch screen {
	case wizard.RepoSelection:
		body = m.renderRepos()
	case wizard.Describe:
		body = m.renderDescribe()
	case wizard.ReviewerSelection:
		body = m.renderReviewers()
	case wizard.Finalize:
		body = m.renderOverview()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"\n"+head,
		bodyStyle.Render(body),
		m.renderHelp(screen),
	)
}

// — layout helpers ——————————————————————————————————————————————————————————

func (m Model) contentWidth() int {
	return max(m.width-4, 10)
}

// row renders one list line with a cursor marker, truncated to the content width.
func (m Model) row(text string, highlighted bool) string {
	text = runewidth.Truncate(text, m.contentWidth()-2, "…")
	if highlighted {
		return cursorStyle.Render("> " + text)
	}
	return "  " + text
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func radio(on bool) string {
	if on {
		return "(x)"
	}
	return "( )"
}

func (m Model) renderRepos() string {
	step := m.wiz.RepoStep()
	repos := m.wiz.Repositories()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Current directory: %s (Selected: %d)\n\n", m.workingDir, step.Count()))
	if len(repos) == 0 {
		b.WriteString(dimStyle.Render("No git repositories found"))
		return b.String()
	}
	for i, r := range repos {
		branch := r.Branch
		if branch == "" {
			branch = "detached HEAD"
		}
		line := fmt.Sprintf("%s %s (%s)", check(step.IsChosen(i)), r.Name, branch)
		b.WriteString(m.row(line, i == step.Cursor()) + "\n")
	}
	return b.String()
}

func (m Model) renderDescribe() string {
	step := m.wiz.DescribeStep()
	w := m.contentWidth() - 4

	field := func(name, value string, focused bool) string {
		style := boxStyle
		if focused {
			style = focusedBoxStyle
			value += "█"
		}
		return labelStyle.Render(name) + "\n" + style.Width(w).Render(value)
	}

	var labels strings.Builder
	names := m.wiz.Labels()
	cfg := m.wiz.Config()
	if len(names) == 0 {
		labels.WriteString(dimStyle.Render("No labels configured"))
	}
	for i, name := range names {
		if i > 0 {
			labels.WriteString("\n")
		}
		line := fmt.Sprintf("%s %s: %s", radio(i == step.Label()), name, cfg.Labels[name])
		labels.WriteString(runewidth.Truncate(line, w, "…"))
	}
	labelBox := boxStyle
	if step.Focus() == wizard.FieldLabel {
		labelBox = focusedBoxStyle
	}

	assignee := dimStyle.Render("No assignee set")
	if cfg.Assignee != "" {
		assignee = "Assignee: " + boldStyle.Render(cfg.Assignee)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		field("Title", step.Title(), step.Focus() == wizard.FieldTitle),
		field("Description", step.Description(), step.Focus() == wizard.FieldDescription),
		labelStyle.Render("Gitlab Label"),
		labelBox.Width(w).Render(labels.String()),
		"",
		assignee,
	)
}

func (m Model) renderReviewers() string {
	step := m.wiz.ReviewerStep()
	reviewers := m.wiz.Config().Reviewers
	if len(reviewers) == 0 {
		return dimStyle.Render("No reviewers configured")
	}
	var b strings.Builder
	for i, name := range reviewers {
		line := fmt.Sprintf("%s %s", check(step.IsChosen(i)), name)
		b.WriteString(m.row(line, i == step.Cursor()) + "\n")
	}
	return b.String()
}

func (m Model) renderOverview() string {
	req, repos := m.wiz.Summary()

	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = r.Name
	}

	field := func(lbl, val string) string {
		if val == "" {
			val = dimStyle.Render("—")
		}
		return labelStyle.Render(fmt.Sprintf("%-14s", lbl)) + val + "\n"
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render("Overview") + "\n\n")
	b.WriteString(field("Repositories:", strings.Join(names, ", ")))
	b.WriteString(field("Title:", req.Title))
	b.WriteString(field("Description:", req.Description))
	b.WriteString(field("Reviewers:", strings.Join(req.Reviewers, ", ")))
	b.WriteString(field("Label:", strings.Join(req.Labels, ", ")))
	b.WriteString(field("Assignee:", req.Assignee))
	b.WriteString("\nPress 'y' to confirm, 'n' to go back.")
	return b.String()
}

func (m Model) renderHelp(s wizard.Screen) string {
	sep := dimStyle.Render(strings.Repeat("─", m.width))
	return sep + "\n  " + m.help.View(keysFor(s))
}
