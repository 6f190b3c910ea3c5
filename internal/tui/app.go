package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"multimr/internal/wizard"
)

// Model adapts the wizard to bubbletea. All state lives in the wizard; the
// model only tracks the terminal size.
type Model struct {
	wiz        *wizard.Wizard
	workingDir string
	dryRun     bool
	help       help.Model
	width      int
	height     int
}

func New(w *wizard.Wizard) Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	cfg := w.Config()
	return Model{
		wiz:        w,
		workingDir: cfg.WorkingDir,
		dryRun:     cfg.DryRun,
		help:       h,
	}
}

// Outcome reports what the user chose once the program has exited.
func (m Model) Outcome() wizard.Outcome { return m.wiz.Outcome() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		for _, in := range toInputs(msg) {
			m.wiz.Handle(in)
		}
		if m.wiz.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}
