package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multimr/internal/wizard"
)

// Keys the wizard treats specially. Anything else that carries runes is
// forwarded as text.
var inputKeys = []struct {
	binding key.Binding
	key     wizard.Key
}{
	{key.NewBinding(key.WithKeys("ctrl+c")), wizard.KeyCancel},
	{key.NewBinding(key.WithKeys("up")), wizard.KeyUp},
	{key.NewBinding(key.WithKeys("down")), wizard.KeyDown},
	{key.NewBinding(key.WithKeys("enter")), wizard.KeyEnter},
	{key.NewBinding(key.WithKeys("esc")), wizard.KeyEsc},
	{key.NewBinding(key.WithKeys("tab")), wizard.KeyTab},
	{key.NewBinding(key.WithKeys("backspace")), wizard.KeyBackspace},
}

// toInputs maps a key press onto wizard input. A paste may carry several
// runes and yields one input per printable rune; control characters such as
// newlines and tabs are dropped.
func toInputs(msg tea.KeyMsg) []wizard.Input {
	for _, k := range inputKeys {
		if key.Matches(msg, k.binding) {
			return []wizard.Input{wizard.Press(k.key)}
		}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []wizard.Input{wizard.Rune(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		inputs := make([]wizard.Input, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			inputs = append(inputs, wizard.Rune(r))
		}
		return inputs
	}
	return nil
}

// helpKeys is the per-screen key hint set rendered by bubbles/help.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

var (
	moveKey   = key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓/j/k", "move"))
	labelKey  = key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓/j/k", "select label"))
	selectKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select"))
	nextKey   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next"))
	focusKey  = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field"))
	quitKey   = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit"))
	backKey   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	yesKey    = key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "confirm"))
	noKey     = key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "back"))
)

func keysFor(s wizard.Screen) helpKeys {
	switch s {
	case wizard.RepoSelection:
		return helpKeys{moveKey, selectKey, nextKey, quitKey}
	case wizard.Describe:
		return helpKeys{focusKey, labelKey, nextKey, backKey}
	case wizard.ReviewerSelection:
		return helpKeys{moveKey, selectKey, nextKey, backKey}
	default:
		return helpKeys{yesKey, noKey}
	}
}
