package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hospital-tui/internal/workflow"
)

type keyMap struct {
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	BackTab   key.Binding
	Enter     key.Binding
	Esc       key.Binding
	Save      key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next month")),
		BackTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous month")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
	}
}

// translate maps a terminal key message onto the workflow key events it
// stands for. Pasted text yields one event per rune; unbound keys yield
// none.
func (km keyMap) translate(msg tea.KeyMsg) []workflow.Key {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]workflow.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, workflow.Char(r))
		}
		return keys
	case tea.KeySpace:
		return []workflow.Key{workflow.Char(' ')}
	}

	bindings := []struct {
		binding key.Binding
		code    workflow.KeyCode
	}{
		{km.Up, workflow.KeyUp},
		{km.Down, workflow.KeyDown},
		{km.Left, workflow.KeyLeft},
		{km.Right, workflow.KeyRight},
		{km.Tab, workflow.KeyTab},
		{km.BackTab, workflow.KeyBackTab},
		{km.Enter, workflow.KeyEnter},
		{km.Esc, workflow.KeyEsc},
		{km.Save, workflow.KeySave},
		{km.Backspace, workflow.KeyBackspace},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return []workflow.Key{workflow.Press(b.code)}
		}
	}
	return nil
}
