package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists every binding the dashboard understands.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Edit       key.Binding
	Opacity    key.Binding
	Cancel     key.Binding
	ExactFit   key.Binding
	Fill       key.Binding
	Copy       key.Binding
	PrevFrame  key.Binding
	NextFrame  key.Binding
	CreateGrid key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "previous control"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit/activate"),
		),
		Opacity: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "edit slot opacity"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
		ExactFit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle perfect fits"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle fill grid"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy slot hex"),
		),
		PrevFrame: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous frame"),
		),
		NextFrame: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next frame"),
		),
		CreateGrid: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "create grid"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Decrease, k.Increase, k.Edit, k.CreateGrid, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Decrease, k.Increase},
		{k.Edit, k.Opacity, k.Cancel, k.Copy},
		{k.ExactFit, k.Fill, k.CreateGrid},
		{k.PrevFrame, k.NextFrame, k.Help, k.Quit},
	}
}
