package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Yes    key.Binding
	No     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "roll")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "new game")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "quit")),
	}
}

// hint renders the short help for the given bindings.
func hint(bindings ...key.Binding) string {
	s := ""
	for i, b := range bindings {
		if i > 0 {
			s += " · "
		}
		h := b.Help()
		s += h.Key + " " + h.Desc
	}
	return s
}
