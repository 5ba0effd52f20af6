package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up       Key
	Down     Key
	MoveUp   Key
	MoveDown Key

	Increment Key
	Decrement Key
	Refill    Key
	RefillAll Key

	Add      Key
	Edit     Key
	Delete   Key
	Settings Key

	Select Key
	Back   Key
	Quit   Key

	Tab      Key
	ShiftTab Key
}

// Key represents a key binding.
type Key struct {
	Keys []string
	Help string
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       Key{Keys: []string{"up", "k"}, Help: "up"},
		Down:     Key{Keys: []string{"down", "j"}, Help: "down"},
		MoveUp:   Key{Keys: []string{"K", "shift+up"}, Help: "move item up"},
		MoveDown: Key{Keys: []string{"J", "shift+down"}, Help: "move item down"},

		Increment: Key{Keys: []string{"+", "="}, Help: "+1 stock"},
		Decrement: Key{Keys: []string{"-", "_"}, Help: "-1 stock"},
		Refill:    Key{Keys: []string{"r"}, Help: "refill"},
		RefillAll: Key{Keys: []string{"R"}, Help: "refill all"},

		Add:      Key{Keys: []string{"a"}, Help: "add"},
		Edit:     Key{Keys: []string{"e", "enter"}, Help: "edit"},
		Delete:   Key{Keys: []string{"d", "delete"}, Help: "delete"},
		Settings: Key{Keys: []string{"s"}, Help: "settings"},

		Select: Key{Keys: []string{"enter"}, Help: "select"},
		Back:   Key{Keys: []string{"esc"}, Help: "back"},
		Quit:   Key{Keys: []string{"q", "ctrl+c"}, Help: "quit"},

		Tab:      Key{Keys: []string{"tab", "down"}, Help: "next field"},
		ShiftTab: Key{Keys: []string{"shift+tab", "up"}, Help: "prev field"},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	key := msg.String()
	for _, candidate := range k.Keys {
		if key == candidate {
			return true
		}
	}
	return false
}
