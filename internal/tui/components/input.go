// Package components provides reusable TUI building blocks for DayStock.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Input is a single-line text input field.
type Input struct {
	label       string
	value       string
	placeholder string
	width       int
	focused     bool
	maxLength   int
	err         string
}

// NewInput creates a new input field.
func NewInput(label string) *Input {
	return &Input{
		label:     label,
		width:     20,
		maxLength: 60,
	}
}

// SetValue sets the input value.
func (i *Input) SetValue(v string) *Input {
	i.value = v
	return i
}

// SetPlaceholder sets the placeholder text.
func (i *Input) SetPlaceholder(p string) *Input {
	i.placeholder = p
	return i
}

// SetWidth sets the input width.
func (i *Input) SetWidth(w int) *Input {
	i.width = w
	return i
}

// SetError sets an inline error message; empty clears it.
func (i *Input) SetError(e string) *Input {
	i.err = e
	return i
}

// Error returns the current inline error message.
func (i *Input) Error() string {
	return i.err
}

// Focus sets the focus state.
func (i *Input) Focus(focused bool) {
	i.focused = focused
}

// IsFocused returns the focus state.
func (i *Input) IsFocused() bool {
	return i.focused
}

// Value returns the current value.
func (i *Input) Value() string {
	return i.value
}

// Label returns the field label.
func (i *Input) Label() string {
	return i.label
}

// HandleKey handles a key press. Editing keys are applied; anything else is
// ignored so callers can route navigation keys themselves.
func (i *Input) HandleKey(key string) {
	if !i.focused {
		return
	}

	switch key {
	case "backspace":
		if r := []rune(i.value); len(r) > 0 {
			i.value = string(r[:len(r)-1])
		}
	case "ctrl+u":
		i.value = ""
	default:
		if len(key) == 1 && len(i.value) < i.maxLength {
			i.value += key
		}
	}
}

// Render draws the field as "Label: [value]" with an optional error line.
func (i *Input) Render() string {
	labelStyle := lipgloss.NewStyle().Width(14)
	boxStyle := lipgloss.NewStyle()
	if i.focused {
		labelStyle = labelStyle.Bold(true)
		boxStyle = boxStyle.Reverse(true)
	}

	shown := i.value
	if shown == "" && !i.focused {
		shown = i.placeholder
	}
	if i.focused {
		shown += "_"
	}
	if len(shown) < i.width {
		shown += strings.Repeat(" ", i.width-len(shown))
	}

	line := labelStyle.Render(i.label+":") + " " + boxStyle.Render(shown)
	if i.err != "" {
		line += "\n" + lipgloss.NewStyle().Bold(true).Render("  ! "+i.err)
	}
	return line
}
