package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/daystock/daystock/internal/models"
	"github.com/daystock/daystock/internal/services/inventory"
	"github.com/daystock/daystock/internal/tui/components"
)

// Form field indexes.
const (
	fieldName = iota
	fieldStock
	fieldDaily
	fieldRefill
	fieldCount
)

// ItemForm is the add/edit form for a tracked item. Numeric text is
// validated here; the engine never sees an invalid decimal.
type ItemForm struct {
	inputs    [fieldCount]*components.Input
	focus     int
	editingID string
}

// NewItemForm creates a blank form for adding an item.
func NewItemForm() *ItemForm {
	f := &ItemForm{}
	f.inputs[fieldName] = components.NewInput("Name").SetWidth(24)
	f.inputs[fieldStock] = components.NewInput("Stock").SetPlaceholder("0")
	f.inputs[fieldDaily] = components.NewInput("Daily use").SetPlaceholder("0")
	f.inputs[fieldRefill] = components.NewInput("Refill amount").SetPlaceholder("0")
	f.setFocus(0)
	return f
}

// EditItemForm creates a form pre-filled from an existing item.
func EditItemForm(item models.Item) *ItemForm {
	f := NewItemForm()
	f.editingID = item.ID
	f.inputs[fieldName].SetValue(item.Name)
	f.inputs[fieldStock].SetValue(item.Stock.String())
	f.inputs[fieldDaily].SetValue(item.Daily.String())
	f.inputs[fieldRefill].SetValue(item.DefaultRefill.String())
	return f
}

// EditingID returns the id of the item being edited, or empty when adding.
func (f *ItemForm) EditingID() string {
	return f.editingID
}

func (f *ItemForm) setFocus(idx int) {
	f.focus = (idx + fieldCount) % fieldCount
	for i, in := range f.inputs {
		in.Focus(i == f.focus)
	}
}

// HandleKey routes a key press to field navigation or the focused input.
func (f *ItemForm) HandleKey(msg tea.KeyMsg, keys KeyMap) {
	switch {
	case keys.Tab.Matches(msg):
		f.setFocus(f.focus + 1)
	case keys.ShiftTab.Matches(msg):
		f.setFocus(f.focus - 1)
	default:
		f.inputs[f.focus].HandleKey(msg.String())
	}
}

// parseAmount converts user-entered numeric text into a non-negative
// decimal. Empty text counts as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("must not be negative")
	}
	return d, nil
}

// Draft validates the form and returns the resulting draft. On failure the
// offending fields carry inline errors and ok is false.
func (f *ItemForm) Draft() (inventory.ItemDraft, bool) {
	var draft inventory.ItemDraft
	ok := true

	draft.Name = strings.TrimSpace(f.inputs[fieldName].Value())
	if draft.Name == "" {
		f.inputs[fieldName].SetError("name is required")
		ok = false
	} else {
		f.inputs[fieldName].SetError("")
	}

	numeric := []struct {
		idx int
		dst *decimal.Decimal
	}{
		{fieldStock, &draft.Stock},
		{fieldDaily, &draft.Daily},
		{fieldRefill, &draft.DefaultRefill},
	}
	for _, field := range numeric {
		d, err := parseAmount(f.inputs[field.idx].Value())
		if err != nil {
			f.inputs[field.idx].SetError(err.Error())
			ok = false
			continue
		}
		f.inputs[field.idx].SetError("")
		*field.dst = d
	}

	return draft, ok
}

// Render draws the form.
func (f *ItemForm) Render(theme *Theme) string {
	var b strings.Builder

	title := "ADD ITEM"
	if f.editingID != "" {
		title = "EDIT ITEM"
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")

	for _, in := range f.inputs {
		b.WriteString(in.Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render("Tab:next field  Enter:save  Esc:cancel"))
	return b.String()
}
