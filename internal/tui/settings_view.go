package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystock/daystock/internal/models"
	"github.com/daystock/daystock/internal/tui/components"
)

// Settings rows.
const (
	rowRounding = iota
	rowShowMode
	rowDisplayStyle
	rowYellow
	rowRed
	rowNotifications
	rowCount
)

// SettingsView edits the persisted user settings. Enum rows cycle in place;
// threshold rows open an inline numeric input. Every change is applied
// through the callback immediately, so a rejected change (for example a red
// threshold above the yellow one) surfaces its error without being applied.
type SettingsView struct {
	settings models.Settings
	apply    func(models.Settings) error
	cursor   int
	editing  *components.Input
	errMsg   string
}

// NewSettingsView creates a settings view over the current settings.
func NewSettingsView(settings models.Settings, apply func(models.Settings) error) *SettingsView {
	return &SettingsView{settings: settings, apply: apply}
}

// HandleKey processes a key press. Returns false when the view is done and
// the caller should switch back to the list.
func (v *SettingsView) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	if v.editing != nil {
		return v.handleEditKey(msg, keys)
	}

	switch {
	case keys.Back.Matches(msg) || keys.Quit.Matches(msg):
		return false
	case keys.Up.Matches(msg):
		if v.cursor > 0 {
			v.cursor--
		}
	case keys.Down.Matches(msg):
		if v.cursor < rowCount-1 {
			v.cursor++
		}
	case keys.Select.Matches(msg), msg.String() == "right", msg.String() == "left":
		v.activate(msg.String() == "left")
	}
	return true
}

func (v *SettingsView) handleEditKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case keys.Back.Matches(msg):
		v.editing = nil
	case keys.Select.Matches(msg):
		v.commitThreshold()
	default:
		v.editing.HandleKey(msg.String())
	}
	return true
}

func (v *SettingsView) activate(backwards bool) {
	switch v.cursor {
	case rowRounding:
		v.change(func(s *models.Settings) {
			s.RoundingMode = cycleRounding(s.RoundingMode, backwards)
		})
	case rowShowMode:
		v.change(func(s *models.Settings) {
			if s.ShowMode == models.ShowDays {
				s.ShowMode = models.ShowStock
			} else {
				s.ShowMode = models.ShowDays
			}
		})
	case rowDisplayStyle:
		v.change(func(s *models.Settings) {
			if s.DisplayStyle == models.DisplaySimple {
				s.DisplayStyle = models.DisplayDetailed
			} else {
				s.DisplayStyle = models.DisplaySimple
			}
		})
	case rowYellow:
		v.editing = components.NewInput("Yellow at").SetValue(v.settings.WarnYellowDays.String())
		v.editing.Focus(true)
	case rowRed:
		v.editing = components.NewInput("Red at").SetValue(v.settings.WarnRedDays.String())
		v.editing.Focus(true)
	case rowNotifications:
		v.change(func(s *models.Settings) {
			s.NotificationsOn = !s.NotificationsOn
		})
	}
}

func (v *SettingsView) commitThreshold() {
	d, err := parseAmount(v.editing.Value())
	if err != nil {
		v.editing.SetError(err.Error())
		return
	}

	row := v.cursor
	v.change(func(s *models.Settings) {
		if row == rowYellow {
			s.WarnYellowDays = d
		} else {
			s.WarnRedDays = d
		}
	})
	if v.errMsg == "" {
		v.editing = nil
	} else {
		v.editing.SetError(v.errMsg)
	}
}

// change applies a mutation through the callback, keeping the local copy
// only when it is accepted.
func (v *SettingsView) change(mutate func(*models.Settings)) {
	candidate := v.settings
	mutate(&candidate)

	if err := v.apply(candidate); err != nil {
		v.errMsg = err.Error()
		return
	}
	v.settings = candidate
	v.errMsg = ""
}

func cycleRounding(mode models.RoundingMode, backwards bool) models.RoundingMode {
	order := []models.RoundingMode{
		models.RoundingFloor,
		models.RoundingCeil,
		models.RoundingRound,
		models.RoundingRaw,
	}
	for i, m := range order {
		if m == mode {
			if backwards {
				return order[(i+len(order)-1)%len(order)]
			}
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Render draws the settings screen.
func (v *SettingsView) Render(theme *Theme) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("SETTINGS"))
	b.WriteString("\n\n")

	onOff := "off"
	if v.settings.NotificationsOn {
		onOff = "on"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Rounding", string(v.settings.RoundingMode)},
		{"Show", string(v.settings.ShowMode)},
		{"Style", string(v.settings.DisplayStyle)},
		{"Yellow at", v.settings.WarnYellowDays.String() + " days"},
		{"Red at", v.settings.WarnRedDays.String() + " days"},
		{"Notifications", onOff},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-14s %s", row.label, row.value)
		if i == v.cursor {
			line = theme.Selected.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if v.editing != nil {
		b.WriteString("\n" + v.editing.Render() + "\n")
	}
	if v.errMsg != "" && v.editing == nil {
		b.WriteString("\n" + theme.Error.Render("! "+v.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render("Enter:change  Esc:back"))
	return b.String()
}
