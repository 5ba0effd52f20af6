package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystock/daystock/internal/config"
	"github.com/daystock/daystock/internal/models"
	"github.com/daystock/daystock/internal/services/inventory"
)

// viewMode selects which screen the app is showing.
type viewMode int

const (
	modeList viewMode = iota
	modeForm
	modeSettings
	modeConfirmDelete
)

// stateChangedMsg is sent whenever the engine reports a state or display
// change, including deferred re-sorts firing.
type stateChangedMsg struct{}

// App is the main Bubble Tea application model. It is a thin collaborator
// over the inventory service: every action delegates to the engine, and the
// list re-renders on the engine's change signal.
type App struct {
	svc   *inventory.Service
	theme *Theme
	keys  KeyMap

	width  int
	height int
	ready  bool

	mode     viewMode
	cursor   int
	form     *ItemForm
	settings *SettingsView

	// changes carries the engine's state-changed signal into the event loop.
	changes chan struct{}

	// stockouts shown as a startup banner, dismissed on first key press.
	stockouts []models.Item

	quitting bool
}

// New creates the application model and subscribes it to the engine.
func New(svc *inventory.Service, cfg *config.Config) *App {
	a := &App{
		svc:     svc,
		theme:   NewTheme(cfg.Display.ColorScheme),
		keys:    DefaultKeyMap(),
		changes: make(chan struct{}, 1),
	}

	svc.Subscribe(func() {
		select {
		case a.changes <- struct{}{}:
		default:
		}
	})

	if svc.Settings().NotificationsOn {
		a.stockouts = svc.CheckStockoutItems()
	}

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, a.waitForChange())
}

// waitForChange blocks on the engine signal and converts it into a message.
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-a.changes
		return stateChangedMsg{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case stateChangedMsg:
		// Re-render and keep listening.
		return a, a.waitForChange()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the startup stockout banner.
	if len(a.stockouts) > 0 {
		a.stockouts = nil
		return a, nil
	}

	switch a.mode {
	case modeForm:
		return a.handleFormKey(msg)
	case modeSettings:
		if !a.settings.HandleKey(msg, a.keys) {
			a.settings = nil
			a.mode = modeList
		}
		return a, nil
	case modeConfirmDelete:
		return a.handleConfirmKey(msg)
	default:
		return a.handleListKey(msg)
	}
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.svc.Items()
	a.clampCursor(len(items))

	switch {
	case a.keys.Quit.Matches(msg):
		a.quitting = true
		return a, tea.Quit

	case a.keys.Up.Matches(msg):
		if a.cursor > 0 {
			a.cursor--
		}

	case a.keys.Down.Matches(msg):
		if a.cursor < len(items)-1 {
			a.cursor++
		}

	case a.keys.MoveUp.Matches(msg):
		a.moveItem(items, -1)

	case a.keys.MoveDown.Matches(msg):
		a.moveItem(items, +1)

	case a.keys.Increment.Matches(msg):
		if it, ok := a.selected(items); ok {
			a.svc.IncrementStock(it.ID)
		}

	case a.keys.Decrement.Matches(msg):
		if it, ok := a.selected(items); ok {
			a.svc.DecrementStock(it.ID)
		}

	case a.keys.Refill.Matches(msg):
		if it, ok := a.selected(items); ok {
			a.svc.RefillItem(it.ID)
		}

	case a.keys.RefillAll.Matches(msg):
		a.svc.RefillAll()

	case a.keys.Add.Matches(msg):
		a.form = NewItemForm()
		a.mode = modeForm

	case a.keys.Edit.Matches(msg):
		if it, ok := a.selected(items); ok {
			a.form = EditItemForm(it)
			a.mode = modeForm
		}

	case a.keys.Delete.Matches(msg):
		if _, ok := a.selected(items); ok {
			a.mode = modeConfirmDelete
		}

	case a.keys.Settings.Matches(msg):
		a.settings = NewSettingsView(a.svc.Settings(), a.svc.UpdateSettings)
		a.mode = modeSettings
	}

	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Back.Matches(msg):
		a.form = nil
		a.mode = modeList

	case a.keys.Select.Matches(msg):
		a.submitForm()

	default:
		a.form.HandleKey(msg, a.keys)
	}
	return a, nil
}

func (a *App) submitForm() {
	draft, ok := a.form.Draft()
	if !ok {
		return
	}

	if id := a.form.EditingID(); id != "" {
		for _, it := range a.svc.Items() {
			if it.ID == id {
				it.Name = draft.Name
				it.Stock = draft.Stock
				it.Daily = draft.Daily
				it.DefaultRefill = draft.DefaultRefill
				a.svc.UpdateItem(it)
				break
			}
		}
	} else {
		if _, err := a.svc.AddItem(draft); err != nil {
			return
		}
	}

	a.form = nil
	a.mode = modeList
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if it, ok := a.selected(a.svc.Items()); ok {
			a.svc.DeleteItem(it.ID)
		}
	}
	a.mode = modeList
	return a, nil
}

// moveItem swaps the selected item with its display neighbor and records
// the new arrangement as the manual sort order.
func (a *App) moveItem(items []models.Item, delta int) {
	target := a.cursor + delta
	if a.cursor < 0 || a.cursor >= len(items) || target < 0 || target >= len(items) {
		return
	}
	items[a.cursor], items[target] = items[target], items[a.cursor]
	a.cursor = target
	a.svc.UpdateSortOrder(items)
}

func (a *App) selected(items []models.Item) (models.Item, bool) {
	if a.cursor < 0 || a.cursor >= len(items) {
		return models.Item{}, false
	}
	return items[a.cursor], true
}

func (a *App) clampCursor(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Loading..."
	}

	switch a.mode {
	case modeForm:
		return a.form.Render(a.theme)
	case modeSettings:
		return a.settings.Render(a.theme)
	default:
		return a.renderList()
	}
}

func (a *App) renderList() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("DAYSTOCK"))
	b.WriteString("\n\n")

	if len(a.stockouts) > 0 {
		b.WriteString(a.renderStockoutAlert())
		b.WriteString("\n\n")
	}

	items := a.svc.Items()
	if len(items) == 0 {
		b.WriteString(a.theme.Muted.Render("No items yet. Press a to add one."))
		b.WriteString("\n")
	}

	settings := a.svc.Settings()
	for i, it := range items {
		b.WriteString(a.renderRow(it, settings, i == a.cursor))
		b.WriteString("\n")
	}

	if a.mode == modeConfirmDelete {
		if it, ok := a.selected(items); ok {
			b.WriteString("\n")
			b.WriteString(a.theme.Error.Render(fmt.Sprintf("Delete %q? (y/n)", it.Name)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(a.renderHelp())
	return b.String()
}

func (a *App) renderRow(it models.Item, settings models.Settings, selected bool) string {
	style := a.theme.WarningStyle(a.svc.WarningFor(it))

	value := a.svc.DisplayValue(it)
	unit := "d"
	if settings.ShowMode == models.ShowStock {
		unit = ""
	}

	var line string
	if settings.DisplayStyle == models.DisplayDetailed {
		line = fmt.Sprintf("%-24s %6s%s   stock %s / day %s / refill %s",
			Truncate(it.Name, 24), value, unit,
			it.Stock.String(), it.Daily.String(), it.DefaultRefill.String())
	} else {
		line = fmt.Sprintf("%-24s %6s%s", Truncate(it.Name, 24), value, unit)
	}

	marker := "  "
	if selected {
		marker = "> "
		return marker + a.theme.Selected.Render(style.Render(line))
	}
	return marker + style.Render(line)
}

func (a *App) renderStockoutAlert() string {
	names := make([]string, len(a.stockouts))
	for i, it := range a.stockouts {
		names[i] = it.Name
	}
	return a.theme.Alert.Render("OUT OF STOCK: " + strings.Join(names, ", "))
}

func (a *App) renderHelp() string {
	if a.width > 0 && a.width < 80 {
		return a.theme.Help.Render("+/-:stock r:refill a:add e:edit d:del s:cfg q:quit")
	}
	return a.theme.Help.Render(
		"+/-:adjust stock  r:refill  R:refill all  a:add  e:edit  d:delete  J/K:move  s:settings  q:quit")
}

// Truncate shortens a string to maxWidth runes with an ellipsis.
func Truncate(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-1]) + "…"
}
