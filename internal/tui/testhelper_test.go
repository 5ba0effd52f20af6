package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystock/daystock/internal/config"
	"github.com/daystock/daystock/internal/services/inventory"
	"github.com/daystock/daystock/internal/storage"
	"github.com/shopspring/decimal"
)

// newTestApp creates an App backed by an in-memory record store, with the
// window marked ready at 120x40.
func newTestApp(t *testing.T) (*App, *inventory.Service) {
	t.Helper()

	app, svc := newE2EApp(t)
	app.width = 120
	app.height = 40
	app.ready = true
	return app, svc
}

// newE2EApp creates an App without pre-set dimensions, for teatest runs
// where the harness sends the WindowSizeMsg itself.
func newE2EApp(t *testing.T) (*App, *inventory.Service) {
	t.Helper()

	records, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() { records.Close() })

	svc := inventory.New(records, 10*time.Millisecond, nil)
	return New(svc, testConfig()), svc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Sort.DebounceMS = 10
	return cfg
}

func seedItem(t *testing.T, svc *inventory.Service, name, stock, daily, refill string) {
	t.Helper()

	_, err := svc.AddItem(inventory.ItemDraft{
		Name:          name,
		Stock:         decimal.RequireFromString(stock),
		Daily:         decimal.RequireFromString(daily),
		DefaultRefill: decimal.RequireFromString(refill),
	})
	if err != nil {
		t.Fatalf("seeding item %s: %v", name, err)
	}
}

func press(app *App, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		app.Update(msg)
	}
}
