// Package inventory implements the DayStock engine: the item store, the
// startup stock decay, warning classification, and the debounced sort
// scheduling of the displayed list.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daystock/daystock/internal/models"
	"github.com/daystock/daystock/internal/storage"
	"github.com/daystock/daystock/internal/util"
)

// Record keys in the local store.
const (
	appStateKey = "daystock.appstate"
	settingsKey = "daystock.settings"
)

// Service owns the inventory state and settings for the process lifetime.
// Every mutation persists synchronously (best effort) and then drives the
// sort scheduler with the mode appropriate to the operation: structural
// changes re-sort immediately, value changes take the debounced path.
//
// All operations are safe for the single-event-loop callers they are
// designed for; the mutex only serializes the debounce timer callback
// against them.
type Service struct {
	mu        sync.Mutex
	records   *storage.Store
	state     models.AppState
	settings  models.Settings
	sched     *SortScheduler
	listeners []func()

	now func() time.Time
}

// New loads persisted state from the record store, applies startup decay,
// and computes the initial display ordering. Missing or malformed records
// fall back to empty state and default settings. now may be nil for the
// wall clock; tests inject a fixed clock.
func New(records *storage.Store, sortDelay time.Duration, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	s := &Service{
		records:  records,
		settings: models.DefaultSettings(),
		now:      now,
	}
	s.sched = NewSortScheduler(sortDelay, s.notifyListeners)

	s.load()
	s.RunStartupDecay()
	s.sched.Resort(s.snapshot())

	return s
}

// Subscribe registers a listener invoked after every state or display
// change. Listeners must not block.
func (s *Service) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notifyListeners() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Items returns the current display-ordered item list.
func (s *Service) Items() []models.Item {
	return s.sched.Ordered()
}

// Settings returns the current settings.
func (s *Service) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings validates and replaces the settings, then persists them.
func (s *Service) UpdateSettings(settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validating settings: %w", err)
	}

	s.mu.Lock()
	s.settings = settings
	s.persistLocked()
	s.mu.Unlock()

	s.notifyListeners()
	return nil
}

// AddItem creates a new item from the draft, assigns its identifier and the
// next sort order, and re-sorts the display immediately.
func (s *Service) AddItem(draft ItemDraft) (models.Item, error) {
	item := models.Item{
		ID:            util.NewID(),
		Name:          draft.Name,
		Stock:         draft.Stock,
		Daily:         draft.Daily,
		DefaultRefill: draft.DefaultRefill,
	}
	if err := item.Validate(); err != nil {
		return models.Item{}, fmt.Errorf("validating item: %w", err)
	}

	s.mu.Lock()
	item.SortOrder = s.nextSortOrderLocked()
	s.state.Items = append(s.state.Items, item)
	s.persistLocked()
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Resort(items)
	return item, nil
}

// UpdateItem replaces an existing item by identifier and re-sorts
// immediately. A missing identifier is a silent no-op.
func (s *Service) UpdateItem(item models.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validating item: %w", err)
	}

	s.mu.Lock()
	idx := s.indexLocked(item.ID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.state.Items[idx] = item
	s.persistLocked()
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Resort(items)
	return nil
}

// DeleteItem removes an item by identifier and re-sorts immediately.
// A missing identifier is a silent no-op.
func (s *Service) DeleteItem(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	s.persistLocked()
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Resort(items)
}

// RefillItem adds the item's default refill amount to its stock.
// Takes the debounced sort path.
func (s *Service) RefillItem(id string) {
	s.mutateStock(id, func(item *models.Item) {
		item.Stock = item.Stock.Add(item.DefaultRefill)
	})
}

// RefillAll adds every item's default refill amount to its stock.
func (s *Service) RefillAll() {
	s.mu.Lock()
	if len(s.state.Items) == 0 {
		s.mu.Unlock()
		return
	}
	for i := range s.state.Items {
		s.state.Items[i].Stock = s.state.Items[i].Stock.Add(s.state.Items[i].DefaultRefill)
	}
	now := s.now()
	s.state.UpdatedAt = &now
	s.persistLocked()
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Schedule(items)
}

// IncrementStock adds one unit of stock. Takes the debounced sort path.
func (s *Service) IncrementStock(id string) {
	s.mutateStock(id, func(item *models.Item) {
		item.Stock = item.Stock.Add(decimal.NewFromInt(1))
	})
}

// DecrementStock removes one unit of stock, clamping at zero.
// Takes the debounced sort path.
func (s *Service) DecrementStock(id string) {
	s.mutateStock(id, func(item *models.Item) {
		item.Stock = item.Stock.Sub(decimal.NewFromInt(1))
		if item.Stock.IsNegative() {
			item.Stock = decimal.Zero
		}
	})
}

// mutateStock applies a stock-affecting change to one item, touches the
// decay anchor, persists, and schedules a debounced re-sort. Missing
// identifiers are silent no-ops.
func (s *Service) mutateStock(id string, change func(*models.Item)) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	change(&s.state.Items[idx])
	now := s.now()
	s.state.UpdatedAt = &now
	s.persistLocked()
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Schedule(items)
}

// UpdateSortOrder rewrites each item's manual sort order to match its
// position in the given sequence and shows exactly that arrangement. No
// value-based re-sort runs; the manual order is authoritative until the
// next qualifying mutation. Unknown identifiers are skipped.
func (s *Service) UpdateSortOrder(ordered []models.Item) {
	s.mu.Lock()
	arranged := make([]models.Item, 0, len(ordered))
	for pos, item := range ordered {
		if idx := s.indexLocked(item.ID); idx >= 0 {
			s.state.Items[idx].SortOrder = pos
			arranged = append(arranged, s.state.Items[idx])
		}
	}
	s.persistLocked()
	s.mu.Unlock()

	s.sched.SetOrder(arranged)
}

// RunStartupDecay applies the catch-up stock reduction for calendar days
// elapsed since the last recorded update. On first run the anchor is simply
// initialized. Nothing is mutated or written when no midnight has passed,
// so an immediate second call is a no-op.
func (s *Service) RunStartupDecay() {
	s.mu.Lock()
	now := s.now()

	if s.state.UpdatedAt == nil {
		s.state.UpdatedAt = &now
		s.persistLocked()
		s.mu.Unlock()
		return
	}

	elapsed := ElapsedDays(*s.state.UpdatedAt, now)
	if elapsed == 0 {
		s.mu.Unlock()
		return
	}

	for i := range s.state.Items {
		s.state.Items[i] = ApplyDecay(s.state.Items[i], elapsed)
	}
	s.state.UpdatedAt = &now
	s.persistLocked()
	items := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Resort(items)
}

// CheckStockoutItems returns all items whose days remaining is defined and
// zero or less. Pure query, no mutation.
func (s *Service) CheckStockoutItems() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Item
	for _, item := range s.state.Items {
		if item.IsStockout() {
			out = append(out, item)
		}
	}
	return out
}

// WarningFor classifies an item against the current thresholds.
func (s *Service) WarningFor(item models.Item) models.WarningLevel {
	return Classify(item, s.Settings())
}

// FormatDays renders a days-remaining value according to the configured
// rounding mode. Rounding applies to the displayed string only.
func (s *Service) FormatDays(days decimal.Decimal) string {
	switch s.Settings().RoundingMode {
	case models.RoundingCeil:
		return days.Ceil().String()
	case models.RoundingRound:
		return days.Round(0).String()
	case models.RoundingRaw:
		return days.StringFixed(1)
	default:
		return days.Floor().String()
	}
}

// DisplayValue renders the per-row value for an item honoring the show
// mode: formatted days remaining, or the raw stock quantity. Items without
// a tracked consumption rate show a dash in days mode.
func (s *Service) DisplayValue(item models.Item) string {
	if s.Settings().ShowMode == models.ShowStock {
		return item.Stock.String()
	}
	days, ok := item.DaysRemaining()
	if !ok {
		return "-"
	}
	return s.FormatDays(days)
}

// --- internal helpers (callers hold s.mu) ---

func (s *Service) indexLocked(id string) int {
	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) nextSortOrderLocked() int {
	next := 0
	for _, item := range s.state.Items {
		if item.SortOrder >= next {
			next = item.SortOrder + 1
		}
	}
	return next
}

func (s *Service) snapshotLocked() []models.Item {
	items := make([]models.Item, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

func (s *Service) snapshot() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// load reads both records. Absent or malformed records fall back to empty
// state and default settings; the process never fails on bad data.
func (s *Service) load() {
	ctx := context.Background()

	if data, err := s.records.Get(ctx, appStateKey); err == nil {
		var state models.AppState
		if err := json.Unmarshal(data, &state); err != nil {
			slog.Warn("discarding malformed app state record", "error", err)
		} else {
			s.state = state
		}
	}

	if data, err := s.records.Get(ctx, settingsKey); err == nil {
		var settings models.Settings
		if err := json.Unmarshal(data, &settings); err != nil {
			slog.Warn("discarding malformed settings record", "error", err)
		} else if err := settings.Validate(); err != nil {
			slog.Warn("discarding invalid settings record", "error", err)
		} else {
			s.settings = settings
		}
	}
}

// persistLocked writes both records. Persistence is best effort: failures
// are logged and swallowed, and the in-memory state stays authoritative.
func (s *Service) persistLocked() {
	ctx := context.Background()

	if data, err := json.Marshal(s.state); err != nil {
		slog.Warn("encoding app state", "error", err)
	} else if err := s.records.Put(ctx, appStateKey, data); err != nil {
		slog.Warn("writing app state record", "error", err)
	}

	if data, err := json.Marshal(s.settings); err != nil {
		slog.Warn("encoding settings", "error", err)
	} else if err := s.records.Put(ctx, settingsKey, data); err != nil {
		slog.Warn("writing settings record", "error", err)
	}
}
