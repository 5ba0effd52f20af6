package inventory

import (
	"sort"
	"sync"
	"time"

	"github.com/daystock/daystock/internal/models"
)

// DefaultSortDelay is how long the displayed order stays frozen after a
// value mutation before the list is re-sorted.
const DefaultSortDelay = 500 * time.Millisecond

// SortItems returns a new slice ordered by ascending days remaining. Items
// with no tracked consumption sort last. Ties break by SortOrder, then by
// position in the input slice (the sort is stable).
func SortItems(items []models.Item) []models.Item {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(a, b int) bool {
		daysA, okA := sorted[a].DaysRemaining()
		daysB, okB := sorted[b].DaysRemaining()

		switch {
		case okA && !okB:
			return true
		case !okA && okB:
			return false
		case okA && okB:
			if cmp := daysA.Cmp(daysB); cmp != 0 {
				return cmp < 0
			}
		}
		return sorted[a].SortOrder < sorted[b].SortOrder
	})

	return sorted
}

// SortScheduler maintains the display ordering of the item list. Value
// mutations update the displayed rows in place immediately while the order
// itself is only recomputed after a quiet period, so rapid taps do not make
// rows jump around mid-edit. Structural mutations reorder immediately.
type SortScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	display []models.Item
	pending []models.Item
	notify  func()
}

// NewSortScheduler creates a scheduler with the given debounce delay.
// notify, if non-nil, is invoked after every display change; it runs
// without the scheduler lock held.
func NewSortScheduler(delay time.Duration, notify func()) *SortScheduler {
	if delay <= 0 {
		delay = DefaultSortDelay
	}
	return &SortScheduler{delay: delay, notify: notify}
}

// Ordered returns a copy of the current display ordering.
func (s *SortScheduler) Ordered() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Item, len(s.display))
	copy(out, s.display)
	return out
}

// Resort cancels any pending deferred re-sort and replaces the display list
// with a freshly sorted ordering of items.
func (s *SortScheduler) Resort(items []models.Item) {
	s.mu.Lock()
	s.cancelLocked()
	s.display = SortItems(items)
	s.mu.Unlock()

	s.fireNotify()
}

// Schedule applies the debounced path for a value mutation: the displayed
// rows are refreshed in place right away, and a single deferred re-sort is
// (re)armed. Re-arming cancels the previously pending re-sort, so only the
// last mutation in a burst triggers an actual re-ordering.
func (s *SortScheduler) Schedule(items []models.Item) {
	s.mu.Lock()

	s.refreshLocked(items)
	s.pending = items
	s.cancelLocked()

	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(gen)
	})

	s.mu.Unlock()

	s.fireNotify()
}

// SetOrder replaces the display list with the given arrangement as-is,
// dropping any pending deferred re-sort. Used for manual reordering, where
// the user's arrangement is authoritative rather than the value sort.
func (s *SortScheduler) SetOrder(items []models.Item) {
	s.mu.Lock()
	s.cancelLocked()
	display := make([]models.Item, len(items))
	copy(display, items)
	s.display = display
	s.mu.Unlock()

	s.fireNotify()
}

// Cancel drops any pending deferred re-sort without applying it.
func (s *SortScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// refreshLocked replaces each displayed row with its current data without
// changing the display positions. Rows whose item disappeared are kept
// as-is until the next resort.
func (s *SortScheduler) refreshLocked(items []models.Item) {
	byID := make(map[string]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	for i := range s.display {
		if updated, ok := byID[s.display[i].ID]; ok {
			s.display[i] = updated
		}
	}
}

func (s *SortScheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire runs on the timer goroutine. A stale generation means the timer was
// superseded or canceled between firing and acquiring the lock.
func (s *SortScheduler) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.timer == nil {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.display = SortItems(s.pending)
	s.pending = nil
	s.mu.Unlock()

	s.fireNotify()
}

func (s *SortScheduler) fireNotify() {
	if s.notify != nil {
		s.notify()
	}
}
