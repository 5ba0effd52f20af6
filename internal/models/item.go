package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Item represents a single tracked consumable good.
type Item struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Stock         decimal.Decimal `json:"stock"`
	Daily         decimal.Decimal `json:"daily"`
	DefaultRefill decimal.Decimal `json:"defaultRefill"`
	SortOrder     int             `json:"sortOrder"`
}

// DaysRemaining returns how many days the current stock lasts at the daily
// consumption rate. The second return value is false when no consumption is
// tracked (daily rate is zero), in which case no estimate exists.
func (i *Item) DaysRemaining() (decimal.Decimal, bool) {
	if !i.Daily.IsPositive() {
		return decimal.Zero, false
	}
	return i.Stock.Div(i.Daily), true
}

// IsStockout reports whether the item has a tracked consumption rate and
// zero or fewer days of stock remaining.
func (i *Item) IsStockout() bool {
	days, ok := i.DaysRemaining()
	if !ok {
		return false
	}
	return days.Sign() <= 0
}

// Validate checks the item invariants.
func (i *Item) Validate() error {
	var errs []error

	if i.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if i.Stock.IsNegative() {
		errs = append(errs, errors.New("stock must be non-negative"))
	}
	if i.Daily.IsNegative() {
		errs = append(errs, errors.New("daily rate must be non-negative"))
	}
	if i.DefaultRefill.IsNegative() {
		errs = append(errs, errors.New("default refill must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
