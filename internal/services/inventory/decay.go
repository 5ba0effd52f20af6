package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daystock/daystock/internal/models"
	"github.com/daystock/daystock/internal/util"
)

// ElapsedDays counts the local-midnight boundaries crossed between from and
// to. Both timestamps are normalized to the start of their calendar day
// before differencing, so 23:59 to 00:01 counts as one elapsed day while a
// full 23 hours inside one day counts as zero. Never negative, even when the
// clock moved backwards.
func ElapsedDays(from, to time.Time) int {
	return util.MidnightsBetween(from, to)
}

// ApplyDecay returns a copy of item with stock reduced by the consumption
// accrued over the given number of elapsed days, clamped at zero. Items with
// no tracked consumption are returned unchanged.
func ApplyDecay(item models.Item, elapsedDays int) models.Item {
	if elapsedDays <= 0 || !item.Daily.IsPositive() {
		return item
	}

	consumed := item.Daily.Mul(decimal.NewFromInt(int64(elapsedDays)))
	item.Stock = item.Stock.Sub(consumed)
	if item.Stock.IsNegative() {
		item.Stock = decimal.Zero
	}
	return item
}
