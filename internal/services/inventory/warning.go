package inventory

import (
	"github.com/daystock/daystock/internal/models"
)

// Classify maps an item's days remaining to a warning level using the
// configured thresholds. Items with no tracked consumption are always
// normal. The comparison uses the unrounded decimal value; the display
// rounding mode never influences classification.
func Classify(item models.Item, settings models.Settings) models.WarningLevel {
	days, ok := item.DaysRemaining()
	if !ok {
		return models.WarningNormal
	}

	if days.LessThanOrEqual(settings.WarnRedDays) {
		return models.WarningCritical
	}
	if days.LessThanOrEqual(settings.WarnYellowDays) {
		return models.WarningYellow
	}
	return models.WarningNormal
}
