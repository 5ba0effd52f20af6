package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode controls how days-remaining values are formatted for display.
// It never affects stored stock math or warning classification.
type RoundingMode string

const (
	RoundingFloor RoundingMode = "floor"
	RoundingCeil  RoundingMode = "ceil"
	RoundingRound RoundingMode = "round"
	RoundingRaw   RoundingMode = "raw"
)

// ShowMode selects whether rows display days remaining or raw stock.
type ShowMode string

const (
	ShowDays  ShowMode = "days"
	ShowStock ShowMode = "stock"
)

// DisplayStyle selects between compact and detailed row rendering.
type DisplayStyle string

const (
	DisplaySimple   DisplayStyle = "simple"
	DisplayDetailed DisplayStyle = "detailed"
)

// WarningLevel is the three-tier severity derived from days remaining.
type WarningLevel int

const (
	WarningNormal WarningLevel = iota
	WarningYellow
	WarningCritical
)

func (w WarningLevel) String() string {
	switch w {
	case WarningYellow:
		return "warning"
	case WarningCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Settings holds the user-configurable behavior of the application.
// It is persisted as a single record and loaded once at startup.
type Settings struct {
	RoundingMode    RoundingMode    `json:"roundingMode"`
	ShowMode        ShowMode        `json:"showMode"`
	DisplayStyle    DisplayStyle    `json:"displayStyle"`
	WarnYellowDays  decimal.Decimal `json:"warnYellowDays"`
	WarnRedDays     decimal.Decimal `json:"warnRedDays"`
	NotificationsOn bool            `json:"notificationsOn"`
}

// DefaultSettings returns the settings used when no record exists yet.
func DefaultSettings() Settings {
	return Settings{
		RoundingMode:    RoundingFloor,
		ShowMode:        ShowDays,
		DisplayStyle:    DisplaySimple,
		WarnYellowDays:  decimal.NewFromInt(3),
		WarnRedDays:     decimal.NewFromInt(1),
		NotificationsOn: true,
	}
}

// Validate checks that the settings are internally consistent.
func (s *Settings) Validate() error {
	var errs []error

	switch s.RoundingMode {
	case RoundingFloor, RoundingCeil, RoundingRound, RoundingRaw:
	default:
		errs = append(errs, fmt.Errorf("invalid rounding mode: %s", s.RoundingMode))
	}

	switch s.ShowMode {
	case ShowDays, ShowStock:
	default:
		errs = append(errs, fmt.Errorf("invalid show mode: %s", s.ShowMode))
	}

	switch s.DisplayStyle {
	case DisplaySimple, DisplayDetailed:
	default:
		errs = append(errs, fmt.Errorf("invalid display style: %s", s.DisplayStyle))
	}

	if s.WarnYellowDays.IsNegative() {
		errs = append(errs, errors.New("yellow threshold must be non-negative"))
	}

	if s.WarnRedDays.IsNegative() {
		errs = append(errs, errors.New("red threshold must be non-negative"))
	}

	// The classifier checks critical before warning, so an inverted pair
	// would silently make the yellow band unreachable. Reject it here.
	if s.WarnRedDays.GreaterThan(s.WarnYellowDays) {
		errs = append(errs, errors.New("red threshold must not exceed yellow threshold"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
