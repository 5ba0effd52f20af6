package models

import (
	"encoding/json"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.RoundingMode != RoundingFloor {
		t.Errorf("rounding mode = %s, want floor", s.RoundingMode)
	}
	if s.ShowMode != ShowDays {
		t.Errorf("show mode = %s, want days", s.ShowMode)
	}
	if s.DisplayStyle != DisplaySimple {
		t.Errorf("display style = %s, want simple", s.DisplayStyle)
	}
	if !s.WarnYellowDays.Equal(dec("3")) {
		t.Errorf("yellow threshold = %s, want 3", s.WarnYellowDays)
	}
	if !s.WarnRedDays.Equal(dec("1")) {
		t.Errorf("red threshold = %s, want 1", s.WarnRedDays)
	}
	if !s.NotificationsOn {
		t.Error("notifications should default to on")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"equal thresholds", func(s *Settings) { s.WarnRedDays = s.WarnYellowDays }, false},
		{"inverted thresholds", func(s *Settings) { s.WarnRedDays = dec("5") }, true},
		{"negative yellow", func(s *Settings) { s.WarnYellowDays = dec("-1") }, true},
		{"negative red", func(s *Settings) { s.WarnRedDays = dec("-1") }, true},
		{"bad rounding mode", func(s *Settings) { s.RoundingMode = "truncate" }, true},
		{"bad show mode", func(s *Settings) { s.ShowMode = "weeks" }, true},
		{"bad display style", func(s *Settings) { s.DisplayStyle = "fancy" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.WarnYellowDays = dec("3.5")
	s.RoundingMode = RoundingRaw

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshaling settings: %v", err)
	}

	var got Settings
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshaling settings: %v", err)
	}

	if got.RoundingMode != RoundingRaw {
		t.Errorf("rounding mode round-trip = %s, want raw", got.RoundingMode)
	}
	if !got.WarnYellowDays.Equal(dec("3.5")) {
		t.Errorf("yellow threshold round-trip = %s, want 3.5", got.WarnYellowDays)
	}
}
