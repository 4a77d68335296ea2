package config

import (
	"errors"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("Default settings should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Settings)
	}{
		{"zero size", func(s *Settings) { s.Size = 0 }},
		{"negative tick", func(s *Settings) { s.Tick = -1 }},
		{"origin off board", func(s *Settings) { s.Origin = Point{X: GridSize, Y: 0} }},
		{"negative origin", func(s *Settings) { s.Origin = Point{X: 0, Y: -1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.edit(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}
