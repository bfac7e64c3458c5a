package core

import "testing"

func TestRuntimeConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   RuntimeConfig
		want RuntimeConfig
	}{
		{"zero value", RuntimeConfig{}, DefaultConfig()},
		{"keeps valid", RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 7}, RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 7}},
		{"bad rate", RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: -1, Seed: 7}, RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 7}},
		{"bad size", RuntimeConfig{ScreenW: 0, ScreenH: 30, TickRate: 30}, RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
