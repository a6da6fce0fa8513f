package config

import (
	"math"
	"testing"
)

func TestDefaultTickConversions(t *testing.T) {
	tun := Default()
	if err := tun.Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}

	if got := tun.ExplodeTicks(); got != 30 {
		t.Errorf("ExplodeTicks = %d, want 30", got)
	}
	if got := tun.BlinkTicks(); got != 6 {
		t.Errorf("BlinkTicks = %d, want 6", got)
	}
	if got := tun.BlinkCount(); got != 30 {
		t.Errorf("BlinkCount = %d, want 30", got)
	}
	if got := tun.LaserRange(); math.Abs(got-228) > 1e-9 {
		t.Errorf("LaserRange = %f, want 228", got)
	}
	if got := tun.TurnRate(); math.Abs(got-2*math.Pi/60) > 1e-12 {
		t.Errorf("TurnRate = %f, want 2π/60", got)
	}
	if got := tun.LevelMultiplier(3); math.Abs(got-1.3) > 1e-12 {
		t.Errorf("LevelMultiplier(3) = %f, want 1.3", got)
	}
}

func TestValidateRejectsBrokenTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero tick rate", func(t *Tuning) { t.TicksPerSecond = 0 }},
		{"empty belt", func(t *Tuning) { t.RoidsNum = 0 }},
		{"no lives", func(t *Tuning) { t.Lives = 0 }},
		{"flat field", func(t *Tuning) { t.FieldHeight = 0 }},
		{"instant blink", func(t *Tuning) { t.ShipBlinkSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := Default()
			tt.mutate(&tun)
			if err := tun.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
