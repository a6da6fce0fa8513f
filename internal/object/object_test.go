package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/roids/internal/loop/config"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testField() Playfield {
	return Playfield{Width: 760, Height: 570}
}

func TestWrapMarginTeleportsOncePerCrossing(t *testing.T) {
	field := testField()
	const margin = 18.0

	// Exactly on boundary+margin has not exceeded it yet.
	x, y := field.Width+margin, 100.0
	field.WrapMargin(&x, &y, margin)
	if x != field.Width+margin {
		t.Fatalf("x on boundary+margin should stay, got %f", x)
	}

	x = field.Width + margin + 0.5
	field.WrapMargin(&x, &y, margin)
	if x != -margin {
		t.Fatalf("x past boundary+margin = %f, want %f", x, -margin)
	}

	// A stationary entity on the wrapped side must not bounce back.
	for i := 0; i < 3; i++ {
		field.WrapMargin(&x, &y, margin)
		if x != -margin {
			t.Fatalf("tick %d: wrapped entity oscillated to %f", i, x)
		}
	}
}

func TestWrapMarginAxesIndependent(t *testing.T) {
	field := testField()
	x, y := -30.0, field.Height+30
	field.WrapMargin(&x, &y, 10)
	if x != field.Width+10 || y != -10 {
		t.Errorf("corner exit wrapped to (%f,%f), want (%f,%f)", x, y, field.Width+10, -10.0)
	}
}

func TestWrapEdgeIsExact(t *testing.T) {
	field := testField()
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"left", -0.1, 10, field.Width, 10},
		{"right", field.Width + 0.1, 10, 0, 10},
		{"top", 10, -0.1, 10, field.Height},
		{"bottom", 10, field.Height + 0.1, 10, 0},
		{"on edge", field.Width, 10, field.Width, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.x, tt.y
			field.WrapEdge(&x, &y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WrapEdge(%f,%f) = (%f,%f), want (%f,%f)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBannerFades(t *testing.T) {
	tun := config.Default()
	var b Banner
	b.Show("LEVEL 1")
	if !b.Visible() {
		t.Fatal("banner should be visible after Show")
	}

	ticks := 0
	for !b.Fade(tun.FadeStep()) {
		ticks++
		if ticks > 1000 {
			t.Fatal("banner never faded")
		}
	}
	// 2.5s at 60 ticks/s, give or take float rounding on the last step.
	if ticks < 148 || ticks > 150 {
		t.Errorf("banner faded after %d ticks, want ~150", ticks)
	}
	if b.Visible() {
		t.Error("faded banner should not be visible")
	}
}
