package object

import (
	"math"
	"testing"

	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/physics"
)

func TestAsteroidSplitTiers(t *testing.T) {
	tun := config.Default()
	rng := newTestRand()

	tests := []struct {
		size      AsteroidSize
		wantCount int
		wantSize  AsteroidSize
	}{
		{AsteroidLarge, 2, AsteroidMedium},
		{AsteroidMedium, 2, AsteroidSmall},
		{AsteroidSmall, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			a := NewAsteroid(rng, tun, 100, 100, tt.size, 0)
			fragments := a.Split(rng, tun, 0)
			if len(fragments) != tt.wantCount {
				t.Fatalf("Split() = %d fragments, want %d", len(fragments), tt.wantCount)
			}
			for _, f := range fragments {
				if f.Size != tt.wantSize {
					t.Errorf("fragment size = %v, want %v", f.Size, tt.wantSize)
				}
				if f.Radius >= a.Radius {
					t.Errorf("fragment radius %f not smaller than parent %f", f.Radius, a.Radius)
				}
				if f.X != a.X || f.Y != a.Y {
					t.Errorf("fragment at (%f,%f), want parent position", f.X, f.Y)
				}
			}
		})
	}
}

func TestAsteroidRadiusHalvesPerTier(t *testing.T) {
	tun := config.Default()
	large := AsteroidLarge.Radius(tun)
	if AsteroidMedium.Radius(tun) != large/2 || AsteroidSmall.Radius(tun) != large/4 {
		t.Errorf("radii = %f/%f/%f", large, AsteroidMedium.Radius(tun), AsteroidSmall.Radius(tun))
	}
}

func TestAsteroidScoreFavoursSmallRocks(t *testing.T) {
	tun := config.Default()
	if !(AsteroidSmall.Score(tun) > AsteroidMedium.Score(tun) && AsteroidMedium.Score(tun) > AsteroidLarge.Score(tun)) {
		t.Error("smaller asteroids should be worth more")
	}
}

func TestAsteroidShapeWithinJaggedness(t *testing.T) {
	tun := config.Default()
	rng := newTestRand()

	for i := 0; i < 50; i++ {
		a := NewAsteroid(rng, tun, 0, 0, AsteroidLarge, 0)
		if len(a.Offsets) != a.Vert {
			t.Fatalf("offsets = %d, vert = %d", len(a.Offsets), a.Vert)
		}
		if a.Vert < tun.RoidsVert/2 || a.Vert > tun.RoidsVert+tun.RoidsVert/2 {
			t.Errorf("vert = %d outside average range", a.Vert)
		}
		for _, off := range a.Offsets {
			if off < 1-tun.RoidsJag || off > 1+tun.RoidsJag {
				t.Errorf("offset %f outside jaggedness", off)
			}
		}
	}
}

func TestAsteroidSpeedCappedByLevel(t *testing.T) {
	tun := config.Default()
	rng := newTestRand()

	const level = 4
	limit := tun.RoidsSpeed * tun.LevelMultiplier(level) / float64(tun.TicksPerSecond)
	for i := 0; i < 100; i++ {
		a := NewAsteroid(rng, tun, 0, 0, AsteroidLarge, level)
		if math.Abs(a.VX) > limit || math.Abs(a.VY) > limit {
			t.Fatalf("velocity (%f,%f) exceeds per-axis limit %f", a.VX, a.VY, limit)
		}
	}
}

func TestAsteroidDriftAndWrap(t *testing.T) {
	field := testField()
	a := &Asteroid{X: 10, Y: 10, VX: 1, VY: -2, Radius: 25}
	a.Drift(field)
	if a.X != 11 || a.Y != 8 {
		t.Fatalf("drifted to (%f,%f), want (11,8)", a.X, a.Y)
	}

	a = &Asteroid{X: -25, Y: 100, VX: -1, Radius: 25}
	a.Drift(field)
	if a.X != field.Width+25 {
		t.Errorf("asteroid leaving left edge wrapped to %f, want %f", a.X, field.Width+25)
	}
}

func TestNewBeltKeepsClearOfShip(t *testing.T) {
	tun := config.Default()
	rng := newTestRand()
	cx, cy := testField().Center()

	for level := 0; level < 4; level++ {
		belt := NewBelt(rng, tun, level, cx, cy)
		if len(belt) != tun.RoidsNum+level {
			t.Fatalf("level %d belt = %d asteroids, want %d", level, len(belt), tun.RoidsNum+level)
		}
		for _, a := range belt {
			if a.Size != AsteroidLarge {
				t.Errorf("belt asteroid size = %v, want large", a.Size)
			}
			if d := physics.Distance(cx, cy, a.X, a.Y); d < tun.SpawnClearance() {
				t.Errorf("asteroid %f from ship, want >= %f", d, tun.SpawnClearance())
			}
		}
	}
}
