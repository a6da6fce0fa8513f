package object

import (
	"math"
	"testing"

	"github.com/tomz197/roids/internal/loop/config"
)

func TestNewShipStartsInvulnerableAtCentre(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)

	if s.X != tun.FieldWidth/2 || s.Y != tun.FieldHeight/2 {
		t.Errorf("ship at (%f,%f), want field centre", s.X, s.Y)
	}
	if s.State() != ShipFlying {
		t.Errorf("new ship state = %v, want flying", s.State())
	}
	if s.BlinkNum != tun.BlinkCount() || !s.Invulnerable() {
		t.Errorf("BlinkNum = %d, want %d", s.BlinkNum, tun.BlinkCount())
	}
	if !s.CanShoot {
		t.Error("new ship should be armed")
	}
}

func TestShipStates(t *testing.T) {
	tests := []struct {
		name string
		ship Ship
		want ShipState
	}{
		{"flying", Ship{}, ShipFlying},
		{"exploding", Ship{ExplodeTime: 5}, ShipExploding},
		{"dead", Ship{Dead: true}, ShipDead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ship.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShipBlinkCountsDownWindow(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)

	total := tun.BlinkCount() * tun.BlinkTicks()
	for i := 0; i < total-1; i++ {
		s.Blink(tun)
		if !s.Invulnerable() {
			t.Fatalf("ship lost invulnerability early at tick %d", i)
		}
	}
	s.Blink(tun)
	if s.Invulnerable() {
		t.Errorf("ship still invulnerable after %d ticks", total)
	}
}

func TestShipVisibilityFollowsBlinkParity(t *testing.T) {
	s := &Ship{BlinkNum: 4}
	if !s.Visible() {
		t.Error("even blink number should be visible")
	}
	s.BlinkNum = 3
	if s.Visible() {
		t.Error("odd blink number should be hidden")
	}
}

func TestShipThrustSignConvention(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)
	s.Angle = 0 // facing +x
	s.Thrusting = true

	startX := s.X
	s.Accelerate(tun)
	s.Move()

	wantThrust := -tun.ShipThrust / float64(tun.TicksPerSecond)
	if math.Abs(s.ThrustX-wantThrust) > 1e-12 {
		t.Errorf("ThrustX = %f, want %f", s.ThrustX, wantThrust)
	}
	if s.X <= startX {
		t.Errorf("ship facing +x should move right: %f -> %f", startX, s.X)
	}
}

func TestShipFrictionIsDiscrete(t *testing.T) {
	tun := config.Default()
	s := &Ship{ThrustX: 1, ThrustY: -2}
	s.Accelerate(tun)

	k := 1 - tun.Friction/float64(tun.TicksPerSecond)
	if math.Abs(s.ThrustX-k) > 1e-12 || math.Abs(s.ThrustY-(-2*k)) > 1e-12 {
		t.Errorf("thrust after friction = (%f,%f), want (%f,%f)", s.ThrustX, s.ThrustY, k, -2*k)
	}
}

func TestShipFireOneShotPerPress(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)

	if !s.Fire(tun) {
		t.Fatal("armed ship should fire")
	}
	if s.Fire(tun) {
		t.Error("ship fired twice without release")
	}
	if len(s.Lasers) != 1 {
		t.Fatalf("lasers = %d, want 1", len(s.Lasers))
	}

	nx, ny := s.Nose(tun)
	if math.Abs(s.Lasers[0].X-nx) > 1e-9 || math.Abs(s.Lasers[0].Y-ny) > 1e-9 {
		t.Errorf("laser spawned at (%f,%f), want nose (%f,%f)", s.Lasers[0].X, s.Lasers[0].Y, nx, ny)
	}
}

func TestShipFireRespectsCap(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)

	for i := 0; i < tun.LaserMax+5; i++ {
		s.CanShoot = true
		s.Fire(tun)
	}
	if len(s.Lasers) != tun.LaserMax {
		t.Errorf("lasers = %d, want cap %d", len(s.Lasers), tun.LaserMax)
	}
	if s.CanShoot {
		t.Error("rejected fire request should still disarm the ship")
	}
}

func TestExplodingShipCannotFire(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)
	s.Explode(tun)
	s.CanShoot = true

	if s.Fire(tun) {
		t.Error("exploding ship fired")
	}
}

func TestShipDriftCountsDown(t *testing.T) {
	tun := config.Default()
	s := NewShip(tun)
	s.Explode(tun)

	for i := 0; i < tun.ExplodeTicks()-1; i++ {
		if s.Drift(tun) {
			t.Fatalf("explosion ended early at tick %d", i)
		}
	}
	if !s.Drift(tun) {
		t.Error("explosion should end after ExplodeTicks")
	}
	if s.ExplodeTime != 0 {
		t.Errorf("ExplodeTime = %d, want 0", s.ExplodeTime)
	}
}
