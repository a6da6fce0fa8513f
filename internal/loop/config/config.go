// Package config centralizes all tunable game parameters.
//
// Durations are expressed in seconds and speeds in playfield units per
// second; the simulation converts them to per-tick quantities by dividing
// by TicksPerSecond. Running at a different tick rate changes behaviour.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tomz197/roids/internal/physics"
)

// Tuning holds every gameplay constant of the simulation.
type Tuning struct {
	TicksPerSecond int     `toml:"ticks_per_second" yaml:"ticks_per_second"`
	FieldWidth     float64 `toml:"field_width" yaml:"field_width"`
	FieldHeight    float64 `toml:"field_height" yaml:"field_height"`

	// Ship
	ShipSize           float64 `toml:"ship_size" yaml:"ship_size"`                       // centre to nose, also the bounding radius
	ShipIndent         float64 `toml:"ship_indent" yaml:"ship_indent"`                   // lower = thinner ship
	ShipThrust         float64 `toml:"ship_thrust" yaml:"ship_thrust"`                   // per second per second
	Friction           float64 `toml:"friction" yaml:"friction"`                         // 0 = none, 1 = lots
	TurnSpeed          float64 `toml:"turn_speed" yaml:"turn_speed"`                     // degrees per second
	ShipExplodeSeconds float64 `toml:"ship_explode_seconds" yaml:"ship_explode_seconds"` // explosion and life-loss delay
	ShipInvSeconds     float64 `toml:"ship_inv_seconds" yaml:"ship_inv_seconds"`         // invulnerability after spawn
	ShipBlinkSeconds   float64 `toml:"ship_blink_seconds" yaml:"ship_blink_seconds"`     // one blink half-cycle
	ShipExplodeDots    int     `toml:"ship_explode_dots" yaml:"ship_explode_dots"`
	ShipDotsSpeed      float64 `toml:"ship_dots_speed" yaml:"ship_dots_speed"`
	ShipDotRadius      float64 `toml:"ship_dot_radius" yaml:"ship_dot_radius"`

	// Asteroids
	RoidsNum   int     `toml:"roids_num" yaml:"roids_num"`     // belt size on level 0
	RoidsSize  float64 `toml:"roids_size" yaml:"roids_size"`   // diameter of a large asteroid
	RoidsSpeed float64 `toml:"roids_speed" yaml:"roids_speed"` // max per-axis speed on level 0
	RoidsVert  int     `toml:"roids_vert" yaml:"roids_vert"`   // average vertex count
	RoidsJag   float64 `toml:"roids_jag" yaml:"roids_jag"`     // 0 = round
	LevelSpeed float64 `toml:"level_speed" yaml:"level_speed"` // speed multiplier added per level

	// Lasers
	LaserMax            int     `toml:"laser_max" yaml:"laser_max"`
	LaserSpeed          float64 `toml:"laser_speed" yaml:"laser_speed"`
	LaserDist           float64 `toml:"laser_dist" yaml:"laser_dist"` // fraction of field width
	LaserExplodeSeconds float64 `toml:"laser_explode_seconds" yaml:"laser_explode_seconds"`
	LaserExplodeDots    int     `toml:"laser_explode_dots" yaml:"laser_explode_dots"`
	LaserDotsSpeed      float64 `toml:"laser_dots_speed" yaml:"laser_dots_speed"`
	LaserDotRadius      float64 `toml:"laser_dot_radius" yaml:"laser_dot_radius"`

	// Session
	Lives           int     `toml:"lives" yaml:"lives"`
	ScoreLarge      int     `toml:"score_large" yaml:"score_large"`
	ScoreMedium     int     `toml:"score_medium" yaml:"score_medium"`
	ScoreSmall      int     `toml:"score_small" yaml:"score_small"`
	TextFadeSeconds float64 `toml:"text_fade_seconds" yaml:"text_fade_seconds"`
	RestartSeconds  float64 `toml:"restart_seconds" yaml:"restart_seconds"` // pause after GAME OVER has faded
}

// Default returns the tuning of the classic game.
func Default() Tuning {
	return Tuning{
		TicksPerSecond: 60,
		FieldWidth:     760,
		FieldHeight:    570,

		ShipSize:           18,
		ShipIndent:         0.65,
		ShipThrust:         5,
		Friction:           0.7,
		TurnSpeed:          360,
		ShipExplodeSeconds: 0.5,
		ShipInvSeconds:     3,
		ShipBlinkSeconds:   0.1,
		ShipExplodeDots:    24,
		ShipDotsSpeed:      150,
		ShipDotRadius:      2,

		RoidsNum:   5,
		RoidsSize:  100,
		RoidsSpeed: 50,
		RoidsVert:  10,
		RoidsJag:   0.4,
		LevelSpeed: 0.1,

		LaserMax:            10,
		LaserSpeed:          500,
		LaserDist:           0.3,
		LaserExplodeSeconds: 0.1,
		LaserExplodeDots:    15,
		LaserDotsSpeed:      400,
		LaserDotRadius:      3,

		Lives:           3,
		ScoreLarge:      20,
		ScoreMedium:     50,
		ScoreSmall:      100,
		TextFadeSeconds: 2.5,
		RestartSeconds:  1,
	}
}

// Validate reports tuning values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticks_per_second must be positive, got %d", t.TicksPerSecond))
	}
	if t.FieldWidth <= 0 || t.FieldHeight <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %gx%g", t.FieldWidth, t.FieldHeight))
	}
	if t.RoidsNum < 1 {
		errs = append(errs, fmt.Errorf("roids_num must be at least 1, got %d", t.RoidsNum))
	}
	if t.RoidsVert < 1 {
		errs = append(errs, fmt.Errorf("roids_vert must be at least 1, got %d", t.RoidsVert))
	}
	if t.LaserMax < 0 {
		errs = append(errs, fmt.Errorf("laser_max must not be negative, got %d", t.LaserMax))
	}
	if t.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", t.Lives))
	}
	if t.ShipExplodeSeconds <= 0 || t.ShipBlinkSeconds <= 0 || t.LaserExplodeSeconds <= 0 {
		errs = append(errs, errors.New("explode and blink durations must be positive"))
	}
	if t.TextFadeSeconds <= 0 {
		errs = append(errs, fmt.Errorf("text_fade_seconds must be positive, got %g", t.TextFadeSeconds))
	}
	return errors.Join(errs...)
}

// Ticks converts seconds to a whole number of ticks, rounding up.
func (t Tuning) Ticks(seconds float64) int {
	return int(math.Ceil(seconds * float64(t.TicksPerSecond)))
}

// PerTick divides a per-second quantity by the tick rate.
func (t Tuning) PerTick(v float64) float64 {
	return v / float64(t.TicksPerSecond)
}

// TickDuration is the wall-clock interval between ticks.
func (t Tuning) TickDuration() time.Duration {
	return time.Second / time.Duration(t.TicksPerSecond)
}

// TurnRate is the heading change in radians per tick while a turn key is held.
func (t Tuning) TurnRate() float64 {
	return t.PerTick(physics.DegToRad(t.TurnSpeed))
}

// ExplodeTicks is how long a ship explosion lasts.
func (t Tuning) ExplodeTicks() int { return t.Ticks(t.ShipExplodeSeconds) }

// BlinkTicks is the length of one blink half-cycle.
func (t Tuning) BlinkTicks() int { return t.Ticks(t.ShipBlinkSeconds) }

// BlinkCount is the number of blink half-cycles in the invulnerability window.
func (t Tuning) BlinkCount() int {
	return int(math.Ceil(t.ShipInvSeconds / t.ShipBlinkSeconds))
}

// LaserRange is the distance after which a projectile is culled.
func (t Tuning) LaserRange() float64 { return t.LaserDist * t.FieldWidth }

// SpawnClearance is the minimum distance between the ship and a new belt asteroid.
func (t Tuning) SpawnClearance() float64 { return t.RoidsSize*2 + t.ShipSize }

// LevelMultiplier scales asteroid speed for the given level.
func (t Tuning) LevelMultiplier(level int) float64 {
	return 1 + t.LevelSpeed*float64(level)
}

// FadeStep is the banner alpha removed per tick.
func (t Tuning) FadeStep() float64 {
	return 1 / (t.TextFadeSeconds * float64(t.TicksPerSecond))
}

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Terminal render clamp - larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
