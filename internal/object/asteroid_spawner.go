package object

import (
	"math"

	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/physics"
)

// maxSpawnAttempts bounds the clearance resampling so a field smaller than
// the clearance radius cannot hang the belt generator.
const maxSpawnAttempts = 1000

// NewBelt creates the asteroids for a level: RoidsNum + level large rocks,
// each placed farther than the spawn clearance from the ship at (shipX, shipY).
func NewBelt(rng Rand, t config.Tuning, level int, shipX, shipY float64) []*Asteroid {
	count := t.RoidsNum + level
	belt := make([]*Asteroid, 0, count)
	clearance := t.SpawnClearance()

	for i := 0; i < count; i++ {
		var x, y float64
		for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
			x = math.Floor(rng.Float64() * t.FieldWidth)
			y = math.Floor(rng.Float64() * t.FieldHeight)
			if physics.Distance(shipX, shipY, x, y) >= clearance {
				break
			}
		}
		belt = append(belt, NewAsteroid(rng, t, x, y, AsteroidLarge, level))
	}
	return belt
}
