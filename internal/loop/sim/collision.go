package sim

import (
	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

// shipHits reports whether the ship's bounding circle overlaps the asteroid.
// An invulnerable ship never collides.
func shipHits(ship *object.Ship, shipRadius float64, a *object.Asteroid) bool {
	if ship.Invulnerable() {
		return false
	}
	return physics.CirclesOverlap(ship.X, ship.Y, shipRadius, a.X, a.Y, a.Radius)
}

// laserHits reports whether a projectile is inside the asteroid. The
// projectile is treated as a point.
func laserHits(p *object.Projectile, a *object.Asteroid) bool {
	return physics.PointInCircle(p.X, p.Y, a.X, a.Y, a.Radius)
}
