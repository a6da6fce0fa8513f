package client

import (
	"math"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/loop/sim"
	"github.com/tomz197/roids/internal/physics"
)

// Laser bolt size in field units.
const (
	laserWidth  = 2
	laserLength = 6
)

// Explosion rings as fractions of the ship size, outermost first.
var explosionRings = [...]float64{1.7, 1.4, 0.8, 0.2}

// shipOutline writes the four ship vertices into pts: nose, rear left,
// indented centre, rear right.
func shipOutline(pts []draw.Point, x, y, angle, size, indent float64) {
	local := [4]draw.Point{
		{X: size, Y: 0},
		{X: -size, Y: -indent * size},
		{X: -indent * size, Y: 0},
		{X: -size, Y: indent * size},
	}
	for i, p := range local {
		pts[i].X, pts[i].Y = physics.Rotate(p.X, p.Y, angle, x, y)
	}
}

// flameOutline writes the three thruster flame vertices into pts.
func flameOutline(pts []draw.Point, x, y, angle, size, indent float64) {
	back := (-size - indent*size) / 2
	local := [3]draw.Point{
		{X: back, Y: indent * size / 2},
		{X: -size * 1.5, Y: 0},
		{X: back, Y: -indent * size / 2},
	}
	for i, p := range local {
		pts[i].X, pts[i].Y = physics.Rotate(p.X, p.Y, angle, x, y)
	}
}

// asteroidOutline writes one vertex per offset into pts, evenly spaced
// around the centre and scaled by the offset.
func asteroidOutline(pts []draw.Point, a sim.AsteroidView) {
	n := len(a.Offsets)
	for i, off := range a.Offsets {
		angle := a.Angle + float64(i)*2*math.Pi/float64(n)
		pts[i] = draw.Point{
			X: a.X + a.Radius*off*math.Cos(angle),
			Y: a.Y + a.Radius*off*math.Sin(angle),
		}
	}
}

// laserOutline writes the bolt rectangle, starting at the bolt position
// and extending along its heading.
func laserOutline(pts []draw.Point, l sim.LaserView) {
	local := [4]draw.Point{
		{X: 0, Y: laserWidth / 2},
		{X: laserLength, Y: laserWidth / 2},
		{X: laserLength, Y: -laserWidth / 2},
		{X: 0, Y: -laserWidth / 2},
	}
	for i, p := range local {
		pts[i].X, pts[i].Y = physics.Rotate(p.X, p.Y, l.Angle, l.X, l.Y)
	}
}

// drawShip draws the ship, its flame or its explosion rings.
func drawShip(c *draw.Canvas, s sim.ShipView) {
	switch {
	case s.Dead:
		return
	case s.Exploding:
		for _, k := range explosionRings {
			c.DrawCircle(s.X, s.Y, s.ExplosionRadius*k/explosionRings[0])
		}
		return
	case !s.Visible:
		return
	}

	pts := c.BorrowPoints(4)
	shipOutline(pts, s.X, s.Y, s.Angle, s.Size, s.Indent)
	c.DrawPolygon(pts, false)

	if s.Thrusting {
		pts = c.BorrowPoints(3)
		flameOutline(pts, s.X, s.Y, s.Angle, s.Size, s.Indent)
		c.DrawPolygon(pts, true)
	}
}

// drawLives draws one small upward ship per remaining life in the top
// left corner of the field.
func drawLives(c *draw.Canvas, lives int, size, indent float64) {
	for i := 0; i < lives; i++ {
		pts := c.BorrowPoints(4)
		shipOutline(pts, size*(1+1.2*float64(i)), size, -math.Pi/2, size*0.6, indent)
		c.DrawPolygon(pts, false)
	}
}

// drawWorld draws every entity of a snapshot on the canvas.
func drawWorld(c *draw.Canvas, snap *sim.Snapshot) {
	for _, a := range snap.Asteroids {
		if len(a.Offsets) < 3 {
			c.DrawCircle(a.X, a.Y, a.Radius)
			continue
		}
		pts := c.BorrowPoints(len(a.Offsets))
		asteroidOutline(pts, a)
		c.DrawPolygon(pts, false)
	}

	for _, l := range snap.Lasers {
		pts := c.BorrowPoints(4)
		laserOutline(pts, l)
		c.DrawPolygon(pts, true)
	}

	for _, p := range snap.Particles {
		c.FillCircle(p.X, p.Y, p.Radius)
	}

	drawShip(c, snap.Ship)
}
