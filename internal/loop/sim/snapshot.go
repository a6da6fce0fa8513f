package sim

// Snapshot is an immutable copy of everything a renderer draws for one
// tick. It is safe to share between goroutines and is encoded with
// msgpack on the spectator stream.
type Snapshot struct {
	Tick      uint64         `msgpack:"tick"`
	Width     float64        `msgpack:"w"`
	Height    float64        `msgpack:"h"`
	Ship      ShipView       `msgpack:"ship"`
	Asteroids []AsteroidView `msgpack:"roids"`
	Lasers    []LaserView    `msgpack:"lasers"`
	Particles []ParticleView `msgpack:"dots"`
	HUD       HUD            `msgpack:"hud"`
}

// ShipView is the ship transform and its visual flags.
type ShipView struct {
	X               float64 `msgpack:"x"`
	Y               float64 `msgpack:"y"`
	Angle           float64 `msgpack:"a"`
	Size            float64 `msgpack:"size"`
	Indent          float64 `msgpack:"indent"`
	Visible         bool    `msgpack:"visible"` // blink parity
	Thrusting       bool    `msgpack:"thrust"`
	Exploding       bool    `msgpack:"exploding"`
	ExplosionRadius float64 `msgpack:"boom"`
	Dead            bool    `msgpack:"dead"`
}

// AsteroidView is one asteroid outline. Offsets is shared with the
// simulation, which never modifies it after creation.
type AsteroidView struct {
	X       float64   `msgpack:"x"`
	Y       float64   `msgpack:"y"`
	Radius  float64   `msgpack:"r"`
	Angle   float64   `msgpack:"a"`
	Offsets []float64 `msgpack:"offs"`
}

// LaserView is one projectile.
type LaserView struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Angle float64 `msgpack:"a"`
}

// ParticleView is one live explosion particle.
type ParticleView struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
}

// HUD is the session data drawn over the field.
type HUD struct {
	Score       int     `msgpack:"score"`
	HighScore   int     `msgpack:"best"`
	Lives       int     `msgpack:"lives"`
	Level       int     `msgpack:"level"`
	Banner      string  `msgpack:"text"`
	BannerAlpha float64 `msgpack:"alpha"`
}

// Snapshot copies the drawable state.
func (s *State) Snapshot() *Snapshot {
	t := s.Tuning
	ship := s.Ship

	snap := &Snapshot{
		Tick:   s.Tick,
		Width:  s.Field.Width,
		Height: s.Field.Height,
		Ship: ShipView{
			X:               ship.X,
			Y:               ship.Y,
			Angle:           ship.Angle,
			Size:            t.ShipSize,
			Indent:          t.ShipIndent,
			Visible:         ship.Visible(),
			Thrusting:       ship.Thrusting,
			Exploding:       ship.ExplodeTime > 0,
			ExplosionRadius: ship.ExplosionRadius(t),
			Dead:            ship.Dead,
		},
		Asteroids: make([]AsteroidView, len(s.Asteroids)),
		Lasers:    make([]LaserView, len(ship.Lasers)),
		HUD: HUD{
			Score:       s.Session.Score,
			HighScore:   s.Session.HighScore,
			Lives:       s.Session.Lives,
			Level:       s.Session.Level,
			Banner:      s.Session.Banner.Value,
			BannerAlpha: s.Session.Banner.Alpha,
		},
	}

	for i, a := range s.Asteroids {
		snap.Asteroids[i] = AsteroidView{X: a.X, Y: a.Y, Radius: a.Radius, Angle: a.Angle, Offsets: a.Offsets}
	}
	for i, p := range ship.Lasers {
		snap.Lasers[i] = LaserView{X: p.X, Y: p.Y, Angle: p.Angle}
	}
	for _, g := range s.Explosions {
		for i := range g.Particles {
			p := &g.Particles[i]
			if p.Alive() {
				snap.Particles = append(snap.Particles, ParticleView{X: p.X, Y: p.Y, Radius: p.Radius})
			}
		}
	}
	return snap
}
