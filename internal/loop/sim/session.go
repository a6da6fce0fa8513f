package sim

import "github.com/tomz197/roids/internal/object"

// addScore awards points and raises the high score when it is beaten.
// A high score notice is issued once per award that raises it.
func (s *State) addScore(points int) {
	s.Session.Score += points
	if s.Session.Score > s.Session.HighScore {
		s.Session.HighScore = s.Session.Score
		s.notify(Notice{Type: NoticeHighScore, Value: s.Session.HighScore})
	}
}

// loseLife deducts one life, ending the game when none are left.
func (s *State) loseLife() {
	if s.Session.Lives > 0 {
		s.Session.Lives--
	}
	s.notify(Notice{Type: NoticeLifeLost, Value: s.Session.Lives})
	if s.Session.Lives == 0 && !s.Ship.Dead {
		s.gameOver()
	}
}

// gameOver stops the ship for good and starts the restart countdown.
func (s *State) gameOver() {
	s.Ship.Dead = true
	s.Ship.ExplodeTime = 0
	s.Ship.Thrusting = false
	s.Ship.CanShoot = false
	s.Ship.Lasers = nil
	s.Controls = Controls{}
	s.Session.Banner.Show("GAME OVER")
	s.Session.Restart = s.Tuning.Ticks(s.Tuning.RestartSeconds)
	s.notify(Notice{Type: NoticeGameOver, Value: s.Session.Score})
}

// stepSession fades the banner and, once the game over banner has faded
// and the restart delay has passed, starts a new game.
func (s *State) stepSession() {
	faded := s.Session.Banner.Fade(s.Tuning.FadeStep())
	if !s.Ship.Dead || !faded {
		return
	}
	if s.Session.Restart > 0 {
		s.Session.Restart--
		return
	}
	s.newGame()
}

// newGame resets the session, keeping the high score.
func (s *State) newGame() {
	high := s.Session.HighScore
	s.Session = Session{
		HighScore: high,
		Lives:     s.Tuning.Lives,
	}
	s.Controls = Controls{}
	s.Ship = object.NewShip(s.Tuning)
	s.Explosions = nil
	s.newBelt()
	s.notify(Notice{Type: NoticeNewGame})
}
