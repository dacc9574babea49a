// Package circular implements Circular Pong: a ball bounces inside a circular
// arena while the player rotates a paddle along the upper semicircle to keep
// the ball from reaching it.
//
// The arena uses a y-up coordinate system centered on the arena: angle 0 points
// right, π/2 points up. The protected semicircle is [0, π].
package circular

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circular-pong/internal/config"
	"github.com/vovakirdan/circular-pong/internal/core"
)

// Input is the player's input for one tick.
type Input struct {
	Left  bool
	Right bool
}

// Session owns the ball and paddle and is their only mutator.
// It is single-threaded: call Tick once per frame from one goroutine.
type Session struct {
	cfg    config.ArenaConfig
	rng    *rand.Rand
	logger *log.Logger

	ball   Ball
	paddle Paddle

	lives          int
	bounces        int
	elapsed        time.Duration
	lifeLost       bool
	paddleCooldown int
	gameOver       bool
	freezeLeft     time.Duration // Remaining frozen time after a lost life
	tick           uint64

	events []core.Event
}

// NewSession creates a session with a freshly served ball.
// A nil logger discards output.
func NewSession(cfg config.ArenaConfig, rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		ball:   spawnBall(cfg, rng),
		paddle: newPaddle(cfg),
		lives:  cfg.Gameplay.Lives,
	}
}

// Tick advances the simulation by dt and returns the events it produced.
// It does nothing once the game is over.
//
// Order: paddle, ball and wall, paddle collision, then the outcome check
// unless the paddle was hit. While frozen after a lost life only the
// countdown runs.
func (s *Session) Tick(in Input, dt time.Duration) []core.Event {
	if s.gameOver {
		return nil
	}
	if dt < 0 {
		dt = 0
	}

	s.events = nil
	s.tick++

	if s.lifeLost {
		s.thaw(dt)
	} else {
		scale := float64(dt) / float64(s.cfg.Gameplay.NominalTick())

		s.paddle.Advance(in.Left, in.Right, scale)
		if s.ball.Advance(s.cfg.Arena.Radius, scale) {
			s.emit(core.EventWallBounce)
		}

		if !s.resolvePaddle() {
			s.resolveOutcome()
		}
	}

	s.elapsed += dt
	return s.events
}

// Restart replaces the whole session with a fresh one built from the same
// configuration, so no field can survive from the previous game.
func (s *Session) Restart() {
	*s = *NewSession(s.cfg, s.rng, s.logger)
}

func (s *Session) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{
		Kind: kind,
		Tick: s.tick,
		Pos:  s.ball.Pos,
	})
}

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Bounces returns the number of paddle hits.
func (s *Session) Bounces() int { return s.bounces }

// Elapsed returns the time survived.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// GameOver reports whether the last life has been lost.
func (s *Session) GameOver() bool { return s.gameOver }

// Frozen reports whether the session is paused between a lost life and the next serve.
func (s *Session) Frozen() bool { return s.lifeLost && !s.gameOver }

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Config returns the session's configuration.
func (s *Session) Config() config.ArenaConfig { return s.cfg }
