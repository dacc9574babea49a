package circular

import (
	"math"
	"time"

	"github.com/vovakirdan/circular-pong/internal/core"
)

// resolvePaddle runs the paddle collision check for this tick.
// Returns true when the ball was hit, which suppresses the outcome check.
//
// While the cooldown is positive the check is skipped and the cooldown
// decrements, so a ball grazing the paddle for several ticks counts once.
func (s *Session) resolvePaddle() bool {
	if s.paddleCooldown > 0 {
		s.paddleCooldown--
		return false
	}

	start, end := s.paddle.Endpoints()
	dist := core.PointToSegmentDistance(s.ball.Pos, start, end)
	if dist > s.ball.Radius+s.paddle.Thickness/2 {
		return false
	}

	normal := s.paddle.Normal()
	vel := core.Reflect(s.ball.Vel, normal)

	// Jitter keeps rallies from locking into a repeating pattern
	j := s.cfg.Ball.Jitter
	vel.X += uniform(s.rng, -j, j)
	vel.Y += uniform(s.rng, -j, j)

	if vel.Len() == 0 {
		// Send it back toward the center
		vel = s.paddle.Center().Scale(-1)
	}
	s.ball.Vel = vel.Normalize().Scale(s.cfg.Ball.Speed)

	s.bounces++
	s.paddleCooldown = s.cfg.Gameplay.CooldownTicks
	s.emit(core.EventPaddleHit)
	return true
}

// resolveOutcome decides whether the ball has reached the protected
// semicircle. Only runs on ticks without a paddle hit.
func (s *Session) resolveOutcome() {
	if s.lifeLost {
		return
	}

	dist := s.ball.Pos.Len()
	threshold := s.cfg.Arena.Radius - s.ball.Radius - s.cfg.Gameplay.DangerMargin
	if dist < threshold {
		return
	}

	angle := s.ball.Pos.Angle()
	if angle > math.Pi {
		return
	}

	s.lives--
	s.lifeLost = true
	s.emit(core.EventLifeLost)
	s.logger.Debug("life lost",
		"angle", math.Round(angle*180/math.Pi*10)/10,
		"lives", s.lives,
		"tick", s.tick,
	)

	if s.lives <= 0 {
		s.gameOver = true
		s.emit(core.EventGameOver)
		s.logger.Info("game over",
			"time", s.elapsed.Truncate(time.Second),
			"bounces", s.bounces,
		)
		return
	}

	s.freezeLeft = s.cfg.Gameplay.RespawnDelay
}

// thaw counts down the frozen state after a lost life and serves a new ball
// when it runs out.
func (s *Session) thaw(dt time.Duration) {
	s.freezeLeft -= dt
	if s.freezeLeft > 0 {
		return
	}

	s.freezeLeft = 0
	s.ball = respawnBall(s.cfg, s.rng)
	s.lifeLost = false
	s.emit(core.EventRespawn)
}
