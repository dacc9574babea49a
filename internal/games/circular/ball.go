package circular

import (
	"math/rand"

	"github.com/vovakirdan/circular-pong/internal/config"
	"github.com/vovakirdan/circular-pong/internal/core"
)

// Ball is the moving ball. Positions are relative to the arena center.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2 // Units per nominal tick
	Radius float64
}

// Advance moves the ball by its velocity times scale (dt / nominal tick) and
// resolves the circular boundary. Returns true if the ball bounced off the wall.
//
// On contact the velocity is reflected about the radial normal and the ball is
// clamped back onto the boundary.
func (b *Ball) Advance(arenaRadius, scale float64) bool {
	b.Pos = b.Pos.Add(b.Vel.Scale(scale))

	dist := b.Pos.Len()
	if dist+b.Radius < arenaRadius {
		return false
	}

	// dist > 0 here since Radius < arenaRadius
	normal := b.Pos.Scale(1 / dist)
	b.Vel = core.Reflect(b.Vel, normal)
	b.Pos = normal.Scale(arenaRadius - b.Radius)
	return true
}

// Speed returns the current speed in units per nominal tick.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// spawnBall creates the opening serve: each axis independently gets a random
// sign and a magnitude in [0.7, 1.0] of the configured speed. The resulting
// speed is not exactly ball.speed, which makes the first serve slightly gentler.
func spawnBall(cfg config.ArenaConfig, rng *rand.Rand) Ball {
	speed := cfg.Ball.Speed
	return Ball{
		Pos: core.V(0, cfg.Ball.SpawnOffset),
		Vel: core.V(
			randSign(rng)*speed*uniform(rng, 0.7, 1.0),
			randSign(rng)*speed*uniform(rng, 0.7, 1.0),
		),
		Radius: cfg.Ball.Radius,
	}
}

// respawnBall creates the serve after a lost life. The ball always heads
// upward, into the protected semicircle, with a random sideways drift.
func respawnBall(cfg config.ArenaConfig, rng *rand.Rand) Ball {
	speed := cfg.Ball.Speed
	return Ball{
		Pos: core.V(0, cfg.Ball.SpawnOffset),
		Vel: core.V(
			randSign(rng)*speed*uniform(rng, 0.5, 0.8),
			speed*uniform(rng, 0.6, 1.0),
		),
		Radius: cfg.Ball.Radius,
	}
}

func randSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
