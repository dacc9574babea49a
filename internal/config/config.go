// Package config provides YAML-based configuration loading and validation
// for the circular arena.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ArenaConfig contains all parameters of a Circular Pong session.
// It is passed by value, so a running session never observes later edits.
type ArenaConfig struct {
	Arena    ArenaGeometry  `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ArenaGeometry defines the bounding circle.
type ArenaGeometry struct {
	Radius float64 `yaml:"radius"`
}

// BallConfig defines ball size, speed and serve parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Units per nominal tick
	SpawnOffset float64 `yaml:"spawn_offset"` // Serve position above the arena center
	Jitter      float64 `yaml:"jitter"`       // Per-axis noise added on paddle hits
}

// PaddleConfig defines the paddle arc and its rotation speed.
type PaddleConfig struct {
	Length        float64 `yaml:"length"`
	Thickness     float64 `yaml:"thickness"`
	AngularSpeed  float64 `yaml:"angular_speed"`   // Radians per nominal tick
	StartAngleDeg float64 `yaml:"start_angle_deg"` // 0..180
}

// GameplayConfig defines lives and the life-loss rules.
type GameplayConfig struct {
	Lives         int           `yaml:"lives"`
	CooldownTicks int           `yaml:"cooldown_ticks"`
	DangerMargin  float64       `yaml:"danger_margin"`
	RespawnDelay  time.Duration `yaml:"respawn_delay"`
	TickRate      int           `yaml:"tick_rate"` // Nominal ticks per second for dt normalization
}

// StartAngle returns the initial paddle angle in radians.
func (p PaddleConfig) StartAngle() float64 {
	return p.StartAngleDeg * math.Pi / 180
}

// NominalTick returns the duration of one nominal tick.
func (g GameplayConfig) NominalTick() time.Duration {
	if g.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(g.TickRate)
}

// Validate checks that the configuration describes a playable arena.
func (c ArenaConfig) Validate() error {
	switch {
	case c.Arena.Radius <= 0:
		return invalid("arena.radius must be positive, got %g", c.Arena.Radius)
	case c.Ball.Radius <= 0:
		return invalid("ball.radius must be positive, got %g", c.Ball.Radius)
	case c.Ball.Radius >= c.Arena.Radius:
		return invalid("ball.radius %g does not fit in arena.radius %g", c.Ball.Radius, c.Arena.Radius)
	case c.Ball.Speed <= 0:
		return invalid("ball.speed must be positive, got %g", c.Ball.Speed)
	case c.Ball.Jitter < 0:
		return invalid("ball.jitter must not be negative, got %g", c.Ball.Jitter)
	case math.Abs(c.Ball.SpawnOffset)+c.Ball.Radius >= c.Arena.Radius:
		return invalid("ball.spawn_offset %g puts the ball outside the arena", c.Ball.SpawnOffset)
	case c.Paddle.Length < 0:
		return invalid("paddle.length must not be negative, got %g", c.Paddle.Length)
	case c.Paddle.Thickness < 0 || c.Paddle.Thickness/2 >= c.Arena.Radius:
		return invalid("paddle.thickness %g out of range", c.Paddle.Thickness)
	case c.Paddle.AngularSpeed < 0:
		return invalid("paddle.angular_speed must not be negative, got %g", c.Paddle.AngularSpeed)
	case c.Paddle.StartAngleDeg < 0 || c.Paddle.StartAngleDeg > 180:
		return invalid("paddle.start_angle_deg must be within [0, 180], got %g", c.Paddle.StartAngleDeg)
	case c.Gameplay.Lives < 1:
		return invalid("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	case c.Gameplay.CooldownTicks < 0:
		return invalid("gameplay.cooldown_ticks must not be negative, got %d", c.Gameplay.CooldownTicks)
	case c.Gameplay.DangerMargin < 0:
		return invalid("gameplay.danger_margin must not be negative, got %g", c.Gameplay.DangerMargin)
	case c.Gameplay.RespawnDelay < 0:
		return invalid("gameplay.respawn_delay must not be negative, got %s", c.Gameplay.RespawnDelay)
	case c.Gameplay.TickRate <= 0:
		return invalid("gameplay.tick_rate must be positive, got %d", c.Gameplay.TickRate)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}
