package circular

import (
	"math"

	"github.com/vovakirdan/circular-pong/internal/config"
	"github.com/vovakirdan/circular-pong/internal/core"
)

// Paddle is an arc segment riding just inside the arena wall.
// Its geometry is always derived from Angle; nothing else is stored.
type Paddle struct {
	Angle        float64 // Radians, clamped to [0, π]
	Length       float64 // Arc length
	Thickness    float64
	AngularSpeed float64 // Radians per nominal tick
	ArenaRadius  float64
}

func newPaddle(cfg config.ArenaConfig) Paddle {
	return Paddle{
		Angle:        core.ClampF(cfg.Paddle.StartAngle(), 0, math.Pi),
		Length:       cfg.Paddle.Length,
		Thickness:    cfg.Paddle.Thickness,
		AngularSpeed: cfg.Paddle.AngularSpeed,
		ArenaRadius:  cfg.Arena.Radius,
	}
}

// Advance rotates the paddle. Left turns counter-clockwise, right clockwise;
// holding both applies both.
func (p *Paddle) Advance(left, right bool, scale float64) {
	step := p.AngularSpeed * scale
	if left {
		p.Angle += step
	}
	if right {
		p.Angle -= step
	}
	p.Angle = core.ClampF(p.Angle, 0, math.Pi)
}

// Radius returns the radius of the circle the paddle's center line rides on.
func (p Paddle) Radius() float64 {
	return p.ArenaRadius - p.Thickness/2
}

// HalfWidth returns half of the paddle's angular extent.
// For a circle, arc length / radius is exactly the subtended angle.
func (p Paddle) HalfWidth() float64 {
	r := p.Radius()
	if r <= 0 {
		return 0
	}
	return (p.Length / 2) / r
}

// Endpoints returns the two ends of the paddle chord used for collision.
func (p Paddle) Endpoints() (start, end core.Vec2) {
	r := p.Radius()
	hw := p.HalfWidth()
	return core.FromPolar(r, p.Angle-hw), core.FromPolar(r, p.Angle+hw)
}

// Center returns the paddle's midpoint on its arc.
func (p Paddle) Center() core.Vec2 {
	return core.FromPolar(p.Radius(), p.Angle)
}

// Normal returns the unit normal of the paddle chord.
// A zero-length paddle falls back to the radial direction at its angle.
func (p Paddle) Normal() core.Vec2 {
	start, end := p.Endpoints()
	seg := end.Sub(start)
	if seg.Len() == 0 {
		return core.FromPolar(1, p.Angle)
	}
	return seg.Perp().Normalize()
}
