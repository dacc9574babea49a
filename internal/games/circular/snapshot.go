package circular

import (
	"math"
	"time"

	"github.com/vovakirdan/circular-pong/internal/core"
)

// Snapshot is the render state of a session: everything the platform needs to
// draw the arena, the entities and the HUD. It holds no references into the session.
type Snapshot struct {
	Tick            uint64
	ArenaRadius     float64
	BallPos         core.Vec2
	BallVel         core.Vec2
	PaddleStart     core.Vec2
	PaddleEnd       core.Vec2
	PaddleAngle     float64
	Lives           int
	Bounces         int
	Elapsed         time.Duration
	Frozen          bool
	FreezeRemaining time.Duration
	GameOver        bool
}

// Snapshot captures the current render state.
func (s *Session) Snapshot() Snapshot {
	start, end := s.paddle.Endpoints()
	return Snapshot{
		Tick:            s.tick,
		ArenaRadius:     s.cfg.Arena.Radius,
		BallPos:         s.ball.Pos,
		BallVel:         s.ball.Vel,
		PaddleStart:     start,
		PaddleEnd:       end,
		PaddleAngle:     s.paddle.Angle,
		Lives:           s.lives,
		Bounces:         s.bounces,
		Elapsed:         s.elapsed,
		Frozen:          s.Frozen(),
		FreezeRemaining: s.freezeLeft,
		GameOver:        s.gameOver,
	}
}

// Seconds returns the whole seconds survived, which is the score.
func (snap Snapshot) Seconds() int {
	return int(snap.Elapsed / time.Second)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.BallPos.X, snap.BallPos.Y,
		snap.BallVel.X, snap.BallVel.Y,
		snap.PaddleAngle,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bounces) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Elapsed) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	return h
}
