package circular

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/circular-pong/internal/config"
	"github.com/vovakirdan/circular-pong/internal/core"
)

const tick = time.Second / 60

func newTestSession(cfg config.ArenaConfig, seed int64) *Session {
	return NewSession(cfg, rand.New(rand.NewSource(seed)), nil)
}

// placeOnPaddle parks a still ball just inside a paddle centered at the top.
func placeOnPaddle(s *Session) {
	s.paddle.Angle = math.Pi / 2
	s.ball.Pos = core.V(0, 233)
	s.ball.Vel = core.Vec2{}
}

func TestNewSession(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	s := newTestSession(cfg, 1)

	if s.Lives() != 3 || s.Bounces() != 0 || s.Elapsed() != 0 {
		t.Errorf("fresh session: lives=%d bounces=%d elapsed=%s", s.Lives(), s.Bounces(), s.Elapsed())
	}
	if s.GameOver() || s.Frozen() {
		t.Error("fresh session should be running")
	}
	if s.Ball().Pos != core.V(0, cfg.Ball.SpawnOffset) {
		t.Errorf("ball should spawn above center, got %v", s.Ball().Pos)
	}
}

func TestPaddleHitRestoresExactSpeed(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	rng := rand.New(rand.NewSource(99))

	hits := 0
	for trial := 0; trial < 300; trial++ {
		s := newTestSession(cfg, int64(trial))
		placeOnPaddle(s)
		s.ball.Vel = core.FromPolar(1+rng.Float64()*9, rng.Float64()*core.TwoPi)
		s.ball.Pos = core.V(rng.Float64()*40-20, 222+rng.Float64()*8)

		events := s.Tick(Input{}, tick)
		if !core.HasEvent(events, core.EventPaddleHit) {
			continue
		}
		hits++
		if got := s.Ball().Speed(); math.Abs(got-cfg.Ball.Speed) > eps {
			t.Fatalf("trial %d: speed after paddle hit = %.12f, expected %g", trial, got, cfg.Ball.Speed)
		}
	}
	if hits == 0 {
		t.Fatal("no paddle hits registered")
	}
}

func TestPaddleHitReflectsAndCounts(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Ball.Jitter = 0
	s := newTestSession(cfg, 1)
	placeOnPaddle(s)
	s.ball.Pos = core.V(0, 228)
	s.ball.Vel = core.V(0, 5)

	events := s.Tick(Input{}, tick)

	if core.CountEvents(events, core.EventPaddleHit) != 1 {
		t.Fatalf("expected one PaddleHit, got %v", events)
	}
	if s.Bounces() != 1 {
		t.Errorf("Bounces = %d, expected 1", s.Bounces())
	}
	if s.paddleCooldown != cfg.Gameplay.CooldownTicks {
		t.Errorf("cooldown = %d, expected %d", s.paddleCooldown, cfg.Gameplay.CooldownTicks)
	}
	// Without jitter the reflection off a top paddle is a straight return
	if v := s.Ball().Vel; math.Abs(v.X) > eps || math.Abs(v.Y+5) > eps {
		t.Errorf("Vel = %v, expected (0, -5)", v)
	}
}

func TestPaddleCooldownBlocksRepeatHits(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	s := newTestSession(cfg, 3)

	hits := 0
	lastCooldown := math.MaxInt
	for i := 0; i < cfg.Gameplay.CooldownTicks + 1; i++ {
		placeOnPaddle(s)
		events := s.Tick(Input{}, tick)
		hits += core.CountEvents(events, core.EventPaddleHit)

		if i > 0 {
			if s.paddleCooldown >= lastCooldown {
				t.Fatalf("tick %d: cooldown %d did not decrease from %d", i, s.paddleCooldown, lastCooldown)
			}
		}
		lastCooldown = s.paddleCooldown
	}

	if hits != 1 {
		t.Errorf("hits within cooldown window = %d, expected 1", hits)
	}
	if s.paddleCooldown != 0 {
		t.Errorf("cooldown = %d, expected 0 after the window", s.paddleCooldown)
	}

	placeOnPaddle(s)
	if !core.HasEvent(s.Tick(Input{}, tick), core.EventPaddleHit) {
		t.Error("paddle should register hits again after the cooldown")
	}
}

func TestPaddleHitSuppressesOutcome(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	// Widen the danger zone so the hit position also counts as a crossing
	cfg.Gameplay.DangerMargin = 30
	s := newTestSession(cfg, 4)
	placeOnPaddle(s)

	events := s.Tick(Input{}, tick)

	if !core.HasEvent(events, core.EventPaddleHit) {
		t.Fatalf("expected a paddle hit, got %v", events)
	}
	if core.HasEvent(events, core.EventLifeLost) {
		t.Error("outcome check must not run on a paddle-hit tick")
	}
	if s.Lives() != cfg.Gameplay.Lives {
		t.Errorf("Lives = %d, expected %d", s.Lives(), cfg.Gameplay.Lives)
	}
}

// crossIntoProtectedHalf moves the ball near the top wall with the paddle far away.
func crossIntoProtectedHalf(s *Session) {
	s.paddle.Angle = 0
	s.ball.Pos = core.V(0, 240)
	s.ball.Vel = core.V(0, 1)
}

func TestLastLifeEndsGame(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Gameplay.Lives = 1
	s := newTestSession(cfg, 5)
	crossIntoProtectedHalf(s)

	events := s.Tick(Input{}, tick)

	if !core.HasEvent(events, core.EventLifeLost) || !core.HasEvent(events, core.EventGameOver) {
		t.Fatalf("expected LifeLost and GameOver, got %v", events)
	}
	if s.Lives() != 0 || !s.GameOver() {
		t.Fatalf("lives=%d gameOver=%v, expected 0 and true", s.Lives(), s.GameOver())
	}

	ballBefore := s.Ball()
	elapsed := s.Elapsed()
	for rep := 0; rep < 120; rep++ {
		if ev := s.Tick(Input{Left: true}, tick); len(ev) != 0 {
			t.Fatalf("game over session emitted %v", ev)
		}
	}
	if s.Ball() != ballBefore {
		t.Error("ball moved after game over")
	}
	if s.Elapsed() != elapsed {
		t.Error("clock advanced after game over")
	}
	if s.Frozen() {
		t.Error("game over is terminal, not frozen")
	}
}

func TestLifeLostFreezesThenRespawns(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Gameplay.Lives = 2
	s := newTestSession(cfg, 6)
	crossIntoProtectedHalf(s)

	events := s.Tick(Input{}, tick)
	if !core.HasEvent(events, core.EventLifeLost) || core.HasEvent(events, core.EventGameOver) {
		t.Fatalf("expected only LifeLost, got %v", events)
	}
	if s.Lives() != 1 || !s.lifeLost || !s.Frozen() {
		t.Fatalf("lives=%d lifeLost=%v frozen=%v", s.Lives(), s.lifeLost, s.Frozen())
	}

	frozenBall := s.Ball()
	frozenAngle := s.Paddle().Angle
	want := int((cfg.Gameplay.RespawnDelay + tick - 1) / tick)

	respawnedAt := 0
	for i := 1; i <= want+5; i++ {
		events = s.Tick(Input{Left: true}, tick)
		if core.HasEvent(events, core.EventRespawn) {
			respawnedAt = i
			break
		}
		if core.HasEvent(events, core.EventLifeLost) {
			t.Fatal("life lost twice for one crossing")
		}
		if s.Ball() != frozenBall || s.Paddle().Angle != frozenAngle {
			t.Fatal("ball and paddle must not move while frozen")
		}
	}

	if respawnedAt != want {
		t.Errorf("respawned after %d ticks, expected %d", respawnedAt, want)
	}
	if s.lifeLost || s.Frozen() {
		t.Error("lifeLost should clear after respawn")
	}
	b := s.Ball()
	if b.Pos != core.V(0, cfg.Ball.SpawnOffset) {
		t.Errorf("respawn Pos = %v, expected (0, %g)", b.Pos, cfg.Ball.SpawnOffset)
	}
	if b.Vel.Y <= 0 {
		t.Errorf("respawn should head upward, Vel = %v", b.Vel)
	}
	if s.Elapsed() != time.Duration(respawnedAt+1)*tick {
		t.Errorf("clock should keep running while frozen, elapsed = %s", s.Elapsed())
	}
}

func TestUnprotectedHalfIsSafe(t *testing.T) {
	s := newTestSession(config.DefaultArenaConfig(), 7)
	s.ball.Pos = core.V(0, -240)
	s.ball.Vel = core.V(0, -1)

	for rep := 0; rep < 30; rep++ {
		if core.HasEvent(s.Tick(Input{}, tick), core.EventLifeLost) {
			t.Fatal("lower half must never cost a life")
		}
		s.ball.Pos = core.V(0, -240)
	}
	if s.Lives() != 3 {
		t.Errorf("Lives = %d, expected 3", s.Lives())
	}
}

func TestWallBounceEvent(t *testing.T) {
	s := newTestSession(config.DefaultArenaConfig(), 8)
	s.ball.Pos = core.V(0, -241)
	s.ball.Vel = core.V(0, -5)

	events := s.Tick(Input{}, tick)
	if !core.HasEvent(events, core.EventWallBounce) {
		t.Fatalf("expected WallBounce, got %v", events)
	}
	if e := events[0]; e.Tick != 1 || e.Pos != s.Ball().Pos {
		t.Errorf("event = %+v, expected tick 1 at %v", e, s.Ball().Pos)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Gameplay.Lives = 1
	s := newTestSession(cfg, 9)
	for rep := 0; rep < 10; rep++ {
		s.Tick(Input{Right: true}, tick)
	}
	placeOnPaddle(s)
	s.Tick(Input{}, tick)
	s.paddleCooldown = 0
	crossIntoProtectedHalf(s)
	s.Tick(Input{}, tick)
	if !s.GameOver() {
		t.Fatal("setup: expected game over")
	}

	s.Restart()

	if s.Lives() != 1 || s.Bounces() != 0 || s.Elapsed() != 0 || s.GameOver() || s.lifeLost {
		t.Errorf("after restart: lives=%d bounces=%d elapsed=%s gameOver=%v lifeLost=%v",
			s.Lives(), s.Bounces(), s.Elapsed(), s.GameOver(), s.lifeLost)
	}
	if s.paddleCooldown != 0 || s.tick != 0 {
		t.Errorf("counters survived restart: cooldown=%d tick=%d", s.paddleCooldown, s.tick)
	}
	if math.Abs(s.Paddle().Angle-math.Pi) > eps {
		t.Errorf("paddle angle = %f, expected π", s.Paddle().Angle)
	}
}

func TestRestartDefaultLives(t *testing.T) {
	s := newTestSession(config.DefaultArenaConfig(), 10)
	for !s.GameOver() {
		crossIntoProtectedHalf(s)
		s.Tick(Input{}, tick)
		for s.Frozen() {
			s.Tick(Input{}, tick)
		}
	}

	s.Restart()
	if s.Lives() != 3 || s.Bounces() != 0 || s.Elapsed() != 0 || s.GameOver() {
		t.Errorf("restart: lives=%d bounces=%d elapsed=%s gameOver=%v", s.Lives(), s.Bounces(), s.Elapsed(), s.GameOver())
	}
}

func TestSessionInvariants(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Gameplay.Lives = 1000
	s := newTestSession(cfg, 11)
	rng := rand.New(rand.NewSource(12))

	for i := 0; i < 10000; i++ {
		in := Input{Left: rng.Intn(3) == 0, Right: rng.Intn(3) == 0}
		events := s.Tick(in, tick)

		b := s.Ball()
		if d := b.Pos.Len() + b.Radius; d > cfg.Arena.Radius+eps {
			t.Fatalf("tick %d: ball outside arena, |pos|+r = %f", i, d)
		}
		if a := s.Paddle().Angle; a < 0 || a > math.Pi {
			t.Fatalf("tick %d: paddle angle %f outside [0, π]", i, a)
		}
		if core.HasEvent(events, core.EventPaddleHit) && core.HasEvent(events, core.EventLifeLost) {
			t.Fatalf("tick %d: paddle hit and life lost in the same tick", i)
		}
		if s.paddleCooldown < 0 || s.Lives() < 0 || s.Bounces() < 0 {
			t.Fatalf("tick %d: negative counter", i)
		}
	}
}

func TestTickScalesWithDt(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	a := newTestSession(cfg, 13)
	b := newTestSession(cfg, 13)

	a.Tick(Input{Left: false, Right: true}, 2*tick)
	b.Tick(Input{Left: false, Right: true}, tick)
	b.Tick(Input{Left: false, Right: true}, tick)

	pa, pb := a.Ball().Pos, b.Ball().Pos
	if math.Abs(pa.X-pb.X) > eps || math.Abs(pa.Y-pb.Y) > eps {
		t.Errorf("one 2dt tick = %v, two dt ticks = %v", pa, pb)
	}
	if math.Abs(a.Paddle().Angle-b.Paddle().Angle) > eps {
		t.Errorf("paddle: %f vs %f", a.Paddle().Angle, b.Paddle().Angle)
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	run := func() Snapshot {
		s := newTestSession(cfg, 12345)
		for i := 0; i < 3000; i++ {
			s.Tick(Input{Left: i%90 < 40, Right: i%70 < 20}, tick)
		}
		return s.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1 != s2 {
		t.Errorf("Determinism failed: snapshots differ\n%+v\n%+v", s1, s2)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(config.DefaultArenaConfig(), 14)
	for rep := 0; rep < 90; rep++ {
		s.Tick(Input{}, tick)
	}

	snap := s.Snapshot()
	start, end := s.Paddle().Endpoints()
	if snap.PaddleStart != start || snap.PaddleEnd != end {
		t.Error("snapshot paddle endpoints differ from the paddle")
	}
	if snap.Elapsed != 90*tick || snap.Seconds() != 1 {
		t.Errorf("Elapsed = %s (%ds), expected 1.5s", snap.Elapsed, snap.Seconds())
	}
	if snap.Tick != 90 {
		t.Errorf("Tick = %d, expected 90", snap.Tick)
	}
}

func TestPaddleHitDegenerateCases(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
	}{
		{"zero-length paddle uses radial normal", core.V(0, 231), core.V(0, 5)},
		{"still ball is sent back to the center", core.V(0, 236), core.Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultArenaConfig()
			cfg.Paddle.Length = 0
			cfg.Ball.Jitter = 0
			s := newTestSession(cfg, 1)
			s.paddle.Angle = math.Pi / 2
			s.ball.Pos = tc.pos
			s.ball.Vel = tc.vel

			events := s.Tick(Input{}, tick)

			if !core.HasEvent(events, core.EventPaddleHit) {
				t.Fatalf("expected a PaddleHit, got %v", events)
			}
			if got := s.Ball().Speed(); math.Abs(got-cfg.Ball.Speed) > eps {
				t.Errorf("speed = %f, expected %g", got, cfg.Ball.Speed)
			}
			if v := s.Ball().Vel; math.Abs(v.X) > eps || math.Abs(v.Y+cfg.Ball.Speed) > eps {
				t.Errorf("Vel = %v, expected (0, -%g)", v, cfg.Ball.Speed)
			}
		})
	}
}
