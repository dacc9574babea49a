package circular

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circular-pong/internal/config"
	"github.com/vovakirdan/circular-pong/internal/core"
	"github.com/vovakirdan/circular-pong/internal/registry"
)

// GameID is the registry identifier of Circular Pong.
const GameID = "circular"

// Game adapts a Session to the arcade platform: input actions in, screen and
// events out. It adds pause and restart handling on top of the session.
type Game struct {
	cfg     config.ArenaConfig
	logger  *log.Logger
	runtime core.RuntimeConfig
	session *Session
	paused  bool
}

// Factory returns a registry factory whose games all use cfg and logger.
func Factory(cfg config.ArenaConfig, logger *log.Logger) registry.Factory {
	return func() registry.Game {
		return NewWithConfig(cfg, logger)
	}
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.ArenaConfig, logger *log.Logger) *Game {
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circular Pong"
}

// Reset initializes the game with a new session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.paused = false
	g.session = NewSession(g.cfg, rand.New(rand.NewSource(runtime.Seed)), g.logger)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.session.GameOver() {
		// Restart is only honored once the game is over
		if in.Has(core.ActionRestart) {
			g.session.Restart()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := time.Second / time.Duration(g.runtime.TickRate)
	events := g.session.Tick(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}, dt)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. The score is whole seconds survived.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Snapshot().Seconds(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register(GameID, Factory(config.DefaultArenaConfig(), nil))
}
