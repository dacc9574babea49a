package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/circular.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in configuration.
// It mirrors defaults/circular.yaml and is used when the embedded file cannot be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Arena: ArenaGeometry{
			Radius: 250,
		},
		Ball: BallConfig{
			Radius:      8,
			Speed:       5,
			SpawnOffset: 50,
			Jitter:      0.5,
		},
		Paddle: PaddleConfig{
			Length:        60,
			Thickness:     8,
			AngularSpeed:  0.06, // 3 * 0.02
			StartAngleDeg: 180,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			CooldownTicks: 10,
			DangerMargin:  5,
			RespawnDelay:  500 * time.Millisecond,
			TickRate:      60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
