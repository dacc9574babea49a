// Package audio turns simulation events into short retro square-wave cues.
//
// The speaker is optional: when it cannot be opened (no sound device, CI,
// SSH session) callers get a silent sink and the game runs unchanged.
package audio

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/circular-pong/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Sink plays the cue of a simulation event.
type Sink interface {
	Play(kind core.EventKind)
	Close()
}

// Nop is a silent sink.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.EventKind) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker plays cues through the system audio device.
type Speaker struct{}

// Open initializes the audio device.
func Open() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

// Play queues the cue for kind. Unknown kinds are ignored.
func (s *Speaker) Play(kind core.EventKind) {
	notes := cue(kind)
	if len(notes) == 0 {
		return
	}
	speaker.Play(sequence(notes))
}

// Close shuts down the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

// New returns a speaker-backed sink, or a silent one when muted or when the
// device fails to open.
func New(mute bool, logger *log.Logger) Sink {
	if mute {
		return Nop{}
	}
	sp, err := Open()
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Nop{}
	}
	return sp
}

// note is a single tone; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// cue returns the notes played for an event kind.
func cue(kind core.EventKind) []note {
	switch kind {
	case core.EventWallBounce:
		return []note{{440, 30 * time.Millisecond}}
	case core.EventPaddleHit:
		return []note{{880, 50 * time.Millisecond}}
	case core.EventLifeLost:
		return []note{
			{660, 100 * time.Millisecond},
			{440, 100 * time.Millisecond},
			{330, 150 * time.Millisecond},
		}
	case core.EventGameOver:
		return []note{
			{0, 250 * time.Millisecond},
			{392, 150 * time.Millisecond},
			{330, 150 * time.Millisecond},
			{262, 150 * time.Millisecond},
			{196, 400 * time.Millisecond},
		}
	case core.EventRespawn:
		return []note{{523, 40 * time.Millisecond}, {784, 60 * time.Millisecond}}
	}
	return nil
}

// sequence chains notes into one streamer so a cue never needs a goroutine.
func sequence(notes []note) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq <= 0 {
			streamers = append(streamers, beep.Silence(sampleRate.N(n.dur)))
			continue
		}
		streamers = append(streamers, squareWave(n.freq, n.dur))
	}
	return beep.Seq(streamers...)
}

// squareWave generates a square wave tone for the given duration.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			remaining--
		}
		return len(samples), true
	})
}
