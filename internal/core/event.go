package core

// EventKind identifies a discrete simulation event the platform may react to
// (typically with a sound effect). Events never feed back into the simulation.
type EventKind int

const (
	EventWallBounce EventKind = iota + 1 // Ball reflected off the arena wall
	EventPaddleHit                       // Ball reflected off the paddle
	EventLifeLost                        // Ball reached the protected semicircle
	EventGameOver                        // Last life lost
	EventRespawn                         // Ball served again after a lost life
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "WallBounce"
	case EventPaddleHit:
		return "PaddleHit"
	case EventLifeLost:
		return "LifeLost"
	case EventGameOver:
		return "GameOver"
	case EventRespawn:
		return "Respawn"
	default:
		return "Unknown"
	}
}

// Event is a single notification emitted during a tick.
type Event struct {
	Kind EventKind
	Tick uint64 // Session tick on which it happened
	Pos  Vec2   // Ball position at the time, relative to the arena center
}

// HasEvent reports whether events contains at least one event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// CountEvents returns how many events of the given kind are in events.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
