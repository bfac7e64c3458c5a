package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/physics"

// State is the controller state.
type State int

const (
	StateIdle          State = iota // no level loaded
	StatePlaying                    // simulation running
	StatePaused                     // frozen; resumes to the state it paused from
	StateLevelComplete              // every brick destroyed
	StateBallLost                   // cooldown after a ball-out, input detached
	StateGameOver                   // no lives left
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level-complete"
	case StateBallLost:
		return "ball-lost"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Command is a set of player commands for one tick.
type Command uint8

const (
	CmdLeft Command = 1 << iota
	CmdRight
	CmdLaunch
	CmdToggleCheat
)

// Has reports whether every command in f is set.
func (c Command) Has(f Command) bool { return c&f == f }

// EventType names a controller notification.
type EventType int

const (
	EventPause EventType = iota
	EventUpdateScore
	EventEndOfLevel
	EventBallOut
	EventGameOver
	EventHit
	EventLevelStart
	EventPowerUp
)

func (t EventType) String() string {
	switch t {
	case EventPause:
		return "pause"
	case EventUpdateScore:
		return "update-score"
	case EventEndOfLevel:
		return "end-of-level"
	case EventBallOut:
		return "ball-out"
	case EventGameOver:
		return "game-over"
	case EventHit:
		return "hit"
	case EventLevelStart:
		return "level-start"
	case EventPowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// Event is a notification raised by the controller. Score, Lives and Level
// always carry the values after the change; the other fields depend on Type.
type Event struct {
	Type  EventType
	Score int
	Lives int
	Level int

	Points  int          // update-score
	Paused  bool         // pause
	Kind    physics.Kind // hit
	Capsule CapsuleType  // power-up
}
