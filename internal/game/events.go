package game

type EventType int

const (
	EventPowerupCollected EventType = iota
	EventLoopCompleted
	EventBoundaryHit
	EventRiderDied
)

type Event struct {
	Type EventType
	Pos  Vec3
	Data int // generic payload: powerup kind, loop count
}

type EventHandler func(Event)

// EventBus decouples the simulation from audio and camera feedback:
// the rider and powerup pool emit, the session subscribes.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
