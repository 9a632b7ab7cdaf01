package core

// Event is something that happened during a scene frame. Frame is the
// frame counter at emission; Payload is the agent or burst involved.
type Event struct {
	Type    EventType
	Frame   uint64
	Payload interface{}
}

type EventType uint16

const (
	// EvtSceneResized follows a rebuild of geometry, decor and population
	EvtSceneResized EventType = iota
	EvtWorkStarted
	EvtWorkFinished
	// EvtParticleBurst is one particle emission by a working agent
	EvtParticleBurst
)

// EventBus collects the events of one scene frame. Agents and the resize
// path emit while the frame runs; the scene dispatches the whole queue once,
// after the particle step and before composition, so listeners see a
// settled frame.
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On subscribes h to events of type t
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues e until the next Dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of events queued this frame
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch delivers the queue in emission order and empties it. Events
// emitted by a handler are delivered in the same pass.
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
