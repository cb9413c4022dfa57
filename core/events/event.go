package events

// Event represents a structured state change emitted by the runtime.
type Event interface {
	EventType() string
	Attributes() map[string]string
}

// Emitter broadcasts events to downstream subscribers (e.g. the
// presentation layer, indexers).
type Emitter interface {
	Emit(Event)
}

// NoopEmitter satisfies the Emitter interface while discarding all
// events. It is the default when no subscriber is wired.
type NoopEmitter struct{}

// Emit implements the Emitter interface.
func (NoopEmitter) Emit(Event) {}
