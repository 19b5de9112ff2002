// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	SessionCreated         Type = "session_created"
	ThrustApplied          Type = "thrust_applied"
	RotationApplied        Type = "rotation_applied"
	TrajectoryRecalculated Type = "trajectory_recalculated"
	TrajectoryExtended     Type = "trajectory_extended"
	TrajectoryAdvanced     Type = "trajectory_advanced"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler and allows it to be
// removed without relying on function identity.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
	}
}

// Subscribe registers a handler for a specific event type and returns
// a Subscription whose Cancel removes the handler again.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})
	b.mu.Unlock()

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs, ok := b.handlers[eventType]
	if !ok {
		return
	}

	for i, reg := range regs {
		if reg.id == id {
			b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs, ok := b.handlers[event.GetType()]
	handlers := make([]Handler, len(regs))
	for i, reg := range regs {
		handlers[i] = reg.handler
	}
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// ThrustEvent contains information about a thrust perturbation
type ThrustEvent struct {
	BaseEvent
	DeltaV   float64 // magnitude of the velocity change
	Rotation float64 // player rotation when thrust was applied
}

// NewThrustEvent creates a new thrust event
func NewThrustEvent(source interface{}, deltaV, rotation float64) *ThrustEvent {
	return &ThrustEvent{
		BaseEvent: BaseEvent{
			EventType: ThrustApplied,
			Source:    source,
		},
		DeltaV:   deltaV,
		Rotation: rotation,
	}
}

// TrajectoryEvent contains information about trajectory cache changes
type TrajectoryEvent struct {
	BaseEvent
	Steps  int // ticks recomputed, extended, or consumed
	Length int // cache length after the operation
}

// NewTrajectoryEvent creates a new trajectory event
func NewTrajectoryEvent(eventType Type, source interface{}, steps, length int) *TrajectoryEvent {
	return &TrajectoryEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Steps:  steps,
		Length: length,
	}
}
