package engine

import (
	"github.com/lixenwraith/ballistic/event"
)

// System is the interface all simulation systems implement
type System interface {
	// Update advances the system by one tick
	// Called with the world update lock held
	Update()

	// Priority orders system execution, lower values run first
	Priority() int

	// EventTypes returns the event types this system consumes
	// The router uses this for registration
	EventTypes() []event.EventType

	// HandleEvent processes a single routed event
	// Called synchronously during the dispatch phase, before Update
	HandleEvent(ev event.GameEvent)
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetResourceStore(w),
		Component: GetComponentStore(w),
	}
}

// Router dispatches queued events to registered systems
//
// Architecture:
//   - Single-threaded dispatch, safe to mutate the World from handlers
//   - Multiple systems can register for the same event type
//   - Systems are invoked in registration order
//   - All events dispatched before World.UpdateLocked runs each tick
type Router struct {
	handlers map[event.EventType][]System
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[event.EventType][]System),
	}
}

// Register adds a system for its declared event types
// A system can register for multiple event types
// Multiple systems can register for the same event type
func (r *Router) Register(s System) {
	for _, t := range s.EventTypes() {
		r.handlers[t] = append(r.handlers[t], s)
	}
}

// Dispatch routes a batch of events in FIFO order
// All handlers for an event are called before moving to the next event
func (r *Router) Dispatch(events []event.GameEvent) {
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HasHandlers returns true if any systems are registered for the given type
func (r *Router) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of systems registered for the given type
func (r *Router) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
