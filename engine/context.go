package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/ballistic/caliber"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/event"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/physics"
	"github.com/lixenwraith/ballistic/status"
	"github.com/lixenwraith/ballistic/vmath"
)

// Config selects the deterministic inputs and host bindings for a
// simulation context
type Config struct {
	// Seed reproduces the whole run, zero is a valid seed
	Seed uint64

	// Calibers overrides the built-in ballistic profiles when non-nil
	Calibers map[string]*caliber.Profile

	// Grenade overrides the default grenade physics when non-nil
	Grenade *physics.GrenadeProfile

	// Raycast resolves segments against host geometry
	// nil defaults to open space, every cast misses
	Raycast Raycaster

	// Actors resolves sweeps and blast queries against host bodies
	// nil defaults to an ActorStore over the world's component stores
	Actors ActorQuery
}

// Context owns one deterministic simulation: the world, its resources,
// the event queue, and the tick counter. Ticks are driven explicitly by
// the host, there is no internal clock
type Context struct {
	World  *World
	Router *Router

	queue *event.EventQueue
	frame atomic.Int64

	time *TimeResource
	rand *RandResource
}

// NewContext builds a world wired with resources from cfg
func NewContext(cfg Config) *Context {
	c := &Context{
		World:  NewWorld(),
		Router: NewRouter(),
		queue:  event.NewEventQueue(),
	}

	calibers := cfg.Calibers
	if calibers == nil {
		calibers = caliber.Builtin()
	}
	grenade := cfg.Grenade
	if grenade == nil {
		def := physics.DefaultGrenade
		grenade = &def
	}
	raycast := cfg.Raycast
	if raycast == nil {
		raycast = openSpace{}
	}
	actors := cfg.Actors
	if actors == nil {
		actors = NewActorStore(c.World)
	}

	c.time = &TimeResource{DeltaTime: parameter.TickSeconds}
	c.rand = &RandResource{Seed: cfg.Seed, Rand: vmath.NewFastRand(cfg.Seed)}

	c.World.Resources = Resource{
		Time:     c.time,
		Rand:     c.rand,
		Event:    &EventQueueResource{Queue: c.queue},
		Arsenal:  &ArsenalResource{Calibers: calibers, Grenade: grenade},
		Status:   status.NewRegistry(),
		Shrapnel: status.NewBudget(parameter.BreakerShrapnelBudget),
		Raycast:  raycast,
		Actors:   actors,
	}
	c.World.SetEventMetadata(c.queue, &c.frame)

	return c
}

// AddSystem registers a system for both update and event dispatch
func (c *Context) AddSystem(s System) {
	c.World.AddSystem(s)
	c.Router.Register(s)
}

// Tick advances the simulation one fixed step: the frame counter
// increments, queued events dispatch to handlers, then systems update
// in priority order. Events pushed during dispatch or update are
// delivered on the next tick
func (c *Context) Tick() {
	c.World.RunSafe(func() {
		frame := c.frame.Add(1)
		c.time.FrameNumber = frame
		c.time.Elapsed = float64(frame) * parameter.TickSeconds

		c.Router.Dispatch(c.queue.Consume())
		c.World.UpdateLocked()
	})
}

// RunTicks advances the simulation n ticks
func (c *Context) RunTicks(n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

// FrameNumber returns the index of the last completed tick
func (c *Context) FrameNumber() int64 {
	return c.frame.Load()
}

// Reset clears all entities and restores deterministic state under a
// new seed. Registered systems stay. Handlers of the reset event run
// synchronously before Reset returns
func (c *Context) Reset(seed uint64) {
	// Discard stale events from the previous run
	_ = c.queue.Consume()

	c.World.Lock()
	defer c.World.Unlock()

	c.frame.Store(0)
	c.time.FrameNumber = 0
	c.time.Elapsed = 0

	c.rand.Seed = seed
	*c.rand.Rand = *vmath.NewFastRand(seed)

	c.World.Clear()
	c.World.Resources.Shrapnel.Reset()
	c.World.Resources.Status.Zero()

	// Reset-aware systems reinitialize while the lock is held
	c.World.PushEvent(event.EventSimReset, nil)
	c.Router.Dispatch(c.queue.Consume())
}

// openSpace is the default raycaster, every path is clear
type openSpace struct{}

func (openSpace) Cast(x1, y1, x2, y2 float64, mask core.Layer) (core.ImpactEvent, bool) {
	return core.ImpactEvent{}, false
}

func (openSpace) LineOfSight(x1, y1, x2, y2 float64) bool {
	return true
}
