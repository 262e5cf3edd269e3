package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ballistic/component"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/engine"
	"github.com/lixenwraith/ballistic/event"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/physics"
	"github.com/lixenwraith/ballistic/status"
	"github.com/lixenwraith/ballistic/vmath"
)

// GrenadeSystem rolls live grenades across the ground and burns their
// fuses. The fuse counts from pin pull, so a grenade held long before
// the throw can burst mid-flight.
type GrenadeSystem struct {
	engine.SystemBase

	// Scratch reused across ticks
	order   []core.Entity
	dead    []core.Entity
	victims []core.Entity

	statActive *atomic.Int64
}

func NewGrenadeSystem(w *engine.World) engine.System {
	s := &GrenadeSystem{SystemBase: engine.NewSystemBase(w)}
	s.statActive = s.Resource.Status.Ints.Get(status.MetricGrenadesActive)
	return s
}

func (s *GrenadeSystem) Priority() int { return parameter.PriorityGrenade }

func (s *GrenadeSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGrenadeThrowRequest}
}

func (s *GrenadeSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGrenadeThrowRequest {
		return
	}
	if p, ok := ev.Payload.(*event.GrenadeThrowRequestPayload); ok {
		s.launch(p)
	}
}

// launch throws a grenade at the requested spot, solving the launch
// speed so the roll dies on target when the target is within range
func (s *GrenadeSystem) launch(p *event.GrenadeThrowRequestPayload) {
	kc, ok := s.Component.Kinetics.GetComponent(p.Thrower)
	if !ok {
		return
	}

	prof := s.Resource.Arsenal.Grenade
	dx := p.TargetX - kc.X
	dy := p.TargetY - kc.Y
	dist := vmath.Magnitude(dx, dy)

	var velX, velY float64
	if dist > 0 {
		speed := physics.ThrowSpeedForDistance(dist, prof)
		velX = dx / dist * speed
		velY = dy / dist * speed
	}

	s.World.NewEntity().
		WithKinetic(component.KineticComponent{Kinetic: core.Kinetic{
			X:    kc.X,
			Y:    kc.Y,
			VelX: velX,
			VelY: velY,
		}}).
		WithGrenade(component.GrenadeComponent{
			Thrower:  p.Thrower,
			FuseLeft: parameter.GrenadeFuseTime - p.HoldTime,
			Radius:   parameter.GrenadeBlastRadius,
			Damage:   parameter.GrenadeDamage,
		}).
		Build()
}

func (s *GrenadeSystem) Update() {
	grenades := s.Component.Grenades
	if grenades.CountEntities() == 0 {
		s.statActive.Store(0)
		return
	}

	dt := s.Resource.Time.DeltaTime

	s.order = grenades.AppendEntities(s.order[:0])
	s.dead = s.dead[:0]

	for _, e := range s.order {
		g, ok := grenades.GetComponent(e)
		if !ok {
			continue
		}
		kc, ok := s.Component.Kinetics.GetComponent(e)
		if !ok {
			continue
		}

		if !g.Resting {
			s.roll(&g, &kc.Kinetic, dt)
			s.Component.Kinetics.SetComponent(e, kc)
		}

		g.FuseLeft -= dt
		if g.FuseLeft <= 0 {
			s.burst(e, &g, &kc.Kinetic)
			s.dead = append(s.dead, e)
			continue
		}
		grenades.SetComponent(e, g)
	}

	if len(s.dead) > 0 {
		s.World.DestroyBatch(s.dead)
	}
	s.statActive.Store(int64(grenades.CountEntities()))
}

// roll advances ground physics for one tick, bouncing off whatever the
// path crosses
func (s *GrenadeSystem) roll(g *component.GrenadeComponent, k *core.Kinetic, dt float64) {
	prof := s.Resource.Arsenal.Grenade

	fromX, fromY := k.X, k.Y
	physics.StepGrenade(k, prof, dt)

	if ev, hit := s.Resource.Raycast.Cast(fromX, fromY, k.X, k.Y, core.LayerObstacle); hit {
		physics.BounceGrenade(k, ev.NormalX, ev.NormalY, prof)
		// Park at the impact point, pushed off the surface so the next
		// step does not start inside it
		k.X = ev.PointX + ev.NormalX*parameter.GrenadeBounceClearance
		k.Y = ev.PointY + ev.NormalY*parameter.GrenadeBounceClearance
		event.EmitSound(s.Resource.Event.Queue, event.SoundGrenadeBounce, k.X, k.Y, s.Resource.Time.FrameNumber)
	}

	if k.VelX == 0 && k.VelY == 0 {
		g.Resting = true
	}
}

// burst applies the blast and tells the host. Victims need sight of the
// detonation point, fail open like the breaker blast.
func (s *GrenadeSystem) burst(e core.Entity, g *component.GrenadeComponent, k *core.Kinetic) {
	s.victims = s.Resource.Actors.AppendInRadius(s.victims[:0], k.X, k.Y, g.Radius)

	if len(s.victims) > 0 {
		batch := event.AreaDamagePool.Acquire()
		for _, v := range s.victims {
			vx, vy, ok := s.Resource.Actors.Position(v)
			if !ok {
				continue
			}
			if !s.Resource.Raycast.LineOfSight(k.X, k.Y, vx, vy) {
				continue
			}
			batch.Entries = append(batch.Entries, event.AreaDamageEntry{
				Target: v,
				Source: g.Thrower,
				Amount: g.Damage,
			})
		}
		if len(batch.Entries) > 0 {
			s.World.PushEvent(event.EventAreaDamageRequest, batch)
		} else {
			event.AreaDamagePool.Release(batch)
		}
	}

	s.World.PushEvent(event.EventGrenadeDetonated, &event.GrenadeDetonatedPayload{
		Grenade:  e,
		X:        k.X,
		Y:        k.Y,
		Radius:   g.Radius,
		AirBurst: !g.Resting,
	})
	event.EmitSound(s.Resource.Event.Queue, event.SoundDetonation, k.X, k.Y, s.Resource.Time.FrameNumber)
}
