package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/engine"
	"github.com/lixenwraith/ballistic/event"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/status"
)

// CombatSystem applies damage requests to the reference actor store:
// health pools, death flagging, kill attribution. Hosts with their own
// combat resolution replace this system and consume the damage events
// themselves.
type CombatSystem struct {
	engine.SystemBase

	statDamage *status.AtomicFloat
	statKills  *atomic.Int64
}

func NewCombatSystem(w *engine.World) engine.System {
	s := &CombatSystem{SystemBase: engine.NewSystemBase(w)}
	s.statDamage = s.Resource.Status.Floats.Get(status.MetricDamageDealt)
	s.statKills = s.Resource.Status.Ints.Get(status.MetricKills)
	return s
}

func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventDamageRequest, event.EventAreaDamageRequest}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDamageRequest:
		if p, ok := ev.Payload.(*event.DamageRequestPayload); ok {
			s.hurt(p.Target, p.Source, p.Amount)
			event.ReleaseDamageRequest(p)
		}

	case event.EventAreaDamageRequest:
		if batch, ok := ev.Payload.(*event.BatchPayload[event.AreaDamageEntry]); ok {
			for _, entry := range batch.Entries {
				s.hurt(entry.Target, entry.Source, entry.Amount)
			}
			event.AreaDamagePool.Release(batch)
		}
	}
}

func (s *CombatSystem) Update() {}

// hurt applies one damage instance. Corpses absorb hits silently.
func (s *CombatSystem) hurt(target, source core.Entity, amount float64) {
	a, ok := s.Component.Actors.GetComponent(target)
	if !ok || !a.Alive || amount <= 0 {
		return
	}

	a.Health -= amount
	s.statDamage.Add(amount)

	if a.Health <= 0 {
		a.Health = 0
		a.Alive = false
		s.statKills.Add(1)

		x, y, _ := s.Resource.Actors.Position(target)
		s.World.PushEvent(event.EventActorKilled, &event.ActorKilledPayload{
			Actor:  target,
			Killer: source,
			X:      x,
			Y:      y,
		})
	}

	s.Component.Actors.SetComponent(target, a)
}
