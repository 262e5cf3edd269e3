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

// WeaponSystem discharges weapons on host fire requests: cooldown gating,
// pellet fans, and homing lock acquisition at fire time
type WeaponSystem struct {
	engine.SystemBase

	// Scratch reused across shots
	cands   []physics.HomingCandidate
	offsets []float64
	cooling []core.Entity

	statShots   *atomic.Int64
	statSpawned *atomic.Int64
}

func NewWeaponSystem(w *engine.World) engine.System {
	s := &WeaponSystem{SystemBase: engine.NewSystemBase(w)}
	s.statShots = s.Resource.Status.Ints.Get(status.MetricShotsFired)
	s.statSpawned = s.Resource.Status.Ints.Get(status.MetricProjectilesSpawned)
	return s
}

func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventFireRequest}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventFireRequest {
		return
	}
	if p, ok := ev.Payload.(*event.FireRequestPayload); ok {
		s.fire(p)
	}
}

// Update counts down weapon cooldowns
func (s *WeaponSystem) Update() {
	weapons := s.Component.Weapons

	s.cooling = s.cooling[:0]
	weapons.Range(func(e core.Entity, wc component.WeaponComponent) bool {
		if wc.CooldownTicks > 0 {
			s.cooling = append(s.cooling, e)
		}
		return true
	})
	for _, e := range s.cooling {
		if wc, ok := weapons.GetComponent(e); ok && wc.CooldownTicks > 0 {
			wc.CooldownTicks--
			weapons.SetComponent(e, wc)
		}
	}
}

// fire discharges one shot if the shooter's weapon is ready. A request
// during cooldown is dropped, not queued.
func (s *WeaponSystem) fire(p *event.FireRequestPayload) {
	wc, ok := s.Component.Weapons.GetComponent(p.Shooter)
	if !ok || wc.Caliber == nil || wc.CooldownTicks > 0 {
		return
	}
	kc, ok := s.Component.Kinetics.GetComponent(p.Shooter)
	if !ok {
		return
	}

	dirX, dirY := vmath.Normalize2D(p.AimX, p.AimY)
	if dirX == 0 && dirY == 0 {
		return
	}

	prof := wc.Caliber
	ox, oy := kc.X, kc.Y
	team := s.team(p.Shooter)

	target := core.InvalidEntity
	if prof.Homing {
		target = s.acquireLock(ox, oy, dirX, dirY, team)
	}

	// The pellet fan reuses the shrapnel slot-jitter shape; a single
	// pellet flies the aim line untouched
	s.offsets = physics.ShrapnelOffsets(prof.PelletCount, prof.SpreadDeg/2, s.Resource.Rand.Rand, s.offsets)
	for _, off := range s.offsets {
		fx, fy := vmath.RotateVector(dirX, dirY, off)
		spawnShot(s.World, shotSpec{
			prof:    prof,
			shooter: p.Shooter,
			team:    team,
			x:       ox,
			y:       oy,
			dirX:    fx,
			dirY:    fy,
			damage:  prof.BaseDamage,
			target:  target,
		})
	}

	wc.CooldownTicks = prof.CooldownTicks
	wc.LastTarget = target
	s.Component.Weapons.SetComponent(p.Shooter, wc)

	s.statShots.Add(1)
	s.statSpawned.Add(int64(prof.PelletCount))
	event.EmitSound(s.Resource.Event.Queue, event.SoundFire, ox, oy, s.Resource.Time.FrameNumber)
}

// acquireLock picks the homing target for a shot fired now. Selection
// sees only living hostiles with sight of the muzzle.
func (s *WeaponSystem) acquireLock(ox, oy, dirX, dirY float64, team core.Team) core.Entity {
	s.cands = s.cands[:0]
	s.cands = s.Resource.Actors.AppendHostile(s.cands, team)
	if len(s.cands) == 0 {
		return core.InvalidEntity
	}

	los := func(x, y float64) bool {
		return s.Resource.Raycast.LineOfSight(ox, oy, x, y)
	}
	target, ok := physics.FindBestTarget(s.cands, ox, oy, dirX, dirY,
		parameter.HomingMaxAngleDeg, parameter.HomingMaxPerpDistance, los)
	if !ok {
		return core.InvalidEntity
	}
	return target
}

func (s *WeaponSystem) team(e core.Entity) core.Team {
	if a, ok := s.Component.Actors.GetComponent(e); ok {
		return a.Team
	}
	return core.TeamNeutral
}
