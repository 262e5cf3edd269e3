package system

import (
	"math"
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

// surfaceKind tags the single surface interaction a projectile can
// resolve in one tick
type surfaceKind uint8

const (
	surfaceNone surfaceKind = iota
	surfaceRicochet
	surfacePenetrationEntry
	surfacePenetrationExit
	surfaceStop
)

// wound is damage dealt to the first body crossed during a sweep
type wound struct {
	target     core.Entity
	amount     float64
	dirX, dirY float64
}

// detonation captures a breaker burst for the apply phase. The rng copy
// carries the projectile's stream so the fan jitter stays reproducible
// after the global budget trims the count.
type detonation struct {
	x, y       float64
	dirX, dirY float64
	want       int
	rng        vmath.FastRand
	victims    []core.Entity
}

// stepResult is one projectile's tick outcome. The compute phase fills
// it from store reads only; the apply phase writes stores, claims the
// shrapnel budget, and emits events in snapshot order. Workers own
// disjoint slots, so outcomes cannot depend on scheduling.
type stepResult struct {
	entity core.Entity
	kin    core.Kinetic
	prj    component.ProjectileComponent

	wound wound

	surface   surfaceKind
	surfX     float64
	surfY     float64
	surfNX    float64
	surfNY    float64
	surfAngle float64
	hitKind   core.HitKind

	det *detonation
}

// ProjectileSystem drives every live projectile through its per-tick
// state machine: steering, movement, ricochet, penetration, breaker
// detonation, and termination. Large batches step in parallel.
type ProjectileSystem struct {
	engine.SystemBase

	// Scratch reused across ticks
	results []stepResult
	dead    []core.Entity
	offsets []float64

	// Telemetry
	statActive       *atomic.Int64
	statSpawned      *atomic.Int64
	statRicochets    *atomic.Int64
	statPenetrations *atomic.Int64
	statDetonations  *atomic.Int64
	statShrapnel     *atomic.Int64
	statShrapnelLost *atomic.Int64
}

func NewProjectileSystem(w *engine.World) engine.System {
	s := &ProjectileSystem{SystemBase: engine.NewSystemBase(w)}

	ints := s.Resource.Status.Ints
	s.statActive = ints.Get(status.MetricProjectilesActive)
	s.statSpawned = ints.Get(status.MetricProjectilesSpawned)
	s.statRicochets = ints.Get(status.MetricRicochets)
	s.statPenetrations = ints.Get(status.MetricPenetrations)
	s.statDetonations = ints.Get(status.MetricDetonations)
	s.statShrapnel = ints.Get(status.MetricShrapnelSpawned)
	s.statShrapnelLost = ints.Get(status.MetricShrapnelDenied)

	return s
}

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType { return nil }

func (s *ProjectileSystem) HandleEvent(event.GameEvent) {}

func (s *ProjectileSystem) Update() {
	store := s.Component.Projectiles
	if store.CountEntities() == 0 {
		s.statActive.Store(0)
		return
	}

	dt := s.Resource.Time.DeltaTime
	frame := s.Resource.Time.FrameNumber

	// Snapshot phase: one slot per live projectile in insertion order
	s.results = s.results[:0]
	store.Range(func(e core.Entity, p component.ProjectileComponent) bool {
		if p.State.Terminal() {
			return true
		}
		k, ok := s.Component.Kinetics.GetComponent(e)
		if !ok {
			return true
		}
		s.results = append(s.results, stepResult{entity: e, kin: k.Kinetic, prj: p})
		return true
	})

	// Compute phase: stores are read-only until every worker joins
	res := s.results
	engine.ParallelFor(len(res), parameter.ParallelMinProjectiles, func(start, end int) {
		for i := start; i < end; i++ {
			s.step(&res[i], frame, dt)
		}
	})

	// Apply phase: all mutation in snapshot order
	s.dead = s.dead[:0]
	for i := range res {
		s.apply(&res[i])
	}
	if len(s.dead) > 0 {
		s.World.DestroyBatch(s.dead)
	}

	s.statActive.Store(int64(store.CountEntities()))
}

// step advances one projectile by one tick, writing only into its slot
func (s *ProjectileSystem) step(r *stepResult, frame int64, dt float64) {
	p := &r.prj

	if p.State == component.ProjectilePenetrating {
		s.stepPenetrating(r, dt)
	} else {
		rng := s.Resource.Rand.ProjectileRand(r.entity, frame)
		s.stepFlying(r, &rng, dt)
	}
	if p.State.Terminal() {
		return
	}

	p.LifetimeTicks--
	if p.LifetimeTicks <= 0 {
		p.State = component.ProjectileExpired
	}
}

func (s *ProjectileSystem) stepFlying(r *stepResult, rng *vmath.FastRand, dt float64) {
	k := &r.kin
	p := &r.prj
	prof := p.Caliber

	if k.Speed() < parameter.BallisticMinSpeed {
		p.State = component.ProjectileExpired
		return
	}

	if prof.Breaker && s.checkProximity(r, rng) {
		p.State = component.ProjectileDetonated
		return
	}

	if prof.Homing && p.Target != core.InvalidEntity {
		s.steerAtTarget(r, dt)
	}

	s.sweep(r, rng, dt)
}

// steerAtTarget turns the velocity toward the locked target. A dead or
// vanished target drops the lock and the round flies straight.
func (s *ProjectileSystem) steerAtTarget(r *stepResult, dt float64) {
	p := &r.prj
	actors := s.Resource.Actors

	if !actors.Alive(p.Target) {
		p.Target = core.InvalidEntity
		return
	}
	tx, ty, ok := actors.Position(p.Target)
	if !ok {
		p.Target = core.InvalidEntity
		return
	}

	rate := p.Caliber.SteerRateDeg
	if rate <= 0 {
		rate = parameter.HomingSteerRateDeg
	}
	physics.Steer(&r.kin, tx, ty, p.OriginDirX, p.OriginDirY, rate, parameter.HomingMaxAngleDeg, dt)
}

// checkProximity fires the breaker trigger ray ahead of the round. On a
// detonation the blast victims and fan parameters are captured for the
// apply phase; nothing is mutated here.
func (s *ProjectileSystem) checkProximity(r *stepResult, rng *vmath.FastRand) bool {
	k := &r.kin
	p := &r.prj

	dirX, dirY := k.Heading()
	if dirX == 0 && dirY == 0 {
		return false
	}
	ex := k.X + dirX*parameter.BreakerDetonationDistance
	ey := k.Y + dirY*parameter.BreakerDetonationDistance

	if _, wall := s.Resource.Raycast.Cast(k.X, k.Y, ex, ey, core.LayerObstacle); !wall {
		if _, body := s.Resource.Actors.FirstOnSegment(k.X, k.Y, ex, ey, p.Shooter); !body {
			return false
		}
	}

	det := &detonation{
		x:    k.X,
		y:    k.Y,
		dirX: dirX,
		dirY: dirY,
		want: physics.ShrapnelCount(p.BaseDamage, p.DamageMult, p.Caliber),
		rng:  *rng,
	}

	// Blast victims need sight of the detonation point; fail open, the
	// null raycaster blocks nobody
	det.victims = s.Resource.Actors.AppendInRadius(det.victims, k.X, k.Y, parameter.BreakerExplosionRadius)
	kept := det.victims[:0]
	for _, v := range det.victims {
		vx, vy, ok := s.Resource.Actors.Position(v)
		if !ok {
			continue
		}
		if s.Resource.Raycast.LineOfSight(k.X, k.Y, vx, vy) {
			kept = append(kept, v)
		}
	}
	det.victims = kept

	r.det = det
	return true
}

// sweep moves the projectile along its velocity for one tick and
// resolves the nearest interaction on the swept segment
func (s *ProjectileSystem) sweep(r *stepResult, rng *vmath.FastRand, dt float64) {
	k := &r.kin
	p := &r.prj

	stepLen := k.Speed() * dt
	endX := k.X + k.VelX*dt
	endY := k.Y + k.VelY*dt

	wall, wallHit := s.Resource.Raycast.Cast(k.X, k.Y, endX, endY, core.LayerObstacle)
	body, bodyHit := s.Resource.Actors.FirstOnSegment(k.X, k.Y, endX, endY, p.Shooter, p.LastActorHit)

	wallT := math.Inf(1)
	if wallHit {
		wallT = wall.Distance / stepLen
	}

	if bodyHit && body.T < wallT {
		s.strikeActor(r, body, stepLen)
		if p.State.Terminal() {
			return
		}
	}

	if wallHit {
		s.resolveSurface(r, wall, rng)
		return
	}

	k.X, k.Y = endX, endY
	s.travel(p, stepLen)
}

// strikeActor wounds the first body crossed. Piercing calibers fly on;
// the body is excluded from later sweeps so one pass cannot wound twice.
func (s *ProjectileSystem) strikeActor(r *stepResult, body engine.ActorHit, stepLen float64) {
	k := &r.kin
	p := &r.prj

	dirX, dirY := k.Heading()
	r.wound = wound{
		target: body.Entity,
		amount: p.BaseDamage * p.DamageMult,
		dirX:   dirX,
		dirY:   dirY,
	}
	p.LastActorHit = body.Entity

	if p.Caliber.PiercesActors {
		return
	}

	k.X, k.Y = body.X, body.Y
	s.travel(p, body.T*stepLen)
	p.State = component.ProjectileHit
	r.surface = surfaceStop
	r.surfX, r.surfY = body.X, body.Y
	r.surfNX, r.surfNY = -dirX, -dirY
	r.hitKind = core.HitLivingActor
}

// resolveSurface handles a wall strike at the end of a sweep. Ricochet
// has priority over penetration, except point-blank shots which bore in
// without a reflection roll. A wall that grants neither stops the round.
func (s *ProjectileSystem) resolveSurface(r *stepResult, wall core.ImpactEvent, rng *vmath.FastRand) {
	k := &r.kin
	p := &r.prj
	prof := p.Caliber

	dirX, dirY := k.Heading()
	k.X, k.Y = wall.PointX, wall.PointY
	s.travel(p, wall.Distance)
	if p.State.Terminal() {
		return
	}

	switch {
	case physics.PointBlank(p.TravelDistance, prof) && prof.PenetrationBudgetLeft(p.WallsPenetrated):
		s.enterObstacle(r, wall, dirX, dirY)

	case s.tryRicochet(r, wall, rng):

	case physics.TryPenetrate(p.TravelDistance, p.WallsPenetrated, prof, rng):
		s.enterObstacle(r, wall, dirX, dirY)

	default:
		p.State = component.ProjectileHit
		r.surface = surfaceStop
		r.surfX, r.surfY = wall.PointX, wall.PointY
		r.surfNX, r.surfNY = wall.NormalX, wall.NormalY
		r.hitKind = wall.Kind
	}
}

func (s *ProjectileSystem) tryRicochet(r *stepResult, wall core.ImpactEvent, rng *vmath.FastRand) bool {
	k := &r.kin
	p := &r.prj

	out, ok := physics.TryRicochet(k.VelX, k.VelY, wall.NormalX, wall.NormalY, p.RicochetCount, p.Caliber, rng)
	if !ok {
		return false
	}

	k.VelX, k.VelY = out.VelX, out.VelY
	p.DamageMult *= out.DamageMult
	p.RicochetCount++

	// Escape along the reflected heading so the next sweep starts clear
	// of the surface just resolved
	ndx, ndy := k.Heading()
	k.X += ndx * parameter.BallisticSurfaceNudge
	k.Y += ndy * parameter.BallisticSurfaceNudge

	if limit, constrained := physics.RicochetTravelLimit(out.AngleDeg, p.Caliber); constrained {
		p.HasTravelLimit = true
		p.TravelLimit = limit
	}

	r.surface = surfaceRicochet
	r.surfX, r.surfY = wall.PointX, wall.PointY
	r.surfAngle = out.AngleDeg
	return true
}

func (s *ProjectileSystem) enterObstacle(r *stepResult, wall core.ImpactEvent, dirX, dirY float64) {
	k := &r.kin
	p := &r.prj

	p.State = component.ProjectilePenetrating
	p.Obstacle = component.NewObstacleRef(wall)
	p.PenetrationDepth = parameter.BallisticSurfaceNudge

	// Entry advance puts the round inside, past the face it just hit
	k.X += dirX * parameter.BallisticSurfaceNudge
	k.Y += dirY * parameter.BallisticSurfaceNudge

	r.surface = surfacePenetrationEntry
	r.surfX, r.surfY = wall.PointX, wall.PointY
}

// stepPenetrating advances blind through the obstacle and checks for
// the far side. Collision sweeps resume once the round exits.
func (s *ProjectileSystem) stepPenetrating(r *stepResult, dt float64) {
	k := &r.kin
	p := &r.prj

	adv := k.Speed() * dt
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
	p.PenetrationDepth += adv
	s.travel(p, adv)
	if p.State.Terminal() {
		return
	}

	if p.PenetrationDepth < parameter.PenetrationThicknessBudget && s.insideObstacle(k, p) {
		return
	}
	s.exitObstacle(r)
}

// insideObstacle probes forward and backward for the recorded obstacle.
// Either probe still seeing it keeps the penetration alive; the depth
// budget force-exits pathological geometry.
func (s *ProjectileSystem) insideObstacle(k *core.Kinetic, p *component.ProjectileComponent) bool {
	dirX, dirY := k.Heading()
	if dirX == 0 && dirY == 0 {
		return false
	}

	probe := parameter.PenetrationProbeLength
	if ev, hit := s.Resource.Raycast.Cast(k.X, k.Y, k.X+dirX*probe, k.Y+dirY*probe, core.LayerObstacle); hit {
		if component.NewObstacleRef(ev) == p.Obstacle {
			return true
		}
	}
	if ev, hit := s.Resource.Raycast.Cast(k.X, k.Y, k.X-dirX*probe, k.Y-dirY*probe, core.LayerObstacle); hit {
		if component.NewObstacleRef(ev) == p.Obstacle {
			return true
		}
	}
	return false
}

func (s *ProjectileSystem) exitObstacle(r *stepResult) {
	p := &r.prj

	p.WallsPenetrated++
	p.DamageMult *= p.Caliber.PostPenetrationDamageMult
	p.State = component.ProjectileFlying
	p.Obstacle = component.ObstacleRef{}
	p.PenetrationDepth = 0

	r.surface = surfacePenetrationExit
	r.surfX, r.surfY = r.kin.X, r.kin.Y
}

// travel accrues flown distance and burns any post-ricochet allowance
func (s *ProjectileSystem) travel(p *component.ProjectileComponent, dist float64) {
	p.TravelDistance += dist
	if !p.HasTravelLimit {
		return
	}
	p.TravelLimit -= dist
	if p.TravelLimit <= 0 {
		p.State = component.ProjectileExpired
	}
}

// apply commits one slot: store writes, events, metrics, and the
// shrapnel budget, strictly in snapshot order
func (s *ProjectileSystem) apply(r *stepResult) {
	q := s.Resource.Event.Queue
	frame := s.Resource.Time.FrameNumber

	if r.wound.target != core.InvalidEntity {
		event.EmitDamage(q, r.wound.target, r.prj.Shooter, r.wound.amount, r.wound.dirX, r.wound.dirY, frame)
	}

	switch r.surface {
	case surfaceRicochet:
		s.statRicochets.Add(1)
		s.World.PushEvent(event.EventRicochetEffectRequest, &event.RicochetEffectPayload{
			X:        r.surfX,
			Y:        r.surfY,
			AngleDeg: r.surfAngle,
			Bounce:   r.prj.RicochetCount,
		})
		event.EmitSound(q, event.SoundRicochet, r.surfX, r.surfY, frame)

	case surfacePenetrationEntry:
		s.statPenetrations.Add(1)
		s.World.PushEvent(event.EventPenetrationEffectRequest, &event.PenetrationEffectPayload{X: r.surfX, Y: r.surfY})
		event.EmitSound(q, event.SoundPenetration, r.surfX, r.surfY, frame)

	case surfacePenetrationExit:
		s.World.PushEvent(event.EventPenetrationEffectRequest, &event.PenetrationEffectPayload{X: r.surfX, Y: r.surfY, Exit: true})

	case surfaceStop:
		s.World.PushEvent(event.EventImpactEffectRequest, &event.ImpactEffectPayload{
			X:       r.surfX,
			Y:       r.surfY,
			NormalX: r.surfNX,
			NormalY: r.surfNY,
			Kind:    r.hitKind,
		})
		event.EmitSound(q, event.SoundImpact, r.surfX, r.surfY, frame)
	}

	if r.det != nil {
		s.detonate(r)
	}

	if r.prj.State.Terminal() {
		s.finish(r)
		return
	}

	s.Component.Kinetics.SetComponent(r.entity, component.KineticComponent{Kinetic: r.kin})
	s.Component.Projectiles.SetComponent(r.entity, r.prj)
}

// detonate applies a captured breaker burst: blast damage, the shrapnel
// fan under the global budget, and the host effect cues
func (s *ProjectileSystem) detonate(r *stepResult) {
	det := r.det
	q := s.Resource.Event.Queue
	frame := s.Resource.Time.FrameNumber
	prof := r.prj.Caliber

	if len(det.victims) > 0 {
		batch := event.AreaDamagePool.Acquire()
		for _, v := range det.victims {
			batch.Entries = append(batch.Entries, event.AreaDamageEntry{
				Target: v,
				Source: r.prj.Shooter,
				Amount: prof.ExplosionDamage,
			})
		}
		s.World.PushEvent(event.EventAreaDamageRequest, batch)
	}

	granted := s.Resource.Shrapnel.TryClaim(det.want)
	if granted > 0 {
		frag, ok := s.Resource.Arsenal.Profile("fragment")
		if !ok {
			// No fragment caliber loaded, burst stays a pure blast
			s.Resource.Shrapnel.Release(granted)
			granted = 0
		} else {
			s.offsets = physics.ShrapnelOffsets(granted, parameter.BreakerShrapnelHalfAngleDeg, &det.rng, s.offsets)
			for _, off := range s.offsets {
				fx, fy := vmath.RotateVector(det.dirX, det.dirY, off)
				spawnShot(s.World, shotSpec{
					prof:     frag,
					shooter:  r.prj.Shooter,
					team:     r.prj.Team,
					x:        det.x,
					y:        det.y,
					dirX:     fx,
					dirY:     fy,
					damage:   prof.ShrapnelDamage,
					target:   core.InvalidEntity,
					shrapnel: true,
				})
			}
			s.statSpawned.Add(int64(granted))
			s.statShrapnel.Add(int64(granted))
		}
	}
	if denied := det.want - granted; denied > 0 {
		s.statShrapnelLost.Add(int64(denied))
	}

	s.statDetonations.Add(1)
	s.World.PushEvent(event.EventDetonationEffectRequest, &event.DetonationEffectPayload{
		X:             det.x,
		Y:             det.y,
		DirX:          det.dirX,
		DirY:          det.dirY,
		Radius:        parameter.BreakerExplosionRadius,
		ShrapnelCount: granted,
	})
	event.EmitSound(q, event.SoundDetonation, det.x, det.y, frame)
}

// finish emits the termination notice and queues the entity for the
// batch destroy at the end of the tick
func (s *ProjectileSystem) finish(r *stepResult) {
	kind := event.TerminatedExpired
	switch {
	case r.prj.State == component.ProjectileDetonated:
		kind = event.TerminatedDetonated
	case r.prj.State == component.ProjectileHit && r.hitKind == core.HitLivingActor:
		kind = event.TerminatedHit
	case r.prj.State == component.ProjectileHit:
		kind = event.TerminatedStopped
	}

	event.EmitProjectileTerminated(s.Resource.Event.Queue, r.entity, kind, s.Resource.Time.FrameNumber)
	if r.prj.Shrapnel {
		s.Resource.Shrapnel.Release(1)
	}
	s.dead = append(s.dead, r.entity)
}
