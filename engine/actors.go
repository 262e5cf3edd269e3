package engine

import (
	"math"

	"github.com/lixenwraith/ballistic/component"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/physics"
	"github.com/lixenwraith/ballistic/vmath"
)

//go:generate go tool mockgen -destination=./mocks/actorquery_mock.go -package=mocks . ActorQuery

// ActorHit is one actor body crossed by a swept segment
type ActorHit struct {
	Entity core.Entity

	// X and Y are the entry point on the body circle in pixels
	X, Y float64

	// T is the segment parameter of the entry in [0, 1]
	T float64
}

// ActorQuery resolves projectile sweeps and blast queries against live
// actors. Hosts plug in their own body store; ActorStore is the
// reference implementation over the world's component stores
type ActorQuery interface {
	// FirstOnSegment returns the living actor whose body the segment
	// enters first, skipping the excluded entities, ok=false when none
	// is crossed
	FirstOnSegment(x1, y1, x2, y2 float64, exclude ...core.Entity) (ActorHit, bool)

	// AppendInRadius appends living actors whose bodies overlap the
	// circle to dst and returns the extended slice
	AppendInRadius(dst []core.Entity, x, y, radius float64) []core.Entity

	// AppendHostile appends living actors hostile to team as homing
	// candidates and returns the extended slice
	AppendHostile(dst []physics.HomingCandidate, team core.Team) []physics.HomingCandidate

	// Position returns an actor's current position
	Position(e core.Entity) (float64, float64, bool)

	// Alive reports whether the entity is a living actor
	Alive(e core.Entity) bool
}

// ActorStore answers actor queries from the world's actor and kinetic
// stores. All methods take only read locks, so parallel projectile
// batches may query concurrently
type ActorStore struct {
	actors   *Store[component.ActorComponent]
	kinetics *Store[component.KineticComponent]
}

// NewActorStore builds the reference query over the world's stores
func NewActorStore(w *World) *ActorStore {
	return &ActorStore{
		actors:   w.Components.Actors,
		kinetics: w.Components.Kinetics,
	}
}

func (s *ActorStore) FirstOnSegment(x1, y1, x2, y2 float64, exclude ...core.Entity) (ActorHit, bool) {
	best := ActorHit{T: math.MaxFloat64}
	found := false

	s.actors.Range(func(e core.Entity, a component.ActorComponent) bool {
		if !a.Alive || excluded(e, exclude) {
			return true
		}
		k, ok := s.kinetics.GetComponent(e)
		if !ok {
			return true
		}
		// Strict < keeps the earlier-registered actor on exact ties
		if t, hit := segmentCircleEntry(x1, y1, x2, y2, k.X, k.Y, a.Radius); hit && t < best.T {
			best = ActorHit{
				Entity: e,
				X:      vmath.Lerp(x1, x2, t),
				Y:      vmath.Lerp(y1, y2, t),
				T:      t,
			}
			found = true
		}
		return true
	})

	return best, found
}

func (s *ActorStore) AppendInRadius(dst []core.Entity, x, y, radius float64) []core.Entity {
	s.actors.Range(func(e core.Entity, a component.ActorComponent) bool {
		if !a.Alive {
			return true
		}
		k, ok := s.kinetics.GetComponent(e)
		if !ok {
			return true
		}
		// Body overlap, not center containment
		reach := radius + a.Radius
		if vmath.MagnitudeSq(k.X-x, k.Y-y) <= reach*reach {
			dst = append(dst, e)
		}
		return true
	})
	return dst
}

func (s *ActorStore) AppendHostile(dst []physics.HomingCandidate, team core.Team) []physics.HomingCandidate {
	s.actors.Range(func(e core.Entity, a component.ActorComponent) bool {
		if !a.Alive || !team.Hostile(a.Team) {
			return true
		}
		k, ok := s.kinetics.GetComponent(e)
		if !ok {
			return true
		}
		dst = append(dst, physics.HomingCandidate{Entity: e, X: k.X, Y: k.Y})
		return true
	})
	return dst
}

func (s *ActorStore) Position(e core.Entity) (float64, float64, bool) {
	k, ok := s.kinetics.GetComponent(e)
	if !ok {
		return 0, 0, false
	}
	return k.X, k.Y, true
}

func (s *ActorStore) Alive(e core.Entity) bool {
	a, ok := s.actors.GetComponent(e)
	return ok && a.Alive
}

func excluded(e core.Entity, exclude []core.Entity) bool {
	for _, x := range exclude {
		if e == x {
			return true
		}
	}
	return false
}

// segmentCircleEntry solves |S(t)-C| = r for the earliest t in [0, 1]
// along the swept segment. A start inside the circle reports t = 0
func segmentCircleEntry(x1, y1, x2, y2, cx, cy, r float64) (float64, bool) {
	dx := x2 - x1
	dy := y2 - y1
	fx := x1 - cx
	fy := y1 - cy

	a := dx*dx + dy*dy
	if a == 0 {
		// Degenerate segment, containment test only
		return 0, fx*fx+fy*fy <= r*r
	}

	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - r*r

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	if t2 < 0 || t1 > 1 {
		return 0, false
	}
	if t1 < 0 {
		// Segment starts inside the body
		return 0, true
	}
	return t1, true
}
