package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballistic/component"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/engine"
	"github.com/lixenwraith/ballistic/event"
	"github.com/lixenwraith/ballistic/status"
)

func TestThrownGrenadeRollsToTargetAndBursts(t *testing.T) {
	rec := &recorder{types: []event.EventType{event.EventGrenadeDetonated}}
	c := newArena(30, nil, rec)

	thrower := c.World.NewEntity().
		WithKinetic(component.KineticComponent{}).
		Build()

	c.World.PushEvent(event.EventGrenadeThrowRequest, &event.GrenadeThrowRequestPayload{
		Thrower: thrower,
		TargetX: 300,
		TargetY: 0,
	})
	c.Tick()

	if n := c.World.Components.Grenades.CountEntities(); n != 1 {
		t.Fatalf("Expected 1 grenade in play, got %d", n)
	}
	if n := metricInt(c, status.MetricGrenadesActive); n != 1 {
		t.Errorf("Expected active gauge 1, got %d", n)
	}

	// Roll out well before the 4 second fuse
	c.RunTicks(149)
	var nade core.Entity
	var g component.GrenadeComponent
	c.World.Components.Grenades.Range(func(e core.Entity, gc component.GrenadeComponent) bool {
		nade, g = e, gc
		return false
	})
	kc, _ := c.World.Components.Kinetics.GetComponent(nade)
	if !g.Resting {
		t.Fatal("Expected the grenade at rest after 2.5 seconds")
	}
	if kc.VelX != 0 || kc.VelY != 0 {
		t.Errorf("Expected zero velocity at rest, got (%v, %v)", kc.VelX, kc.VelY)
	}
	if math.Abs(kc.X-300) > 20 {
		t.Errorf("Expected the roll to die near x=300, got %v", kc.X)
	}
	restX := kc.X

	c.RunTicks(110)
	if n := c.World.Components.Grenades.CountEntities(); n != 0 {
		t.Fatal("Expected the fuse to burst the grenade")
	}
	if n := metricInt(c, status.MetricGrenadesActive); n != 0 {
		t.Errorf("Expected active gauge 0 after the burst, got %d", n)
	}

	dets := rec.ofType(event.EventGrenadeDetonated)
	if len(dets) != 1 {
		t.Fatalf("Expected 1 burst notice, got %d", len(dets))
	}
	p := dets[0].Payload.(*event.GrenadeDetonatedPayload)
	if p.Grenade != nade {
		t.Error("Expected the notice to name the grenade")
	}
	if p.AirBurst {
		t.Error("Expected a ground burst after the roll died")
	}
	if p.X != restX {
		t.Errorf("Expected the burst at the rest position %v, got %v", restX, p.X)
	}
	if p.Radius != 100 {
		t.Errorf("Expected blast radius 100, got %v", p.Radius)
	}
}

func TestLongHeldGrenadeAirBursts(t *testing.T) {
	rec := &recorder{types: []event.EventType{event.EventGrenadeDetonated}}
	c := newArena(31, nil, rec)

	thrower := c.World.NewEntity().
		WithKinetic(component.KineticComponent{}).
		Build()

	// Pin pulled 3.95 seconds ago, almost no fuse left at release
	c.World.PushEvent(event.EventGrenadeThrowRequest, &event.GrenadeThrowRequestPayload{
		Thrower:  thrower,
		TargetX:  300,
		HoldTime: 3.95,
	})
	c.RunTicks(6)

	dets := rec.ofType(event.EventGrenadeDetonated)
	if len(dets) != 1 {
		t.Fatalf("Expected the short fuse burst by tick 6, got %d notices", len(dets))
	}
	p := dets[0].Payload.(*event.GrenadeDetonatedPayload)
	if !p.AirBurst {
		t.Error("Expected an air burst mid-roll")
	}
	if p.X <= 0 || p.X >= 40 {
		t.Errorf("Expected the burst a short roll out, got x=%v", p.X)
	}

	// Held past the whole fuse, the grenade bursts on release
	c.World.PushEvent(event.EventGrenadeThrowRequest, &event.GrenadeThrowRequestPayload{
		Thrower:  thrower,
		TargetX:  300,
		HoldTime: 5,
	})
	c.Tick()
	if n := c.World.Components.Grenades.CountEntities(); n != 0 {
		t.Fatal("Expected the overheld grenade to burst on its first tick")
	}

	c.Tick()
	dets = rec.ofType(event.EventGrenadeDetonated)
	if len(dets) != 2 {
		t.Fatalf("Expected 2 burst notices, got %d", len(dets))
	}
	p = dets[1].Payload.(*event.GrenadeDetonatedPayload)
	if !p.AirBurst {
		t.Error("Expected the overheld burst in motion")
	}
	if p.X <= 0 || p.X >= 10 {
		t.Errorf("Expected the burst one roll step out, got x=%v", p.X)
	}
}

func TestGrenadeBouncesOffWall(t *testing.T) {
	rec := &recorder{types: []event.EventType{event.EventSoundRequest}}
	grid := engine.NewObstacleGrid(20, 1, 32)
	grid.SetSolid(10, 0, true)
	c := newArena(32, grid, rec)

	thrower := c.World.NewEntity().
		WithKinetic(component.KineticComponent{Kinetic: core.Kinetic{X: 30, Y: 16}}).
		Build()

	// Overthrown into the wall at x=320
	c.World.PushEvent(event.EventGrenadeThrowRequest, &event.GrenadeThrowRequestPayload{
		Thrower: thrower,
		TargetX: 630,
		TargetY: 16,
	})
	c.RunTicks(181)

	var nade core.Entity
	var g component.GrenadeComponent
	c.World.Components.Grenades.Range(func(e core.Entity, gc component.GrenadeComponent) bool {
		nade, g = e, gc
		return false
	})
	if nade == core.InvalidEntity {
		t.Fatal("Expected the grenade still in play before the fuse ran out")
	}
	if !g.Resting {
		t.Fatal("Expected the grenade at rest after the bounce")
	}
	kc, _ := c.World.Components.Kinetics.GetComponent(nade)
	if kc.X >= 320 {
		t.Errorf("Expected the bounce to keep the grenade on the near side, got x=%v", kc.X)
	}
	if kc.X <= 200 {
		t.Errorf("Expected the rebound to die close to the wall, got x=%v", kc.X)
	}
	if n := rec.sounds(event.SoundGrenadeBounce); n != 1 {
		t.Errorf("Expected exactly 1 bounce sound, got %d", n)
	}
}

func TestBurstDamageNeedsLineOfSight(t *testing.T) {
	rec := &recorder{types: []event.EventType{event.EventGrenadeDetonated}}
	grid := engine.NewObstacleGrid(20, 8, 32)
	grid.SetSolid(3, 2, true)
	c := newArena(33, grid, rec)

	exposed := spawnActor(c, 160, 48, core.TeamEnemy, 100, 8)
	shielded := spawnActor(c, 100, 144, core.TeamEnemy, 100, 8)
	distant := spawnActor(c, 260, 48, core.TeamEnemy, 100, 8)

	c.World.NewEntity().
		WithKinetic(component.KineticComponent{Kinetic: core.Kinetic{X: 100, Y: 48}}).
		WithGrenade(component.GrenadeComponent{
			Thrower:  core.InvalidEntity,
			FuseLeft: 0.03,
			Radius:   100,
			Damage:   60,
		}).
		Build()

	c.RunTicks(3)

	a, _ := c.World.Components.Actors.GetComponent(exposed)
	if a.Health != 40 {
		t.Errorf("Expected the exposed body hit for 60, got health %v", a.Health)
	}
	b, _ := c.World.Components.Actors.GetComponent(shielded)
	if b.Health != 100 {
		t.Errorf("Expected the wall to shield the second body, got health %v", b.Health)
	}
	d, _ := c.World.Components.Actors.GetComponent(distant)
	if d.Health != 100 {
		t.Errorf("Expected the distant body outside the radius, got health %v", d.Health)
	}

	dets := rec.ofType(event.EventGrenadeDetonated)
	if len(dets) != 1 {
		t.Fatalf("Expected 1 burst notice, got %d", len(dets))
	}
	p := dets[0].Payload.(*event.GrenadeDetonatedPayload)
	if p.AirBurst {
		t.Error("Expected a ground burst from a parked grenade")
	}
	if p.X != 100 || p.Y != 48 {
		t.Errorf("Expected the burst at (100, 48), got (%v, %v)", p.X, p.Y)
	}
}
