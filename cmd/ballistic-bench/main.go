package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/lixenwraith/ballistic/component"
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/engine"
	"github.com/lixenwraith/ballistic/event"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/status"
	"github.com/lixenwraith/ballistic/system"
	"github.com/lixenwraith/ballistic/vmath"
)

var (
	seed     = flag.Uint64("seed", 42, "Simulation seed, same seed reproduces the run")
	ticks    = flag.Int("ticks", 3600, "Ticks to simulate (60 per second)")
	shooters = flag.Int("shooters", 24, "Firing actors placed on the arena rim")
	targets  = flag.Int("targets", 40, "Target bodies scattered inside")
	caliber  = flag.String("caliber", "rifle", "Arsenal profile the shooters fire")
	tilesW   = flag.Int("width", 40, "Arena width in 32px tiles")
	tilesH   = flag.Int("height", 25, "Arena height in 32px tiles")
	lobEvery = flag.Int("grenade-every", 120, "Ticks between grenade lobs, 0 disables")
)

const cellSize = 32.0

func main() {
	flag.Parse()

	place := vmath.NewFastRand(*seed)
	grid := buildArena(*tilesW, *tilesH, place)

	c := engine.NewContext(engine.Config{Seed: *seed, Raycast: grid})
	system.Register(c)

	prof, ok := c.World.Resources.Arsenal.Profile(*caliber)
	if !ok {
		fmt.Printf("unknown caliber %q\n", *caliber)
		os.Exit(1)
	}

	cx := float64(*tilesW) * cellSize / 2
	cy := float64(*tilesH) * cellSize / 2
	ringX := cx - 3*cellSize
	ringY := cy - 3*cellSize

	// Shooters ring the arena aiming inward, each spraying one degree
	// per tick around its station
	ids := make([]core.Entity, 0, *shooters)
	aims := make([]float64, 0, *shooters)
	for i := 0; i < *shooters; i++ {
		ang := 2 * math.Pi * float64(i) / float64(*shooters)
		x := cx + ringX*math.Cos(ang)
		y := cy + ringY*math.Sin(ang)
		grid.SetSolid(int(x/cellSize), int(y/cellSize), false)
		e := c.World.NewEntity().
			WithKinetic(component.KineticComponent{Kinetic: core.Kinetic{X: x, Y: y}}).
			WithActor(component.ActorComponent{Team: core.TeamPlayer, Health: 100, MaxHealth: 100, Alive: true, Radius: 8}).
			WithWeapon(component.WeaponComponent{Caliber: prof}).
			Build()
		ids = append(ids, e)
		aims = append(aims, ang+math.Pi)
	}

	for i := 0; i < *targets; i++ {
		var x, y float64
		for try := 0; try < 100; try++ {
			x = place.Range(2*cellSize, float64(*tilesW)*cellSize-2*cellSize)
			y = place.Range(2*cellSize, float64(*tilesH)*cellSize-2*cellSize)
			if !grid.Solid(int(x/cellSize), int(y/cellSize)) {
				break
			}
		}
		c.World.NewEntity().
			WithKinetic(component.KineticComponent{Kinetic: core.Kinetic{X: x, Y: y}}).
			WithActor(component.ActorComponent{Team: core.TeamEnemy, Health: 100, MaxHealth: 100, Alive: true, Radius: 8}).
			Build()
	}

	start := time.Now()
	for tick := 0; tick < *ticks; tick++ {
		for i, e := range ids {
			a := aims[i] + float64(tick)*vmath.DegToRad
			c.World.PushEvent(event.EventFireRequest, &event.FireRequestPayload{
				Shooter: e,
				AimX:    math.Cos(a),
				AimY:    math.Sin(a),
			})
		}
		if *lobEvery > 0 && tick%*lobEvery == 0 {
			lob := tick / *lobEvery
			c.World.PushEvent(event.EventGrenadeThrowRequest, &event.GrenadeThrowRequestPayload{
				Thrower: ids[lob%len(ids)],
				TargetX: cx + place.Range(-4*cellSize, 4*cellSize),
				TargetY: cy + place.Range(-4*cellSize, 4*cellSize),
			})
		}
		c.Tick()
	}
	elapsed := time.Since(start)

	ints := c.World.Resources.Status.Ints
	floats := c.World.Resources.Status.Floats
	standing := 0
	c.World.Components.Actors.Range(func(_ core.Entity, a component.ActorComponent) bool {
		if a.Alive && a.Team == core.TeamEnemy {
			standing++
		}
		return true
	})

	simSeconds := float64(*ticks) * parameter.TickSeconds
	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Seed:           %d\n", *seed)
	fmt.Printf("  Arena:          %dx%d tiles, %d shooters (%s), %d targets\n",
		*tilesW, *tilesH, *shooters, prof.Name, *targets)
	fmt.Printf("  Ticks:          %d (%.1fs simulated)\n", *ticks, simSeconds)
	fmt.Printf("  Wall Time:      %v\n", elapsed)
	fmt.Printf("  Ticks/sec:      %.0f\n", float64(*ticks)/elapsed.Seconds())
	fmt.Printf("  Realtime Ratio: %.1fx\n", simSeconds/elapsed.Seconds())
	fmt.Printf("  Shots Fired:    %d\n", ints.Get(status.MetricShotsFired).Load())
	fmt.Printf("  Rounds Spawned: %d\n", ints.Get(status.MetricProjectilesSpawned).Load())
	fmt.Printf("  Ricochets:      %d\n", ints.Get(status.MetricRicochets).Load())
	fmt.Printf("  Penetrations:   %d\n", ints.Get(status.MetricPenetrations).Load())
	fmt.Printf("  Detonations:    %d\n", ints.Get(status.MetricDetonations).Load())
	fmt.Printf("  Shrapnel:       %d spawned, %d denied\n",
		ints.Get(status.MetricShrapnelSpawned).Load(), ints.Get(status.MetricShrapnelDenied).Load())
	fmt.Printf("  Damage Dealt:   %.0f\n", floats.Get(status.MetricDamageDealt).Get())
	fmt.Printf("  Kills:          %d (%d targets standing)\n", ints.Get(status.MetricKills).Load(), standing)
	fmt.Printf("  Still Flying:   %d rounds, %d grenades\n",
		ints.Get(status.MetricProjectilesActive).Load(), ints.Get(status.MetricGrenadesActive).Load())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:    %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:        %d\n", m.Mallocs)
}

// buildArena walls the border and scatters interior pillars for rounds
// to bounce off
func buildArena(w, h int, rng *vmath.FastRand) *engine.ObstacleGrid {
	grid := engine.NewObstacleGrid(w, h, cellSize)
	grid.SetSolidRect(0, 0, w-1, 0, true)
	grid.SetSolidRect(0, h-1, w-1, h-1, true)
	grid.SetSolidRect(0, 0, 0, h-1, true)
	grid.SetSolidRect(w-1, 0, w-1, h-1, true)

	if w < 12 || h < 12 {
		return grid
	}
	for i := 0; i < w*h/40; i++ {
		tx := 4 + rng.Intn(w-8)
		ty := 4 + rng.Intn(h-8)
		grid.SetSolid(tx, ty, true)
		if rng.Chance(0.5) {
			grid.SetSolid(tx+1, ty, true)
		}
	}
	return grid
}
