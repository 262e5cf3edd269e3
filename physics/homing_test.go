package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/parameter"
	"github.com/lixenwraith/ballistic/vmath"
)

func TestFindBestTargetPicksLowestScore(t *testing.T) {
	cands := []HomingCandidate{
		{Entity: 1, X: 50, Y: 30},  // perp 30, dist ~58: score ~35.8
		{Entity: 2, X: 100, Y: 0},  // perp 0, dist 100: score 10
		{Entity: 3, X: 200, Y: 10}, // perp 10, dist ~200: score ~30
	}
	got, ok := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil)
	if !ok || got != 2 {
		t.Errorf("best target = (%v, %v), want entity 2", got, ok)
	}
}

func TestFindBestTargetAngleGate(t *testing.T) {
	deg := func(a float64) (float64, float64) {
		return 100 * math.Cos(a*vmath.DegToRad), 100 * math.Sin(a*vmath.DegToRad)
	}

	x, y := deg(120)
	if _, ok := FindBestTarget([]HomingCandidate{{Entity: 1, X: x, Y: y}}, 0, 0, 1, 0, 110, 500, nil); ok {
		t.Error("target 120 degrees off aim accepted with a 110 degree cone")
	}

	x, y = deg(100)
	if _, ok := FindBestTarget([]HomingCandidate{{Entity: 1, X: x, Y: y}}, 0, 0, 1, 0, 110, 500, nil); !ok {
		t.Error("target 100 degrees off aim rejected with a 110 degree cone")
	}

	behind := []HomingCandidate{{Entity: 1, X: -50, Y: 0}}
	if _, ok := FindBestTarget(behind, 0, 0, 1, 0, 110, 500, nil); ok {
		t.Error("target directly behind accepted")
	}
}

func TestFindBestTargetPerpGate(t *testing.T) {
	// 89 degrees off aim but 600 px from the aim line
	cands := []HomingCandidate{{Entity: 1, X: 10, Y: 600}}
	if _, ok := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil); ok {
		t.Error("target beyond the perpendicular corridor accepted")
	}
	if _, ok := FindBestTarget(cands, 0, 0, 1, 0, 110, 700, nil); !ok {
		t.Error("target inside a widened corridor rejected")
	}
}

func TestFindBestTargetMinDistance(t *testing.T) {
	cands := []HomingCandidate{{Entity: 1, X: 0.5, Y: 0}}
	if _, ok := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil); ok {
		t.Error("target on top of the muzzle accepted")
	}
}

func TestFindBestTargetLOSGate(t *testing.T) {
	cands := []HomingCandidate{
		{Entity: 1, X: 50, Y: 0},  // closer, better score
		{Entity: 2, X: 100, Y: 0},
	}

	blockNear := func(x, y float64) bool { return x != 50 }
	got, ok := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, blockNear)
	if !ok || got != 2 {
		t.Errorf("best visible target = (%v, %v), want entity 2", got, ok)
	}

	got, ok = FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil)
	if !ok || got != 1 {
		t.Errorf("best target without sight checks = (%v, %v), want entity 1", got, ok)
	}

	blockAll := func(x, y float64) bool { return false }
	if _, ok := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, blockAll); ok {
		t.Error("fully occluded candidates still produced a target")
	}
}

func TestFindBestTargetTiebreakOrder(t *testing.T) {
	twin := func(first, second core.Entity) (core.Entity, bool) {
		cands := []HomingCandidate{
			{Entity: first, X: 100, Y: 5},
			{Entity: second, X: 100, Y: 5},
		}
		return FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil)
	}

	if got, ok := twin(1, 2); !ok || got != 1 {
		t.Errorf("tie pick = (%v, %v), want the first candidate", got, ok)
	}
	if got, ok := twin(2, 1); !ok || got != 2 {
		t.Errorf("tie pick after reorder = (%v, %v), want the first candidate", got, ok)
	}
}

func TestFindBestTargetBoundary(t *testing.T) {
	cands := []HomingCandidate{
		{Entity: 1, X: 100, Y: 0}, // score 10
		{Entity: 2, X: 80, Y: 0},  // score 8
	}
	if got, _ := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil); got != 2 {
		t.Errorf("nearer on-axis target lost: got %v", got)
	}

	cands[1] = HomingCandidate{Entity: 2, X: 120, Y: 0} // score 12
	if got, _ := FindBestTarget(cands, 0, 0, 1, 0, 110, 500, nil); got != 1 {
		t.Errorf("farther on-axis target won: got %v", got)
	}
}

func TestFindBestTargetDegenerateAim(t *testing.T) {
	cands := []HomingCandidate{{Entity: 1, X: 100, Y: 0}}
	if _, ok := FindBestTarget(cands, 0, 0, 0, 0, 110, 500, nil); ok {
		t.Error("zero aim direction produced a target")
	}
}

func TestSteerTurnRateClamp(t *testing.T) {
	k := core.Kinetic{VelX: 100}
	dt := parameter.TickSeconds

	if !Steer(&k, 0, 100, 1, 0, 180, 110, dt) {
		t.Fatal("steer toward a hard-left target did nothing")
	}

	wantStep := 180 * vmath.DegToRad * dt // 3 degrees at 60 Hz
	if got := vmath.AngleBetween(1, 0, k.VelX, k.VelY); math.Abs(got-wantStep) > epsilon {
		t.Errorf("turn this step = %v rad, want %v", got, wantStep)
	}
	if speed := k.Speed(); math.Abs(speed-100) > epsilon {
		t.Errorf("speed after steer = %v, want 100", speed)
	}
}

func TestSteerTotalBudgetSkip(t *testing.T) {
	heading := func(deg float64) (float64, float64) {
		return 100 * math.Cos(deg*vmath.DegToRad), 100 * math.Sin(deg*vmath.DegToRad)
	}
	targetX := 200 * math.Cos(150*vmath.DegToRad)
	targetY := 200 * math.Sin(150*vmath.DegToRad)
	dt := parameter.TickSeconds

	// Already 109 degrees from the firing direction; one more 3 degree
	// step would cross the 110 degree budget, so nothing moves.
	k := core.Kinetic{}
	k.VelX, k.VelY = heading(109)
	beforeX, beforeY := k.VelX, k.VelY
	if Steer(&k, targetX, targetY, 1, 0, 180, 110, dt) {
		t.Error("steer across the turn budget was not skipped")
	}
	if k.VelX != beforeX || k.VelY != beforeY {
		t.Error("skipped steer still changed the velocity")
	}

	// From 105 degrees the same step lands inside the budget
	k.VelX, k.VelY = heading(105)
	if !Steer(&k, targetX, targetY, 1, 0, 180, 110, dt) {
		t.Fatal("legal steer inside the budget was skipped")
	}
	got := vmath.AngleBetween(1, 0, k.VelX, k.VelY) * vmath.RadToDeg
	if math.Abs(got-108) > 1e-6 {
		t.Errorf("heading after steer = %v degrees, want 108", got)
	}
}

func TestSteerTurnBoundHolds(t *testing.T) {
	k := core.Kinetic{VelX: 200}
	dt := parameter.TickSeconds
	bound := 110 * vmath.DegToRad

	// Target far off the legal cone; the projectile keeps flying while
	// steering, and the cumulative turn must never cross the budget.
	for tick := 0; tick < 600; tick++ {
		Steer(&k, -500, 500, 1, 0, 180, 110, dt)
		Advance(&k, dt)
		if turn := vmath.AngleBetween(1, 0, k.VelX, k.VelY); turn > bound+1e-6 {
			t.Fatalf("tick %d: cumulative turn %v rad crossed the %v budget", tick, turn, bound)
		}
	}
	if turn := vmath.AngleBetween(1, 0, k.VelX, k.VelY); turn < 60*vmath.DegToRad {
		t.Errorf("steering never engaged: final turn only %v rad", turn)
	}
}

func TestSteerDegenerate(t *testing.T) {
	dt := parameter.TickSeconds

	still := core.Kinetic{}
	if Steer(&still, 100, 0, 1, 0, 180, 110, dt) {
		t.Error("motionless projectile steered")
	}

	k := core.Kinetic{X: 100, Y: 0, VelX: 100}
	if Steer(&k, 100, 0.2, 1, 0, 180, 110, dt) {
		t.Error("steered at a target on top of the projectile")
	}
}
