package vmath

import (
	"math"
)

// GridTraverser implements a zero-allocation iterator for Supercover DDA grid traversal.
// Cells are unit squares; callers working in larger tiles divide coordinates by the
// tile size first.
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64

	// Entry bookkeeping for the current cell: segment parameter at the
	// crossing and the axis stepped to reach it
	tEntry               float64
	lastStepX, lastStepY int

	started bool
	done    bool
}

// NewGridTraverser creates a new iterator from (x1, y1) to (x2, y2).
func NewGridTraverser(x1, y1, x2, y2 float64) GridTraverser {
	t := GridTraverser{
		currX: int(math.Floor(x1)), currY: int(math.Floor(y1)),
		targetX: int(math.Floor(x2)), targetY: int(math.Floor(y2)),
	}

	dx := x2 - x1
	dy := y2 - y1

	t.stepX, t.stepY = 1, 1
	if dx < 0 {
		t.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
	}

	if dx == 0 {
		t.tMaxX = math.Inf(1)
	} else {
		t.tDeltaX = 1 / dx
		frac := x1 - math.Floor(x1)
		if t.stepX > 0 {
			t.tMaxX = (1 - frac) * t.tDeltaX
		} else {
			t.tMaxX = frac * t.tDeltaX
		}
	}

	if dy == 0 {
		t.tMaxY = math.Inf(1)
	} else {
		t.tDeltaY = 1 / dy
		frac := y1 - math.Floor(y1)
		if t.stepY > 0 {
			t.tMaxY = (1 - frac) * t.tDeltaY
		} else {
			t.tMaxY = frac * t.tDeltaY
		}
	}

	return t
}

// Next advances the traverser to the next cell.
// Returns true if a valid cell is available via Pos().
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	t.lastStepX, t.lastStepY = 0, 0

	if t.tMaxX < t.tMaxY {
		if t.currX != t.targetX {
			t.advanceX()
		} else {
			t.advanceY()
		}
	} else if t.tMaxX > t.tMaxY {
		if t.currY != t.targetY {
			t.advanceY()
		} else {
			t.advanceX()
		}
	} else {
		// Diagonal crossing, step both axes
		if t.currX != t.targetX {
			t.advanceX()
		}
		if t.currY != t.targetY {
			t.advanceY()
		}
	}

	return true
}

func (t *GridTraverser) advanceX() {
	t.tEntry = t.tMaxX
	t.currX += t.stepX
	t.tMaxX += t.tDeltaX
	t.lastStepX = t.stepX
}

func (t *GridTraverser) advanceY() {
	t.tEntry = t.tMaxY
	t.currY += t.stepY
	t.tMaxY += t.tDeltaY
	t.lastStepY = t.stepY
}

// Pos returns the current grid coordinates.
func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// EntryT returns the segment parameter in [0, 1] at which the current cell was
// entered. Zero for the starting cell.
func (t *GridTraverser) EntryT() float64 {
	if t.lastStepX == 0 && t.lastStepY == 0 {
		return 0
	}
	return math.Min(t.tEntry, 1)
}

// EntryNormal returns the unit normal of the cell face crossed when entering
// the current cell, pointing back toward the previous cell.
// Returns (0, 0) for the starting cell.
func (t *GridTraverser) EntryNormal() (float64, float64) {
	nx, ny := float64(-t.lastStepX), float64(-t.lastStepY)
	if nx != 0 && ny != 0 {
		inv := 1 / math.Sqrt2
		return nx * inv, ny * inv
	}
	return nx, ny
}
