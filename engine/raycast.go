package engine

import (
	"github.com/lixenwraith/ballistic/core"
	"github.com/lixenwraith/ballistic/vmath"
)

//go:generate go tool mockgen -destination=./mocks/raycaster_mock.go -package=mocks . Raycaster

// Raycaster resolves swept segments against the static environment
// Hosts plug in their own world geometry; ObstacleGrid is the reference
// implementation used by the tests and the bench harness
type Raycaster interface {
	// Cast traces the segment (x1,y1)-(x2,y2) in pixels and returns the
	// first impact matching mask, ok=false when the path is clear
	Cast(x1, y1, x2, y2 float64, mask core.Layer) (core.ImpactEvent, bool)

	// LineOfSight reports whether the segment is free of solid geometry
	LineOfSight(x1, y1, x2, y2 float64) bool
}

// ObstacleGrid is a uniform grid of solid cells backing the Raycaster
// interface. Cells outside the grid bounds are open
type ObstacleGrid struct {
	cellSize float64
	width    int
	height   int
	solid    []bool
}

// NewObstacleGrid creates an empty grid of width x height cells
func NewObstacleGrid(width, height int, cellSize float64) *ObstacleGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &ObstacleGrid{
		cellSize: cellSize,
		width:    width,
		height:   height,
		solid:    make([]bool, width*height),
	}
}

// NewObstacleGridFromRows builds a grid from text rows, '#' marks solid
// cells. Row order is top to bottom, matching increasing Y
func NewObstacleGridFromRows(rows []string, cellSize float64) *ObstacleGrid {
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	g := NewObstacleGrid(width, height, cellSize)
	for ty, row := range rows {
		for tx, ch := range row {
			if ch == '#' {
				g.SetSolid(tx, ty, true)
			}
		}
	}
	return g
}

// CellSize returns the cell edge length in pixels
func (g *ObstacleGrid) CellSize() float64 {
	return g.cellSize
}

// SetSolid marks one cell, out-of-bounds coordinates are ignored
func (g *ObstacleGrid) SetSolid(tx, ty int, solid bool) {
	if tx < 0 || ty < 0 || tx >= g.width || ty >= g.height {
		return
	}
	g.solid[ty*g.width+tx] = solid
}

// SetSolidRect marks every cell in the inclusive rectangle
func (g *ObstacleGrid) SetSolidRect(tx0, ty0, tx1, ty1 int, solid bool) {
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			g.SetSolid(tx, ty, solid)
		}
	}
}

// Solid reports whether a cell blocks projectiles
func (g *ObstacleGrid) Solid(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= g.width || ty >= g.height {
		return false
	}
	return g.solid[ty*g.width+tx]
}

// Cast walks the segment through the grid and returns the first solid
// cell crossed. A cast that begins inside a solid cell reports a
// zero-distance hit with the normal facing back along the ray
func (g *ObstacleGrid) Cast(x1, y1, x2, y2 float64, mask core.Layer) (core.ImpactEvent, bool) {
	if mask&core.LayerObstacle == 0 {
		return core.ImpactEvent{}, false
	}

	inv := 1 / g.cellSize
	tr := vmath.NewGridTraverser(x1*inv, y1*inv, x2*inv, y2*inv)
	segLen := vmath.Magnitude(x2-x1, y2-y1)

	for tr.Next() {
		tx, ty := tr.Pos()
		if !g.Solid(tx, ty) {
			continue
		}

		t := tr.EntryT()
		nx, ny := tr.EntryNormal()
		if nx == 0 && ny == 0 {
			dx, dy := vmath.Normalize2D(x2-x1, y2-y1)
			nx, ny = -dx, -dy
		}

		return core.ImpactEvent{
			PointX:   vmath.Lerp(x1, x2, t),
			PointY:   vmath.Lerp(y1, y2, t),
			NormalX:  nx,
			NormalY:  ny,
			Kind:     core.HitTile,
			Hit:      core.InvalidEntity,
			TileX:    tx,
			TileY:    ty,
			Distance: segLen * t,
		}, true
	}

	return core.ImpactEvent{}, false
}

// LineOfSight reports whether the segment crosses no solid cells
func (g *ObstacleGrid) LineOfSight(x1, y1, x2, y2 float64) bool {
	_, hit := g.Cast(x1, y1, x2, y2, core.LayerObstacle)
	return !hit
}
