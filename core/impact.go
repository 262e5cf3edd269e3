package core

// HitKind classifies what a cast ray struck
type HitKind uint8

const (
	HitNone HitKind = iota
	HitObstacle
	HitTile
	HitLivingActor
	HitDeadActor
	HitOther
)

// Layer is a collision layer bitmask for raycast filtering
type Layer uint8

const (
	LayerObstacle Layer = 1 << iota
	LayerActor
)

// LayerAll matches every collision layer
const LayerAll = LayerObstacle | LayerActor

// ImpactEvent describes the first surface along a cast ray
type ImpactEvent struct {
	// PointX and PointY are the impact position in pixels
	PointX, PointY float64

	// NormalX and NormalY form the unit surface normal, pointing away from the surface
	NormalX, NormalY float64

	// Kind classifies the struck object
	Kind HitKind

	// Hit identifies the struck object, InvalidEntity for grid tiles
	Hit Entity

	// TileX and TileY identify the struck grid cell when Kind is HitTile
	TileX, TileY int

	// Distance from the ray origin to the impact point in pixels
	Distance float64
}

// Solid reports whether the struck surface stops projectiles
func (e *ImpactEvent) Solid() bool {
	return e.Kind == HitObstacle || e.Kind == HitTile
}

// Actor reports whether the struck object is an actor, dead or alive
func (e *ImpactEvent) Actor() bool {
	return e.Kind == HitLivingActor || e.Kind == HitDeadActor
}
