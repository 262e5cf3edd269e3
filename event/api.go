package event

import (
	"github.com/lixenwraith/ballistic/core"
)

// EmitProjectileTerminated performs a zero-allocation termination notice
// Packs the kind and ID into a uint64 to bypass heap allocation
func EmitProjectileTerminated(q *EventQueue, id core.Entity, kind TerminationKind, frame int64) {
	// Bit-pack: Kind (High 16 bits) | Entity (Low 48 bits)
	packed := (uint64(kind) << 48) | (uint64(id) & 0xFFFFFFFFFFFF)
	q.Push(GameEvent{
		Type:    EventProjectileTerminated,
		Payload: packed,
		Frame:   frame,
	})
}

// UnpackTermination recovers the entity and kind from a packed
// EventProjectileTerminated payload
func UnpackTermination(payload any) (core.Entity, TerminationKind, bool) {
	packed, ok := payload.(uint64)
	if !ok {
		return core.InvalidEntity, 0, false
	}
	return core.Entity(packed & 0xFFFFFFFFFFFF), TerminationKind(packed >> 48), true
}

// EmitDamage pushes a pooled single-target damage request
// The combat system releases the payload after applying it
func EmitDamage(q *EventQueue, target, source core.Entity, amount, dirX, dirY float64, frame int64) {
	p := AcquireDamageRequest()
	p.Target = target
	p.Source = source
	p.Amount = amount
	p.DirX = dirX
	p.DirY = dirY
	q.Push(GameEvent{
		Type:    EventDamageRequest,
		Payload: p,
		Frame:   frame,
	})
}

// EmitSound pushes a positioned sound cue for the host
func EmitSound(q *EventQueue, sound SoundID, x, y float64, frame int64) {
	q.Push(GameEvent{
		Type:    EventSoundRequest,
		Payload: &SoundRequestPayload{Sound: sound, X: x, Y: y},
		Frame:   frame,
	})
}
