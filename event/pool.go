package event

import (
	"sync"
)

var damageRequestPool = sync.Pool{
	New: func() any {
		return &DamageRequestPayload{}
	},
}

// AcquireDamageRequest returns a pooled payload
func AcquireDamageRequest() *DamageRequestPayload {
	return damageRequestPool.Get().(*DamageRequestPayload)
}

// ReleaseDamageRequest returns payload to pool
func ReleaseDamageRequest(p *DamageRequestPayload) {
	if p == nil {
		return
	}
	*p = DamageRequestPayload{}
	damageRequestPool.Put(p)
}

// AreaDamagePool recycles blast victim batches. Detonations acquire, the
// combat system releases after applying every entry.
var AreaDamagePool = NewBatchPool[AreaDamageEntry](16)
