package status

import "sync/atomic"

// Budget is a shared countdown for capped spawn families, such as the
// global limit on live shrapnel. Claims are CAS-atomic, so concurrent
// detonations never mint more than the cap together.
//
// Exhaustion is a policy outcome, not an error: callers spawn however
// many units they were granted, which may be zero.
type Budget struct {
	used  atomic.Int64
	limit int64
}

// NewBudget creates a budget with the given capacity
func NewBudget(limit int64) *Budget {
	return &Budget{limit: limit}
}

// TryClaim grants up to n units and returns how many were granted
func (b *Budget) TryClaim(n int) int {
	if n <= 0 {
		return 0
	}
	for {
		used := b.used.Load()
		free := b.limit - used
		if free <= 0 {
			return 0
		}
		grant := int64(n)
		if grant > free {
			grant = free
		}
		if b.used.CompareAndSwap(used, used+grant) {
			return int(grant)
		}
	}
}

// Release returns units to the pool. Callers release exactly what they
// claimed, once the spawned units leave the simulation.
func (b *Budget) Release(n int) {
	if n > 0 {
		b.used.Add(-int64(n))
	}
}

// Used returns the currently claimed unit count
func (b *Budget) Used() int {
	return int(b.used.Load())
}

// Cap returns the budget capacity
func (b *Budget) Cap() int {
	return int(b.limit)
}

// Reset forgets all claims
func (b *Budget) Reset() {
	b.used.Store(0)
}
