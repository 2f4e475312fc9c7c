package actionkit

// Pool recycles released actions by kind. It is not safe for concurrent use;
// like the rest of the package it belongs to the goroutine that drives ticks.
//
// A nil *Pool is valid and disables recycling.
type Pool struct {
	free  [kindCount][]*base
	stats [kindCount]PoolStats
}

// PoolStats counts pool traffic for one kind.
type PoolStats struct {
	Allocated int
	Reused    int
	Released  int
}

func NewPool() *Pool {
	return &Pool{}
}

// Len returns the number of idle instances of kind k.
func (p *Pool) Len(k Kind) int {
	if p == nil || k < 0 || k >= kindCount {
		return 0
	}
	return len(p.free[k])
}

func (p *Pool) Stats(k Kind) PoolStats {
	if p == nil || k < 0 || k >= kindCount {
		return PoolStats{}
	}
	return p.stats[k]
}

func (p *Pool) take(k Kind) *base {
	n := len(p.free[k])
	if n == 0 {
		return nil
	}
	b := p.free[k][n-1]
	p.free[k][n-1] = nil
	p.free[k] = p.free[k][:n-1]
	p.stats[k].Reused++
	b.revive()
	return b
}

func (p *Pool) put(b *base) {
	p.free[b.kind] = append(p.free[b.kind], b)
	p.stats[b.kind].Released++
}

// acquire hands out a reset instance of kind, reusing a released one when
// the pool has it.
func acquire[T Action](p *Pool, kind Kind, fresh func() T) T {
	if p != nil {
		if b := p.take(kind); b != nil {
			return b.self.(T)
		}
	}
	a := fresh()
	if p != nil {
		a.state().pool = p
		p.stats[kind].Allocated++
	}
	return a
}
