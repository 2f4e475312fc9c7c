package primitives

import "sync"

// Blackboard is the shared key-value state scripted conditions read and
// callbacks write. Hosts may update it from any goroutine.
type Blackboard struct {
	data sync.Map
}

func NewBlackboard() *Blackboard {
	return &Blackboard{}
}

// Get retrieves a value by key.
func (b *Blackboard) Get(key string) (any, bool) {
	return b.data.Load(key)
}

func (b *Blackboard) Set(key string, val any) {
	b.data.Store(key, val)
}

func (b *Blackboard) Delete(key string) {
	b.data.Delete(key)
}

// Snapshot returns a copy of the data. Expression conditions evaluate
// against it.
func (b *Blackboard) Snapshot() map[string]any {
	snap := map[string]any{}
	b.data.Range(func(k, v any) bool {
		snap[k.(string)] = v
		return true
	})
	return snap
}

// Restore replaces the data with snap.
func (b *Blackboard) Restore(snap map[string]any) {
	b.data.Range(func(k, v any) bool {
		b.data.Delete(k)
		return true
	})
	for k, v := range snap {
		b.data.Store(k, v)
	}
}
