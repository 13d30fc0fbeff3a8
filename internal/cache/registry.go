package cache

import (
	"context"
	"strconv"
	"sync"

	"secret-casino-bot/internal/engine"
)

// KeyPrefix namespaces every player's snapshot in the store.
const KeyPrefix = "casino-stats:"

func SnapshotKey(userID int64) string {
	return KeyPrefix + strconv.FormatInt(userID, 10)
}

// EngineFactory builds an engine for a player that has not been seen yet
// in this process.
type EngineFactory func(userID int64) *engine.Engine

// Registry holds one engine per player for the life of the process.
type Registry struct {
	engines sync.Map // map[int64]*entry
	factory EngineFactory
}

type entry struct {
	once sync.Once
	eng  *engine.Engine
}

func NewRegistry(factory EngineFactory) *Registry {
	return &Registry{factory: factory}
}

// Get returns the player's engine, creating and loading it on first use.
// Concurrent first calls share a single Load.
func (r *Registry) Get(ctx context.Context, userID int64) *engine.Engine {
	val, _ := r.engines.LoadOrStore(userID, &entry{})
	e := val.(*entry)
	e.once.Do(func() {
		e.eng = r.factory(userID)
		e.eng.Load(ctx)
	})
	return e.eng
}

func (r *Registry) Len() int {
	n := 0
	r.engines.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
