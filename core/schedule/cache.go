package schedule

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/kilianp07/haulplan/core/model"
)

const cacheShards = 32

type cacheShard struct {
	mu sync.RWMutex
	m  map[PlaceTimeLookup][]model.Transition
}

// transitionCache memoises feasible transitions per lookup. Reads only take
// a shard read lock; a miss is computed once per key even when several
// goroutines ask for it at the same time. Entries are never evicted since
// they only depend on static configuration.
type transitionCache struct {
	shards [cacheShards]cacheShard
	group  singleflight.Group
}

func newTransitionCache() *transitionCache {
	c := &transitionCache{}
	for i := range c.shards {
		c.shards[i].m = make(map[PlaceTimeLookup][]model.Transition)
	}
	return c
}

func (c *transitionCache) shard(key PlaceTimeLookup) *cacheShard {
	return &c.shards[key.Hash()%cacheShards]
}

func (c *transitionCache) get(key PlaceTimeLookup) ([]model.Transition, bool) {
	s := c.shard(key)
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok
}

// getOrCompute returns the cached value for key, calling compute on a miss.
// hit reports whether the value was already cached. Errors are not cached.
// The returned slice is shared and must not be modified.
func (c *transitionCache) getOrCompute(key PlaceTimeLookup, compute func() ([]model.Transition, error)) (v []model.Transition, hit bool, err error) {
	if v, ok := c.get(key); ok {
		return v, true, nil
	}
	res, err, _ := c.group.Do(key.Key(), func() (any, error) {
		if v, ok := c.get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		s := c.shard(key)
		s.mu.Lock()
		s.m[key] = v
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, false, err
	}
	return res.([]model.Transition), false, nil
}

func (c *transitionCache) len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}
