package interp

import "sync"

// Cached memoizes Value lookups. Base values are scenario-invariant, so
// when several scenarios run at once each (input, month) pair is computed
// once instead of once per scenario.
//
// Safe for concurrent use.
type Cached struct {
	mu     sync.RWMutex
	engine *Engine
	memo   map[cacheKey]float64
}

type cacheKey struct {
	input string
	month int
}

func NewCached(engine *Engine) *Cached {
	return &Cached{engine: engine, memo: make(map[cacheKey]float64)}
}

func (c *Cached) Value(input string, month int) float64 {
	k := cacheKey{input: input, month: month}

	c.mu.RLock()
	v, ok := c.memo[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = c.engine.Value(input, month)

	c.mu.Lock()
	c.memo[k] = v
	c.mu.Unlock()
	return v
}
