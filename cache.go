package lexicode

import (
	"reflect"
	"sync"
)

// dispatchCache is a simple, thread-safe, non-evicting cache recording
// which Encoding last matched values of a given reflect.Type, so that
// repeatedly encoding or comparing homogeneous Arrays of one Go type (the
// common case) doesn't require a full linear scan of the registry every
// time. It only grows, and a lookup can come back stale (Match is always
// re-checked by the caller before trusting it); that's fine, a miss just
// falls back to the linear scan.
//
// Ported from lexy's cache[K, V] (cache.go), narrowed from a
// general compute-on-miss memoizer to a plain lookup/store pair, since
// here the "compute" step (Encoding.Match) needs the value itself, not
// just its reflect.Type.
type dispatchCache struct {
	// pointer to prevent copying the mutex when this cache is passed by value
	lock   *sync.RWMutex
	cached map[reflect.Type]Encoding
}

func newDispatchCache() dispatchCache {
	return dispatchCache{
		lock:   &sync.RWMutex{},
		cached: map[reflect.Type]Encoding{},
	}
}

func (c *dispatchCache) get(t reflect.Type) (Encoding, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	enc, ok := c.cached[t]
	return enc, ok
}

func (c *dispatchCache) put(t reflect.Type, enc Encoding) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cached[t] = enc
}
