package surrogate

import "sync"

// Context is a fully-formed trained surrogate: the regressor plus the
// normalization stats it was fitted with. The trainer creates the two
// together; neither is ever replaced independently.
type Context struct {
	Net   *Network
	Stats *Stats
}

// Ready reports whether the context can serve predictions.
func (c *Context) Ready() bool {
	return c != nil && c.Net != nil && c.Stats != nil
}

// Store is the process-wide holder of the current surrogate context.
// The trainer publishes a complete context in one step; readers never
// observe a partially updated model/stats pair.
type Store struct {
	mu  sync.RWMutex
	ctx *Context
}

// Publish atomically replaces the current context.
func (s *Store) Publish(ctx *Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
}

// Current returns the last published context, or nil before training
// completes.
func (s *Store) Current() *Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctx
}

// Ready reports whether a trained context has been published.
func (s *Store) Ready() bool {
	return s.Current().Ready()
}
