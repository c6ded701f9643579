package session

import (
	"sync"

	"github.com/Shivansh-2508/PGT-Portal/internal/domain/entity"
)

// Context holds the current authenticated identity for the process. It is
// created once by the command layer and injected into views; reads and writes
// hand out copies so a stored session is never mutated in place.
type Context struct {
	mu      sync.RWMutex
	current entity.Session
}

// NewContext creates an empty session context
func NewContext() *Context {
	return &Context{}
}

// Current returns a copy of the current session, or nil
func (c *Context) Current() entity.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Clone()
}

// Set replaces the current session
func (c *Context) Set(s entity.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s.Clone()
}

// Clear drops the current session
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Authenticated reports whether the current session has an identity marker
func (c *Context) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.IsAuthenticated()
}
