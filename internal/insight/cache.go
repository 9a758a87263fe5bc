package insight

import (
	"context"
	"errors"
	"sync"
)

// ErrEmptySkill is returned by Resolve for an empty skill name.
var ErrEmptySkill = errors.New("empty skill name")

// Status is the lifecycle state of one skill in a Cache. A skill is in
// exactly one state at a time.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Cache maps skill names to insight entries and tracks in-flight fetches.
// Entries are written once and never evicted. Skill names are compared
// exactly; "Go" and "go" are different skills.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]Entry
	inflight map[string]chan struct{}
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]Entry),
		inflight: make(map[string]chan struct{}),
	}
}

// Lookup returns the cached entry for skill.
func (c *Cache) Lookup(skill string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[skill]
	return e, ok
}

// Status reports whether skill is idle, loading or ready.
func (c *Cache) Status(skill string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked(skill)
}

func (c *Cache) statusLocked(skill string) Status {
	if _, ok := c.entries[skill]; ok {
		return StatusReady
	}
	if _, ok := c.inflight[skill]; ok {
		return StatusLoading
	}
	return StatusIdle
}

// Begin marks skill as in flight. It returns false, and changes nothing,
// when skill is empty, already cached or already in flight. A true return
// obliges the caller to eventually call Complete.
func (c *Cache) Begin(skill string) bool {
	if skill == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.statusLocked(skill) != StatusIdle {
		return false
	}
	c.inflight[skill] = make(chan struct{})
	return true
}

// Complete stores e for skill unless an entry already exists, clears the
// in-flight mark and wakes any Resolve callers waiting on it.
func (c *Cache) Complete(skill string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[skill]; !ok {
		c.entries[skill] = e
	}
	if ch, ok := c.inflight[skill]; ok {
		delete(c.inflight, skill)
		close(ch)
	}
}

// Resolve returns the entry for skill, fetching it with f if it is idle.
// Callers that find skill in flight wait for that fetch instead of
// issuing their own. Resolve only fails for an empty skill or when ctx
// ends while waiting; fetch failures resolve to the fallback entry.
func (c *Cache) Resolve(ctx context.Context, skill string, f Fetcher) (Entry, error) {
	if skill == "" {
		return Entry{}, ErrEmptySkill
	}

	c.mu.Lock()
	if e, ok := c.entries[skill]; ok {
		c.mu.Unlock()
		return e, nil
	}
	if ch, ok := c.inflight[skill]; ok {
		c.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return Entry{}, ctx.Err()
		}
		e, _ := c.Lookup(skill)
		return e, nil
	}
	c.inflight[skill] = make(chan struct{})
	c.mu.Unlock()

	done := false
	defer func() {
		// A fetch that panics still releases its waiters.
		if !done {
			c.Complete(skill, FallbackEntry())
		}
	}()

	res := f.Fetch(ctx, skill)
	logFailure(ctx, skill, res)
	c.Complete(skill, res.Entry)
	done = true
	e, _ := c.Lookup(skill)
	return e, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// InFlight returns the number of fetches awaiting a result.
func (c *Cache) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight)
}
