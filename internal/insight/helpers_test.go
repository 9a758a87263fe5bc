package insight

import (
	"context"
	"sync"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
)

// gatedFetcher blocks every fetch until release is closed and counts calls
// per skill.
type gatedFetcher struct {
	release chan struct{}
	results map[string]Result
	mu      sync.Mutex
	calls   map[string]int
	total   atomic.Int32
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{
		release: make(chan struct{}),
		results: make(map[string]Result),
		calls:   make(map[string]int),
	}
}

func (f *gatedFetcher) Fetch(_ context.Context, skill string) Result {
	f.mu.Lock()
	f.calls[skill]++
	f.mu.Unlock()
	f.total.Add(1)

	<-f.release

	if r, ok := f.results[skill]; ok {
		return r
	}
	return Result{Entry: NewEntry(skill, skill+" summary")}
}

func (f *gatedFetcher) Calls(skill string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[skill]
}

// runCmd executes a fetch command in the background like the Bubble Tea
// runtime would, delivering its message on the returned channel.
func runCmd(cmd tea.Cmd) <-chan FetchedMsg {
	out := make(chan FetchedMsg, 1)
	go func() { out <- cmd().(FetchedMsg) }()
	return out
}
