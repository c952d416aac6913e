package progress

import (
	"context"
	"github.com/viant/tasksetgen/internal/clock"
	"sync"
	"time"
)

// Delta is an incremental counter change.  Current names the requirement
// being processed; an empty value keeps the previous one.
type Delta struct {
	Total     int
	Completed int
	Failed    int
	Attempts  int
	Current   string
}

// Snapshot is a point-in-time copy of the tracker counters.
type Snapshot struct {
	RunID     string
	StartedAt time.Time
	Current   string

	Total     int
	Completed int
	Failed    int
	Attempts  int
}

// Pending returns the number of requirements not yet processed.
func (s Snapshot) Pending() int {
	return s.Total - s.Completed - s.Failed
}

// Elapsed returns the time since the tracker was created.
func (s Snapshot) Elapsed() time.Duration {
	return clock.Since(s.StartedAt)
}

// Progress keeps batch counters.  It is safe for concurrent use.
type Progress struct {
	mux      sync.Mutex
	state    Snapshot
	onChange func(Snapshot)
}

// Update applies the delta.  The onChange callback, if any, receives a
// snapshot taken under the lock and is invoked outside of it.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.state.Total += d.Total
	p.state.Completed += d.Completed
	p.state.Failed += d.Failed
	p.state.Attempts += d.Attempts
	if d.Current != "" {
		p.state.Current = d.Current
	}
	snapshot := p.state
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns the current counters.
func (p *Progress) Snapshot() Snapshot {
	if p == nil {
		return Snapshot{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.state
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Snapshot)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker for runID and embeds it in a derived
// context.
func WithNewTracker(ctx context.Context, runID string) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		state: Snapshot{RunID: runID, StartedAt: clock.Now()},
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx applies the delta to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
