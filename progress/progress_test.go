package progress

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tasksetgen/internal/clock"
	"sync"
	"testing"
	"time"
)

func TestProgress_Update(t *testing.T) {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.NowFunc = func() time.Time { return started }
	defer func() { clock.NowFunc = time.Now }()

	var seen []Snapshot
	ctx, tracker := WithNewTracker(context.Background(), "run-1")
	tracker.OnChange(func(s Snapshot) {
		seen = append(seen, s)
	})
	UpdateCtx(ctx, Delta{Total: 3, Current: "Low"})
	UpdateCtx(ctx, Delta{Completed: 1, Attempts: 4})
	UpdateCtx(ctx, Delta{Failed: 1, Current: "High"})

	snapshot := tracker.Snapshot()
	assert.Equal(t, "run-1", snapshot.RunID)
	assert.Equal(t, started, snapshot.StartedAt)
	assert.Equal(t, "High", snapshot.Current)
	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 1, snapshot.Completed)
	assert.Equal(t, 1, snapshot.Failed)
	assert.Equal(t, 4, snapshot.Attempts)
	assert.Equal(t, 1, snapshot.Pending())
	if assert.Len(t, seen, 3) {
		assert.Equal(t, 3, seen[0].Total)
		assert.Equal(t, 0, seen[0].Completed)
		assert.Equal(t, "Low", seen[1].Current)
	}

	clock.NowFunc = func() time.Time { return started.Add(time.Second) }
	assert.Equal(t, time.Second, snapshot.Elapsed())
}

func TestProgress_OnChange(t *testing.T) {
	_, tracker := WithNewTracker(context.Background(), "run")
	calls := 0
	tracker.OnChange(func(Snapshot) { calls++ })
	tracker.Update(Delta{Total: 1})
	tracker.OnChange(nil)
	tracker.Update(Delta{Total: 1})
	assert.Equal(t, 1, calls)
}

func TestProgress_Concurrent(t *testing.T) {
	ctx, tracker := WithNewTracker(context.Background(), "run")
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			UpdateCtx(ctx, Delta{Total: 1, Completed: 1, Attempts: 2})
		}()
	}
	wg.Wait()
	snapshot := tracker.Snapshot()
	assert.Equal(t, 50, snapshot.Completed)
	assert.Equal(t, 100, snapshot.Attempts)
}

func TestProgress_Nil(t *testing.T) {
	var tracker *Progress
	tracker.Update(Delta{Total: 1})
	tracker.OnChange(nil)
	assert.Equal(t, Snapshot{}, tracker.Snapshot())

	_, ok := FromContext(context.Background())
	assert.False(t, ok)
	UpdateCtx(context.Background(), Delta{Total: 1})
}
