package memory

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/service/dao"
	"github.com/viant/tasksetgen/service/dao/taskset"
	"testing"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	srv := New()
	ts := model.NewTaskset(&model.Task{Name: "Task_0", WCET: 1, Period: 4, Deadline: 4})

	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.NoError(t, srv.Save(ctx, &taskset.Record{Name: "A", Utilization: 0.25, Taskset: ts}))
	assert.NoError(t, srv.Save(ctx, &taskset.Record{Name: "B", Utilization: 0.5, Taskset: ts}))

	got, err := srv.Load(ctx, taskset.Key("A", 0.25))
	assert.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	filtered, err := srv.List(ctx, dao.NewParameter(taskset.UtilizationParameter, "0.5"))
	assert.NoError(t, err)
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, "B", filtered[0].Name)
	}

	assert.NoError(t, srv.Clean(ctx))
	all, err := srv.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
}
