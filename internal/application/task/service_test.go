package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskd/backend/internal/domain/task"
	"github.com/taskd/backend/internal/infrastructure/storage"
)

// stubGateway 可注入错误并记录调用次数
type stubGateway struct {
	task.Gateway
	err   error
	calls int
}

func (g *stubGateway) Insert(ctx context.Context, t task.NewTask) (*task.Task, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.Gateway.Insert(ctx, t)
}

func (g *stubGateway) Update(ctx context.Context, id int64, c task.Changes) (*task.Task, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.Gateway.Update(ctx, id, c)
}

func (g *stubGateway) Delete(ctx context.Context, id int64) (int64, error) {
	g.calls++
	if g.err != nil {
		return 0, g.err
	}
	return g.Gateway.Delete(ctx, id)
}

func (g *stubGateway) Find(ctx context.Context, s task.Selector) ([]*task.Task, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.Gateway.Find(ctx, s)
}

func (g *stubGateway) Count(ctx context.Context, s task.Selector) (int64, error) {
	g.calls++
	if g.err != nil {
		return 0, g.err
	}
	return g.Gateway.Count(ctx, s)
}

func newTestService(opts ...Option) (*Service, *stubGateway) {
	gw := &stubGateway{Gateway: storage.NewMemoryGateway()}
	return NewService(gw, opts...), gw
}

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func TestService_Create(t *testing.T) {
	now := time.Date(2024, 2, 3, 4, 5, 6, 789, time.UTC)
	svc, _ := newTestService(fixedClock(now))

	created, err := svc.Create(context.Background(), &task.Definition{Name: "create grpc example"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "create grpc example", created.Name)
	assert.Equal(t, now, created.CreatedAt)
	assert.False(t, created.Done)
	assert.Nil(t, created.DoneAt)
}

func TestService_CreateMissingDefinition(t *testing.T) {
	svc, gw := newTestService()

	created, err := svc.Create(context.Background(), nil)
	assert.Nil(t, created)
	require.Error(t, err)
	assert.Equal(t, "missing task definition", err.Error())
	assert.True(t, errors.Is(err, task.ErrMissingDefinition))
	assert.Zero(t, gw.calls, "校验失败时不访问存储")

	count, err := svc.Count(context.Background(), task.All)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_CreateEmptyNameAccepted(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), &task.Definition{})
	require.NoError(t, err)
	assert.Equal(t, "", created.Name)
}

func TestService_StoreFailureMessages(t *testing.T) {
	cause := errors.New("constraint violated")
	svc, gw := newTestService()
	gw.err = cause
	ctx := context.Background()

	_, err := svc.Create(ctx, &task.Definition{Name: "x"})
	assert.Equal(t, "Task creation failed. constraint violated", err.Error())
	assert.True(t, errors.Is(err, cause))

	_, err = svc.Update(ctx, 1, task.Some("x"), task.None[bool]())
	assert.Equal(t, "update task failed. constraint violated", err.Error())

	err = svc.Delete(ctx, 1)
	assert.Equal(t, "Task deletion failed. constraint violated", err.Error())

	items, err := svc.List(ctx, task.All)
	assert.Nil(t, items, "失败时不返回任务序列")
	assert.Equal(t, "Task listing failed. constraint violated", err.Error())

	_, err = svc.Count(ctx, task.Done)
	assert.Equal(t, "Task listing failed. constraint violated", err.Error())
}

func TestService_ConnectionErrorVerbatim(t *testing.T) {
	svc, gw := newTestService()
	gw.err = &task.ConnectionError{Reason: "DATABASE_URL must be set"}
	ctx := context.Background()

	_, err := svc.Create(ctx, &task.Definition{Name: "x"})
	assert.Equal(t, "DATABASE_URL must be set", err.Error())

	_, err = svc.Update(ctx, 1, task.None[string](), task.Some(true))
	assert.Equal(t, "DATABASE_URL must be set", err.Error())

	err = svc.Delete(ctx, 1)
	assert.Equal(t, "DATABASE_URL must be set", err.Error())

	items, err := svc.List(ctx, task.NotDone)
	assert.Nil(t, items)
	assert.Equal(t, "DATABASE_URL must be set", err.Error())
}

func TestService_UpdateDoneThenUndone(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 42, time.UTC)
	svc, _ := newTestService(fixedClock(now))
	ctx := context.Background()

	created, err := svc.Create(ctx, &task.Definition{Name: "X"})
	require.NoError(t, err)

	done, err := svc.Update(ctx, created.ID, task.None[string](), task.Some(true))
	require.NoError(t, err)
	assert.True(t, done.Done)
	require.NotNil(t, done.DoneAt)
	assert.Equal(t, now, *done.DoneAt)

	undone, err := svc.Update(ctx, created.ID, task.None[string](), task.Some(false))
	require.NoError(t, err)
	assert.False(t, undone.Done)
	assert.Nil(t, undone.DoneAt)

	items, err := svc.List(ctx, task.All)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Done)
	assert.Nil(t, items[0].DoneAt)
}

func TestService_UpdateNameOnlyKeepsDoneState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &task.Definition{Name: "before"})
	require.NoError(t, err)
	done, err := svc.Update(ctx, created.ID, task.None[string](), task.Some(true))
	require.NoError(t, err)

	renamed, err := svc.Update(ctx, created.ID, task.Some("after"), task.None[bool]())
	require.NoError(t, err)
	assert.Equal(t, "after", renamed.Name)
	assert.True(t, renamed.Done)
	assert.Equal(t, done.DoneAt, renamed.DoneAt)
}

func TestService_UpdateNoFields(t *testing.T) {
	svc, gw := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &task.Definition{Name: "same"})
	require.NoError(t, err)

	same, err := svc.Update(ctx, created.ID, task.None[string](), task.None[bool]())
	require.NoError(t, err)
	assert.Equal(t, created, same)
	assert.Equal(t, 2, gw.calls, "无字段更新仍然写入存储")
}

func TestService_UpdateMissingID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 99, task.Some("ghost"), task.None[bool]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, task.ErrNotFound))
	assert.Equal(t, "update task failed. task 99: record not found", err.Error())
}

func TestService_DeleteIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &task.Definition{Name: "this task should be deleted"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	count, err := svc.Count(ctx, task.All)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, svc.Delete(ctx, created.ID), "删除不存在的任务不是错误")
	require.NoError(t, svc.Delete(ctx, 12345))
}

func TestService_ListScenario(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	var ids []int64
	for i := 1; i <= 5; i++ {
		created, err := svc.Create(ctx, &task.Definition{Name: fmt.Sprintf("Task%d", i)})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	for _, idx := range []int{0, 3, 4} {
		_, err := svc.Update(ctx, ids[idx], task.None[string](), task.Some(true))
		require.NoError(t, err)
	}

	expected := map[task.Selector]int{task.All: 5, task.Done: 3, task.NotDone: 2}
	for selector, want := range expected {
		count, err := svc.Count(ctx, selector)
		require.NoError(t, err)
		assert.Equal(t, int64(want), count)

		items, err := svc.List(ctx, selector)
		require.NoError(t, err)
		assert.Len(t, items, want)
	}
}

func TestService_ListInvalidSelector(t *testing.T) {
	svc, gw := newTestService()

	items, err := svc.List(context.Background(), task.Selector(9))
	assert.Nil(t, items)
	require.Error(t, err)
	assert.True(t, errors.Is(err, task.ErrInvalidSelector))
	assert.Equal(t, "Task listing failed. invalid list option: 9", err.Error())
	assert.Zero(t, gw.calls)

	_, err = svc.Count(context.Background(), task.Selector(-1))
	assert.True(t, errors.Is(err, task.ErrInvalidSelector))
}

func TestService_ConcurrentCalls(t *testing.T) {
	svc := NewService(storage.NewMemoryGateway())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := svc.Create(ctx, &task.Definition{Name: fmt.Sprintf("t%d", i)})
			if !assert.NoError(t, err) {
				return
			}
			_, err = svc.Update(ctx, created.ID, task.None[string](), task.Some(i%2 == 0))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	done, err := svc.Count(ctx, task.Done)
	require.NoError(t, err)
	assert.Equal(t, int64(10), done)
}
