package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me/taskflow/pkg/model"
)

type fakeSource struct {
	tasks []*model.Task
	err   error
	calls int
}

func (f *fakeSource) ListPendingTasks(context.Context) ([]*model.Task, error) {
	f.calls++
	return f.tasks, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func task(id string, priority, minutes int, due time.Duration, status model.TaskStatus) *model.Task {
	return &model.Task{
		ID:               id,
		Title:            "task " + id,
		Deadline:         testNow.Add(due),
		EstimatedMinutes: minutes,
		Priority:         priority,
		Status:           status,
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func TestServiceSchedule(t *testing.T) {
	src := &fakeSource{tasks: []*model.Task{
		task("A", 5, 30, 2*time.Hour, model.TaskStatusTodo),
		task("B", 1, 120, time.Hour, model.TaskStatusInProgress),
	}}
	svc := NewService(src, discardLogger(), WithClock(fixedClock()))

	resp, err := svc.Schedule(context.Background(), model.StrategyWeightedGreedy, 480)
	require.NoError(t, err)
	assert.Equal(t, model.StrategyWeightedGreedy, resp.Strategy)
	assert.Equal(t, 480, resp.AvailableMinutesPerDay)
	assert.Equal(t, 150, resp.TotalEstimatedMinutes)
	require.Len(t, resp.OrderedTasks, 2)
	assert.Equal(t, "A", resp.OrderedTasks[0].ID)
	assert.Equal(t, ReasonHighPriority, resp.OrderedTasks[0].Reason)
	assert.Equal(t, "B", resp.OrderedTasks[1].ID)
	assert.Equal(t, ReasonDeadlineNear, resp.OrderedTasks[1].Reason)
	assert.Equal(t, model.TaskStatusInProgress, resp.OrderedTasks[1].Status)
	assert.Equal(t, int64(90), resp.OrderedTasks[1].TardinessMinutes)
	assert.Equal(t, testNow.Add(150*time.Minute), resp.OrderedTasks[1].ProjectedFinish)
}

func TestServiceScheduleRejectsBeforeFetching(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, discardLogger(), WithClock(fixedClock()))

	_, err := svc.Schedule(context.Background(), "ROUND_ROBIN", 480)
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = svc.Schedule(context.Background(), model.StrategyEDF, 10)
	assert.ErrorIs(t, err, ErrCapacityOutOfRange)

	_, err = svc.Compare(context.Background(), 2000)
	assert.ErrorIs(t, err, ErrCapacityOutOfRange)

	assert.Zero(t, src.calls)
}

func TestServiceSourceError(t *testing.T) {
	boom := errors.New("disk gone")
	svc := NewService(&fakeSource{err: boom}, discardLogger())

	_, err := svc.Schedule(context.Background(), model.StrategyEDF, 480)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Compare(context.Background(), 480)
	assert.ErrorIs(t, err, boom)
}

func TestPlanSkipsCompletedTasks(t *testing.T) {
	tasks := []*model.Task{
		task("done", 5, 600, -time.Hour, model.TaskStatusDone),
		task("todo", 3, 60, 3*time.Hour, model.TaskStatusTodo),
		nil,
	}
	resp, err := Plan(tasks, model.StrategyEDF, 30, testNow)
	require.NoError(t, err)
	require.Len(t, resp.OrderedTasks, 1)
	assert.Equal(t, "todo", resp.OrderedTasks[0].ID)
	assert.Equal(t, 60, resp.TotalEstimatedMinutes)
	assert.True(t, resp.Overloaded)
}

func TestCompareEmpty(t *testing.T) {
	svc := NewService(&fakeSource{}, discardLogger(), WithClock(fixedClock()))

	resp, err := svc.Compare(context.Background(), 480)
	require.NoError(t, err)

	for _, r := range []*model.ScheduleResponse{resp.EDF, resp.WeightedGreedy} {
		require.NotNil(t, r)
		assert.Equal(t, 1.0, r.OnTimeRate)
		assert.Equal(t, 0.0, r.AverageTardinessMinutes)
		assert.Equal(t, 0, r.TotalEstimatedMinutes)
		assert.False(t, r.Overloaded)
		assert.Empty(t, r.OrderedTasks)
	}
	assert.Equal(t, model.StrategyEDF, resp.EDF.Strategy)
	assert.Equal(t, model.StrategyWeightedGreedy, resp.WeightedGreedy.Strategy)
}

func TestCompareSharesOneInstant(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return testNow.Add(time.Duration(calls) * time.Hour)
	}
	src := &fakeSource{tasks: []*model.Task{task("A", 2, 60, 4*time.Hour, model.TaskStatusTodo)}}
	svc := NewService(src, discardLogger(), WithClock(clock))

	resp, err := svc.Compare(context.Background(), 480)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, resp.EDF.OrderedTasks[0].ProjectedFinish, resp.WeightedGreedy.OrderedTasks[0].ProjectedFinish)
	assert.Equal(t, 1, src.calls)
}
