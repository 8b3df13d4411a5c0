package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/taskflow/pkg/model"
)

// TaskSource supplies the tasks to schedule. The store implements it.
type TaskSource interface {
	ListPendingTasks(ctx context.Context) ([]*model.Task, error)
}

// Service computes schedules over the tasks held by a TaskSource.
type Service struct {
	source TaskSource
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a schedule service.
func NewService(src TaskSource, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		source: src,
		logger: logger.With("component", "schedule"),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Schedule orders the pending tasks with kind and simulates them from the
// current instant. Arguments are validated before the source is queried.
func (s *Service) Schedule(ctx context.Context, kind model.StrategyType, capacityMinutes int) (*model.ScheduleResponse, error) {
	if _, err := Lookup(kind); err != nil {
		return nil, err
	}
	if err := ValidateCapacity(capacityMinutes); err != nil {
		return nil, err
	}

	tasks, err := s.source.ListPendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}

	now := s.now()
	resp, err := Plan(tasks, kind, capacityMinutes, now)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("schedule computed",
		"strategy", kind,
		"tasks", len(resp.OrderedTasks),
		"total_minutes", resp.TotalEstimatedMinutes,
		"overloaded", resp.Overloaded,
	)
	return resp, nil
}

// Compare runs every strategy over the same task set and the same instant,
// so the two results differ only by strategy.
func (s *Service) Compare(ctx context.Context, capacityMinutes int) (*model.CompareResponse, error) {
	if err := ValidateCapacity(capacityMinutes); err != nil {
		return nil, err
	}

	tasks, err := s.source.ListPendingTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}

	now := s.now()
	edf, err := Plan(tasks, model.StrategyEDF, capacityMinutes, now)
	if err != nil {
		return nil, err
	}
	greedy, err := Plan(tasks, model.StrategyWeightedGreedy, capacityMinutes, now)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("schedules compared",
		"tasks", len(edf.OrderedTasks),
		"edf_on_time", edf.OnTimeRate,
		"greedy_on_time", greedy.OnTimeRate,
	)
	return &model.CompareResponse{EDF: edf, WeightedGreedy: greedy}, nil
}

// Plan is the pure core of Schedule: it filters out completed tasks, orders
// the rest with kind and simulates execution starting at now.
func Plan(tasks []*model.Task, kind model.StrategyType, capacityMinutes int, now time.Time) (*model.ScheduleResponse, error) {
	strategy, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := ValidateCapacity(capacityMinutes); err != nil {
		return nil, err
	}

	result := strategy(PendingSnapshots(tasks), now)
	sim := Simulate(result.Ordered, result.Scores, capacityMinutes, now)

	ordered := make([]model.ScheduledTask, 0, len(sim.Outcomes))
	for _, o := range sim.Outcomes {
		ordered = append(ordered, model.ScheduledTask{
			ID:               o.Task.ID,
			Title:            o.Task.Title,
			Deadline:         o.Task.Deadline,
			EstimatedMinutes: o.Task.EstimatedMinutes,
			Priority:         o.Task.Priority,
			Status:           o.Task.Status,
			Score:            o.Score,
			Reason:           o.Reason,
			ProjectedFinish:  o.Finish,
			TardinessMinutes: o.TardinessMinutes,
		})
	}

	return &model.ScheduleResponse{
		Strategy:                kind,
		AvailableMinutesPerDay:  capacityMinutes,
		TotalEstimatedMinutes:   sim.TotalEstimatedMinutes,
		Overloaded:              sim.Overloaded,
		OnTimeRate:              sim.OnTimeRate,
		AverageTardinessMinutes: sim.AverageTardinessMinutes,
		OrderedTasks:            ordered,
	}, nil
}
