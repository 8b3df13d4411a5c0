package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/me/taskflow/pkg/model"
)

var (
	// ErrUnknownStrategy is returned for a strategy identifier with no implementation.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrCapacityOutOfRange is returned when the daily capacity is outside
	// [model.MinDailyCapacityMinutes, model.MaxDailyCapacityMinutes].
	ErrCapacityOutOfRange = errors.New("daily capacity out of range")
)

// Result is a strategy's output: a permutation of its input and a score for
// each input task, keyed by task ID.
type Result struct {
	Ordered []Snapshot
	Scores  map[string]float64
}

// Strategy orders tasks. Implementations must return every input task exactly
// once and must only score tasks from the input. now is the instant the
// schedule is computed for; strategies that ignore time may ignore it.
type Strategy func(tasks []Snapshot, now time.Time) Result

// Strategies lists the known strategy types in presentation order.
var Strategies = []model.StrategyType{
	model.StrategyEDF,
	model.StrategyWeightedGreedy,
}

// Lookup returns the strategy for kind.
func Lookup(kind model.StrategyType) (Strategy, error) {
	switch kind {
	case model.StrategyEDF:
		return EarliestDeadlineFirst, nil
	case model.StrategyWeightedGreedy:
		return WeightedGreedy, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}

// ValidateCapacity checks the minutes-per-day bound.
func ValidateCapacity(minutes int) error {
	if minutes < model.MinDailyCapacityMinutes || minutes > model.MaxDailyCapacityMinutes {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCapacityOutOfRange, minutes,
			model.MinDailyCapacityMinutes, model.MaxDailyCapacityMinutes)
	}
	return nil
}
