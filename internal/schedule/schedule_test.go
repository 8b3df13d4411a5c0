package schedule

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me/taskflow/pkg/model"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func snap(id string, priority, minutes int, due time.Duration) Snapshot {
	return Snapshot{
		ID:               id,
		Title:            "task " + id,
		Deadline:         testNow.Add(due),
		EstimatedMinutes: minutes,
		Priority:         priority,
		Status:           model.TaskStatusTodo,
	}
}

// randomSnapshots builds n tasks with deliberately colliding keys so tie
// breaks are exercised.
func randomSnapshots(r *rand.Rand, n int) []Snapshot {
	out := make([]Snapshot, n)
	for i := range out {
		out[i] = snap(
			string(rune('a'+i%26))+string(rune('0'+i/26)),
			1+r.Intn(5),
			r.Intn(4)*15,
			time.Duration(r.Intn(12)-3)*time.Hour,
		)
	}
	return out
}

func ids(tasks []Snapshot) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestLookup(t *testing.T) {
	for _, kind := range Strategies {
		s, err := Lookup(kind)
		require.NoError(t, err, kind)
		assert.NotNil(t, s, kind)
	}

	_, err := Lookup(model.StrategyType("FIFO"))
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestValidateCapacity(t *testing.T) {
	tests := []struct {
		minutes int
		ok      bool
	}{
		{29, false},
		{30, true},
		{480, true},
		{1440, true},
		{1441, false},
		{0, false},
		{-5, false},
	}
	for _, tt := range tests {
		err := ValidateCapacity(tt.minutes)
		if tt.ok {
			assert.NoError(t, err, tt.minutes)
		} else {
			assert.ErrorIs(t, err, ErrCapacityOutOfRange, tt.minutes)
		}
	}
}

func TestEarliestDeadlineFirstOrdering(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		in := randomSnapshots(r, 1+r.Intn(30))
		res := EarliestDeadlineFirst(in, testNow)

		require.Len(t, res.Ordered, len(in))
		for i := 1; i < len(res.Ordered); i++ {
			a, b := res.Ordered[i-1], res.Ordered[i]
			require.False(t, b.Deadline.Before(a.Deadline), "deadline order at %d", i)
			if a.Deadline.Equal(b.Deadline) {
				require.GreaterOrEqual(t, a.Priority, b.Priority, "priority order at %d", i)
				if a.Priority == b.Priority {
					require.LessOrEqual(t, a.EstimatedMinutes, b.EstimatedMinutes, "duration order at %d", i)
				}
			}
		}
		for _, s := range res.Scores {
			assert.Zero(t, s)
		}
	}
}

func TestEarliestDeadlineFirstTieBreaks(t *testing.T) {
	in := []Snapshot{
		snap("long-low", 2, 90, time.Hour),
		snap("short-low", 2, 15, time.Hour),
		snap("high", 5, 120, time.Hour),
		snap("early", 1, 240, 30*time.Minute),
	}
	res := EarliestDeadlineFirst(in, testNow)
	assert.Equal(t, []string{"early", "high", "short-low", "long-low"}, ids(res.Ordered))
}

func TestEarliestDeadlineFirstDoesNotMutateInput(t *testing.T) {
	in := []Snapshot{snap("b", 1, 10, 2*time.Hour), snap("a", 1, 10, time.Hour)}
	EarliestDeadlineFirst(in, testNow)
	assert.Equal(t, []string{"b", "a"}, ids(in))
}

func TestStrategiesArePermutations(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, kind := range Strategies {
		strategy, err := Lookup(kind)
		require.NoError(t, err)

		for round := 0; round < 30; round++ {
			in := randomSnapshots(r, r.Intn(40))
			res := strategy(in, testNow)

			want := ids(in)
			got := ids(res.Ordered)
			sort.Strings(want)
			sort.Strings(got)
			require.Equal(t, want, got, "%s round %d", kind, round)

			require.Len(t, res.Scores, len(in), kind)
			for id := range res.Scores {
				require.Contains(t, want, id, "%s scored a task outside its input", kind)
			}
		}
	}
}

func TestStrategiesEmptyInput(t *testing.T) {
	for _, kind := range Strategies {
		strategy, err := Lookup(kind)
		require.NoError(t, err)
		res := strategy(nil, testNow)
		assert.Empty(t, res.Ordered, kind)
		assert.Empty(t, res.Scores, kind)
	}
}

func TestWeightedGreedyDescendingByOwnScore(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 50; round++ {
		res := WeightedGreedy(randomSnapshots(r, 1+r.Intn(30)), testNow)
		for i := 1; i < len(res.Ordered); i++ {
			prev := res.Scores[res.Ordered[i-1].ID]
			cur := res.Scores[res.Ordered[i].ID]
			require.GreaterOrEqual(t, prev, cur, "round %d position %d", round, i)
		}
	}
}

func TestGreedyScore(t *testing.T) {
	tests := []struct {
		name string
		task Snapshot
		want float64
	}{
		{"overdue", snap("x", 2, 10, -time.Hour), 2 * 11.0 / 10},
		{"due now", snap("x", 2, 10, 0), 2 * 11.0 / 10},
		{"saturated within a day", snap("x", 3, 60, 2*time.Hour), 3 * 11.0 / 60},
		{"two days out", snap("x", 4, 40, 48*time.Hour), 4 * 1.5 / 40},
		{"zero duration treated as one", snap("x", 1, 0, 48*time.Hour), 1.5},
		{"sub-minute remainder truncated", snap("x", 1, 1, 30*time.Second), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GreedyScore(tt.task, testNow), 1e-9)
		})
	}
}

func TestUrgency(t *testing.T) {
	assert.Equal(t, 10.0, Urgency(testNow.Add(-time.Minute), testNow))
	assert.Equal(t, 10.0, Urgency(testNow.Add(144*time.Minute), testNow))
	assert.InDelta(t, 1.0, Urgency(testNow.Add(24*time.Hour), testNow), 1e-9)
	assert.InDelta(t, 0.5, Urgency(testNow.Add(48*time.Hour), testNow), 1e-9)
}

func TestTwoTaskScenario(t *testing.T) {
	a := snap("A", 5, 30, 2*time.Hour)
	b := snap("B", 1, 120, time.Hour)
	in := []Snapshot{a, b}

	t.Run("edf", func(t *testing.T) {
		res := EarliestDeadlineFirst(in, testNow)
		require.Equal(t, []string{"B", "A"}, ids(res.Ordered))

		sim := Simulate(res.Ordered, res.Scores, 480, testNow)
		assert.Equal(t, int64(60), sim.Outcomes[0].TardinessMinutes)
		// A finishes at +150m against a +120m deadline.
		assert.Equal(t, int64(30), sim.Outcomes[1].TardinessMinutes)
		assert.Equal(t, 0.0, sim.OnTimeRate)
		assert.Equal(t, 45.0, sim.AverageTardinessMinutes)
	})

	t.Run("weighted greedy", func(t *testing.T) {
		res := WeightedGreedy(in, testNow)
		require.Equal(t, []string{"A", "B"}, ids(res.Ordered))
		assert.InDelta(t, 5*11.0/30, res.Scores["A"], 1e-9)
		assert.InDelta(t, 11.0/120, res.Scores["B"], 1e-9)

		sim := Simulate(res.Ordered, res.Scores, 480, testNow)
		assert.True(t, sim.Outcomes[0].OnTime())
		assert.Equal(t, testNow.Add(30*time.Minute), sim.Outcomes[0].Finish)
		assert.Equal(t, int64(90), sim.Outcomes[1].TardinessMinutes)
		assert.Equal(t, 0.5, sim.OnTimeRate)
		assert.Equal(t, 45.0, sim.AverageTardinessMinutes)
		assert.Equal(t, 150, sim.TotalEstimatedMinutes)
		assert.False(t, sim.Overloaded)
	})
}
