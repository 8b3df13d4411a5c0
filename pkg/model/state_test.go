package model

import "testing"

func TestTaskStatus_IsPending(t *testing.T) {
	tests := []struct {
		status  TaskStatus
		pending bool
	}{
		{TaskStatusTodo, true},
		{TaskStatusInProgress, true},
		{TaskStatusDone, false},
	}
	for _, tt := range tests {
		if got := tt.status.IsPending(); got != tt.pending {
			t.Errorf("TaskStatus(%q).IsPending() = %v, want %v", tt.status, got, tt.pending)
		}
	}
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		input string
		want  TaskStatus
		ok    bool
	}{
		{"TODO", TaskStatusTodo, true},
		{"todo", TaskStatusTodo, true},
		{"in-progress", TaskStatusInProgress, true},
		{"IN_PROGRESS", TaskStatusInProgress, true},
		{" done ", TaskStatusDone, true},
		{"CLOSED", TaskStatus("CLOSED"), false},
		{"", TaskStatus(""), false},
	}
	for _, tt := range tests {
		got, ok := ParseTaskStatus(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTaskStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseStrategyType(t *testing.T) {
	tests := []struct {
		input string
		want  StrategyType
	}{
		{"edf", StrategyEDF},
		{"EDF", StrategyEDF},
		{"weighted-greedy", StrategyWeightedGreedy},
		{"WEIGHTED_GREEDY", StrategyWeightedGreedy},
		{"round-robin", StrategyType("ROUND_ROBIN")},
	}
	for _, tt := range tests {
		if got := ParseStrategyType(tt.input); got != tt.want {
			t.Errorf("ParseStrategyType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
