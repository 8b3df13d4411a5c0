package model

import "testing"

func TestListOptions_Clamp(t *testing.T) {
	tests := []struct {
		name       string
		input      ListOptions
		wantLimit  int
		wantOffset int
	}{
		{"zero limit gets default", ListOptions{}, 20, 0},
		{"negative limit gets default", ListOptions{Limit: -5}, 20, 0},
		{"limit capped at 100", ListOptions{Limit: 200}, 100, 0},
		{"negative offset reset", ListOptions{Limit: 10, Offset: -3}, 10, 0},
		{"in range untouched", ListOptions{Limit: 50, Offset: 10}, 50, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Clamp()
			if tt.input.Limit != tt.wantLimit || tt.input.Offset != tt.wantOffset {
				t.Errorf("got limit=%d offset=%d, want limit=%d offset=%d",
					tt.input.Limit, tt.input.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestListOptions_ClampKeepsStatusFilter(t *testing.T) {
	for _, st := range []TaskStatus{"", TaskStatusTodo, TaskStatusInProgress, TaskStatusDone} {
		opts := ListOptions{Limit: 500, Offset: -1, Status: st}
		opts.Clamp()
		if opts.Status != st {
			t.Errorf("Status = %q after Clamp, want %q", opts.Status, st)
		}
	}
}

func TestDefaultListOptions(t *testing.T) {
	opts := DefaultListOptions()
	if opts.Limit != 20 || opts.Offset != 0 {
		t.Errorf("got limit=%d offset=%d, want limit=20 offset=0", opts.Limit, opts.Offset)
	}
	if opts.Status != "" {
		t.Errorf("Status = %q, want no filter", opts.Status)
	}
}
