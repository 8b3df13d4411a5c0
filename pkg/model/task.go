package model

import (
	"strings"
	"time"
)

// Task is a unit of work recorded by a user and ordered by the scheduler.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Deadline         time.Time  `json:"deadline"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Priority         int        `json:"priority"`
	Status           TaskStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Priority bounds. 5 is the most urgent.
const (
	MinPriority = 1
	MaxPriority = 5
)

// MaxEstimatedMinutes caps a single task's estimate at one year.
const MaxEstimatedMinutes = 365 * 24 * 60

// IsPending reports whether the task still needs scheduling.
func (t *Task) IsPending() bool {
	return t.Status.IsPending()
}

// CreateTaskRequest is the payload accepted when recording a new task.
type CreateTaskRequest struct {
	Title            string    `json:"title" yaml:"title"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	Deadline         time.Time `json:"deadline" yaml:"deadline"`
	EstimatedMinutes int       `json:"estimated_minutes" yaml:"estimated_minutes"`
	Priority         int       `json:"priority" yaml:"priority"`
}

// Validate checks the request fields and returns a VALIDATION_ERROR listing
// every offending field, or nil.
func (r *CreateTaskRequest) Validate() *APIError {
	var details []FieldError
	if strings.TrimSpace(r.Title) == "" {
		details = append(details, FieldError{Field: "title", Message: "title is required"})
	}
	if r.Deadline.IsZero() {
		details = append(details, FieldError{Field: "deadline", Message: "deadline is required"})
	}
	switch {
	case r.EstimatedMinutes < 1:
		details = append(details, FieldError{Field: "estimated_minutes", Message: "estimated_minutes must be at least 1"})
	case r.EstimatedMinutes > MaxEstimatedMinutes:
		details = append(details, FieldError{Field: "estimated_minutes", Message: "estimated_minutes must be at most 525600"})
	}
	if r.Priority < MinPriority || r.Priority > MaxPriority {
		details = append(details, FieldError{Field: "priority", Message: "priority must be between 1 and 5"})
	}
	if len(details) > 0 {
		return NewValidationError("invalid task", details...)
	}
	return nil
}

// NewTask builds a TODO task from a validated request.
func NewTask(id string, req CreateTaskRequest, now time.Time) *Task {
	return &Task{
		ID:               id,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Deadline:         req.Deadline.UTC(),
		EstimatedMinutes: req.EstimatedMinutes,
		Priority:         req.Priority,
		Status:           TaskStatusTodo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// TaskSummary provides an aggregate count of task statuses.
type TaskSummary struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}
