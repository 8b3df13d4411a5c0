package store

import (
	"context"
	"errors"

	"github.com/me/taskflow/pkg/model"
)

// ErrNotFound is returned by mutating operations whose target row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence layer for taskflow entities.
type Store interface {
	// Task CRUD
	CreateTask(ctx context.Context, task *model.Task) error
	GetTask(ctx context.Context, id string) (*model.Task, error)
	ListTasks(ctx context.Context, opts model.ListOptions) ([]*model.Task, int, error)
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, id string) error

	// ListPendingTasks returns every task whose status is not DONE.
	ListPendingTasks(ctx context.Context) ([]*model.Task, error)

	// CountTasksByStatus returns the number of tasks per status.
	CountTasksByStatus(ctx context.Context) (model.TaskSummary, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
