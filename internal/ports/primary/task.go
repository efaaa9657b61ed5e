package primary

import (
	"context"
	"time"

	"github.com/example/stockbook/internal/models"
)

// SaveTaskRequest creates a task when ID is zero, updates it
// otherwise. A nil DueDate means the task has no deadline and sorts
// after every dated task.
type SaveTaskRequest struct {
	ID            int64
	Title         string `validate:"required"`
	Description   string
	DueDate       *time.Time
	SourceEventID int64
	AnimalID      int64
	MobID         int64
}

// TaskService manages reminder tasks.
type TaskService interface {
	SaveTask(ctx context.Context, req SaveTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	// PendingTasks returns incomplete tasks with no due date or a due
	// date within daysAhead days of today.
	PendingTasks(ctx context.Context, daysAhead int) ([]*models.Task, error)
	CompleteTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
}
