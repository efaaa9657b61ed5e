package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo secondary.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(taskRepo secondary.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// SaveTask creates or updates a task.
func (s *TaskServiceImpl) SaveTask(ctx context.Context, req primary.SaveTaskRequest) (*models.Task, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:            req.ID,
		Title:         req.Title,
		Description:   req.Description,
		SourceEventID: nullID(req.SourceEventID),
		AnimalID:      nullID(req.AnimalID),
		MobID:         nullID(req.MobID),
	}
	if req.DueDate != nil {
		task.DueDate = sql.NullTime{Time: *req.DueDate, Valid: true}
	}

	// Updates keep the existing completion state.
	if req.ID > 0 {
		existing, err := s.taskRepo.GetByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("task %d not found", req.ID)
		}
		task.Completed = existing.Completed
		task.CompletedAt = existing.CompletedAt
	}

	saved, err := s.taskRepo.Save(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return saved, nil
}

// GetTask retrieves a task by ID.
func (s *TaskServiceImpl) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %d not found", id)
	}
	return task, nil
}

// PendingTasks returns incomplete tasks with no due date or a due date
// within daysAhead days of today.
func (s *TaskServiceImpl) PendingTasks(ctx context.Context, daysAhead int) ([]*models.Task, error) {
	until := s.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, daysAhead)
	return s.taskRepo.ListPending(ctx, until)
}

// CompleteTask marks a task done.
func (s *TaskServiceImpl) CompleteTask(ctx context.Context, id int64) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task %d not found", id)
	}
	return s.taskRepo.Complete(ctx, id, s.now())
}

// DeleteTask deletes a task.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	return s.taskRepo.Delete(ctx, id)
}

var _ primary.TaskService = (*TaskServiceImpl)(nil)
