package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/stockbook/internal/models"
)

// TaskRepository implements secondary.TaskRepository with SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelectCols = "id, title, description, due_date, source_event_id, animal_id, mob_id, completed, completed_at, created_at"

func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*models.Task, error) {
	var desc sql.NullString

	task := &models.Task{}
	err := scanner.Scan(
		&task.ID, &task.Title, &desc, &task.DueDate,
		&task.SourceEventID, &task.AnimalID, &task.MobID,
		&task.Completed, &task.CompletedAt, &task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = desc.String
	return task, nil
}

// Save inserts the task when its ID is zero, otherwise updates in place.
func (r *TaskRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO tasks (title, description, due_date, source_event_id, animal_id, mob_id, completed, completed_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.Title, task.Description, task.DueDate,
			task.SourceEventID, task.AnimalID, task.MobID, task.Completed, task.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert task: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get task id: %w", err)
		}
		return r.GetByID(ctx, id)
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, source_event_id = ?, animal_id = ?,
		 mob_id = ?, completed = ?, completed_at = ? WHERE id = ?`,
		task.Title, task.Description, task.DueDate, task.SourceEventID, task.AnimalID,
		task.MobID, task.Completed, task.CompletedAt, task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return r.GetByID(ctx, task.ID)
}

// GetByID retrieves a task, returning (nil, nil) when it does not exist.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks WHERE id = ?", id,
	)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListPending returns incomplete tasks with no due date or a due date
// on or before until. Dated tasks come first in due-date order,
// undated tasks last.
func (r *TaskRepository) ListPending(ctx context.Context, until time.Time) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskSelectCols+` FROM tasks
		 WHERE completed = 0 AND (due_date IS NULL OR due_date <= ?)
		 ORDER BY due_date IS NULL, due_date, created_at`,
		until,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Complete marks a task done at the given time.
func (r *TaskRepository) Complete(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ?",
		at, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
