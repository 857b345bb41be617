package usecase

import (
	"task-manager-api/internal/task/domain"
	"task-manager-api/internal/task/repository"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task owned by the caller
	CreateTask(ownerID, description string, completed bool) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(ownerID, taskID string) (*domain.Task, error)

	// GetOwnerTasks retrieves the caller's tasks with optional filters
	GetOwnerTasks(ownerID string, filter repository.ListFilter) ([]*domain.Task, error)

	// UpdateTask applies an allow-listed update to an owned task
	UpdateTask(ownerID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes an owned task and returns the deleted record
	DeleteTask(ownerID, taskID string) (*domain.Task, error)
}

// TaskUpdateRequest represents the fields that can be updated.
// Any other key is rejected at the decoding boundary.
type TaskUpdateRequest struct {
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
