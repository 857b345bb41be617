package repository

import "task-manager-api/internal/task/domain"

// ListFilter narrows and orders an owner's task listing.
// Limit and Skip are ignored when non-positive, SortField when it is not a
// known task column.
type ListFilter struct {
	Completed *bool
	SortField string
	SortDesc  bool
	Limit     int
	Skip      int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, nil if absent
	FindByID(id string) (*domain.Task, error)

	// FindByOwner finds the tasks of one owner, filtered, sorted and paginated
	FindByOwner(ownerID string, filter ListFilter) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
