package usecase

import (
	"errors"
	"strings"

	"task-manager-api/internal/task/domain"
	"task-manager-api/internal/task/repository"
)

var (
	// ErrTaskNotFound covers both a missing task and a task owned by another
	// user, so responses never leak whether a foreign task exists.
	ErrTaskNotFound = errors.New("task not found")

	ErrEmptyDescription = errors.New("description is required")
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(ownerID, description string, completed bool) (*domain.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	task := &domain.Task{
		Description: description,
		Completed:   completed,
		OwnerID:     ownerID,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.OwnerID != ownerID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) GetOwnerTasks(ownerID string, filter repository.ListFilter) ([]*domain.Task, error) {
	return u.taskRepo.FindByOwner(ownerID, filter)
}

func (u *taskUsecase) UpdateTask(ownerID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Description != nil {
		description := strings.TrimSpace(*updates.Description)
		if description == "" {
			return nil, ErrEmptyDescription
		}
		task.Description = description
	}
	if updates.Completed != nil {
		task.Completed = *updates.Completed
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.GetTaskByID(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if err := u.taskRepo.Delete(task.ID); err != nil {
		return nil, err
	}

	return task, nil
}
