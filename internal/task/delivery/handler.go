package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	authDelivery "task-manager-api/internal/auth/delivery"
	"task-manager-api/internal/task/domain"
	"task-manager-api/internal/task/repository"
	"task-manager-api/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Completed   bool   `json:"completed"`
}

// CreateTask creates a new task owned by the caller
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(authDelivery.CurrentUser(c).ID, req.Description, req.Completed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns the caller's tasks
// GET /tasks?completed=true&sortBy=description:desc&limit=10&skip=0
func (h *TaskHandler) GetTasks(c *gin.Context) {
	var filter repository.ListFilter

	if completed, ok := c.GetQuery("completed"); ok {
		value := completed == "true"
		filter.Completed = &value
	}

	if sortBy := c.Query("sortBy"); sortBy != "" {
		parts := strings.SplitN(sortBy, ":", 2)
		filter.SortField = parts[0]
		filter.SortDesc = len(parts) == 2 && parts[1] == "desc"
	}

	// Non-numeric limit/skip fall back to no limit and zero offset.
	if n, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = n
	}
	if n, err := strconv.Atoi(c.Query("skip")); err == nil {
		filter.Skip = n
	}

	tasks, err := h.taskUsecase.GetOwnerTasks(authDelivery.CurrentUser(c).ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Return empty array instead of null
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a single owned task
// GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTaskByID(authDelivery.CurrentUser(c).ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies an allow-listed update to an owned task
// PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	// DisallowUnknownFields enforces the update allow-list at the decoding
	// boundary: any key outside {description, completed} is rejected.
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var updates usecase.TaskUpdateRequest
	if err := dec.Decode(&updates); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid update operation"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	task, err := h.taskUsecase.UpdateTask(authDelivery.CurrentUser(c).ID, c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes an owned task and returns the deleted record
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, err := h.taskUsecase.DeleteTask(authDelivery.CurrentUser(c).ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}
