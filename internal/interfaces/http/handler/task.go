package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workshopapp "github.com/lanzy-lanzy/tailoring/internal/application/workshop"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// TaskHandler handles tailoring task endpoints
type TaskHandler struct {
	BaseHandler
	taskService *workshopapp.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *workshopapp.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List lists all tasks across tailors
func (h *TaskHandler) List(c *gin.Context) {
	var filter workshopapp.TaskListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tasks, total, err := h.taskService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, tasks, total, filter.Page, filter.PageSize)
}

// ListMine lists the authenticated tailor's own tasks
func (h *TaskHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter workshopapp.TaskListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tasks, total, err := h.taskService.ListMine(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, tasks, total, filter.Page, filter.PageSize)
}

// Get returns one task; tailors can only see their own
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.taskService.GetByID(c.Request.Context(), id, userID, isAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Start marks the assigned task as being worked on
func (h *TaskHandler) Start(c *gin.Context) {
	h.transition(c, h.taskService.Start)
}

// Complete marks the task's sewing work as finished
func (h *TaskHandler) Complete(c *gin.Context) {
	h.transition(c, h.taskService.Complete)
}

// Approve accepts completed work and credits the commission
func (h *TaskHandler) Approve(c *gin.Context) {
	h.transition(c, h.taskService.Approve)
}

func (h *TaskHandler) transition(c *gin.Context, op func(ctx context.Context, taskID, actorID uuid.UUID) (*workshopapp.TaskResponse, error)) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := op(c.Request.Context(), id, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers task routes
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.GET("", middleware.RequireAdmin(), h.List)
	tasks.GET("/mine", h.ListMine)
	tasks.GET("/:id", h.Get)
	tasks.POST("/:id/start", h.Start)
	tasks.POST("/:id/complete", h.Complete)
	tasks.POST("/:id/approve", middleware.RequireAdmin(), h.Approve)
}
