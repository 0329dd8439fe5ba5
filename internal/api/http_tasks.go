package api

import (
	"context"
	"net/http"

	"weddingbook/internal/entity"

	"github.com/gin-gonic/gin"
)

// ListTasks GET /tasks (admin) 支持按状态和类型筛选
func (h *HTTPHandler) ListTasks(c *gin.Context) {
	var query entity.TaskQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}
	if query.Status != nil && !entity.IsTaskStatus(*query.Status) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTaskStatus,
			"unknown task status", gin.H{"value": *query.Status})
		return
	}
	if query.Type != nil && !entity.IsTaskKind(*query.Type) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTaskType,
			"unknown task type", gin.H{"value": *query.Type})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	tasks, err := h.taskService.List(ctx, &query)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask POST /tasks (admin) 登记延迟任务，执行交给进程外 worker
func (h *HTTPHandler) CreateTask(c *gin.Context) {
	var req entity.TaskRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if !entity.IsTaskKind(req.Type) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidTaskType,
			"unknown task type", gin.H{"value": req.Type})
		return
	}

	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	task, err := h.taskService.Register(ctx, req.Type, req.Message, user.ID)
	if err != nil {
		CatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}
