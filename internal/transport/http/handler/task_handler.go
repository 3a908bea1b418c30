package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/domain"
	"taskhub/internal/service"
	mdw "taskhub/internal/transport/http/middleware"
	resp "taskhub/internal/transport/http/response"
)

type TaskHandler struct {
	svc *service.TaskService
	log *zap.Logger
}

func NewTaskHandler(svc *service.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: log}
}

type taskListQ struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
	Status string `form:"status"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var in service.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "title, project_id and assignee are required")
		return
	}
	t, err := h.svc.Create(in)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task created", "task": t})
}

func (h *TaskHandler) ListByProject(c *gin.Context) {
	var q taskListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	ts, total, err := h.svc.ListByProject(c.Param("projectID"), domain.TaskQuery{
		Page: q.Page, Limit: q.Limit, Search: q.Search, Status: q.Status,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks": ts, "total": total, "page": q.Page, "limit": q.Limit,
	})
}

// ListMine serves the caller's assigned tasks with project ids replaced
// by per-response aliases.
func (h *TaskHandler) ListMine(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		resp.Err(c, http.StatusUnauthorized, "Missing token")
		return
	}
	var q taskListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	views, total, err := h.svc.ListMine(claims.Email, domain.TaskQuery{
		Page: q.Page, Limit: q.Limit, Search: q.Search, Status: q.Status,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks": views, "total": total, "page": q.Page, "limit": q.Limit,
	})
}

// Update accepts an arbitrary field map; everything outside the
// allow-list {title, description, assignee, status} is dropped by the
// service.
func (h *TaskHandler) Update(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.Update(c.Param("id"), updates); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
