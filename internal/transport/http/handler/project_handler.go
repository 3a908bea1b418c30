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

type ProjectHandler struct {
	svc *service.ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc *service.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: log}
}

type projectListQ struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		resp.Err(c, http.StatusUnauthorized, "Missing token")
		return
	}
	var in service.CreateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "Name and description are required")
		return
	}
	p, err := h.svc.Create(claims.Email, in)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Project created", "project": p})
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		resp.Err(c, http.StatusUnauthorized, "Missing token")
		return
	}
	var q projectListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	ps, total, err := h.svc.ListMine(claims.Email, domain.ProjectQuery{
		Page: q.Page, Limit: q.Limit, Search: q.Search,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects": ps, "total": total, "page": q.Page, "limit": q.Limit,
	})
}

// ListAll is reachable by any authenticated identity; there is no role
// gate on the unscoped listing.
func (h *ProjectHandler) ListAll(c *gin.Context) {
	var q projectListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	ps, total, err := h.svc.ListAll(domain.ProjectQuery{
		Page: q.Page, Limit: q.Limit, Search: q.Search,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects": ps, "total": total, "page": q.Page, "limit": q.Limit,
	})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		resp.Err(c, http.StatusUnauthorized, "Missing token")
		return
	}
	var in service.UpdateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.Update(c.Param("id"), claims.Email, in); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		resp.Err(c, http.StatusUnauthorized, "Missing token")
		return
	}
	if err := h.svc.Delete(c.Param("id"), claims.Email); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
