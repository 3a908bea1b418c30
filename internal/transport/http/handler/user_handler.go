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

// UserHandler carries the admin surface plus the email roster, which is
// open to any authenticated identity.
type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

type userListQ struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
	Role   string `form:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	var q userListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	users, total, err := h.svc.List(domain.UserQuery{
		Page: q.Page, Limit: q.Limit, Search: q.Search, Role: q.Role,
	})
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users": users, "total": total, "page": q.Page, "limit": q.Limit,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	var in service.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	claims, ok := mdw.ClaimsFrom(c)
	if !ok {
		resp.Err(c, http.StatusUnauthorized, "Missing token")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), claims.UID); err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *UserHandler) Emails(c *gin.Context) {
	emails, err := h.svc.Emails(c.Request.Context())
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"emails": emails})
}
