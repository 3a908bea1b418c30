package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/service"
	resp "taskhub/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "full_name, email and password are required")
		return
	}
	id, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered", "user_id": id})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "email and password are required")
		return
	}
	tok, u, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		resp.FromError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": tok,
		"user": gin.H{
			"id": u.ID, "email": u.Email, "full_name": u.FullName, "role": u.Role,
		},
	})
}
