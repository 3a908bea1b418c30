package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskhub/internal/core/auth"
	"taskhub/internal/domain"
	"taskhub/internal/transport/http/handler"
	mdw "taskhub/internal/transport/http/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Projects *handler.ProjectHandler
	Tasks    *handler.TaskHandler
	Users    *handler.UserHandler
}

// NewEngine assembles the single API engine: hardening middleware chain,
// health and metrics probes, the public auth endpoints, and the
// authenticated resource groups. The admin surface is a role-gated group
// on the same engine, not a separate binary.
func NewEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Public.
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Any authenticated identity.
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	{
		authed.POST("/projects", h.Projects.Create)
		authed.GET("/projects", h.Projects.ListMine)
		authed.GET("/projects/all", h.Projects.ListAll)
		authed.PUT("/projects/:id", h.Projects.Update)
		authed.DELETE("/projects/:id", h.Projects.Delete)

		authed.POST("/tasks", h.Tasks.Create)
		authed.GET("/tasks/project/:projectID", h.Tasks.ListByProject)
		authed.GET("/tasks/mine", h.Tasks.ListMine)
		authed.PUT("/tasks/:id", h.Tasks.Update)
		authed.DELETE("/tasks/:id", h.Tasks.Delete)

		authed.GET("/users/emails", h.Users.Emails)
	}

	// Admin only.
	admin := api.Group("/users")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))
	{
		admin.GET("", h.Users.List)
		admin.PUT("/:id", h.Users.Update)
		admin.DELETE("/:id", h.Users.Delete)
	}

	return r
}
