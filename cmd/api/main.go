package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskhub/internal/core/auth"
	"taskhub/internal/core/cache"
	"taskhub/internal/core/config"
	"taskhub/internal/core/database"
	"taskhub/internal/core/logger"
	"taskhub/internal/core/server"
	"taskhub/internal/domain"
	"taskhub/internal/repo"
	"taskhub/internal/service"
	"taskhub/internal/transport/http/handler"
	"taskhub/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Project{}, &domain.Task{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var roster *service.EmailRosterCache
	if cfg.Redis.Enable {
		roster = service.NewEmailRosterCache(cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB))
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	userRepo := repo.NewUserRepo(db)
	authSvc := service.NewAuthService(userRepo, jwter, roster)
	projectSvc := service.NewProjectService(repo.NewProjectRepo(db))
	taskSvc := service.NewTaskService(repo.NewTaskRepo(db))
	userSvc := service.NewUserService(userRepo, roster)

	r := router.NewEngine(log, jwter, router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, log),
		Projects: handler.NewProjectHandler(projectSvc, log),
		Tasks:    handler.NewTaskHandler(taskSvc, log),
		Users:    handler.NewUserHandler(userSvc, log),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("api starting", zap.String("addr", addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		ConnectAttempts:    cfg.DB.ConnectAttempts,
		ConnectBackoffSec:  cfg.DB.ConnectBackoffSec,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
