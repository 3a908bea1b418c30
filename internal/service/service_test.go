package service

import (
	"context"

	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskhub/internal/core/auth"
	"taskhub/internal/domain"
	"taskhub/internal/repo"
)

var testDBSeq atomic.Int64

type fixture struct {
	db       *gorm.DB
	auth     *AuthService
	projects *ProjectService
	tasks    *TaskService
	users    *UserService
	jwter    *auth.JWTer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Project{}, &domain.Task{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "taskhub-test", TTL: 2 * time.Hour}
	userRepo := repo.NewUserRepo(db)
	return &fixture{
		db:       db,
		auth:     NewAuthService(userRepo, jwter, nil),
		projects: NewProjectService(repo.NewProjectRepo(db)),
		tasks:    NewTaskService(repo.NewTaskRepo(db)),
		users:    NewUserService(userRepo, nil),
		jwter:    jwter,
	}
}

func (f *fixture) register(t *testing.T, email, role string) string {
	t.Helper()
	id, err := f.auth.Register(context.Background(), RegisterInput{
		FullName: "Test " + email,
		Email:    email,
		Password: "pw123456",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return id
}
