package repo

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskhub/internal/domain"
	"taskhub/pkg/utils"
)

var testDBSeq atomic.Int64

// newTestDB opens a named in-memory database with a shared cache so every
// pooled connection sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Project{}, &domain.Task{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     "Test " + email,
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedProject(t *testing.T, db *gorm.DB, name, owner string) *domain.Project {
	t.Helper()
	p := &domain.Project{
		ID:          utils.NewID(),
		Name:        name,
		Description: name + " description",
		OwnerEmail:  owner,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed project %s: %v", name, err)
	}
	return p
}

func seedTask(t *testing.T, db *gorm.DB, title, projectID, assignee string) *domain.Task {
	t.Helper()
	task := &domain.Task{
		ID:          utils.NewID(),
		Title:       title,
		Description: title + " description",
		ProjectID:   projectID,
		Assignee:    assignee,
		Status:      domain.TaskStatusOpen,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("seed task %s: %v", title, err)
	}
	return task
}
