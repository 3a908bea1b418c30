package domain

import "time"

const TaskStatusOpen = "open"

// Task references its project by a plain string id; no foreign key is
// enforced, and the assignee is denormalized by email like Project owners.
type Task struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"size:1024" json:"description"`
	ProjectID   string    `gorm:"index;size:32;not null" json:"project_id"`
	Assignee    string    `gorm:"index;size:255;not null" json:"assignee"`
	Status      string    `gorm:"size:32;not null;default:open" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Task) TableName() string { return "tasks" }

type TaskQuery struct {
	Page   int
	Limit  int
	Search string // substring over title/description, case-insensitive
	Status string // exact match when set
}

type TaskRepository interface {
	Create(t *Task) error
	ListByProject(projectID string, q TaskQuery) ([]Task, int64, error)
	ListByAssignee(assignee string, q TaskQuery) ([]Task, int64, error)

	// Update and Delete operate by id alone; there is deliberately no
	// ownership filter on task mutation.
	Update(id string, fields map[string]any) (int64, error)
	Delete(id string) (int64, error)
}
