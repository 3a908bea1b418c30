package repo

import (
	"strings"

	"gorm.io/gorm"

	"taskhub/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(t *domain.Task) error { return r.db.Create(t).Error }

func (r *TaskRepo) ListByProject(projectID string, q domain.TaskQuery) ([]domain.Task, int64, error) {
	return r.list(r.db.Model(&domain.Task{}).Where("project_id = ?", projectID), q)
}

func (r *TaskRepo) ListByAssignee(assignee string, q domain.TaskQuery) ([]domain.Task, int64, error) {
	return r.list(r.db.Model(&domain.Task{}).Where("assignee = ?", assignee), q)
}

func (r *TaskRepo) list(tx *gorm.DB, q domain.TaskQuery) ([]domain.Task, int64, error) {
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", strings.ToLower(q.Status))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tasks []domain.Task
	if err := tx.Order("created_at DESC").
		Offset(offsetOf(q.Page, q.Limit)).Limit(limitOf(q.Limit)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update and Delete operate by id alone: any authenticated identity may
// mutate any task.
func (r *TaskRepo) Update(id string, fields map[string]any) (int64, error) {
	res := r.db.Model(&domain.Task{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *TaskRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
