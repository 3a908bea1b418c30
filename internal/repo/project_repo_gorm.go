package repo

import (
	"strings"

	"gorm.io/gorm"

	"taskhub/internal/domain"
)

type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Create(p *domain.Project) error { return r.db.Create(p).Error }

func (r *ProjectRepo) ListByOwner(ownerEmail string, q domain.ProjectQuery) ([]domain.Project, int64, error) {
	return r.list(r.db.Model(&domain.Project{}).Where("owner_email = ?", ownerEmail), q)
}

func (r *ProjectRepo) ListAll(q domain.ProjectQuery) ([]domain.Project, int64, error) {
	return r.list(r.db.Model(&domain.Project{}), q)
}

func (r *ProjectRepo) list(tx *gorm.DB, q domain.ProjectQuery) ([]domain.Project, int64, error) {
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var projects []domain.Project
	if err := tx.Order("created_at DESC").
		Offset(offsetOf(q.Page, q.Limit)).Limit(limitOf(q.Limit)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Update filters on id AND owner in a single query. A mismatched owner
// matches zero rows, indistinguishable from a missing project.
func (r *ProjectRepo) Update(id, ownerEmail string, fields map[string]any) (int64, error) {
	res := r.db.Model(&domain.Project{}).
		Where("id = ? AND owner_email = ?", id, ownerEmail).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ProjectRepo) Delete(id, ownerEmail string) (int64, error) {
	res := r.db.Where("id = ? AND owner_email = ?", id, ownerEmail).
		Delete(&domain.Project{})
	return res.RowsAffected, res.Error
}
