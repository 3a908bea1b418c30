package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskhub/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List(q domain.UserQuery) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Order("created_at DESC").
		Offset(offsetOf(q.Page, q.Limit)).Limit(limitOf(q.Limit)).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) ListEmails() ([]string, error) {
	var emails []string
	err := r.db.Model(&domain.User{}).Order("email").Pluck("email", &emails).Error
	return emails, err
}

// Update saves the user row and, when the email changed, rewrites every
// project and task that still references the old address. The whole
// rename runs in one transaction so a crash cannot leave the references
// split between the two addresses.
func (r *UserRepo) Update(u *domain.User, oldEmail string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(u).Error; err != nil {
			return err
		}
		if oldEmail == u.Email {
			return nil
		}
		if err := tx.Model(&domain.Project{}).
			Where("owner_email = ?", oldEmail).
			Update("owner_email", u.Email).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Task{}).
			Where("assignee = ?", oldEmail).
			Update("assignee", u.Email).Error
	})
}

// Delete removes the user together with every project they own and every
// task assigned to them, atomically.
func (r *UserRepo) Delete(u *domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", u.ID).Delete(&domain.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("owner_email = ?", u.Email).Delete(&domain.Project{}).Error; err != nil {
			return err
		}
		return tx.Where("assignee = ?", u.Email).Delete(&domain.Task{}).Error
	})
}

// IsDupKey reports whether err is a unique-constraint violation. Matching
// on message text keeps it uniform across mysql, postgres and sqlite.
func IsDupKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
