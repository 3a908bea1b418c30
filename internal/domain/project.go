package domain

import "time"

// Project ownership is denormalized by email rather than user id; the
// cascade and rename rules in UserRepository depend on that.
type Project struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	OwnerEmail  string    `gorm:"index;size:255;not null" json:"owner_email"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Project) TableName() string { return "projects" }

type ProjectQuery struct {
	Page   int
	Limit  int
	Search string // substring over name/description, case-insensitive
}

type ProjectRepository interface {
	Create(p *Project) error

	// ListByOwner returns only projects owned by ownerEmail.
	ListByOwner(ownerEmail string, q ProjectQuery) ([]Project, int64, error)

	// ListAll is the unscoped listing, same pagination/search shape.
	ListAll(q ProjectQuery) ([]Project, int64, error)

	// Update and Delete filter on id AND ownerEmail in one query; zero rows
	// affected means "not found or not yours" and the two are not
	// distinguished.
	Update(id, ownerEmail string, fields map[string]any) (int64, error)
	Delete(id, ownerEmail string) (int64, error)
}
