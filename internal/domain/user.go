package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FullName     string    `gorm:"size:64;not null" json:"full_name"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// UserQuery narrows admin user listings.
type UserQuery struct {
	Page   int
	Limit  int
	Search string // substring over full_name/email, case-insensitive
	Role   string // exact match when set
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	List(q UserQuery) ([]User, int64, error)
	ListEmails() ([]string, error)

	// Update persists changed user fields; when the email changed it also
	// rewrites projects.owner_email and tasks.assignee from oldEmail in the
	// same transaction.
	Update(u *User, oldEmail string) error

	// Delete removes the user plus all projects they own and all tasks
	// assigned to them, atomically.
	Delete(u *User) error
}
