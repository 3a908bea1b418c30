package service

import (
	"context"
	"strings"

	"taskhub/internal/core/apperr"
	"taskhub/internal/domain"
	"taskhub/internal/repo"
	"taskhub/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	cache *EmailRosterCache
}

func NewUserService(users domain.UserRepository, cache *EmailRosterCache) *UserService {
	return &UserService{users: users, cache: cache}
}

func (s *UserService) List(q domain.UserQuery) ([]domain.User, int64, error) {
	users, total, err := s.users.List(q)
	if err != nil {
		return nil, 0, apperr.Internal("list users failed", err)
	}
	return users, total, nil
}

type UpdateUserInput struct {
	FullName *string `json:"full_name" binding:"omitempty,max=64"`
	Email    *string `json:"email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// Update lets an admin change name, email or password. An email change
// also rewrites every project and task referencing the old address, in
// the same transaction as the user row.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	if in.FullName == nil && in.Email == nil && in.Password == nil {
		return nil, apperr.BadRequest("No valid fields to update")
	}

	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	oldEmail := u.Email
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !validEmail(email) {
			return nil, apperr.BadRequest("Invalid email address")
		}
		u.Email = email
	}
	if in.Password != nil {
		u.PasswordHash = utils.HashPassword(*in.Password)
	}

	if err := s.users.Update(u, oldEmail); err != nil {
		if repo.IsDupKey(err) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("update user failed", err)
	}
	s.cache.Invalidate(ctx)
	return u, nil
}

// Delete removes the identity and cascades to its projects and assigned
// tasks. Admins cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, id, callerUID string) error {
	if id == callerUID {
		return apperr.Forbidden("Admins cannot delete their own account")
	}

	u, err := s.users.FindByID(id)
	if err != nil {
		return apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}
	if err := s.users.Delete(u); err != nil {
		return apperr.Internal("delete user failed", err)
	}
	s.cache.Invalidate(ctx)
	return nil
}

// Emails returns every registered email, served through the short-TTL
// roster cache when one is configured.
func (s *UserService) Emails(ctx context.Context) ([]string, error) {
	out, err := s.cache.GetOrLoad(ctx, func(ctx context.Context) (*[]string, error) {
		emails, err := s.users.ListEmails()
		if err != nil {
			return nil, err
		}
		return &emails, nil
	})
	if err != nil {
		return nil, apperr.Internal("list emails failed", err)
	}
	if out == nil {
		return []string{}, nil
	}
	return *out, nil
}
