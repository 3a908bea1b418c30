package service

import (
	"context"
	"regexp"
	"strings"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/auth"
	"taskhub/internal/domain"
	"taskhub/internal/repo"
	"taskhub/pkg/utils"
)

// local@domain.tld, nothing fancier.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool { return emailPattern.MatchString(s) }

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	cache *EmailRosterCache
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, cache *EmailRosterCache) *AuthService {
	return &AuthService{users: users, jwter: jwter, cache: cache}
}

type RegisterInput struct {
	FullName string `json:"full_name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// Register creates an identity. The FindByEmail pre-check is a fast path
// for the common case; the unique index is the real enforcement and a
// duplicate-key failure from the store maps to the same error.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	email := strings.TrimSpace(in.Email)
	if !validEmail(email) {
		return "", apperr.BadRequest("Invalid email address")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return "", apperr.BadRequest("Invalid role")
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return "", apperr.Internal("lookup user failed", err)
	}
	if existing != nil {
		return "", apperr.Conflict("Email already registered")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		if repo.IsDupKey(err) {
			return "", apperr.Conflict("Email already registered")
		}
		return "", apperr.Internal("create user failed", err)
	}
	s.cache.Invalidate(ctx)
	return u.ID, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates and issues a bearer token. Both failure paths cost
// one bcrypt comparison and return the same generic error, so a caller
// cannot tell an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(in.Email))
	if err != nil {
		return "", nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		utils.CheckPassword(in.Password, utils.DummyHash)
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}
	if !utils.CheckPassword(in.Password, u.PasswordHash) {
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}

	tok, err := s.jwter.Issue(u.ID, u.Email, u.FullName, u.Role)
	if err != nil {
		return "", nil, apperr.Internal("issue token failed", err)
	}
	return tok, u, nil
}
