package service

import (
	"strings"

	"taskhub/internal/core/apperr"
	"taskhub/internal/domain"
	"taskhub/pkg/utils"
)

type ProjectService struct {
	projects domain.ProjectRepository
}

func NewProjectService(projects domain.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

type CreateProjectInput struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"required,max=1024"`
}

func (s *ProjectService) Create(ownerEmail string, in CreateProjectInput) (*domain.Project, error) {
	p := &domain.Project{
		ID:          utils.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		OwnerEmail:  ownerEmail,
	}
	if err := s.projects.Create(p); err != nil {
		return nil, apperr.Internal("create project failed", err)
	}
	return p, nil
}

func (s *ProjectService) ListMine(ownerEmail string, q domain.ProjectQuery) ([]domain.Project, int64, error) {
	ps, total, err := s.projects.ListByOwner(ownerEmail, q)
	if err != nil {
		return nil, 0, apperr.Internal("list projects failed", err)
	}
	return ps, total, nil
}

// ListAll has no owner filter and no role gate: any authenticated
// identity may browse every project.
func (s *ProjectService) ListAll(q domain.ProjectQuery) ([]domain.Project, int64, error) {
	ps, total, err := s.projects.ListAll(q)
	if err != nil {
		return nil, 0, apperr.Internal("list projects failed", err)
	}
	return ps, total, nil
}

type UpdateProjectInput struct {
	Name        *string `json:"name" binding:"omitempty,max=128"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

// Update mutates only when id AND owner match. Zero rows affected is
// reported as not-found whether the project is absent or owned by someone
// else; the caller cannot tell the cases apart.
func (s *ProjectService) Update(id, ownerEmail string, in UpdateProjectInput) error {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if len(fields) == 0 {
		return apperr.BadRequest("No valid fields to update")
	}

	n, err := s.projects.Update(id, ownerEmail, fields)
	if err != nil {
		return apperr.Internal("update project failed", err)
	}
	if n == 0 {
		return apperr.NotFound("Project not found")
	}
	return nil
}

func (s *ProjectService) Delete(id, ownerEmail string) error {
	n, err := s.projects.Delete(id, ownerEmail)
	if err != nil {
		return apperr.Internal("delete project failed", err)
	}
	if n == 0 {
		return apperr.NotFound("Project not found")
	}
	return nil
}
