package service

import (
	"fmt"
	"strings"

	"taskhub/internal/core/apperr"
	"taskhub/internal/domain"
	"taskhub/pkg/utils"
)

// Fields a task update may touch. Anything else in the payload is
// silently dropped.
var taskUpdateAllowList = map[string]struct{}{
	"title":       {},
	"description": {},
	"assignee":    {},
	"status":      {},
}

type TaskService struct {
	tasks domain.TaskRepository
}

func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

type CreateTaskInput struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"max=1024"`
	ProjectID   string `json:"project_id" binding:"required"`
	Assignee    string `json:"assignee" binding:"required"`
}

// Create accepts an arbitrary assignee and project id; the project
// reference is a plain string and is not checked for existence, and no
// ownership rule applies to creation.
func (s *TaskService) Create(in CreateTaskInput) (*domain.Task, error) {
	t := &domain.Task{
		ID:          utils.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ProjectID:   in.ProjectID,
		Assignee:    in.Assignee,
		Status:      domain.TaskStatusOpen,
	}
	if err := s.tasks.Create(t); err != nil {
		return nil, apperr.Internal("create task failed", err)
	}
	return t, nil
}

func (s *TaskService) ListByProject(projectID string, q domain.TaskQuery) ([]domain.Task, int64, error) {
	ts, total, err := s.tasks.ListByProject(projectID, q)
	if err != nil {
		return nil, 0, apperr.Internal("list tasks failed", err)
	}
	return ts, total, nil
}

// TaskView is a Task whose raw project id has been replaced by a
// per-response alias.
type TaskView struct {
	domain.Task
	ProjectLabel string `json:"project"`
}

// ListMine returns the caller's assigned tasks with project ids
// anonymized: distinct ids become "Project 1".."Project N" in first-seen
// order, and the alias replaces the raw id in the payload.
func (s *TaskService) ListMine(assignee string, q domain.TaskQuery) ([]TaskView, int64, error) {
	ts, total, err := s.tasks.ListByAssignee(assignee, q)
	if err != nil {
		return nil, 0, apperr.Internal("list tasks failed", err)
	}

	aliases := map[string]string{}
	views := make([]TaskView, 0, len(ts))
	for _, t := range ts {
		label, ok := aliases[t.ProjectID]
		if !ok {
			label = fmt.Sprintf("Project %d", len(aliases)+1)
			aliases[t.ProjectID] = label
		}
		t.ProjectID = ""
		views = append(views, TaskView{Task: t, ProjectLabel: label})
	}
	return views, total, nil
}

// Update applies the allow-listed subset of updates by id. There is no
// ownership filter: any authenticated identity may mutate any task.
func (s *TaskService) Update(id string, updates map[string]any) error {
	fields := map[string]any{}
	for k, v := range updates {
		if _, ok := taskUpdateAllowList[k]; ok {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return apperr.BadRequest("No valid fields to update")
	}
	if st, ok := fields["status"].(string); ok {
		fields["status"] = strings.ToLower(strings.TrimSpace(st))
	}

	n, err := s.tasks.Update(id, fields)
	if err != nil {
		return apperr.Internal("update task failed", err)
	}
	if n == 0 {
		return apperr.NotFound("Task not found")
	}
	return nil
}

func (s *TaskService) Delete(id string) error {
	n, err := s.tasks.Delete(id)
	if err != nil {
		return apperr.Internal("delete task failed", err)
	}
	if n == 0 {
		return apperr.NotFound("Task not found")
	}
	return nil
}
