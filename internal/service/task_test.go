package service

import (
	"testing"

	"taskhub/internal/core/apperr"
	"taskhub/internal/domain"
)

func TestTaskUpdateAllowList(t *testing.T) {
	f := newFixture(t)
	task, err := f.tasks.Create(CreateTaskInput{
		Title: "t", Description: "d", ProjectID: "p-1", Assignee: "ann@x.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = f.tasks.Update(task.ID, map[string]any{
		"title":      "new title",
		"status":     " Completed ",
		"id":         "evil-id",
		"created_at": "1999-01-01",
		"project_id": "p-other",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	var got domain.Task
	f.db.First(&got, "id = ?", task.ID)
	if got.Title != "new title" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Status != "completed" {
		t.Errorf("status = %q, want normalized completed", got.Status)
	}
	if got.ID != task.ID || got.ProjectID != "p-1" {
		t.Errorf("disallowed fields leaked through: %+v", got)
	}
}

func TestTaskUpdateNoValidFields(t *testing.T) {
	f := newFixture(t)
	task, _ := f.tasks.Create(CreateTaskInput{
		Title: "t", Description: "d", ProjectID: "p-1", Assignee: "a@b.co",
	})

	err := f.tasks.Update(task.ID, map[string]any{"id": "x", "owner": "y"})
	if apperr.Status(err) != 400 {
		t.Errorf("update with only disallowed fields = %v, want 400", err)
	}
	if err := f.tasks.Update(task.ID, map[string]any{}); apperr.Status(err) != 400 {
		t.Errorf("empty update = %v, want 400", err)
	}
}

func TestTaskUpdateDeleteMissing(t *testing.T) {
	f := newFixture(t)
	if err := f.tasks.Update("ghost", map[string]any{"status": "open"}); apperr.Status(err) != 404 {
		t.Errorf("update missing = %v, want 404", err)
	}
	if err := f.tasks.Delete("ghost"); apperr.Status(err) != 404 {
		t.Errorf("delete missing = %v, want 404", err)
	}
}

func TestTaskListMineAnonymizesProjects(t *testing.T) {
	f := newFixture(t)
	mk := func(title, project string) {
		if _, err := f.tasks.Create(CreateTaskInput{
			Title: title, Description: "d", ProjectID: project, Assignee: "ann@x.com",
		}); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}
	mk("t1", "proj-secret-a")
	mk("t2", "proj-secret-b")
	mk("t3", "proj-secret-a")

	views, total, err := f.tasks.ListMine("ann@x.com", domain.TaskQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if total != 3 || len(views) != 3 {
		t.Fatalf("total=%d len=%d, want 3", total, len(views))
	}

	labels := map[string]string{} // title -> label
	for _, v := range views {
		if v.ProjectID != "" {
			t.Errorf("raw project id %q leaked for %s", v.ProjectID, v.Title)
		}
		if v.ProjectLabel == "" {
			t.Errorf("no alias assigned for %s", v.Title)
		}
		labels[v.Title] = v.ProjectLabel
	}
	if labels["t1"] != labels["t3"] {
		t.Errorf("same project must share an alias: %q vs %q", labels["t1"], labels["t3"])
	}
	if labels["t1"] == labels["t2"] {
		t.Error("different projects must not share an alias")
	}
}
