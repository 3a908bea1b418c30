package repo

import (
	"errors"
	"testing"

	"taskhub/internal/domain"
	"taskhub/pkg/utils"
)

func TestUserRepoCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	u := seedUser(t, db, "ann@x.com", domain.RoleUser)

	byID, err := r.FindByID(u.ID)
	if err != nil || byID == nil {
		t.Fatalf("FindByID = %v, %v", byID, err)
	}
	byEmail, err := r.FindByEmail("ann@x.com")
	if err != nil || byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("FindByEmail = %v, %v", byEmail, err)
	}
	missing, err := r.FindByEmail("nobody@x.com")
	if err != nil || missing != nil {
		t.Fatalf("FindByEmail missing = %v, %v, want nil, nil", missing, err)
	}
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	seedUser(t, db, "dup@x.com", domain.RoleUser)
	err := r.Create(&domain.User{
		ID: utils.NewID(), Email: "dup@x.com", FullName: "Again", PasswordHash: "x", Role: domain.RoleUser,
	})
	if err == nil {
		t.Fatal("second insert with same email should fail on the unique index")
	}
	if !IsDupKey(err) {
		t.Errorf("IsDupKey(%v) = false, want true", err)
	}
}

func TestIsDupKeyNonDup(t *testing.T) {
	if IsDupKey(nil) {
		t.Error("IsDupKey(nil) should be false")
	}
	if IsDupKey(errors.New("connection refused")) {
		t.Error("IsDupKey should not match unrelated errors")
	}
}

func TestUserRepoListSearchAndRole(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	seedUser(t, db, "john@x.com", domain.RoleUser)
	seedUser(t, db, "jane@x.com", domain.RoleUser)
	seedUser(t, db, "root@x.com", domain.RoleAdmin)

	users, total, err := r.List(domain.UserQuery{Page: 1, Limit: 10, Search: "JOHN"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].Email != "john@x.com" {
		t.Errorf("search JOHN: total=%d users=%v", total, users)
	}

	_, total, err = r.List(domain.UserQuery{Page: 1, Limit: 10, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("List by role: %v", err)
	}
	if total != 1 {
		t.Errorf("role filter total = %d, want 1", total)
	}

	users, total, err = r.List(domain.UserQuery{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	if total != 3 || len(users) != 1 {
		t.Errorf("page 2 of 2: total=%d len=%d, want 3, 1", total, len(users))
	}
}

func TestUserRepoListEmails(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	seedUser(t, db, "b@x.com", domain.RoleUser)
	seedUser(t, db, "a@x.com", domain.RoleUser)

	emails, err := r.ListEmails()
	if err != nil {
		t.Fatalf("ListEmails: %v", err)
	}
	if len(emails) != 2 || emails[0] != "a@x.com" || emails[1] != "b@x.com" {
		t.Errorf("ListEmails = %v", emails)
	}
}

func TestUserRepoDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	victim := seedUser(t, db, "victim@x.com", domain.RoleUser)
	other := seedUser(t, db, "other@x.com", domain.RoleUser)

	p1 := seedProject(t, db, "victims project", victim.Email)
	p2 := seedProject(t, db, "others project", other.Email)
	seedTask(t, db, "victims task", p1.ID, victim.Email)
	keep := seedTask(t, db, "others task", p2.ID, other.Email)

	if err := r.Delete(victim); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var n int64
	db.Model(&domain.Project{}).Where("owner_email = ?", victim.Email).Count(&n)
	if n != 0 {
		t.Errorf("%d projects still owned by deleted user", n)
	}
	db.Model(&domain.Task{}).Where("assignee = ?", victim.Email).Count(&n)
	if n != 0 {
		t.Errorf("%d tasks still assigned to deleted user", n)
	}
	db.Model(&domain.Task{}).Where("id = ?", keep.ID).Count(&n)
	if n != 1 {
		t.Error("unrelated task was deleted by the cascade")
	}
	db.Model(&domain.Project{}).Where("id = ?", p2.ID).Count(&n)
	if n != 1 {
		t.Error("unrelated project was deleted by the cascade")
	}
}

func TestUserRepoUpdateRenamePropagates(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	u := seedUser(t, db, "old@x.com", domain.RoleUser)
	p := seedProject(t, db, "renamed owners project", u.Email)
	task := seedTask(t, db, "renamed assignees task", p.ID, u.Email)

	oldEmail := u.Email
	u.Email = "new@x.com"
	if err := r.Update(u, oldEmail); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var gotP domain.Project
	db.First(&gotP, "id = ?", p.ID)
	if gotP.OwnerEmail != "new@x.com" {
		t.Errorf("project owner = %q, want new@x.com", gotP.OwnerEmail)
	}
	var gotT domain.Task
	db.First(&gotT, "id = ?", task.ID)
	if gotT.Assignee != "new@x.com" {
		t.Errorf("task assignee = %q, want new@x.com", gotT.Assignee)
	}

	var n int64
	db.Model(&domain.Project{}).Where("owner_email = ?", oldEmail).Count(&n)
	if n != 0 {
		t.Errorf("%d projects still reference the old email", n)
	}
	db.Model(&domain.Task{}).Where("assignee = ?", oldEmail).Count(&n)
	if n != 0 {
		t.Errorf("%d tasks still reference the old email", n)
	}
}

func TestUserRepoUpdateSameEmailNoPropagation(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)

	u := seedUser(t, db, "same@x.com", domain.RoleUser)
	u.FullName = "Renamed Human"
	if err := r.Update(u, u.Email); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := r.FindByID(u.ID)
	if got.FullName != "Renamed Human" {
		t.Errorf("FullName = %q", got.FullName)
	}
}
