package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPostgresUserRepo_CreateAndGet(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	user := model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice", PasswordHash: "h"}
	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Confirmed {
		t.Fatal("new user must start unconfirmed")
	}

	got, err := repo.GetUserByEmail(ctx, "a@x.com")
	if err != nil || got.ID != user.ID {
		t.Fatalf("get by email: %v", err)
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@x.com"); !errors.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestPostgresUserRepo_DuplicateEmail(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = repo.CreateUser(ctx, model.User{ID: uuid.New(), Email: "a@x.com", Username: "mallory", PasswordHash: "h2"})
	if err == nil {
		t.Fatal("duplicate email must fail")
	}
}

func TestPostgresUserRepo_RefreshTokenLifecycle(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	user := model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice", PasswordHash: "h"}
	if _, err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	token := "refresh-1"
	if err := repo.UpdateRefreshToken(ctx, user.ID, &token); err != nil {
		t.Fatalf("set token: %v", err)
	}
	got, _ := repo.GetUserByEmail(ctx, "a@x.com")
	if got.RefreshToken == nil || *got.RefreshToken != token {
		t.Fatal("stored token mismatch")
	}

	if err := repo.UpdateRefreshToken(ctx, user.ID, nil); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	got, _ = repo.GetUserByEmail(ctx, "a@x.com")
	if got.RefreshToken != nil {
		t.Fatal("token must be cleared")
	}

	if err := repo.UpdateRefreshToken(ctx, uuid.New(), &token); !errors.IsNotFound(err) {
		t.Fatalf("unknown user: want not found, got %v", err)
	}
}

func TestPostgresUserRepo_ConfirmAndAvatar(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	user := model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice", PasswordHash: "h"}
	if _, err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.ConfirmEmail(ctx, "a@x.com"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	got, _ := repo.GetUserByEmail(ctx, "a@x.com")
	if !got.Confirmed {
		t.Fatal("user must be confirmed")
	}

	updated, err := repo.UpdateAvatar(ctx, "a@x.com", "https://cdn.example.com/a.png")
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if updated.Avatar == nil || *updated.Avatar != "https://cdn.example.com/a.png" {
		t.Fatal("avatar url mismatch")
	}

	if err := repo.ConfirmEmail(ctx, "nobody@x.com"); !errors.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}
