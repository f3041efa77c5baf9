package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
	"github.com/webcontacts/contacts-api/internal/domain/repo"
)

func seedContact(t *testing.T, r *PostgresContactRepo, userID uuid.UUID, name, email string) model.Contact {
	t.Helper()
	c, err := r.CreateContact(context.Background(), model.Contact{
		ID:          uuid.New(),
		Name:        name,
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "+380501112233",
		BirthDate:   time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		Rest:        "friend",
		UserID:      userID,
	})
	if err != nil {
		t.Fatalf("seed contact: %v", err)
	}
	return c
}

func TestPostgresContactRepo_OwnerScoping(t *testing.T) {
	r := NewPostgresContactRepo(setupDB(t))
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()

	c := seedContact(t, r, owner, "John", "john@x.com")

	got, err := r.GetContact(ctx, c.ID, owner)
	if err != nil || got.Email != "john@x.com" {
		t.Fatalf("get: %v", err)
	}

	// Another user must not see, update, or delete it.
	if _, err := r.GetContact(ctx, c.ID, stranger); !errors.IsNotFound(err) {
		t.Fatalf("cross-tenant get: want not found, got %v", err)
	}
	if err := r.DeleteContact(ctx, c.ID, stranger); !errors.IsNotFound(err) {
		t.Fatalf("cross-tenant delete: want not found, got %v", err)
	}
	c.Name = "Hacked"
	c.UserID = stranger
	if _, err := r.UpdateContact(ctx, c); !errors.IsNotFound(err) {
		t.Fatalf("cross-tenant update: want not found, got %v", err)
	}
}

func TestPostgresContactRepo_ListFilters(t *testing.T) {
	r := NewPostgresContactRepo(setupDB(t))
	ctx := context.Background()
	owner := uuid.New()

	seedContact(t, r, owner, "John", "john@x.com")
	seedContact(t, r, owner, "Jane", "jane@x.com")
	seedContact(t, r, uuid.New(), "John", "other@x.com")

	all, err := r.ListContacts(ctx, owner, repo.ContactFilter{Limit: 10})
	if err != nil || len(all) != 2 {
		t.Fatalf("list all: %v, n=%d", err, len(all))
	}

	johns, err := r.ListContacts(ctx, owner, repo.ContactFilter{Limit: 10, Name: "John"})
	if err != nil || len(johns) != 1 || johns[0].Email != "john@x.com" {
		t.Fatalf("filter by name: %v, n=%d", err, len(johns))
	}

	byEmail, err := r.ListContacts(ctx, owner, repo.ContactFilter{Limit: 10, Email: "jane@x.com"})
	if err != nil || len(byEmail) != 1 || byEmail[0].Name != "Jane" {
		t.Fatalf("filter by email: %v, n=%d", err, len(byEmail))
	}

	paged, err := r.ListContacts(ctx, owner, repo.ContactFilter{Limit: 1, Offset: 1})
	if err != nil || len(paged) != 1 {
		t.Fatalf("paging: %v, n=%d", err, len(paged))
	}
}

func TestPostgresContactRepo_UpdateAndDelete(t *testing.T) {
	r := NewPostgresContactRepo(setupDB(t))
	ctx := context.Background()
	owner := uuid.New()

	c := seedContact(t, r, owner, "John", "john@x.com")
	c.PhoneNumber = "+380675554433"
	c.Rest = "colleague"

	updated, err := r.UpdateContact(ctx, c)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PhoneNumber != "+380675554433" || updated.Rest != "colleague" {
		t.Fatal("update not applied")
	}

	if err := r.DeleteContact(ctx, c.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetContact(ctx, c.ID, owner); !errors.IsNotFound(err) {
		t.Fatalf("want not found after delete, got %v", err)
	}
}
