package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	// UpdateRefreshToken stores the single active refresh token for the user;
	// nil clears it and forces a re-login.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error
	ConfirmEmail(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email, url string) (model.User, error)
}

// ContactFilter narrows ListContacts. Zero values mean "no filter";
// Birthdays selects contacts whose birthday falls within the next week.
type ContactFilter struct {
	Limit     int
	Offset    int
	Name      string
	LastName  string
	Email     string
	Birthdays bool
}

type ContactRepo interface {
	ListContacts(ctx context.Context, userID uuid.UUID, f ContactFilter) ([]model.Contact, error)
	GetContact(ctx context.Context, id, userID uuid.UUID) (model.Contact, error)
	CreateContact(ctx context.Context, contact model.Contact) (model.Contact, error)
	UpdateContact(ctx context.Context, contact model.Contact) (model.Contact, error)
	DeleteContact(ctx context.Context, id, userID uuid.UUID) error
}
