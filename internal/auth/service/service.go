package service

import (
	"context"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

// Mailer delivers the confirmation link. It is called best-effort from a
// detached goroutine; failures never reach the signup caller.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, username, token, baseURL string) error
}

type Service interface {
	Signup(ctx context.Context, in dto.SignupDTO) (model.User, error)
	Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	ConfirmEmail(ctx context.Context, emailToken string) (string, error)
	CurrentUser(ctx context.Context, accessToken string) (model.User, error)
}
