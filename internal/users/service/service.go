package service

import (
	"context"
	"io"

	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
	"github.com/webcontacts/contacts-api/internal/domain/repo"
)

// AvatarStore persists an uploaded image and returns its public URL.
type AvatarStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type Service interface {
	UpdateAvatar(ctx context.Context, user model.User, body io.Reader, size int64, contentType string) (model.User, error)
}

type userService struct {
	users   repo.UserRepo
	avatars AvatarStore
}

func New(ur repo.UserRepo, as AvatarStore) Service {
	return &userService{users: ur, avatars: as}
}

func (s *userService) UpdateAvatar(ctx context.Context, user model.User, body io.Reader, size int64, contentType string) (model.User, error) {
	// One object per account, overwritten on every upload.
	key := "avatars/" + user.Email
	url, err := s.avatars.Upload(ctx, key, body, size, contentType)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "UpdateAvatar")
	}

	updated, err := s.users.UpdateAvatar(ctx, user.Email, url)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "UpdateAvatar")
	}
	return updated, nil
}
