package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
	usersvc "github.com/webcontacts/contacts-api/internal/users/service"
)

type userRepoStub struct {
	avatars map[string]string
}

func (u *userRepoStub) CreateUser(_ context.Context, m model.User) (model.User, error) {
	return m, nil
}
func (u *userRepoStub) GetUserByEmail(_ context.Context, _ string) (model.User, error) {
	return model.User{}, customErrors.ErrNotFound
}
func (u *userRepoStub) UpdateRefreshToken(_ context.Context, _ uuid.UUID, _ *string) error {
	return nil
}
func (u *userRepoStub) ConfirmEmail(_ context.Context, _ string) error { return nil }
func (u *userRepoStub) UpdateAvatar(_ context.Context, email, url string) (model.User, error) {
	u.avatars[email] = url
	return model.User{Email: email, Avatar: &url}, nil
}

type avatarStoreStub struct {
	key string
	err error
}

func (a *avatarStoreStub) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.key = key
	_, _ = io.Copy(io.Discard, body)
	return "https://cdn.example.com/" + key, nil
}

func TestUpdateAvatar(t *testing.T) {
	users := &userRepoStub{avatars: map[string]string{}}
	store := &avatarStoreStub{}
	svc := usersvc.New(users, store)

	user := model.User{ID: uuid.New(), Email: "a@x.com"}
	updated, err := svc.UpdateAvatar(context.Background(), user, strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)

	require.Equal(t, "avatars/a@x.com", store.key)
	require.NotNil(t, updated.Avatar)
	require.Equal(t, "https://cdn.example.com/avatars/a@x.com", *updated.Avatar)
	require.Equal(t, *updated.Avatar, users.avatars["a@x.com"])
}

func TestUpdateAvatar_UploadFailure(t *testing.T) {
	users := &userRepoStub{avatars: map[string]string{}}
	store := &avatarStoreStub{err: errors.New("bucket unavailable")}
	svc := usersvc.New(users, store)

	_, err := svc.UpdateAvatar(context.Background(), model.User{Email: "a@x.com"}, strings.NewReader("img"), 3, "image/png")
	require.True(t, customErrors.IsInternal(err))
	require.Empty(t, users.avatars)
}
