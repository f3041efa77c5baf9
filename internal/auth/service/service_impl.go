package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/dto"
	"github.com/webcontacts/contacts-api/internal/auth/hash"
	"github.com/webcontacts/contacts-api/internal/auth/token"
	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
	"github.com/webcontacts/contacts-api/internal/domain/repo"
)

type authService struct {
	userRepo repo.UserRepo
	tokens   *token.Service
	hasher   hash.Hasher
	mailer   Mailer
	v        *validator.Validate
	log      *zap.Logger
	baseURL  string
}

func New(
	ur repo.UserRepo,
	ts *token.Service,
	h hash.Hasher,
	m Mailer,
	v *validator.Validate,
	log *zap.Logger,
	baseURL string,
) Service {
	return &authService{
		userRepo: ur, tokens: ts, hasher: h, mailer: m, v: v, log: log, baseURL: baseURL,
	}
}

func (a *authService) Signup(ctx context.Context, in dto.SignupDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	_, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return model.User{}, customErrors.ErrAlreadyExists
	case !errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.WrapInternal(err, "Signup")
	}

	passwordHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Signup")
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Confirmed:    false,
	}
	created, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "CreateUser")
	}

	// Fire-and-forget: the signup response never waits on mail delivery and
	// never sees its failure.
	go a.sendConfirmation(created)

	return created, nil
}

func (a *authService) sendConfirmation(user model.User) {
	emailToken, err := a.tokens.CreateEmailToken(user.Email)
	if err != nil {
		a.log.Error("mint email token", zap.Error(err))
		return
	}
	if err := a.mailer.SendConfirmation(context.Background(), user.Email, user.Username, emailToken, a.baseURL); err != nil {
		a.log.Error("send confirmation email",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, customErrors.ErrInvalidEmail
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	if !user.Confirmed {
		return model.TokenPair{}, customErrors.ErrEmailNotConfirmed
	}
	if !a.hasher.Verify(in.Password, user.PasswordHash) {
		return model.TokenPair{}, customErrors.ErrInvalidPassword
	}

	return a.issuePair(ctx, user)
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	email, err := a.tokens.DecodeRefreshToken(refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, customErrors.ErrInvalidToken
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Refresh")
	}

	// A valid-looking refresh token that is not the stored one means the
	// stored one was rotated away: treat as reuse, drop the session.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		if err := a.userRepo.UpdateRefreshToken(ctx, user.ID, nil); err != nil {
			a.log.Error("clear refresh token", zap.Error(err))
		}
		return model.TokenPair{}, customErrors.ErrRefreshReuse
	}

	return a.issuePair(ctx, user)
}

func (a *authService) issuePair(ctx context.Context, user model.User) (model.TokenPair, error) {
	at, err := a.tokens.CreateAccessToken(user.Email)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "CreateAccessToken")
	}
	rt, err := a.tokens.CreateRefreshToken(user.Email)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "CreateRefreshToken")
	}
	if err := a.userRepo.UpdateRefreshToken(ctx, user.ID, &rt); err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "UpdateRefreshToken")
	}

	return model.TokenPair{
		AccessToken:  at,
		RefreshToken: rt,
		TokenType:    "bearer",
	}, nil
}

func (a *authService) ConfirmEmail(ctx context.Context, emailToken string) (string, error) {
	email, err := a.tokens.DecodeEmailToken(emailToken)
	if err != nil {
		return "", err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return "", customErrors.ErrVerification
	case err != nil:
		return "", customErrors.WrapInternal(err, "ConfirmEmail")
	}

	if user.Confirmed {
		return "Your email is already confirmed", nil
	}
	if err := a.userRepo.ConfirmEmail(ctx, email); err != nil {
		return "", customErrors.WrapInternal(err, "ConfirmEmail")
	}
	return "Email confirmed", nil
}

func (a *authService) CurrentUser(ctx context.Context, accessToken string) (model.User, error) {
	email, err := a.tokens.DecodeAccessToken(accessToken)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}
	return user, nil
}
