package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
)

type PostgresUserRepo struct {
	db *gorm.DB
}

func NewPostgresUserRepo(db *gorm.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (p *PostgresUserRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	res := p.db.WithContext(ctx).Create(&user)
	if err := res.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "CreateUser")
	}
	return user, nil
}

func (p *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByEmail")
	}

	return u, nil
}

func (p *PostgresUserRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	res := p.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("refresh_token", token)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateRefreshToken")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}

func (p *PostgresUserRepo) ConfirmEmail(ctx context.Context, email string) error {
	res := p.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("confirmed", true)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "ConfirmEmail")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}

func (p *PostgresUserRepo) UpdateAvatar(ctx context.Context, email, url string) (model.User, error) {
	res := p.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("avatar", url)
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "UpdateAvatar")
	}
	if res.RowsAffected == 0 {
		return model.User{}, customErrors.ErrNotFound
	}

	return p.GetUserByEmail(ctx, email)
}
