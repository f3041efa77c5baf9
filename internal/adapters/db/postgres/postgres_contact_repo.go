package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customErrors "github.com/webcontacts/contacts-api/internal/domain/errors"
	"github.com/webcontacts/contacts-api/internal/domain/model"
	"github.com/webcontacts/contacts-api/internal/domain/repo"
)

type PostgresContactRepo struct {
	db *gorm.DB
}

func NewPostgresContactRepo(db *gorm.DB) *PostgresContactRepo {
	return &PostgresContactRepo{db: db}
}

// birthdayWindow matches contacts whose birthday occurs within the next
// seven days. Shifting the birth date back a week and comparing whole years
// of age handles the year-end wrap.
const birthdayWindow = "date_part('year', age(birth_date - interval '7 days')) > date_part('year', age(birth_date))"

func (p *PostgresContactRepo) ListContacts(ctx context.Context, userID uuid.UUID, f repo.ContactFilter) ([]model.Contact, error) {
	q := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(f.Limit).
		Offset(f.Offset)

	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.LastName != "" {
		q = q.Where("last_name = ?", f.LastName)
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	if f.Birthdays {
		q = q.Where(birthdayWindow)
	}

	var contacts []model.Contact
	if err := q.Find(&contacts).Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListContacts")
	}
	return contacts, nil
}

func (p *PostgresContactRepo) GetContact(ctx context.Context, id, userID uuid.UUID) (model.Contact, error) {
	var c model.Contact
	res := p.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&c)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Contact{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "GetContact")
	}

	return c, nil
}

func (p *PostgresContactRepo) CreateContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	if err := p.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "CreateContact")
	}
	return contact, nil
}

func (p *PostgresContactRepo) UpdateContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	res := p.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]interface{}{
			"name":         contact.Name,
			"last_name":    contact.LastName,
			"email":        contact.Email,
			"phone_number": contact.PhoneNumber,
			"birth_date":   contact.BirthDate,
			"rest":         contact.Rest,
		})
	if err := res.Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "UpdateContact")
	}
	if res.RowsAffected == 0 {
		return model.Contact{}, customErrors.ErrNotFound
	}

	return p.GetContact(ctx, contact.ID, contact.UserID)
}

func (p *PostgresContactRepo) DeleteContact(ctx context.Context, id, userID uuid.UUID) error {
	res := p.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Contact{}, "id = ?", id)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteContact")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}
